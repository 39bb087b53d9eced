package treebuilder

import (
	"github.com/gosub-io/gosub-engine-sub000/dom"
	"github.com/gosub-io/gosub-engine-sub000/internal/constants"
)

// adoptionAgency handles end tags of formatting elements that are misnested
// around block-level content. Bounded: at most 8 outer iterations, and the
// inner loop detaches stale formatting entries after 3 steps. Clones get
// the original tag and attributes, no children, and a fresh NodeID.
func (tb *TreeBuilder) adoptionAgency(subject string) {
	if tb.trace != nil {
		tb.trace.WithField("subject", subject).Debug("adoption agency")
	}

	// Fast path: the subject is current and not in the formatting list.
	if cur := tb.currentElement(); cur != nil && cur.IsElement(dom.NamespaceHTML, subject) {
		if !tb.hasFormattingEntry(subject) {
			tb.popUntil(subject)
			return
		}
	}

	for outer := 0; outer < 8; outer++ {
		formattingIndex, ok := tb.findFormattingEntry(subject)
		if !ok {
			return
		}
		entry := tb.activeFormatting[formattingIndex]
		formattingID := entry.nodeID
		if formattingID == dom.InvalidNodeID {
			tb.removeFormattingEntry(formattingIndex)
			return
		}

		formattingStackIdx, inStack := tb.indexOfOpenElement(formattingID)
		if !inStack {
			tb.removeFormattingEntry(formattingIndex)
			return
		}
		if !tb.hasElementInScope(tb.node(formattingID).TagName, constants.DefaultScope) {
			return
		}

		// Furthest block: the first special element deeper than the
		// formatting element.
		furthestIdx := -1
		for i := formattingStackIdx + 1; i < len(tb.openElements); i++ {
			if isSpecial(tb.node(tb.openElements[i])) {
				furthestIdx = i
				break
			}
		}
		if furthestIdx < 0 {
			for len(tb.openElements) > 0 {
				if tb.popCurrent() == formattingID {
					break
				}
			}
			tb.removeFormattingEntry(formattingIndex)
			return
		}
		furthestID := tb.openElements[furthestIdx]
		commonAncestorID := tb.openElements[formattingStackIdx-1]

		bookmark := formattingIndex + 1

		nodeID := furthestID
		lastNodeID := furthestID

		for inner := 1; ; inner++ {
			nodeStackIdx, ok := tb.indexOfOpenElement(nodeID)
			if !ok || nodeStackIdx == 0 {
				return
			}
			nodeID = tb.openElements[nodeStackIdx-1]
			if nodeID == formattingID {
				break
			}

			nodeFmtIdx, hasEntry := tb.findFormattingEntryByNode(nodeID)
			if inner > 3 && hasEntry {
				tb.removeFormattingEntry(nodeFmtIdx)
				if nodeFmtIdx < bookmark {
					bookmark--
				}
				hasEntry = false
			}

			if !hasEntry {
				idx, ok := tb.indexOfOpenElement(nodeID)
				if !ok {
					return
				}
				tb.removeOpenElementAt(idx)
				if idx < len(tb.openElements) {
					nodeID = tb.openElements[idx]
				}
				continue
			}

			// Replace the entry and the stack slot with a fresh clone.
			clone := tb.doc.ClonedNodeByID(nodeID)
			cloneID := tb.doc.RegisterNode(clone)
			tb.activeFormatting[nodeFmtIdx].nodeID = cloneID
			if idx, ok := tb.indexOfOpenElement(nodeID); ok {
				tb.openElements[idx] = cloneID
			}
			nodeID = cloneID

			if lastNodeID == furthestID {
				bookmark = nodeFmtIdx + 1
			}

			tb.doc.Detach(lastNodeID)
			tb.doc.Attach(lastNodeID, nodeID, -1)
			lastNodeID = nodeID
		}

		// Put lastNode under the common ancestor (foster-parented when the
		// ancestor is a table context).
		tb.doc.Detach(lastNodeID)
		if anc := tb.node(commonAncestorID); anc != nil && anc.Namespace == dom.NamespaceHTML && constants.TableFosterTargets[anc.TagName] {
			loc := tb.fosterInsertionLocation()
			tb.insertNodeAt(lastNodeID, loc)
		} else {
			tb.doc.Attach(lastNodeID, commonAncestorID, -1)
		}

		// Fresh clone of the formatting element takes the furthest block's
		// children, then becomes its last child.
		fmtClone := tb.doc.ClonedNodeByID(formattingID)
		fmtCloneID := tb.doc.RegisterNode(fmtClone)

		furthest := tb.node(furthestID)
		for len(furthest.ChildIDs) > 0 {
			childID := furthest.ChildIDs[0]
			tb.doc.Detach(childID)
			tb.doc.Attach(childID, fmtCloneID, -1)
		}
		tb.doc.Attach(fmtCloneID, furthestID, -1)

		// Move the formatting entry to the bookmark with the clone's id.
		moved := tb.activeFormatting[formattingIndex]
		moved.nodeID = fmtCloneID
		tb.removeFormattingEntry(formattingIndex)
		if formattingIndex < bookmark {
			bookmark--
		}
		if bookmark < 0 {
			bookmark = 0
		}
		if bookmark > len(tb.activeFormatting) {
			bookmark = len(tb.activeFormatting)
		}
		tb.activeFormatting = append(tb.activeFormatting, formattingEntry{})
		copy(tb.activeFormatting[bookmark+1:], tb.activeFormatting[bookmark:])
		tb.activeFormatting[bookmark] = moved

		// Swap the stack: drop the old formatting element, put the clone
		// right after the furthest block.
		tb.removeFromOpenElements(formattingID)
		if idx, ok := tb.indexOfOpenElement(furthestID); ok {
			tb.insertOpenElementAt(idx+1, fmtCloneID)
		}
	}
}
