// Package testutil renders document trees in the html5lib pipe format used
// by the tree-construction tests.
package testutil

import (
	"fmt"
	"sort"
	"strings"

	"github.com/gosub-io/gosub-engine-sub000/dom"
)

// DumpTree renders the document in html5lib format:
//
//	| <html>
//	|   <head>
//	|   <body>
//	|     "text"
func DumpTree(doc *dom.Document) string {
	var sb strings.Builder
	root := doc.NodeByID(doc.RootID)
	if root == nil {
		return ""
	}
	for _, child := range root.ChildIDs {
		dumpNode(doc, child, 0, &sb)
	}
	return strings.TrimRight(sb.String(), "\n")
}

// DumpSubtree renders the children of one node, for fragment tests.
func DumpSubtree(doc *dom.Document, id dom.NodeID) string {
	var sb strings.Builder
	n := doc.NodeByID(id)
	if n == nil {
		return ""
	}
	for _, child := range n.ChildIDs {
		dumpNode(doc, child, 0, &sb)
	}
	return strings.TrimRight(sb.String(), "\n")
}

func dumpNode(doc *dom.Document, id dom.NodeID, depth int, sb *strings.Builder) {
	n := doc.NodeByID(id)
	if n == nil {
		return
	}
	indent := strings.Repeat("  ", depth)

	switch n.Type {
	case dom.DoctypeNodeType:
		if n.PublicID == "" && n.SystemID == "" {
			fmt.Fprintf(sb, "| %s<!DOCTYPE %s>\n", indent, n.Name)
		} else {
			fmt.Fprintf(sb, "| %s<!DOCTYPE %s %q %q>\n", indent, n.Name, n.PublicID, n.SystemID)
		}
	case dom.ElementNodeType:
		fmt.Fprintf(sb, "| %s<%s>\n", indent, qualifiedName(n))
		dumpAttrs(n, depth+1, sb)
		for _, child := range n.ChildIDs {
			dumpNode(doc, child, depth+1, sb)
		}
		if n.TemplateContentsID != dom.InvalidNodeID {
			fmt.Fprintf(sb, "| %scontent\n", strings.Repeat("  ", depth+1))
			contents := doc.NodeByID(n.TemplateContentsID)
			if contents != nil {
				for _, child := range contents.ChildIDs {
					dumpNode(doc, child, depth+2, sb)
				}
			}
		}
	case dom.TextNodeType:
		fmt.Fprintf(sb, "| %s%q\n", indent, n.Data)
	case dom.CommentNodeType:
		fmt.Fprintf(sb, "| %s<!-- %s -->\n", indent, n.Data)
	case dom.FragmentNodeType:
		for _, child := range n.ChildIDs {
			dumpNode(doc, child, depth, sb)
		}
	}
}

func qualifiedName(n *dom.Node) string {
	switch n.Namespace {
	case dom.NamespaceSVG:
		return "svg " + n.TagName
	case dom.NamespaceMathML:
		return "math " + n.TagName
	default:
		return n.TagName
	}
}

func dumpAttrs(n *dom.Node, depth int, sb *strings.Builder) {
	if n.Attributes == nil || n.Attributes.Len() == 0 {
		return
	}
	attrs := n.Attributes.All()
	sort.Slice(attrs, func(i, j int) bool { return attrs[i].Name < attrs[j].Name })
	indent := strings.Repeat("  ", depth)
	for _, a := range attrs {
		fmt.Fprintf(sb, "| %s%s=%q\n", indent, a.Name, a.Value)
	}
}
