// Package gosub provides an HTML5-compliant parsing core: a byte stream
// decoder, the WHATWG tokenizer, and the tree-construction engine building
// an arena-backed document tree.
//
// # Basic usage
//
//	doc, err := gosub.Parse("<html><body><p>Hello!</p></body></html>")
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(doc.Title())
//
// Parsing never fails on malformed markup; any byte sequence produces a
// well-formed tree. Recoverable problems are reported as parse errors,
// which ParseDocument returns and Parse exposes via WithCollectErrors.
package gosub

import (
	"github.com/gosub-io/gosub-engine-sub000/bytestream"
	"github.com/gosub-io/gosub-engine-sub000/dom"
	"github.com/gosub-io/gosub-engine-sub000/encoding"
	"github.com/gosub-io/gosub-engine-sub000/errors"
	"github.com/gosub-io/gosub-engine-sub000/tokenizer"
	"github.com/gosub-io/gosub-engine-sub000/treebuilder"
)

// Version is the current version of the parser core.
const Version = "0.1.0-dev"

// ParseDocument parses the stream into doc and returns the accumulated
// parse errors. The error return carries hard failures only; parse errors
// are always recoverable and the tree is always well-formed.
func ParseDocument(stream *bytestream.ByteStream, doc *dom.Document, opts ...Option) (errors.ParseErrors, error) {
	cfg := newConfig(opts...)
	log := errors.NewLogger()

	tok := tokenizer.New(stream, log)
	tb := treebuilder.New(tok, doc, log, cfg.builderOptions())
	tb.Run()

	return log.Errors(), nil
}

// ParseFragment parses the stream as a fragment with the given context
// node (already registered in doc). The parsed nodes become children of a
// synthetic root, and their ids are returned in order. startLocation seeds source
// positions for callers embedding fragments in larger documents.
func ParseFragment(stream *bytestream.ByteStream, doc *dom.Document, contextNodeID dom.NodeID, startLocation bytestream.Location, opts ...Option) ([]dom.NodeID, errors.ParseErrors, error) {
	cfg := newConfig(opts...)
	log := errors.NewLogger()

	tok := tokenizer.New(stream, log)
	tb := treebuilder.NewFragment(tok, doc, log, contextNodeID, cfg.builderOptions())
	if root := doc.NodeByID(tb.FragmentRootID()); root != nil {
		root.Location = startLocation
	}
	tb.Run()

	root := doc.NodeByID(tb.FragmentRootID())
	var children []dom.NodeID
	if root != nil {
		children = append(children, root.ChildIDs...)
	}
	return children, log.Errors(), nil
}

// Parse parses an HTML string into a fresh document.
func Parse(html string, opts ...Option) (*dom.Document, error) {
	cfg := newConfig(opts...)
	doc := dom.NewDocument(cfg.documentURL)

	stream := bytestream.NewFromString(html)
	parseErrs, err := ParseDocument(stream, doc, opts...)
	if err != nil {
		return nil, err
	}
	if cfg.collectErrors && len(parseErrs) > 0 {
		return doc, parseErrs
	}
	return doc, nil
}

// ParseBytes parses raw bytes with encoding detection (BOM, transport
// override, meta prescan) into a fresh document.
func ParseBytes(html []byte, opts ...Option) (*dom.Document, error) {
	cfg := newConfig(opts...)
	doc := dom.NewDocument(cfg.documentURL)

	enc, confidence := encoding.Detect(html, cfg.encodingLabel)
	stream := bytestream.New()
	stream.SetEncoding(enc)
	stream.SetConfidence(confidence)
	stream.Append(encoding.StripBOM(html))
	stream.Close()

	parseErrs, err := ParseDocument(stream, doc, opts...)
	if err != nil {
		return nil, err
	}
	if cfg.collectErrors && len(parseErrs) > 0 {
		return doc, parseErrs
	}
	return doc, nil
}

// ParseFragmentString parses an HTML fragment against a context element
// tag, the innerHTML case. It returns the parsed top-level nodes of a
// fresh document.
func ParseFragmentString(html, context string, opts ...Option) (*dom.Document, []dom.NodeID, error) {
	cfg := newConfig(opts...)
	doc := dom.NewDocument(cfg.documentURL)

	contextNode := doc.NewElementNode(context, dom.NamespaceHTML, nil, bytestream.Location{})
	contextID := doc.RegisterNode(contextNode)

	stream := bytestream.NewFromString(html)
	children, parseErrs, err := ParseFragment(stream, doc, contextID, bytestream.Location{}, opts...)
	if err != nil {
		return nil, nil, err
	}
	if cfg.collectErrors && len(parseErrs) > 0 {
		return doc, children, parseErrs
	}
	return doc, children, nil
}
