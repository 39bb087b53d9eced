// Package css defines the stylesheet collaborator interface the parser
// talks to, plus the loading policy for inline <style> text and linked
// stylesheets. The actual CSS parsing lives outside this module; a Parser
// implementation is supplied by the embedder.
package css

import (
	"fmt"
	"net/url"

	"github.com/sirupsen/logrus"
)

// Origin classifies where a stylesheet came from.
type Origin int

// Stylesheet origins.
const (
	OriginAuthor Origin = iota
	OriginUser
	OriginUserAgent
)

// Config carries parser configuration for the collaborator. Opaque here.
type Config struct {
	QuirksMode bool
}

// Stylesheet is the collaborator's parse result. The document stores it as
// an opaque handle.
type Stylesheet struct {
	SourceURL string
	Origin    Origin
	Rules     any
}

// Parser is implemented by the CSS collaborator.
type Parser interface {
	Parse(text string, cfg Config, origin Origin, sourceURL string) (*Stylesheet, error)
}

// Fetcher retrieves the content of a linked stylesheet. Implementations
// live with the network stack; the parser only sees the result.
type Fetcher interface {
	Fetch(url string) (content string, contentType string, err error)
}

// Loader applies the document's stylesheet loading policy on top of a
// Parser and a Fetcher. A nil Loader (or one with a nil Parser) disables
// stylesheet handling entirely.
type Loader struct {
	Parser  Parser
	Fetcher Fetcher
	Log     logrus.FieldLogger
}

// LoadInline parses inline <style> text against the document URL.
func (l *Loader) LoadInline(text, documentURL string, quirks bool) *Stylesheet {
	if l == nil || l.Parser == nil {
		return nil
	}
	sheet, err := l.Parser.Parse(text, Config{QuirksMode: quirks}, OriginAuthor, documentURL)
	if err != nil {
		l.warn().WithError(err).Debug("inline stylesheet rejected")
		return nil
	}
	return sheet
}

// LoadLinked resolves href against the document URL and fetches and parses
// it. Only http, https, and file schemes are loaded. A non-CSS content
// type is reported but the sheet is still parsed, matching browser
// behavior for quirky servers.
func (l *Loader) LoadLinked(href, documentURL string, quirks bool) (*Stylesheet, error) {
	if l == nil || l.Parser == nil || l.Fetcher == nil {
		return nil, nil
	}

	resolved, err := resolveHref(href, documentURL)
	if err != nil {
		return nil, err
	}
	u, err := url.Parse(resolved)
	if err != nil {
		return nil, err
	}
	switch u.Scheme {
	case "http", "https", "file":
	default:
		return nil, fmt.Errorf("css: unsupported stylesheet scheme %q", u.Scheme)
	}

	content, contentType, err := l.Fetcher.Fetch(resolved)
	if err != nil {
		return nil, err
	}
	if contentType != "" && contentType != "text/css" {
		l.warn().WithFields(logrus.Fields{
			"url":          resolved,
			"content-type": contentType,
		}).Warn("linked stylesheet has a non-CSS content type")
	}

	sheet, err := l.Parser.Parse(content, Config{QuirksMode: quirks}, OriginAuthor, resolved)
	if err != nil {
		return nil, err
	}
	return sheet, nil
}

func resolveHref(href, documentURL string) (string, error) {
	ref, err := url.Parse(href)
	if err != nil {
		return "", err
	}
	if ref.IsAbs() || documentURL == "" {
		return ref.String(), nil
	}
	base, err := url.Parse(documentURL)
	if err != nil {
		return "", err
	}
	return base.ResolveReference(ref).String(), nil
}

func (l *Loader) warn() logrus.FieldLogger {
	if l.Log != nil {
		return l.Log
	}
	return logrus.StandardLogger()
}
