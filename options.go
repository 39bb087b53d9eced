package gosub

import (
	"github.com/sirupsen/logrus"

	"github.com/gosub-io/gosub-engine-sub000/css"
	"github.com/gosub-io/gosub-engine-sub000/treebuilder"
)

// config holds parser configuration.
type config struct {
	scriptingEnabled bool
	iframeSrcdoc     bool
	collectErrors    bool
	encodingLabel    string
	documentURL      string
	stylesheets      *css.Loader
	trace            logrus.FieldLogger
}

func newConfig(opts ...Option) *config {
	cfg := &config{scriptingEnabled: true}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

func (c *config) builderOptions() treebuilder.Options {
	return treebuilder.Options{
		ScriptingEnabled: c.scriptingEnabled,
		IframeSrcdoc:     c.iframeSrcdoc,
		Stylesheets:      c.stylesheets,
		Trace:            c.trace,
	}
}

// Option configures parsing behavior.
type Option func(*config)

// WithScripting toggles the scripting flag, which changes how <noscript>
// is parsed. Scripting defaults to enabled; no script ever runs.
func WithScripting(enabled bool) Option {
	return func(c *config) {
		c.scriptingEnabled = enabled
	}
}

// WithIframeSrcdoc treats the input as an iframe srcdoc document, which
// never enters quirks mode.
func WithIframeSrcdoc() Option {
	return func(c *config) {
		c.iframeSrcdoc = true
	}
}

// WithCollectErrors makes Parse return the accumulated parse errors as a
// ParseErrors error alongside the document.
func WithCollectErrors() Option {
	return func(c *config) {
		c.collectErrors = true
	}
}

// WithEncoding overrides encoding detection with a transport-declared
// label (e.g. from a Content-Type header).
func WithEncoding(label string) Option {
	return func(c *config) {
		c.encodingLabel = label
	}
}

// WithDocumentURL sets the document URL used to resolve stylesheet links.
func WithDocumentURL(url string) Option {
	return func(c *config) {
		c.documentURL = url
	}
}

// WithStylesheets enables the stylesheet hooks: inline <style> text and
// <link rel=stylesheet> elements go through the loader and attach to the
// document.
func WithStylesheets(loader *css.Loader) Option {
	return func(c *config) {
		c.stylesheets = loader
	}
}

// WithTraceLogger streams insertion-mode transitions and adoption-agency
// invocations to the logger at debug level.
func WithTraceLogger(log logrus.FieldLogger) Option {
	return func(c *config) {
		c.trace = log
	}
}
