package css

import (
	"fmt"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeParser struct {
	lastText   string
	lastURL    string
	lastOrigin Origin
	fail       bool
}

func (p *fakeParser) Parse(text string, cfg Config, origin Origin, sourceURL string) (*Stylesheet, error) {
	if p.fail {
		return nil, fmt.Errorf("bad css")
	}
	p.lastText = text
	p.lastURL = sourceURL
	p.lastOrigin = origin
	return &Stylesheet{SourceURL: sourceURL, Origin: origin}, nil
}

type fakeFetcher struct {
	content     string
	contentType string
	fetched     []string
}

func (f *fakeFetcher) Fetch(url string) (string, string, error) {
	f.fetched = append(f.fetched, url)
	return f.content, f.contentType, nil
}

func TestLoadInline(t *testing.T) {
	parser := &fakeParser{}
	loader := &Loader{Parser: parser}

	sheet := loader.LoadInline("p { color: red }", "https://example.com/page", false)
	require.NotNil(t, sheet)
	assert.Equal(t, "p { color: red }", parser.lastText)
	assert.Equal(t, OriginAuthor, parser.lastOrigin)
}

func TestLoadInlineNilLoader(t *testing.T) {
	var loader *Loader
	assert.Nil(t, loader.LoadInline("p{}", "", false))
}

func TestLoadLinkedResolvesRelativeURL(t *testing.T) {
	parser := &fakeParser{}
	fetcher := &fakeFetcher{content: "body{}", contentType: "text/css"}
	loader := &Loader{Parser: parser, Fetcher: fetcher}

	sheet, err := loader.LoadLinked("styles/site.css", "https://example.com/a/page.html", false)
	require.NoError(t, err)
	require.NotNil(t, sheet)
	assert.Equal(t, []string{"https://example.com/a/styles/site.css"}, fetcher.fetched)
}

func TestLoadLinkedRejectsScheme(t *testing.T) {
	loader := &Loader{Parser: &fakeParser{}, Fetcher: &fakeFetcher{}}

	_, err := loader.LoadLinked("javascript:alert(1)", "https://example.com/", false)
	assert.Error(t, err)
}

func TestLoadLinkedWarnsOnContentType(t *testing.T) {
	log, hook := testLogger()
	parser := &fakeParser{}
	fetcher := &fakeFetcher{content: "body{}", contentType: "text/plain"}
	loader := &Loader{Parser: parser, Fetcher: fetcher, Log: log}

	sheet, err := loader.LoadLinked("https://example.com/s.css", "", false)
	require.NoError(t, err)
	assert.NotNil(t, sheet, "sheet still parses despite the warning")
	assert.True(t, hook.warned, "expected a content-type warning")
}

type captureHook struct {
	warned bool
}

func (h *captureHook) Levels() []logrus.Level {
	return []logrus.Level{logrus.WarnLevel}
}

func (h *captureHook) Fire(_ *logrus.Entry) error {
	h.warned = true
	return nil
}

func testLogger() (*logrus.Logger, *captureHook) {
	log := logrus.New()
	log.SetOutput(discard{})
	hook := &captureHook{}
	log.AddHook(hook)
	return log, hook
}

type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }
