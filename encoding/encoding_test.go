package encoding

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gosub-io/gosub-engine-sub000/bytestream"
)

func TestDetectBOM(t *testing.T) {
	enc, conf := Detect([]byte{0xEF, 0xBB, 0xBF, 'h', 'i'}, "")
	assert.Equal(t, bytestream.UTF8, enc)
	assert.Equal(t, bytestream.Certain, conf)
}

func TestDetectTransportOverride(t *testing.T) {
	enc, conf := Detect([]byte("<p>x</p>"), "UTF-8")
	assert.Equal(t, bytestream.UTF8, enc)
	assert.Equal(t, bytestream.Certain, conf)

	enc, conf = Detect([]byte("<p>x</p>"), "windows-1252")
	assert.Equal(t, bytestream.ASCII, enc)
	assert.Equal(t, bytestream.Certain, conf)
}

func TestDetectMetaCharset(t *testing.T) {
	enc, conf := Detect([]byte(`<html><head><meta charset="utf-8"></head>`), "")
	assert.Equal(t, bytestream.UTF8, enc)
	assert.Equal(t, bytestream.Tentative, conf)
}

func TestDetectMetaHTTPEquiv(t *testing.T) {
	input := `<meta http-equiv="Content-Type" content="text/html; charset=utf-8">`
	enc, _ := Detect([]byte(input), "")
	assert.Equal(t, bytestream.UTF8, enc)
}

func TestDetectFallback(t *testing.T) {
	enc, conf := Detect([]byte("<p>plain</p>"), "")
	assert.Equal(t, bytestream.ASCII, enc)
	assert.Equal(t, bytestream.Tentative, conf)
}

func TestPrescanWindowBound(t *testing.T) {
	padding := make([]byte, prescanWindow)
	for i := range padding {
		padding[i] = ' '
	}
	input := append(padding, []byte(`<meta charset="utf-8">`)...)
	enc, _ := Detect(input, "")
	assert.Equal(t, bytestream.ASCII, enc, "meta outside the prescan window is ignored")
}

func TestStripBOM(t *testing.T) {
	assert.Equal(t, []byte("hi"), StripBOM([]byte{0xEF, 0xBB, 0xBF, 'h', 'i'}))
	assert.Equal(t, []byte("hi"), StripBOM([]byte("hi")))
}

func TestAttrValueQuoting(t *testing.T) {
	assert.Equal(t, "utf-8", attrValue(`<meta charset="utf-8"`, "charset"))
	assert.Equal(t, "utf-8", attrValue(`<meta charset='utf-8'`, "charset"))
	assert.Equal(t, "utf-8", attrValue(`<meta charset=utf-8 x`, "charset"))
}
