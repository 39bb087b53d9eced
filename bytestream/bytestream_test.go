package bytestream

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadAndNext(t *testing.T) {
	bs := NewFromString("ab")

	assert.Equal(t, Ch('a'), bs.Read())
	assert.Equal(t, Ch('a'), bs.ReadAndNext())
	assert.Equal(t, Ch('b'), bs.ReadAndNext())
	assert.Equal(t, EndChar, bs.ReadAndNext())
	assert.Equal(t, EndChar, bs.Read())
}

func TestStreamEmptyBeforeClose(t *testing.T) {
	bs := New()
	bs.Append([]byte("x"))

	assert.Equal(t, Ch('x'), bs.ReadAndNext())
	assert.Equal(t, EmptyChar, bs.Read())

	bs.Close()
	assert.Equal(t, EndChar, bs.Read())
}

func TestLineEndingNormalization(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"crlf", "a\r\nb"},
		{"lone cr", "a\rb"},
		{"trailing cr", "a\r"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bs := NewFromString(tt.input)
			var got []rune
			for {
				c := bs.ReadAndNext()
				if c.Kind != CharRune {
					break
				}
				got = append(got, c.Rune)
			}
			for _, r := range got {
				assert.NotEqual(t, '\r', r)
			}
			assert.Contains(t, string(got), "\n")
		})
	}
}

func TestASCIIEncodingReplacesHighBytes(t *testing.T) {
	bs := NewFromBytes([]byte{'a', 0xC3, 0xA9, 'b'}, ASCII)

	assert.Equal(t, Ch('a'), bs.ReadAndNext())
	assert.Equal(t, Ch('?'), bs.ReadAndNext())
	assert.Equal(t, Ch('?'), bs.ReadAndNext())
	assert.Equal(t, Ch('b'), bs.ReadAndNext())
}

func TestSurrogatePreserved(t *testing.T) {
	// WTF-8 encoding of U+D800.
	bs := NewFromBytes([]byte{0xED, 0xA0, 0x80}, UTF8)

	c := bs.ReadAndNext()
	require.Equal(t, CharSurrogate, c.Kind)
	assert.Equal(t, uint16(0xD800), c.Surrogate)
}

func TestLookAheadAndUnread(t *testing.T) {
	bs := NewFromString("abcd")

	assert.Equal(t, Ch('c'), bs.LookAhead(2))
	bs.NextN(3)
	assert.Equal(t, Ch('d'), bs.Read())
	bs.PrevN(2)
	assert.Equal(t, Ch('b'), bs.Read())
	bs.Prev()
	bs.Prev() // clamped at 0
	assert.Equal(t, Ch('a'), bs.Read())
}

func TestSliceTellLength(t *testing.T) {
	bs := NewFromString("hello")

	bs.NextN(2)
	assert.Equal(t, 2, bs.Tell())
	assert.Equal(t, 5, bs.Length())
	assert.Equal(t, 3, bs.CharsLeft())
	assert.Equal(t, []Char{Ch('e'), Ch('l')}, bs.Slice(1, 3))
}

func TestResetSupportsEncodingSwitch(t *testing.T) {
	bs := New()
	bs.Append([]byte("hi"))
	bs.SetConfidence(Tentative)
	bs.NextN(2)

	bs.SetEncoding(ASCII)
	bs.SetConfidence(Certain)
	bs.Reset()

	assert.Equal(t, Certain, bs.Confidence())
	assert.Equal(t, Ch('h'), bs.Read())
}

func TestLocations(t *testing.T) {
	bs := NewFromString("ab\ncd")

	require.Equal(t, Location{Line: 1, Column: 1}, bs.Location())
	bs.NextN(3)
	assert.Equal(t, Location{Line: 2, Column: 1}, bs.Location())
	bs.NextN(2)
	assert.Equal(t, Location{Line: 2, Column: 3}, bs.Location())
}
