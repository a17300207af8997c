package core

import (
	"bytes"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// invisibleRunes covers the zero-width characters that survive a clipboard
// round trip from spreadsheets: zero-width space, zero-width non-joiner,
// zero-width joiner, and the byte order mark. Any of them adjacent to a
// printer control byte corrupts the command stream, so they are stripped
// before a value is stored.
var invisibleRunes = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x200b, Hi: 0x200d, Stride: 1}, // ZWSP, ZWNJ, ZWJ
		{Lo: 0xfeff, Hi: 0xfeff, Stride: 1}, // BOM
	},
}

var invisibleStripper = runes.Remove(runes.In(invisibleRunes))

// StripInvisible removes zero-width characters and byte order marks from s.
// Visible content, including non-ASCII letters, passes through unchanged.
func StripInvisible(s string) string {
	out, _, err := transform.String(invisibleStripper, s)
	if err != nil {
		return s
	}
	return out
}

// CleanField prepares a cell value for storage: invisible characters are
// stripped first so that trimming sees any whitespace they were hiding.
func CleanField(s string) string {
	return strings.TrimSpace(StripInvisible(s))
}

func sanitizeUTF8(data []byte) []byte {
	if utf8.Valid(data) {
		return data
	}

	var buf bytes.Buffer
	buf.Grow(len(data))

	for len(data) > 0 {
		r, size := utf8.DecodeRune(data)
		if r == utf8.RuneError && size == 1 {
			buf.WriteRune('�')
			data = data[1:]
		} else {
			buf.WriteRune(r)
			data = data[size:]
		}
	}

	return buf.Bytes()
}
