package core

import "strings"

// DefaultTextWidth is the number of characters one PM42 text line has room
// for at the font the label layout declares.
const DefaultTextWidth = 25

// WrapDescription splits a description into the two lines a label has room
// for. Descriptions that fit on one line come back with an empty second
// line. Longer ones are split at the last space at or before the width; if
// the only candidate is a leading space, or there is no space at all, the
// split is a hard cut at the width. Both halves are trimmed.
//
// Width is counted in runes so accented characters do not shorten the line.
func WrapDescription(desc string, width int) (string, string) {
	if width <= 0 {
		width = DefaultTextWidth
	}

	desc = strings.TrimSpace(desc)
	rs := []rune(desc)
	if len(rs) <= width {
		return desc, ""
	}

	split := width
	for i := width; i > 0; i-- {
		if rs[i] == ' ' {
			split = i
			break
		}
	}

	line1 := strings.TrimSpace(string(rs[:split]))
	line2 := strings.TrimSpace(string(rs[split:]))
	return line1, line2
}
