package render

import (
	"strings"

	"github.com/stlalpha/strinspect/internal/decoding"
)

// Line is a contiguous run of units from one decoded sequence. It shares
// storage with the sequence it came from.
type Line []decoding.Unit

// Wrap splits seq greedily into lines of at most columns byte/glyph
// columns. A unit wider than columns is never split; it gets a line of its
// own that exceeds the budget.
func Wrap(seq decoding.Sequence, columns int) []Line {
	var lines []Line
	units := seq.Units
	start, total := 0, 0

	for i, u := range units {
		width := u.Width()
		if total+width > columns && i > start {
			lines = append(lines, Line(units[start:i:i]))
			start, total = i, 0
		}
		total += width
	}
	if start < len(units) {
		lines = append(lines, Line(units[start:len(units):len(units)]))
	}

	return lines
}

// Width is the number of columns the line occupies.
func (l Line) Width() int {
	total := 0
	for _, u := range l {
		total += u.Width()
	}
	return total
}

// FormatBytes concatenates each unit's byte cell.
func (l Line) FormatBytes() string {
	var b strings.Builder
	for _, u := range l {
		b.WriteString(u.FormatBytes())
	}
	return b.String()
}

// FormatGlyphs concatenates each unit's glyph cell.
func (l Line) FormatGlyphs() string {
	var b strings.Builder
	for _, u := range l {
		b.WriteString(u.FormatGlyph())
	}
	return b.String()
}

// FormatPlainText concatenates each unit's character.
func (l Line) FormatPlainText() string {
	var b strings.Builder
	for _, u := range l {
		b.WriteRune(u.Rune())
	}
	return b.String()
}
