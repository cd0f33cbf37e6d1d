package decoding

import "strings"

// Sequence is the result of decoding one input under one encoding.
type Sequence struct {
	// Encoding is the name of the encoding that produced the units.
	Encoding string
	Units    []Unit
}

// String returns the decoded text, with U+FFFD in place of invalid bytes.
func (s Sequence) String() string {
	var b strings.Builder
	for _, u := range s.Units {
		b.WriteRune(u.Rune())
	}
	return b.String()
}

// Bytes concatenates every unit's source bytes. For a sequence produced by
// Decode this is the original input.
func (s Sequence) Bytes() []byte {
	var out []byte
	for _, u := range s.Units {
		out = append(out, u.source...)
	}
	return out
}

// Width is the total column count of all units.
func (s Sequence) Width() int {
	total := 0
	for _, u := range s.Units {
		total += u.Width()
	}
	return total
}

// FormatBytes concatenates every unit's byte cell.
func (s Sequence) FormatBytes() string {
	var b strings.Builder
	for _, u := range s.Units {
		b.WriteString(u.FormatBytes())
	}
	return b.String()
}

// FormatGlyphs concatenates every unit's glyph cell.
func (s Sequence) FormatGlyphs() string {
	var b strings.Builder
	for _, u := range s.Units {
		b.WriteString(u.FormatGlyph())
	}
	return b.String()
}
