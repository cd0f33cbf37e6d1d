package decoding

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/stlalpha/strinspect/internal/ansi"
)

const (
	// byteCellWidth is the column count of one byte in the byte row: two hex
	// digits and a separator space.
	byteCellWidth = 3

	// invalidWidth is the column count of an invalid code unit's glyph cell.
	invalidWidth = 2
)

// Unit is one decoded logical item: either a character together with the
// bytes it was decoded from, or a single byte the encoding could not
// interpret. Units are immutable once built.
type Unit struct {
	r       rune
	source  []byte
	invalid bool
}

// Valid returns a unit for a successfully decoded character. The byte span is
// copied. It panics on an empty span, which would break byte/glyph alignment.
func Valid(r rune, source []byte) Unit {
	if len(source) == 0 {
		panic(fmt.Sprintf("decoding: valid unit U+%04X has no source bytes", r))
	}
	return Unit{r: r, source: append([]byte(nil), source...)}
}

// Invalid returns a unit for one undecodable byte.
func Invalid(b byte) Unit {
	return Unit{r: utf8.RuneError, source: []byte{b}, invalid: true}
}

// IsValid reports whether the unit holds a decoded character.
func (u Unit) IsValid() bool { return !u.invalid }

// Rune returns the decoded character, or U+FFFD for an invalid unit.
func (u Unit) Rune() rune { return u.r }

// Bytes returns a copy of the bytes this unit was decoded from.
func (u Unit) Bytes() []byte { return append([]byte(nil), u.source...) }

// Width returns the number of columns the unit occupies in the byte and
// glyph rows.
func (u Unit) Width() int {
	if u.invalid {
		return invalidWidth
	}
	return byteCellWidth * len(u.source)
}

// FormatBytes renders the source bytes as lowercase hex, each followed by a space.
func (u Unit) FormatBytes() string {
	var b strings.Builder
	b.Grow(byteCellWidth * len(u.source))
	for _, c := range u.source {
		fmt.Fprintf(&b, "%02x ", c)
	}
	return b.String()
}

// FormatGlyph renders the character for the glyph row, padded to Width.
// Printable ASCII is shown as-is, tab/CR/LF as escape sequences and anything
// else as its hex codepoint. A codepoint whose hex form is wider than its
// byte cells overflows the cell; it is never truncated.
func (u Unit) FormatGlyph() string {
	width := u.Width()
	if u.invalid {
		return ansi.PadVisible(string(utf8.RuneError)+" ", width, ' ')
	}

	switch r := u.r; {
	case r == '\t':
		return ansi.PadVisible(`\t `, width, ' ')
	case r == '\r':
		return ansi.PadVisible(`\r `, width, ' ')
	case r == '\n':
		return ansi.PadVisible(`\n `, width, ' ')
	case r >= 0x20 && r <= 0x7e:
		return ansi.PadVisible(string(r), width, ' ')
	default:
		return ansi.PadVisible(fmt.Sprintf("%02x ", r), width, ' ')
	}
}

// String returns the character as text, U+FFFD for invalid units.
func (u Unit) String() string { return string(u.r) }
