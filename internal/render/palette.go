package render

import (
	"io"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Palette applies colour hints. Colour never changes the visible text;
// with the Ascii profile every method returns its input untouched.
type Palette struct {
	profile termenv.Profile

	// Byte and glyph cells alternate between even and odd by unit index.
	even, odd termenv.Color
	// Plain-text characters are ascii or nonASCII.
	ascii, nonASCII termenv.Color

	header lipgloss.Style
}

// NewPalette returns the default palette for a colour profile: green and
// blue alternating cells, green ASCII and red non-ASCII text.
func NewPalette(profile termenv.Profile) Palette {
	renderer := lipgloss.NewRenderer(io.Discard, termenv.WithProfile(profile))
	renderer.SetColorProfile(profile)

	return Palette{
		profile:  profile,
		even:     profile.Color("2"),
		odd:      profile.Color("4"),
		ascii:    profile.Color("2"),
		nonASCII: profile.Color("1"),
		header:   renderer.NewStyle().Bold(true),
	}
}

// PlainPalette returns a palette that adds no escape sequences.
func PlainPalette() Palette {
	return NewPalette(termenv.Ascii)
}

// Enabled reports whether the palette emits colour.
func (p Palette) Enabled() bool {
	return p.profile != termenv.Ascii
}

func (p Palette) paint(s string, c termenv.Color) string {
	if !p.Enabled() || s == "" {
		return s
	}
	return p.profile.String(s).Foreground(c).String()
}

// Alternate colours cell s by the parity of its unit index.
func (p Palette) Alternate(index int, s string) string {
	if index%2 == 0 {
		return p.paint(s, p.even)
	}
	return p.paint(s, p.odd)
}

// Highlight renders text with ASCII and non-ASCII characters in different
// colours. Runs of the same class share one escape sequence.
func (p Palette) Highlight(text string) string {
	if !p.Enabled() {
		return text
	}

	var b strings.Builder
	runStart := 0
	runASCII := true
	for i, r := range text {
		isASCII := r < utf8.RuneSelf
		if i > runStart && isASCII != runASCII {
			b.WriteString(p.paintClass(text[runStart:i], runASCII))
			runStart = i
		}
		runASCII = isASCII
	}
	b.WriteString(p.paintClass(text[runStart:], runASCII))
	return b.String()
}

func (p Palette) paintClass(s string, ascii bool) string {
	if ascii {
		return p.paint(s, p.ascii)
	}
	return p.paint(s, p.nonASCII)
}

// Header renders the encoding label that opens a block.
func (p Palette) Header(name string) string {
	label := "[" + name + "]"
	if !p.Enabled() {
		return label
	}
	return p.header.Render(label)
}
