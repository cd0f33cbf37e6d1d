// Package terminalio works out how output will be displayed: how wide the
// terminal is and whether it should receive colour.
package terminalio

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// DefaultWidth is used when the output is not a terminal or its size
// cannot be read.
const DefaultWidth = 80

// ColorMode selects when colour is applied.
type ColorMode int

const (
	ColorAuto   ColorMode = iota // Default: colour only on a detectable terminal
	ColorAlways                  // Force ANSI colour
	ColorNever                   // Plain text
)

// ParseColorMode parses "auto", "always" or "never".
func ParseColorMode(s string) (ColorMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return ColorAuto, nil
	case "always":
		return ColorAlways, nil
	case "never":
		return ColorNever, nil
	}
	return ColorAuto, fmt.Errorf("invalid color mode %q: must be auto, always or never", s)
}

func (m ColorMode) String() string {
	switch m {
	case ColorAlways:
		return "always"
	case ColorNever:
		return "never"
	default:
		return "auto"
	}
}

// Terminal describes the output device.
type Terminal struct {
	Width      int
	IsTerminal bool
	Profile    termenv.Profile
}

// Detect inspects w. Anything that is not a terminal with a readable size
// gets DefaultWidth and, unless colour is forced, no colour.
func Detect(w io.Writer, mode ColorMode) Terminal {
	t := Terminal{Width: DefaultWidth, Profile: termenv.Ascii}

	if f, ok := w.(interface{ Fd() uintptr }); ok {
		fd := int(f.Fd())
		if term.IsTerminal(fd) {
			if width, _, err := term.GetSize(fd); err == nil && width > 0 {
				t.Width = width
				t.IsTerminal = true
			}
		}
	}

	switch mode {
	case ColorAlways:
		t.Profile = termenv.ANSI
	case ColorAuto:
		if t.IsTerminal {
			t.Profile = termenv.NewOutput(w).EnvColorProfile()
		}
	}
	return t
}
