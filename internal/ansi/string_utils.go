// Package ansi holds column-width helpers for aligning text cells that may
// carry ANSI escape sequences.
package ansi

import (
	"strings"

	xansi "github.com/charmbracelet/x/ansi"
)

// VisibleLength returns the display width of a string, ignoring ANSI escape sequences.
func VisibleLength(s string) int {
	return xansi.StringWidth(s)
}

// PadVisible pads a string to the specified width using the given pad character.
// ANSI escape sequences do not count toward the width. Strings already at or
// beyond width are returned unchanged; nothing is ever truncated.
func PadVisible(s string, width int, padChar rune) string {
	visLen := VisibleLength(s)
	if visLen >= width {
		return s
	}

	return s + strings.Repeat(string(padChar), width-visLen)
}

// Strip removes ANSI escape sequences, leaving only the visible text.
func Strip(s string) string {
	return xansi.Strip(s)
}
