// Package render lays decoded units out for a terminal. Each unit's hex
// bytes sit directly above its glyph, and long inputs are wrapped so the
// two rows stay column-aligned on every output line.
package render
