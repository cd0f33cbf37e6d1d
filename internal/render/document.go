package render

import (
	"strings"

	"github.com/stlalpha/strinspect/internal/decoding"
)

const (
	bytesLabel = "bytes: "
	charsLabel = "chars: "

	// LabelWidth is the number of columns the row labels take.
	LabelWidth = len(bytesLabel)
)

// Columns returns the byte/glyph budget left on a terminal of the given
// width once the row labels are drawn. It is never below one column.
func Columns(terminalWidth int) int {
	if c := terminalWidth - LabelWidth; c > 0 {
		return c
	}
	return 1
}

// Block renders one decoded sequence: its encoding header, the wrapped
// byte and glyph rows and finally the whole decoded text.
func Block(seq decoding.Sequence, columns int, p Palette) string {
	var b strings.Builder
	b.WriteString(p.Header(seq.Encoding))
	b.WriteByte('\n')

	index := 0
	for i, line := range Wrap(seq, columns) {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(bytesLabel)
		for j, u := range line {
			b.WriteString(p.Alternate(index+j, u.FormatBytes()))
		}
		b.WriteByte('\n')

		b.WriteString(charsLabel)
		for j, u := range line {
			b.WriteString(p.Alternate(index+j, u.FormatGlyph()))
		}
		b.WriteByte('\n')
		index += len(line)
	}

	b.WriteByte('\n')
	b.WriteString(p.Highlight(seq.String()))
	b.WriteByte('\n')
	return b.String()
}

// Document renders every sequence as a block, separated by blank lines,
// for a terminal terminalWidth columns wide.
func Document(seqs []decoding.Sequence, terminalWidth int, p Palette) string {
	columns := Columns(terminalWidth)
	blocks := make([]string, 0, len(seqs))
	for _, seq := range seqs {
		blocks = append(blocks, Block(seq, columns, p))
	}
	return strings.Join(blocks, "\n")
}
