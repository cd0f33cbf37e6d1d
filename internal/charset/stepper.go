package charset

import (
	"bytes"
	"unicode/utf8"

	"golang.org/x/text/transform"

	"github.com/stlalpha/strinspect/internal/decoding"
)

// stepper drives an x/text decoding transformer one character at a time.
//
// x/text decoders never fail: they write U+FFFD for input they reject and
// carry on. To find the offending byte, the stepper feeds the transformer
// the shortest prefix that yields output and treats a U+FFFD as an error
// unless the consumed bytes are the encoding's own form of U+FFFD.
type stepper struct {
	t transform.Transformer
	// replacement is the encoded form of U+FFFD, nil when the encoding
	// cannot represent it.
	replacement []byte
	buf         [64]byte
}

func newStepper(c *Charset) *stepper {
	dec := c.enc.NewDecoder()
	dec.Reset()
	s := &stepper{t: dec}
	if rep, err := c.EncodeRune(utf8.RuneError); err == nil {
		s.replacement = rep
	}
	return s
}

// Feed implements decoding.Stepper.
func (s *stepper) Feed(src []byte, dst []rune) ([]rune, int, error) {
	n := 0
	for n < len(src) {
		runes, size, ok := s.next(src[n:])
		if !ok {
			return dst, n, &decoding.InvalidInputError{Offset: n}
		}
		dst = append(dst, runes...)
		n += size
	}
	return dst, n, nil
}

// next decodes the first character of src. It reports ok=false when the
// leading byte cannot be interpreted.
func (s *stepper) next(src []byte) ([]rune, int, bool) {
	for k := 1; k <= len(src); k++ {
		atEOF := k == len(src)
		nDst, nSrc, err := s.t.Transform(s.buf[:], src[:k], atEOF)
		if nSrc == 0 {
			if err == transform.ErrShortSrc && !atEOF {
				continue
			}
			return nil, 0, false
		}

		out := s.buf[:nDst]
		runes := make([]rune, 0, utf8.RuneCount(out))
		for len(out) > 0 {
			r, size := utf8.DecodeRune(out)
			if r == utf8.RuneError && !bytes.Equal(src[:nSrc], s.replacement) {
				return nil, 0, false
			}
			runes = append(runes, r)
			out = out[size:]
		}
		return runes, nSrc, true
	}
	return nil, 0, false
}
