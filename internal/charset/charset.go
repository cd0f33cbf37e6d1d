// Package charset resolves encoding labels to golang.org/x/text encodings
// and adapts them to the decoding.Encoding capability.
//
// Labels are looked up as WHATWG labels first ("utf8", "latin1", "sjis"),
// then as IANA names ("IBM437", "ISO-8859-1"). As in browsers, "latin1"
// therefore means windows-1252.
package charset

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/ianaindex"

	"github.com/stlalpha/strinspect/internal/decoding"
)

// Charset is a named x/text encoding usable by decoding.Decode. It holds no
// mutable state; every stepper and encoder is created on demand, so one
// Charset may be shared by concurrent decodes.
type Charset struct {
	name string
	enc  encoding.Encoding
}

var _ decoding.Encoding = (*Charset)(nil)

// New wraps an x/text encoding under the given display name.
func New(name string, enc encoding.Encoding) *Charset {
	return &Charset{name: name, enc: enc}
}

// Lookup resolves a user supplied label.
func Lookup(label string) (*Charset, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		return nil, fmt.Errorf("%w: empty label", ErrUnknownLabel)
	}

	if enc, err := htmlindex.Get(label); err == nil {
		name, err := htmlindex.Name(enc)
		if err != nil {
			name = strings.ToLower(label)
		}
		return New(name, enc), nil
	}

	enc, err := ianaindex.IANA.Encoding(label)
	if err != nil || enc == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownLabel, label)
	}
	name, err := ianaindex.IANA.Name(enc)
	if err != nil {
		name = label
	}
	return New(name, enc), nil
}

// MustLookup is like Lookup but panics on an unknown label. For built-in
// labels only.
func MustLookup(label string) *Charset {
	cs, err := Lookup(label)
	if err != nil {
		panic(err)
	}
	return cs
}

// Name returns the canonical name of the encoding.
func (c *Charset) Name() string { return c.name }

// Encoding returns the underlying x/text encoding.
func (c *Charset) Encoding() encoding.Encoding { return c.enc }

// EncodeRune encodes one character. Characters outside the encoding's
// repertoire are an error rather than a substitute byte.
func (c *Charset) EncodeRune(r rune) ([]byte, error) {
	var buf [utf8.UTFMax]byte
	n := utf8.EncodeRune(buf[:], r)
	out, err := c.enc.NewEncoder().Bytes(buf[:n])
	if err != nil {
		return nil, fmt.Errorf("charset %s: encode U+%04X: %w", c.name, r, err)
	}
	return out, nil
}

// NewStepper returns an incremental decoder positioned at the start of a
// stream.
func (c *Charset) NewStepper() decoding.Stepper {
	return newStepper(c)
}
