package decoding

import (
	"errors"
	"fmt"
)

// Encoding is the capability Decode drives. Implementations live outside
// this package; internal/charset adapts golang.org/x/text encodings.
type Encoding interface {
	// Name identifies the encoding in rendered output.
	Name() string

	// NewStepper returns a fresh incremental decoder. Steppers carry the
	// encoding's decode state for the duration of one Decode call.
	NewStepper() Stepper

	// EncodeRune encodes a single character.
	EncodeRune(r rune) ([]byte, error)
}

// Stepper is an incremental decoder.
type Stepper interface {
	// Feed decodes src from the start, appending characters to dst. It
	// stops at the end of src or at the first byte it cannot interpret,
	// returning the number of bytes consumed. In the latter case err is an
	// *InvalidInputError whose Offset equals the consumed count.
	Feed(src []byte, dst []rune) (out []rune, consumed int, err error)
}

// Decode decodes input with enc. Bytes the encoding rejects become Invalid
// units and decoding resumes at the following byte, so the returned
// sequence always accounts for every input byte. An error is returned only
// when the encoding itself misbehaves.
func Decode(input []byte, enc Encoding) (Sequence, error) {
	units := make([]Unit, 0, len(input))
	stepper := enc.NewStepper()
	remaining := input
	var chars []rune

	for {
		var consumed int
		var err error
		chars, consumed, err = stepper.Feed(remaining, chars[:0])

		for _, r := range chars {
			source, encErr := recoverSourceBytes(r, enc)
			if encErr != nil {
				return Sequence{}, encErr
			}
			units = append(units, Valid(r, source))
		}

		if err == nil {
			if consumed != len(remaining) {
				return Sequence{}, fmt.Errorf("%w: %s stopped after %d of %d bytes",
					ErrStalled, enc.Name(), consumed, len(remaining))
			}
			break
		}

		var invalid *InvalidInputError
		if !errors.As(err, &invalid) {
			return Sequence{}, fmt.Errorf("decoding %s: %w", enc.Name(), err)
		}
		if invalid.Offset < 0 || invalid.Offset >= len(remaining) {
			return Sequence{}, fmt.Errorf("%w: %s reported offset %d of %d bytes",
				ErrStalled, enc.Name(), invalid.Offset, len(remaining))
		}

		units = append(units, Invalid(remaining[invalid.Offset]))
		remaining = remaining[invalid.Offset+1:]
	}

	return Sequence{Encoding: enc.Name(), Units: units}, nil
}

// recoverSourceBytes works out which bytes a decoded character came from by
// encoding it again. Steppers do not report per-character spans, so this
// relies on encoding being the left inverse of decoding for valid
// characters. Encodings where a character has several byte forms, or where
// encoding a lone character adds shift sequences, will have their spans
// misattributed.
func recoverSourceBytes(r rune, enc Encoding) ([]byte, error) {
	source, err := enc.EncodeRune(r)
	if err != nil {
		return nil, fmt.Errorf("%w: U+%04X in %s: %v", ErrUnrepresentable, r, enc.Name(), err)
	}
	if len(source) == 0 {
		return nil, fmt.Errorf("%w: U+%04X in %s encodes to nothing", ErrUnrepresentable, r, enc.Name())
	}
	return source, nil
}
