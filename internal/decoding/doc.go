// Package decoding turns raw bytes into a sequence of Units under an
// arbitrary, possibly stateful, character encoding.
//
// Every input byte ends up in exactly one unit. Bytes the encoding rejects
// are kept one at a time as Invalid units and decoding resumes at the next
// byte, so Sequence.Bytes reproduces the input even for garbage.
//
//	seq, err := decoding.Decode([]byte{0x41, 0xc0}, enc)
//	// seq.Units[0]: 'A' from 41
//	// seq.Units[1]: invalid c0, rendered as U+FFFD
package decoding
