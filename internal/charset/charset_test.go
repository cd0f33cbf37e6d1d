package charset

import (
	"bytes"
	"errors"
	"testing"

	"golang.org/x/text/encoding/charmap"

	"github.com/stlalpha/strinspect/internal/decoding"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		label string
		name  string
	}{
		{"utf8", "utf-8"},
		{"UTF-8", "utf-8"},
		{" utf8 ", "utf-8"},
		{"latin1", "windows-1252"},
		{"sjis", "shift_jis"},
		{"IBM437", "IBM437"},
		{"cp437", "IBM437"},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			cs, err := Lookup(tt.label)
			if err != nil {
				t.Fatalf("Lookup(%q) returned error: %v", tt.label, err)
			}
			if cs.Name() != tt.name {
				t.Errorf("Lookup(%q).Name() = %q, want %q", tt.label, cs.Name(), tt.name)
			}
		})
	}
}

func TestLookupUnknown(t *testing.T) {
	for _, label := range []string{"", "   ", "klingon-8"} {
		if _, err := Lookup(label); !errors.Is(err, ErrUnknownLabel) {
			t.Errorf("Lookup(%q) error = %v, want ErrUnknownLabel", label, err)
		}
	}
}

func TestMustLookupPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustLookup did not panic on unknown label")
		}
	}()
	MustLookup("not-an-encoding")
}

func TestEncodeRune(t *testing.T) {
	utf8 := MustLookup("utf8")
	got, err := utf8.EncodeRune('ß')
	if err != nil || !bytes.Equal(got, []byte{0xc3, 0x9f}) {
		t.Errorf("utf-8 EncodeRune('ß') = %x, %v", got, err)
	}

	latin1 := MustLookup("latin1")
	got, err = latin1.EncodeRune('€')
	if err != nil || !bytes.Equal(got, []byte{0x80}) {
		t.Errorf("windows-1252 EncodeRune('€') = %x, %v", got, err)
	}

	if _, err := latin1.EncodeRune('π'); err == nil {
		t.Error("windows-1252 EncodeRune('π') should fail")
	}
}

func feedAll(t *testing.T, cs *Charset, src []byte) ([]rune, int, error) {
	t.Helper()
	return cs.NewStepper().Feed(src, nil)
}

func TestFeedStopsAtFirstInvalidByte(t *testing.T) {
	runes, n, err := feedAll(t, MustLookup("utf8"), []byte{0x61, 0xc2, 0xa3, 0xa3, 0x62})
	if string(runes) != "a£" {
		t.Errorf("runes = %q, want %q", string(runes), "a£")
	}
	if n != 3 {
		t.Errorf("consumed = %d, want 3", n)
	}
	var invalid *decoding.InvalidInputError
	if !errors.As(err, &invalid) || invalid.Offset != 3 {
		t.Fatalf("err = %v, want InvalidInputError at 3", err)
	}
}

func TestFeedWholeInput(t *testing.T) {
	src := []byte("héllo 😀")
	runes, n, err := feedAll(t, MustLookup("utf8"), src)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != len(src) || string(runes) != string(src) {
		t.Errorf("Feed = %q, %d", string(runes), n)
	}
}

func TestFeedAcceptsLiteralReplacementCharacter(t *testing.T) {
	runes, n, err := feedAll(t, MustLookup("utf8"), []byte{0xef, 0xbf, 0xbd})
	if err != nil || n != 3 || len(runes) != 1 || runes[0] != '�' {
		t.Errorf("Feed = %q, %d, %v", string(runes), n, err)
	}
}

func TestFeedUndefinedSingleByte(t *testing.T) {
	// 0xAE has no assignment in ISO-8859-7.
	cs := New("iso-8859-7", charmap.ISO8859_7)
	runes, n, err := feedAll(t, cs, []byte{0x41, 0xae, 0x42})
	if string(runes) != "A" || n != 1 {
		t.Errorf("Feed = %q, %d", string(runes), n)
	}
	var invalid *decoding.InvalidInputError
	if !errors.As(err, &invalid) || invalid.Offset != 1 {
		t.Errorf("err = %v, want InvalidInputError at 1", err)
	}
}

func TestFeedMultiByteUTF16(t *testing.T) {
	cs := MustLookup("utf-16le")
	// "A", then U+1F600 as a surrogate pair.
	src := []byte{0x41, 0x00, 0x3d, 0xd8, 0x00, 0xde}
	runes, n, err := feedAll(t, cs, src)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(runes) != "A😀" || n != len(src) {
		t.Errorf("Feed = %q, %d", string(runes), n)
	}
}

func TestStepperKeepsStateAcrossFeeds(t *testing.T) {
	s := MustLookup("utf8").NewStepper()
	first, n, err := s.Feed([]byte{0x41, 0xff}, nil)
	if err == nil || n != 1 || string(first) != "A" {
		t.Fatalf("first Feed = %q, %d, %v", string(first), n, err)
	}
	second, n, err := s.Feed([]byte{0xc3, 0xa9}, nil)
	if err != nil || n != 2 || string(second) != "é" {
		t.Fatalf("second Feed = %q, %d, %v", string(second), n, err)
	}
}

func TestDecodeCodePage437(t *testing.T) {
	seq, err := decoding.Decode([]byte{0xb3, 0x20, 0xba}, MustLookup("IBM437"))
	if err != nil {
		t.Fatal(err)
	}
	if seq.String() != "│ ║" {
		t.Errorf("String = %q, want %q", seq.String(), "│ ║")
	}
	if seq.FormatGlyphs() != "2502    2551 " {
		t.Errorf("FormatGlyphs = %q", seq.FormatGlyphs())
	}
}
