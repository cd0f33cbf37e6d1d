// Command strinspect prints the bytes of a string next to the characters
// they decode to, under one or more character encodings.
//
// Usage:
//
//	strinspect [-e ENCODING]... [text ...]
//
// Text arguments are joined with single spaces; with none, standard input
// is read. See --help for all flags.
package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/stlalpha/strinspect/internal/config"
	"github.com/stlalpha/strinspect/internal/decoding"
	"github.com/stlalpha/strinspect/internal/logging"
	"github.com/stlalpha/strinspect/internal/render"
	"github.com/stlalpha/strinspect/internal/terminalio"
	"github.com/stlalpha/strinspect/internal/viewer"
)

var version = "0.1.0"

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr, os.Getenv); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer, getenv func(string) string) error {
	opts, text, err := config.Parse(args, getenv)
	if errors.Is(err, config.ErrHelp) {
		config.PrintUsage(stdout)
		return nil
	}
	if err != nil {
		return err
	}
	if opts.ShowVersion {
		fmt.Fprintf(stdout, "strinspect %s\n", version)
		return nil
	}

	logging.Configure(stderr, opts.Debug)
	logging.Debug("options: encodings=%q color=%s width=%d pager=%t",
		opts.Encodings, opts.ColorMode(), opts.Width, opts.Pager)

	charsets, err := opts.Charsets()
	if err != nil {
		return err
	}

	input, fromStdin, err := readInput(text, stdin, stderr)
	if err != nil {
		return err
	}
	logging.Debug("input: %d bytes (stdin=%t)", len(input), fromStdin)

	seqs := make([]decoding.Sequence, 0, len(charsets))
	for _, cs := range charsets {
		seq, err := decoding.Decode(input, cs)
		if err != nil {
			return err
		}
		logging.Debug("decoded %d units as %s", len(seq.Units), seq.Encoding)
		seqs = append(seqs, seq)
	}

	tty := terminalio.Detect(stdout, opts.ColorMode())
	width := tty.Width
	if opts.Width > 0 {
		width = opts.Width
	}
	logging.Debug("terminal: width=%d tty=%t profile=%v", width, tty.IsTerminal, tty.Profile)
	palette := render.NewPalette(tty.Profile)

	if opts.Pager {
		return viewer.Run(seqs, palette, stdout, fromStdin)
	}

	_, err = io.WriteString(stdout, render.Document(seqs, width, palette))
	return err
}

// readInput joins the text arguments with single spaces, or reads all of
// stdin when there are none. Arguments are used byte for byte, so invalid
// sequences passed on the command line reach the decoder untouched.
func readInput(text []string, stdin io.Reader, stderr io.Writer) ([]byte, bool, error) {
	if len(text) > 0 {
		parts := make([][]byte, len(text))
		for i, arg := range text {
			parts[i] = []byte(arg)
		}
		return bytes.Join(parts, []byte{' '}), false, nil
	}

	fmt.Fprintln(stderr, "No arguments passed to program: reading text from standard input...")
	data, err := io.ReadAll(stdin)
	if err != nil {
		return nil, true, fmt.Errorf("reading standard input: %w", err)
	}
	return data, true, nil
}
