package config

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/pflag"
)

// ErrHelp is returned by Parse when -h or --help was given.
var ErrHelp = pflag.ErrHelp

type flagValues struct {
	encodings  []string
	color      string
	width      int
	pager      bool
	debug      bool
	configPath string
	version    bool
}

func newFlagSet(v *flagValues) *pflag.FlagSet {
	flagSet := pflag.NewFlagSet("strinspect", pflag.ContinueOnError)
	flagSet.SetOutput(io.Discard)
	flagSet.Usage = func() {}

	flagSet.StringArrayVarP(&v.encodings, "encoding", "e", nil, "encoding to include in the output (repeatable; default utf8)")
	flagSet.StringVar(&v.color, "color", "auto", "colorize output: auto, always or never")
	flagSet.IntVarP(&v.width, "width", "w", 0, "terminal width to wrap at (default: detect, 80 if unknown)")
	flagSet.BoolVar(&v.pager, "pager", false, "show the output in a scrollable pager")
	flagSet.BoolVar(&v.debug, "debug", false, "log debug information to stderr")
	flagSet.StringVar(&v.configPath, "config", "", "path to a JSONC config file (default: $"+EnvConfigPath+")")
	flagSet.BoolVar(&v.version, "version", false, "print version and exit")
	return flagSet
}

// Parse builds Options from args (without the program name). It returns
// the remaining positional arguments, which form the text to inspect.
func Parse(args []string, getenv func(string) string) (Options, []string, error) {
	var v flagValues
	flagSet := newFlagSet(&v)
	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return Options{}, nil, ErrHelp
		}
		return Options{}, nil, fmt.Errorf("%w: %v", ErrInvalidOption, err)
	}

	opts := Default()
	opts.ShowVersion = v.version
	if opts.ShowVersion {
		return opts, flagSet.Args(), nil
	}

	path := v.configPath
	if path == "" {
		path = getenv(EnvConfigPath)
	}
	if path != "" {
		if err := LoadFile(path, &opts); err != nil {
			return Options{}, nil, err
		}
	}

	opts.ApplyEnv(getenv)

	if flagSet.Changed("encoding") {
		opts.Encodings = v.encodings
	}
	if flagSet.Changed("color") {
		opts.Color = v.color
	}
	if flagSet.Changed("width") {
		opts.Width = v.width
	}
	if flagSet.Changed("pager") {
		opts.Pager = v.pager
	}
	if flagSet.Changed("debug") {
		opts.Debug = v.debug
	}

	if err := opts.Validate(); err != nil {
		return Options{}, nil, err
	}
	return opts, flagSet.Args(), nil
}

// PrintUsage writes the command's help text to w.
func PrintUsage(w io.Writer) {
	fmt.Fprint(w, `strinspect shows how bytes decode under one or more character encodings.
Each character's bytes are printed in hex directly above it; bytes that do
not decode are shown as U+FFFD with their value kept in the byte row.

Usage:
  strinspect [flags] [text ...]

With no text arguments, input is read from standard input. Arguments are
joined with single spaces.

Examples:
  strinspect 'naïve café'
  strinspect -e utf8 -e latin1 'Â£1'
  printf '\xc0\x80' | strinspect
  strinspect -e IBM437 --pager < art.ans

Flags:
`)
	var v flagValues
	flagSet := newFlagSet(&v)
	flagSet.SetOutput(w)
	flagSet.PrintDefaults()
}
