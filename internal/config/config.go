// Package config assembles strinspect's options from built-in defaults, an
// optional JSONC config file, the environment and command-line flags, in
// increasing order of precedence.
package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/tidwall/jsonc"

	"github.com/stlalpha/strinspect/internal/charset"
	"github.com/stlalpha/strinspect/internal/terminalio"
)

// EnvConfigPath names the config file when --config is not given.
const EnvConfigPath = "STRINSPECT_CONFIG"

// ErrInvalidOption marks an option value that failed validation.
var ErrInvalidOption = errors.New("invalid option")

// Options controls one run of the command.
type Options struct {
	// Encodings are the labels to decode the input with, in output order.
	Encodings []string `json:"encodings"`
	// Color is auto, always or never.
	Color string `json:"color"`
	// Width overrides the detected terminal width when positive.
	Width int  `json:"width"`
	Pager bool `json:"pager"`
	Debug bool `json:"debug"`

	// ShowVersion is only settable from the command line.
	ShowVersion bool `json:"-"`
}

// Default returns the built-in options: UTF-8 only, automatic colour.
func Default() Options {
	return Options{
		Encodings: []string{"utf8"},
		Color:     "auto",
	}
}

// LoadFile overlays the fields present in a JSONC file onto opts. Comments
// and trailing commas are allowed; unknown fields are an error.
func LoadFile(path string, opts *Options) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config %s: %w", path, err)
	}

	dec := json.NewDecoder(bytes.NewReader(jsonc.ToJSON(data)))
	dec.DisallowUnknownFields()
	if err := dec.Decode(opts); err != nil {
		return fmt.Errorf("parsing config %s: %w", path, err)
	}
	return nil
}

// ApplyEnv applies NO_COLOR and DEBUG.
func (o *Options) ApplyEnv(getenv func(string) string) {
	if getenv("NO_COLOR") != "" {
		o.Color = "never"
	}
	if getenv("DEBUG") == "1" {
		o.Debug = true
	}
}

// ColorMode returns the parsed colour mode. Call Validate first.
func (o Options) ColorMode() terminalio.ColorMode {
	mode, _ := terminalio.ParseColorMode(o.Color)
	return mode
}

// Validate checks every option and that each encoding label resolves.
func (o Options) Validate() error {
	if _, err := terminalio.ParseColorMode(o.Color); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidOption, err)
	}
	if o.Width < 0 {
		return fmt.Errorf("%w: width %d is negative", ErrInvalidOption, o.Width)
	}
	if len(o.Encodings) == 0 {
		return fmt.Errorf("%w: no encodings selected", ErrInvalidOption)
	}
	for _, label := range o.Encodings {
		if _, err := charset.Lookup(label); err != nil {
			return err
		}
	}
	return nil
}

// Charsets resolves the configured encodings in order.
func (o Options) Charsets() ([]*charset.Charset, error) {
	out := make([]*charset.Charset, 0, len(o.Encodings))
	for _, label := range o.Encodings {
		cs, err := charset.Lookup(label)
		if err != nil {
			return nil, err
		}
		out = append(out, cs)
	}
	return out, nil
}
