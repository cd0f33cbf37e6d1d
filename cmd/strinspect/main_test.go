package main

import (
	"bytes"
	"errors"
	"log"
	"os"
	"strings"
	"testing"

	"github.com/stlalpha/strinspect/internal/charset"
	"github.com/stlalpha/strinspect/internal/logging"
)

func noEnv(string) string { return "" }

func runCommand(t *testing.T, args []string, stdin string) (string, string, error) {
	t.Helper()
	t.Cleanup(func() {
		logging.DebugEnabled = false
		log.SetOutput(os.Stderr)
	})
	var stdout, stderr bytes.Buffer
	err := run(args, strings.NewReader(stdin), &stdout, &stderr, noEnv)
	return stdout.String(), stderr.String(), err
}

func TestRunArguments(t *testing.T) {
	stdout, stderr, err := runCommand(t, []string{"a", "é"}, "")
	if err != nil {
		t.Fatalf("run returned error: %v", err)
	}
	want := "[utf-8]\n" +
		"bytes: 61 20 c3 a9 \n" +
		"chars: a     e9    \n" +
		"\n" +
		"a é\n"
	if stdout != want {
		t.Errorf("stdout =\n%q\nwant\n%q", stdout, want)
	}
	if stderr != "" {
		t.Errorf("unexpected stderr: %q", stderr)
	}
}

func TestRunStdin(t *testing.T) {
	stdout, stderr, err := runCommand(t, []string{"-e", "utf8", "-e", "latin1"}, "\xc0\x80")
	if err != nil {
		t.Fatalf("run returned error: %v", err)
	}
	if !strings.Contains(stderr, "reading text from standard input") {
		t.Errorf("missing stdin notice: %q", stderr)
	}
	want := "[utf-8]\n" +
		"bytes: c0 80 \n" +
		"chars: � � \n" +
		"\n" +
		"��\n" +
		"\n" +
		"[windows-1252]\n" +
		"bytes: c0 80 \n" +
		"chars: c0 20ac \n" +
		"\n" +
		"À€\n"
	if stdout != want {
		t.Errorf("stdout =\n%q\nwant\n%q", stdout, want)
	}
}

func TestRunWidthWraps(t *testing.T) {
	stdout, _, err := runCommand(t, []string{"--width", "22", "aaaaabbbbbcc"}, "")
	if err != nil {
		t.Fatalf("run returned error: %v", err)
	}
	if got := strings.Count(stdout, "bytes: "); got != 3 {
		t.Errorf("expected 3 chunks, got %d:\n%s", got, stdout)
	}
}

func TestRunForcedColor(t *testing.T) {
	stdout, _, err := runCommand(t, []string{"--color", "always", "ab"}, "")
	if err != nil {
		t.Fatalf("run returned error: %v", err)
	}
	if !strings.Contains(stdout, "\x1b[32m61 \x1b[0m\x1b[34m62 \x1b[0m") {
		t.Errorf("expected alternating colours:\n%q", stdout)
	}
}

func TestRunDebugLogsToStderr(t *testing.T) {
	_, stderr, err := runCommand(t, []string{"--debug", "x"}, "")
	if err != nil {
		t.Fatalf("run returned error: %v", err)
	}
	if !strings.Contains(stderr, "DEBUG: input: 1 bytes") {
		t.Errorf("missing debug output: %q", stderr)
	}
}

func TestRunHelpAndVersion(t *testing.T) {
	stdout, _, err := runCommand(t, []string{"--help"}, "")
	if err != nil || !strings.Contains(stdout, "--encoding") {
		t.Errorf("help: err=%v stdout=%q", err, stdout)
	}
	stdout, _, err = runCommand(t, []string{"--version"}, "")
	if err != nil || stdout != "strinspect "+version+"\n" {
		t.Errorf("version: err=%v stdout=%q", err, stdout)
	}
}

func TestRunUnknownEncoding(t *testing.T) {
	_, _, err := runCommand(t, []string{"-e", "klingon-8", "x"}, "")
	if !errors.Is(err, charset.ErrUnknownLabel) {
		t.Errorf("error = %v, want ErrUnknownLabel", err)
	}
}
