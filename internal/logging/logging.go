// Package logging provides debug logging for strinspect.
package logging

import (
	"io"
	"log"
)

// DebugEnabled controls whether Debug() produces output.
// Set via --debug flag or DEBUG=1 environment variable.
var DebugEnabled bool

// Configure routes log output to w and switches debug output on or off.
// Log lines carry no timestamp; they share stderr with the user-facing
// notices of a short-lived command.
func Configure(w io.Writer, debug bool) {
	log.SetOutput(w)
	log.SetFlags(0)
	log.SetPrefix("strinspect: ")
	DebugEnabled = debug
}

// Debug logs a message only when DebugEnabled is true.
func Debug(format string, args ...any) {
	if DebugEnabled {
		log.Printf("DEBUG: "+format, args...)
	}
}
