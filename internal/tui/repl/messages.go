// ============================================================================
// numerical - Numerische Größen und Operator-Protokolle
// ============================================================================
//
// Package:     repl
// Description: Message types for the REPL model
// Author:      Mike Stoffels
// Created:     2026-10-16
// License:     MIT
// ============================================================================

package repl

import (
	"time"
)

// Entry is one evaluated line in the transcript
type Entry struct {
	Input     string        // expression as typed
	Output    string        // formatted result, empty on error
	Type      string        // wrapper or Go type of the result
	Err       error         // evaluation error
	Timestamp time.Time     // when the line was submitted
	Duration  time.Duration // evaluation time
}

// evalResultMsg carries the result of an asynchronous evaluation
type evalResultMsg struct {
	entry Entry
}

// historySavedMsg reports the outcome of persisting the input history
type historySavedMsg struct {
	err error
}
