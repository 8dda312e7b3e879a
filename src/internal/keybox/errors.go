// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package keybox

import "fmt"

// InputFormatError indicates the raw input could not be parsed into a
// document tree at all. It is fatal: no report is produced and the
// underlying parser's message is surfaced verbatim to the caller.
type InputFormatError struct {
	Err error
}

func (e *InputFormatError) Error() string {
	return fmt.Sprintf("keybox: input is not well-formed XML: %v", e.Err)
}

// Unwrap exposes the parser error.
func (e *InputFormatError) Unwrap() error { return e.Err }

// StructuralError indicates a required container is absent from an otherwise
// well-formed document. The categorical strategy treats it as fatal for
// report validity; the score strategy treats it as a heavy penalty.
type StructuralError struct {
	Missing string // e.g. "root", "keybox"
}

func (e *StructuralError) Error() string {
	return "keybox: missing " + e.Missing
}
