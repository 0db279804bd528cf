package edgefile

import (
	"errors"
	"fmt"
)

// NotApplicable is the cost marker meaning "no edge in this direction".
const NotApplicable = "N/A"

// FieldCount is the exact number of ';'-separated fields in a record.
const FieldCount = 4

// Sentinel errors for edge-file parsing.
var (
	// ErrMalformedRecord indicates a line that does not split into exactly FieldCount fields.
	ErrMalformedRecord = errors.New("edgefile: malformed record")

	// ErrUnreadable indicates the input could not be opened or read.
	ErrUnreadable = errors.New("edgefile: input unreadable")
)

// Record is one parsed line: a vertex pair and the two directed costs.
// Forward is the cost From→To, Backward the cost To→From; either may be NotApplicable.
type Record struct {
	From     string
	To       string
	Forward  string
	Backward string
}

// HasForward reports whether the record declares an edge From→To.
func (r Record) HasForward() bool { return r.Forward != NotApplicable }

// HasBackward reports whether the record declares an edge To→From.
func (r Record) HasBackward() bool { return r.Backward != NotApplicable }

// FieldProblem classifies a wrong field count.
type FieldProblem int

const (
	// TooFew means the line has fewer than FieldCount fields.
	TooFew FieldProblem = iota
	// TooMany means the line has more than FieldCount fields.
	TooMany
)

// String returns "too few" or "too many".
func (p FieldProblem) String() string {
	if p == TooMany {
		return "too many"
	}
	return "too few"
}

// LineError describes a malformed line. It unwraps to ErrMalformedRecord.
type LineError struct {
	Line    int          // 1-based line number
	Fields  int          // number of fields found
	Problem FieldProblem // TooFew or TooMany
}

// Error implements the error interface.
func (e *LineError) Error() string {
	return fmt.Sprintf("edgefile: line %d: %s fields (got %d, want %d)",
		e.Line, e.Problem, e.Fields, FieldCount)
}

// Unwrap exposes ErrMalformedRecord to errors.Is.
func (e *LineError) Unwrap() error { return ErrMalformedRecord }
