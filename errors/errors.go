package errors

import (
	"fmt"
	"strings"
)

// Code categorizes a failing operation. The numeric values are the wire
// codes of the host contract and must not be reordered.
type Code uint8

const (
	// Ok is the success code. It never appears inside an Error.
	Ok Code = iota
	// StateUnrecoverable marks an instance that cannot be used further.
	StateUnrecoverable
	// StateCorrupted marks an instance whose state failed an internal
	// consistency check.
	StateCorrupted
	// OutOfMemory reports an allocation failure in the logic layer.
	OutOfMemory
	// FeatureUnsupported reports an operation the game does not provide.
	FeatureUnsupported
	// StateUninitialized reports an operation on an instance without an
	// imported state.
	StateUninitialized
	// InvalidInput reports malformed caller input such as unparsable
	// state text or an illegal move.
	InvalidInput
	// InvalidOptions reports unusable creation options.
	InvalidOptions
	// UnstablePosition reports a position that cannot be evaluated until
	// pending randomness resolves.
	UnstablePosition
	// SyncCounterMismatch reports a desynchronized instance pair.
	SyncCounterMismatch
	// Retry asks the host to repeat the call; the bridge never retries
	// internally.
	Retry
)

var codeNames = map[Code]string{
	Ok:                  "ok",
	StateUnrecoverable:  "state_unrecoverable",
	StateCorrupted:      "state_corrupted",
	OutOfMemory:         "out_of_memory",
	FeatureUnsupported:  "feature_unsupported",
	StateUninitialized:  "state_uninitialized",
	InvalidInput:        "invalid_input",
	InvalidOptions:      "invalid_options",
	UnstablePosition:    "unstable_position",
	SyncCounterMismatch: "sync_counter_mismatch",
	Retry:               "retry",
}

func (c Code) String() string {
	if name, ok := codeNames[c]; ok {
		return name
	}
	return fmt.Sprintf("code(%d)", uint8(c))
}

// Error is the typed error reported by game logic through the bridge.
type Error struct {
	// Code is the wire code returned to the host.
	Code Code
	// Detail is the optional message, empty when absent.
	Detail string
	// Cause is the wrapped underlying error, if any.
	Cause error
}

// Static creates an Error carrying a fixed literal message.
func Static(code Code, msg string) *Error {
	return &Error{Code: code, Detail: msg}
}

// Dynamic creates an Error whose message is built from caller-controlled
// data. Embedded terminator bytes are stripped before storage so the text
// can always cross the boundary intact.
func Dynamic(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Detail: stripTerminators(fmt.Sprintf(format, args...))}
}

// Wrap creates an Error around an underlying cause.
func Wrap(code Code, cause error, detail string) *Error {
	return &Error{Code: code, Detail: stripTerminators(detail), Cause: cause}
}

// Error implements the error interface.
func (e *Error) Error() string {
	var b strings.Builder
	b.WriteByte('[')
	b.WriteString(e.Code.String())
	b.WriteByte(']')
	if e.Detail != "" {
		b.WriteByte(' ')
		b.WriteString(e.Detail)
	}
	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}
	return b.String()
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target is an Error with the same code.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Code == t.Code
	}
	return false
}

// CodeOf maps any error to its wire code. A nil error maps to Ok; errors
// without a bridge code map to StateUnrecoverable as the most conservative
// kind.
func CodeOf(err error) Code {
	if err == nil {
		return Ok
	}
	if e, ok := err.(*Error); ok {
		return e.Code
	}
	return StateUnrecoverable
}

func stripTerminators(s string) string {
	return strings.ReplaceAll(s, "\x00", "")
}
