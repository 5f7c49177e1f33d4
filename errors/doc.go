// Package errors provides the typed error codes and per-instance error
// channel of the game plugin bridge.
//
// Errors carry a Code matching the host contract one-to-one plus an optional
// message. Use Static for fixed literals and Dynamic for messages built from
// caller-controlled data; Dynamic strips embedded terminator bytes so
// malformed input can never corrupt the text boundary:
//
//	err := errors.Static(errors.InvalidInput, "missing counter value")
//	err := errors.Dynamic(errors.InvalidInput, "counter parsing error: %v", cause)
//
// Each live instance owns a Channel holding the message of its last failing
// operation. A successful operation never touches the channel; only the next
// failure overwrites it.
//
// All errors implement the standard error interface and support errors.Is
// and errors.As from the standard library.
package errors
