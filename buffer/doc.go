// Package buffer provides bounded output buffers over caller-owned memory.
//
// Every variable-length result crossing the bridge is written through a
// Buffer: a fixed-capacity vector view over memory the caller allocated and
// sized from the instance's capacity contract. Results land directly in the
// caller's region with no intermediate copy or allocation.
//
// # Construction
//
// New is the single validated construction site. The caller guarantees the
// region is valid and exclusively accessible for the buffer's lifetime; New
// checks the region actually covers the requested capacity and nothing
// downstream re-checks it:
//
//	mem := make([]gamebridge.MoveCode, contract.MaxMoves)
//	buf := buffer.New(mem, int(contract.MaxMoves))
//	buf.Push(3)
//
// # Overflow Is a Defect
//
// Exceeding a declared capacity is a programming error in the logic layer,
// not a runtime condition, so Push, Resize, Extend and indexed access panic
// on violation instead of returning an error. The one exception is
// Text.WriteString: text is often built from caller-controlled data, so it
// fails locally (and without partial writes) on embedded terminator bytes or
// insufficient space, letting the bridge turn that into a descriptive typed
// error.
//
// # Text Buffers
//
// Text specializes byte buffers for NUL-terminated text. The size passed to
// NewText includes the terminator slot; the terminator itself is written by
// Terminate one past the current length and is never counted in Len.
//
// # Storage
//
// Storage allocates backing memory for a Buffer and exposes the written
// prefix afterwards. It exists mainly for tests of game logic that want to
// call operations without a host-provided region.
package buffer
