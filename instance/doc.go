// Package instance manages the per-instance state of game plugins.
//
// The host addresses instances through opaque handles. Behind each handle
// lives an Envelope owning the user-defined game state, the instance's error
// channel and its resolved capacity contract; a Registry maps handles to
// envelopes and enforces the lifecycle.
//
// # Handle Table
//
// The Registry stores envelopes in an arena with a free list:
//
//	reg := instance.NewRegistry[*MyGame](caps)
//
//	h, err := reg.Create(func() (*MyGame, gamebridge.CapacityContract, error) {
//	    return newMyGame()
//	})
//	env := reg.Get(h)
//	reg.Destroy(h)
//
// Handle 0 is reserved and always invalid.
//
// # Lifecycle
//
// Envelopes are created by Create or Clone and destroyed exactly once by
// Destroy. The error channel is allocated before the user factory runs, so
// even a failing creation leaves error retrieval well-defined; the handle of
// a failed creation stays live until destroyed, with the state left at the
// empty sentinel.
//
// Destroying resets the state to the sentinel before releasing the slot, so
// accidental reuse of a stale handle is observably wrong: Get and the other
// operations panic on destroyed or unknown handles instead of silently
// touching reclaimed memory.
//
// # Concurrency
//
// The registry itself is safe for concurrent use, so distinct instances may
// be driven from different goroutines. A single envelope must only be
// accessed by one caller at a time; the host calling convention already
// serializes per-instance access.
package instance
