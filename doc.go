// Package gamebridge provides a safety layer between a host engine's
// dispatch-table plugin contract for turn-based abstract games and an
// implementer's game logic.
//
// A host engine drives game plugins through a fixed table of entry points:
// create an instance, import and export state as text, enumerate the players
// to move, enumerate and apply moves, and report results. The bridge lets an
// author implement these as a small set of high-level operations on an
// ordinary Go value while it mechanically handles everything unsafe about the
// boundary: opaque per-instance lifecycle, writing variable-length results
// directly into caller-owned fixed-capacity buffers, propagating typed errors
// with optional messages, and validating declared buffer capacities before a
// table is exposed to the host.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct
// responsibilities:
//
//	gamebridge/          Root package with the core value types of the
//	                     host contract (players, moves, capacities)
//	├── dispatch/        Table construction and the per-call shims
//	├── instance/        Handle registry and per-instance state envelopes
//	├── buffer/          Bounded output buffers over caller-owned memory
//	├── errors/          Typed error codes and the last-error channel
//	├── examples/nim/    Reference subtraction game exercising the bridge
//	└── cmd/play/        Interactive front end for any built table
//
// # Quick Start
//
// Implement dispatch.Game on your game type, provide a factory, and build a
// table:
//
//	table, err := dispatch.New[*MyGame](meta, newMyGame)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer table.Close()
//
//	h, code := table.Create(gamebridge.GameInit{})
//	if code != errors.Ok {
//	    log.Fatal(table.GetLastError(h))
//	}
//	defer table.Destroy(h)
//
// # Thread Safety
//
// Tables and their registries are safe for concurrent use across distinct
// instances. A single instance must only be driven by one caller at a time;
// the host calling convention already serializes access per instance.
//
// # Error Model
//
// Operations report two disjoint failure classes. Logic errors (malformed
// input, illegal moves) come back as an errors.Code with an optional message
// retrievable through GetLastError, and never modify instance state.
// Contract violations (writing past a declared capacity, using a destroyed
// handle, a zero capacity for an enabled capability) are defects in the logic
// implementation or build configuration and panic immediately rather than
// risk corrupting host-visible memory.
package gamebridge
