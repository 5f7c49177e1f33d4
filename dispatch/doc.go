// Package dispatch builds the entry-point tables a host engine consumes.
//
// A Table composes a capability set and a user game implementation into the
// fixed slot layout of the host contract: static metadata plus one function
// slot per operation, where a nil optional slot signals "unsupported". The
// shims behind the slots handle every boundary crossing mechanically: they
// resolve the opaque handle to its state envelope, hand the user operation
// bounded output buffers sized from the instance's capacity contract, write
// lengths back and terminate text on success, and store typed errors in the
// instance's error channel on failure.
//
// # Implementing a Game
//
// Game logic implements the Game interface on a pointer type:
//
//	type MyGame struct{ ... }
//
//	func (g *MyGame) MakeMove(p gamebridge.PlayerID, m gamebridge.MoveCode) error { ... }
//	// ... remaining Game methods
//
// Optional operations live on separate interfaces (OptionsExporter,
// Printer). The builder only wires an optional slot when the matching
// capability flag is set, and refuses at build time to set a flag the game
// type does not implement, so an absent operation is a checked absence
// rather than a runtime panic on call.
//
// # Building and Exposing Tables
//
//	table, err := dispatch.New[*MyGame](dispatch.Metadata{
//	    GameName:    "MyGame",
//	    VariantName: "Standard",
//	    ImplName:    "mygame_go",
//	    Version:     gamebridge.Semver{Major: 0, Minor: 1},
//	    Features:    gamebridge.CapabilitySet{Print: true},
//	}, newMyGame)
//
// Tables are built once during plugin initialization and grouped in a
// Plugin value handed to the host; Plugin.Close is the explicit teardown
// counterpart.
package dispatch
