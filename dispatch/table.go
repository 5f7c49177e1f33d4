package dispatch

import (
	"github.com/vilaureu/gamebridge"
	"github.com/vilaureu/gamebridge/errors"
	"github.com/vilaureu/gamebridge/instance"
)

// Metadata holds the static, non-function fields of a Table.
type Metadata struct {
	// GameName is the display name of the game.
	GameName string
	// VariantName names the rule variant.
	VariantName string
	// ImplName names this implementation of the game.
	ImplName string
	// Version is the implementation's semantic version.
	Version gamebridge.Semver
	// Features declares which optional operations the table carries.
	Features gamebridge.CapabilitySet
}

// Table is the fixed-layout set of entry points the host consumes.
//
// Its shape is the wire contract with the host loader: the metadata fields
// followed by one function slot per operation, in contract order. Slots of
// optional operations are nil when the matching capability is disabled,
// which signals "unsupported" to the host. A Table is immutable after New
// returns it; the host treats it as read-only shared data.
//
// All entry points are synchronous and complete before returning. Output
// regions passed in by the host must be sized by the instance's capacity
// contract; lengths returned for text operations exclude the terminator
// byte the shim appends.
type Table struct {
	Metadata

	// GetLastError returns the message of the instance's last failing
	// operation, or "" when none is stored. Read-only and side-effect
	// free.
	GetLastError func(h instance.Handle) string

	// Create builds a new instance. The handle is live even when the
	// code signals failure, so the host can retrieve the error message;
	// it must still be destroyed.
	Create func(init gamebridge.GameInit) (instance.Handle, errors.Code)

	// Contract returns the capacity contract resolved when the instance
	// was created. The host sizes its buffers from it before each call.
	Contract func(h instance.Handle) gamebridge.CapacityContract

	// ExportOptions writes the instance's configuration text into mem.
	// Nil when the Options capability is disabled.
	ExportOptions func(h instance.Handle, mem []byte) (int, errors.Code)

	// Destroy tears the instance down. Exactly once per handle.
	Destroy func(h instance.Handle) errors.Code

	// Clone duplicates the instance into an independent new one.
	Clone func(h instance.Handle) (instance.Handle, errors.Code)

	// CopyFrom overwrites dst's state in place from src's.
	CopyFrom func(dst, src instance.Handle) errors.Code

	// Compare reports structural equality of two instances' states.
	Compare func(a, b instance.Handle) (bool, errors.Code)

	// ImportState replaces the state from text; nil selects the initial
	// position. Malformed text never mutates the state.
	ImportState func(h instance.Handle, state *string) errors.Code

	// ExportState writes the state text into mem.
	ExportState func(h instance.Handle, mem []byte) (int, errors.Code)

	// PlayersToMove writes the players to act into mem.
	PlayersToMove func(h instance.Handle, mem []gamebridge.PlayerID) (int, errors.Code)

	// GetConcreteMoves writes player's available moves into mem.
	GetConcreteMoves func(h instance.Handle, player gamebridge.PlayerID, mem []gamebridge.MoveCode) (int, errors.Code)

	// IsLegalMove checks whether player may play move.
	IsLegalMove func(h instance.Handle, player gamebridge.PlayerID, move gamebridge.MoveCode) errors.Code

	// MakeMove applies a legal move.
	MakeMove func(h instance.Handle, player gamebridge.PlayerID, move gamebridge.MoveCode) errors.Code

	// GetResults writes the winners of a finished position into mem.
	GetResults func(h instance.Handle, mem []gamebridge.PlayerID) (int, errors.Code)

	// GetMoveCode parses the text encoding of a move.
	GetMoveCode func(h instance.Handle, player gamebridge.PlayerID, s string) (gamebridge.MoveCode, errors.Code)

	// GetMoveStr writes the text encoding of move into mem.
	GetMoveStr func(h instance.Handle, player gamebridge.PlayerID, move gamebridge.MoveCode, mem []byte) (int, errors.Code)

	// Print writes a human-readable rendering into mem. Nil when the
	// Print capability is disabled.
	Print func(h instance.Handle, mem []byte) (int, errors.Code)

	live  func() int
	close func()
}

// Len returns the number of live instances behind the table.
func (t *Table) Len() int {
	return t.live()
}

// Close destroys every live instance of the table. Handles retained by the
// host are dead afterwards.
func (t *Table) Close() {
	t.close()
}

// Plugin groups the tables a plugin exposes to the host.
//
// It replaces process-wide static table storage: build the tables once
// during initialization, hand the Plugin to the host, and call Close during
// plugin teardown.
type Plugin struct {
	tables []*Table
}

// NewPlugin creates a Plugin exposing tables in the given order.
func NewPlugin(tables ...*Table) *Plugin {
	return &Plugin{tables: tables}
}

// Tables returns the exposed tables.
func (p *Plugin) Tables() []*Table {
	return p.tables
}

// Close tears down every table of the plugin.
func (p *Plugin) Close() {
	for _, t := range p.tables {
		t.Close()
	}
}
