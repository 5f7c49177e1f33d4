package dispatch

import (
	"github.com/vilaureu/gamebridge"
	"github.com/vilaureu/gamebridge/buffer"
)

// Game is the operation set every game implementation provides.
//
// The type parameter is the implementation itself, so copies and
// comparisons stay fully typed: a game type declares
//
//	func New(init gamebridge.GameInit) (*Nim, gamebridge.CapacityContract, error)
//
// and satisfies Game[*Nim]. Since several operations mutate the receiver, G
// is in practice a pointer type.
//
// Operations returning variable-length results receive a bounded output
// buffer sized from the instance's capacity contract. Writing more than the
// declared capacity panics; a declared capacity is a promise, not a hint.
// All other failures are reported as errors, preferably built with the
// errors package so they carry a wire code.
type Game[G any] interface {
	// CopyFrom overwrites this state in place from another instance's.
	CopyFrom(other G) error
	// Clone returns an independent copy. It must be total: cloning a
	// valid state never fails.
	Clone() G
	// Equal reports structural equality with another state.
	Equal(other G) bool

	// ImportState replaces the state from its text encoding; nil selects
	// the game's initial position. Malformed text is reported as
	// invalid-input and must leave the state untouched.
	ImportState(state *string) error
	// ExportState writes the state's text encoding.
	ExportState(buf *buffer.Text) error

	// PlayersToMove appends the players who may act in this position.
	PlayersToMove(players *buffer.Buffer[gamebridge.PlayerID]) error
	// ConcreteMoves appends the moves available to player.
	ConcreteMoves(player gamebridge.PlayerID, moves *buffer.Buffer[gamebridge.MoveCode]) error
	// IsLegalMove reports through its error whether player may play move.
	IsLegalMove(player gamebridge.PlayerID, move gamebridge.MoveCode) error
	// MakeMove applies a move previously validated by IsLegalMove.
	MakeMove(player gamebridge.PlayerID, move gamebridge.MoveCode) error
	// Results appends the winning players of a finished position.
	Results(players *buffer.Buffer[gamebridge.PlayerID]) error

	// MoveCode parses the text encoding of a move.
	MoveCode(player gamebridge.PlayerID, s string) (gamebridge.MoveCode, error)
	// MoveString writes the text encoding of a move.
	MoveString(player gamebridge.PlayerID, move gamebridge.MoveCode, buf *buffer.Text) error
}

// OptionsExporter is the optional operation behind CapabilitySet.Options.
type OptionsExporter interface {
	// ExportOptions writes the configuration text the instance was
	// created with.
	ExportOptions(buf *buffer.Text) error
}

// Printer is the optional operation behind CapabilitySet.Print.
type Printer interface {
	// Print writes a human-readable rendering of the position.
	Print(buf *buffer.Text) error
}

// Factory creates a fresh game state and its capacity contract from the
// host's creation parameters.
type Factory[G any] func(init gamebridge.GameInit) (G, gamebridge.CapacityContract, error)
