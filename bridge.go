package gamebridge

// PlayerID identifies one participant of a game instance.
//
// Valid players are numbered 1..PlayerCount. PlayerNone marks the absence of
// a player and PlayerRand stands for a random chance actor in games that use
// one.
type PlayerID uint8

const (
	// PlayerNone is the reserved "no player" value.
	PlayerNone PlayerID = 0
	// PlayerRand is the reserved chance-actor value.
	PlayerRand PlayerID = 0xFF
)

// MoveCode is the compact encoding of a concrete move. The encoding is
// game-specific; the bridge only transports it.
type MoveCode uint64

// MoveNone is the reserved "no move" value.
const MoveNone MoveCode = ^MoveCode(0)

// Semver is the semantic version advertised in a table's metadata.
type Semver struct {
	Major uint32
	Minor uint32
	Patch uint32
}

// CapabilitySet declares which optional operations a game supports.
//
// The set is fixed when a table is built. An unset flag leaves the matching
// table entry absent and lifts the capacity requirement on the matching
// CapacityContract field.
type CapabilitySet struct {
	// Options enables exporting the configuration text of an instance.
	Options bool
	// Print enables the human-readable rendering of an instance.
	Print bool
}

// CapacityContract declares the maximum result sizes a game instance will
// ever produce. The host consumes it to pre-allocate buffers before each
// call; the bridge sizes every output buffer from it.
//
// Each *Len field counts bytes INCLUDING the terminator slot, so a game whose
// longest state text is "A 21" declares StateLen 5. The contract is fixed
// when the instance factory returns it and every field backing an enabled
// capability must be greater than zero.
type CapacityContract struct {
	// OptionsLen bounds the configuration text. Required with
	// CapabilitySet.Options.
	OptionsLen int
	// StateLen bounds the exported state text.
	StateLen int
	// MoveLen bounds the text of a single move.
	MoveLen int
	// PrintLen bounds the rendering text. Required with CapabilitySet.Print.
	PrintLen int

	// PlayerCount is the number of participants.
	PlayerCount uint8
	// MaxPlayersToMove bounds the simultaneous movers per position.
	MaxPlayersToMove uint8
	// MaxResults bounds the result (winner) list.
	MaxResults uint8
	// MaxMoves bounds the concrete moves available to one player.
	MaxMoves uint32
	// MaxActions bounds the action moves in games with hidden state.
	MaxActions uint32
}

// GameInit carries the creation parameters of a new instance.
//
// A nil Options or State selects the game's defaults. Both strings are
// game-specific text in the same encodings used by the state and options
// import/export operations.
type GameInit struct {
	Options *string
	State   *string
}
