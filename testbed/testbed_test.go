// Package testbed drives the reference game through the full dispatch
// surface the way a host engine would: handles only, buffers pre-allocated
// from the instance's capacity contract.
package testbed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vilaureu/gamebridge"
	"github.com/vilaureu/gamebridge/dispatch"
	"github.com/vilaureu/gamebridge/errors"
	"github.com/vilaureu/gamebridge/examples/nim"
	"github.com/vilaureu/gamebridge/instance"
)

// host mimics a host engine's view of one table: it only ever touches
// handles and regions sized from the contract.
type host struct {
	t     *testing.T
	table *dispatch.Table
}

func newHost(t *testing.T) *host {
	t.Helper()
	table, err := nim.NewTable()
	require.NoError(t, err)
	t.Cleanup(table.Close)
	return &host{t: t, table: table}
}

func (h *host) create(opts string) instance.Handle {
	h.t.Helper()
	init := gamebridge.GameInit{}
	if opts != "" {
		init.Options = &opts
	}
	handle, code := h.table.Create(init)
	require.Equal(h.t, errors.Ok, code, "create: %s", h.table.GetLastError(handle))
	return handle
}

func (h *host) state(handle instance.Handle) string {
	h.t.Helper()
	mem := make([]byte, h.table.Contract(handle).StateLen)
	n, code := h.table.ExportState(handle, mem)
	require.Equal(h.t, errors.Ok, code)
	require.Equal(h.t, byte(0), mem[n], "state text not terminated")
	return string(mem[:n])
}

func (h *host) playersToMove(handle instance.Handle) []gamebridge.PlayerID {
	h.t.Helper()
	mem := make([]gamebridge.PlayerID, h.table.Contract(handle).MaxPlayersToMove)
	n, code := h.table.PlayersToMove(handle, mem)
	require.Equal(h.t, errors.Ok, code)
	return mem[:n]
}

func (h *host) moves(handle instance.Handle, p gamebridge.PlayerID) []gamebridge.MoveCode {
	h.t.Helper()
	mem := make([]gamebridge.MoveCode, h.table.Contract(handle).MaxMoves)
	n, code := h.table.GetConcreteMoves(handle, p, mem)
	require.Equal(h.t, errors.Ok, code)
	return mem[:n]
}

func (h *host) results(handle instance.Handle) []gamebridge.PlayerID {
	h.t.Helper()
	mem := make([]gamebridge.PlayerID, h.table.Contract(handle).MaxResults)
	n, code := h.table.GetResults(handle, mem)
	require.Equal(h.t, errors.Ok, code)
	return mem[:n]
}

func (h *host) play(handle instance.Handle, p gamebridge.PlayerID, text string) {
	h.t.Helper()
	move, code := h.table.GetMoveCode(handle, p, text)
	require.Equal(h.t, errors.Ok, code)
	require.Equal(h.t, errors.Ok, h.table.IsLegalMove(handle, p, move))
	require.Equal(h.t, errors.Ok, h.table.MakeMove(handle, p, move))
}

func TestTableMetadata(t *testing.T) {
	h := newHost(t)

	assert.Equal(t, "Nim", h.table.GameName)
	assert.Equal(t, "Standard", h.table.VariantName)
	assert.True(t, h.table.Features.Options)
	assert.True(t, h.table.Features.Print)
	assert.NotNil(t, h.table.ExportOptions)
	assert.NotNil(t, h.table.Print)
}

func TestDefaultGameLifecycle(t *testing.T) {
	h := newHost(t)
	handle := h.create("")

	assert.Equal(t, "A 21", h.state(handle))
	assert.Equal(t, []gamebridge.PlayerID{1}, h.playersToMove(handle))
	assert.Empty(t, h.results(handle))

	require.Equal(t, errors.Ok, h.table.Destroy(handle))
	assert.Zero(t, h.table.Len())
}

func TestOptionsRoundTrip(t *testing.T) {
	h := newHost(t)
	handle := h.create("100 12")

	mem := make([]byte, h.table.Contract(handle).OptionsLen)
	n, code := h.table.ExportOptions(handle, mem)
	require.Equal(t, errors.Ok, code)
	assert.Equal(t, "100 12", string(mem[:n]))

	// Recreating from the exported options yields an equal game.
	again := h.create(string(mem[:n]))
	equal, code := h.table.Compare(handle, again)
	require.Equal(t, errors.Ok, code)
	assert.True(t, equal)
}

func TestStateImportExportRoundTrip(t *testing.T) {
	h := newHost(t)
	handle := h.create("")

	state := "B 7"
	require.Equal(t, errors.Ok, h.table.ImportState(handle, &state))
	assert.Equal(t, "B 7", h.state(handle))
	assert.Equal(t, []gamebridge.PlayerID{2}, h.playersToMove(handle))

	// nil resets to the initial position.
	require.Equal(t, errors.Ok, h.table.ImportState(handle, nil))
	assert.Equal(t, "A 21", h.state(handle))
}

func TestSubtractionScenario(t *testing.T) {
	h := newHost(t)
	handle := h.create("5 3")

	assert.Equal(t, []gamebridge.MoveCode{1, 2, 3}, h.moves(handle, 1))

	h.play(handle, 1, "3")
	assert.Equal(t, "B 2", h.state(handle))

	h.play(handle, 2, "2")
	assert.Equal(t, "A 0", h.state(handle))

	// B took the last token and loses; A is the sole winner.
	assert.Empty(t, h.playersToMove(handle))
	assert.Equal(t, []gamebridge.PlayerID{1}, h.results(handle))

	// The finished game rejects further moves.
	assert.Equal(t, errors.InvalidInput, h.table.IsLegalMove(handle, 1, 1))
}

func TestErrorChannel(t *testing.T) {
	h := newHost(t)
	handle := h.create("")

	// Fresh instance: no message.
	assert.Empty(t, h.table.GetLastError(handle))

	bad := "Z 5"
	require.Equal(t, errors.InvalidInput, h.table.ImportState(handle, &bad))
	msg := h.table.GetLastError(handle)
	assert.Equal(t, "invalid player code", msg)

	// State untouched by the failed import.
	assert.Equal(t, "A 21", h.state(handle))

	// The successful export above did not clear the message.
	assert.Equal(t, msg, h.table.GetLastError(handle))

	// The next failure overwrites it.
	worse := "A x"
	require.Equal(t, errors.InvalidInput, h.table.ImportState(handle, &worse))
	assert.NotEqual(t, msg, h.table.GetLastError(handle))
	assert.Contains(t, h.table.GetLastError(handle), "counter parsing error")
}

func TestFailedCreateStillReportsError(t *testing.T) {
	h := newHost(t)

	opts := "21 0"
	handle, code := h.table.Create(gamebridge.GameInit{Options: &opts})
	require.Equal(t, errors.InvalidOptions, code)
	assert.Equal(t, "maximum subtrahend is zero", h.table.GetLastError(handle))

	// The failed handle is still subject to the destroy contract.
	require.Equal(t, errors.Ok, h.table.Destroy(handle))
}

func TestCloneIndependence(t *testing.T) {
	h := newHost(t)
	handle := h.create("5 3")

	clone, code := h.table.Clone(handle)
	require.Equal(t, errors.Ok, code)

	h.play(handle, 1, "2")
	assert.Equal(t, "B 3", h.state(handle))
	assert.Equal(t, "A 5", h.state(clone), "clone changed with its source")

	equal, _ := h.table.Compare(handle, clone)
	assert.False(t, equal)

	require.Equal(t, errors.Ok, h.table.CopyFrom(clone, handle))
	equal, _ = h.table.Compare(handle, clone)
	assert.True(t, equal)
}

func TestCreateWithInitialState(t *testing.T) {
	h := newHost(t)

	state := "B 4"
	handle, code := h.table.Create(gamebridge.GameInit{State: &state})
	require.Equal(t, errors.Ok, code)
	assert.Equal(t, "B 4", h.state(handle))
}

func TestDestroyedHandleTraps(t *testing.T) {
	h := newHost(t)
	handle := h.create("")
	require.Equal(t, errors.Ok, h.table.Destroy(handle))

	assert.Panics(t, func() { h.table.ExportState(handle, make([]byte, 8)) })
	assert.Panics(t, func() { h.table.Destroy(handle) })
}

func TestPrintRendering(t *testing.T) {
	h := newHost(t)
	handle := h.create("")

	mem := make([]byte, h.table.Contract(handle).PrintLen)
	n, code := h.table.Print(handle, mem)
	require.Equal(t, errors.Ok, code)
	assert.Equal(t, "A 21\n", string(mem[:n]))
}
