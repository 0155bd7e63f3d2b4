package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tomz197/particlebox/internal/physics"
)

func TestMoveRepointsIndexOnCellChange(t *testing.T) {
	w := newTestWorld(physics.Vec2{})
	id := spawnAt(w, physics.Vec2{X: 0.5, Y: 0.5}, physics.Vec2{X: 1.2}, 1, 0.5)

	w.move()

	p, _ := w.Store().Get(id)
	assert.Equal(t, physics.Vec2{X: 1.7, Y: 0.5}, p.Pos)

	_, ok := w.Occupant(physics.Cell{X: 0, Y: 0})
	assert.False(t, ok, "old cell entry should be cleared")
	occ, ok := w.Occupant(physics.Cell{X: 1, Y: 0})
	require.True(t, ok)
	assert.Equal(t, id, occ)
}

func TestMoveAccumulatesSubCellMotion(t *testing.T) {
	// Motion below one cell per step must still advance the position and
	// eventually cross the boundary.
	w := newTestWorld(physics.Vec2{})
	id := spawnAt(w, physics.Vec2{X: 0.1, Y: 0.5}, physics.Vec2{X: 0.4}, 1, 0.5)

	w.move()
	w.move()
	p, _ := w.Store().Get(id)
	assert.InDelta(t, 0.9, p.Pos.X, 1e-9)
	occ, ok := w.Occupant(physics.Cell{X: 0, Y: 0})
	require.True(t, ok)
	assert.Equal(t, id, occ)

	w.move()
	assert.InDelta(t, 1.3, p.Pos.X, 1e-9)
	occ, ok = w.Occupant(physics.Cell{X: 1, Y: 0})
	require.True(t, ok)
	assert.Equal(t, id, occ)
}

func TestMoveStaleEntryGuard(t *testing.T) {
	// A vacates a cell, B moves into it earlier in the same pass. When A
	// is processed it must not clear B's fresh entry.
	w := newTestWorld(physics.Vec2{})
	b := spawnAt(w, physics.Vec2{X: 0.5, Y: 0.5}, physics.Vec2{X: 1}, 1, 0.5)
	a := spawnAt(w, physics.Vec2{X: 1.5, Y: 0.5}, physics.Vec2{X: 1}, 1, 0.5)

	// Spawn order is iteration order: B moves first into cell (1,0),
	// overwriting A's entry there, then A moves out to (2,0).
	w.move()

	occ, ok := w.Occupant(physics.Cell{X: 1, Y: 0})
	require.True(t, ok)
	assert.Equal(t, b, occ, "B's entry must survive A leaving the cell")
	occ, ok = w.Occupant(physics.Cell{X: 2, Y: 0})
	require.True(t, ok)
	assert.Equal(t, a, occ)
	_, ok = w.Occupant(physics.Cell{X: 0, Y: 0})
	assert.False(t, ok)
}

func TestDespawnOnlyRemovesOwnEntry(t *testing.T) {
	w := newTestWorld(physics.Vec2{})
	a := spawnAt(w, physics.Vec2{X: 0.5, Y: 0.5}, physics.Vec2{}, 1, 0.5)
	b := spawnAt(w, physics.Vec2{X: 0.7, Y: 0.5}, physics.Vec2{}, 1, 0.5)

	// Both spawned into the same cell; B's entry overwrote A's. Despawning
	// A must leave B's entry alone.
	require.True(t, w.Despawn(a))
	occ, ok := w.Occupant(physics.Cell{X: 0, Y: 0})
	require.True(t, ok)
	assert.Equal(t, b, occ)

	require.True(t, w.Despawn(b))
	_, ok = w.Occupant(physics.Cell{X: 0, Y: 0})
	assert.False(t, ok)
	assert.False(t, w.Despawn(b))
}
