package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tomz197/particlebox/internal/object"
	"github.com/tomz197/particlebox/internal/physics"
)

func TestIndexLookupInsertRemove(t *testing.T) {
	ix := NewIndex(physics.NewBounds(20, 10))
	cell := physics.Cell{X: 3, Y: -2}

	_, ok := ix.Lookup(cell)
	assert.False(t, ok)

	ix.Insert(cell, object.ID(7))
	id, ok := ix.Lookup(cell)
	require.True(t, ok)
	assert.Equal(t, object.ID(7), id)
	assert.Equal(t, 1, ix.Len())

	// A later insert replaces the previous occupant.
	ix.Insert(cell, object.ID(9))
	id, _ = ix.Lookup(cell)
	assert.Equal(t, object.ID(9), id)
	assert.Equal(t, 1, ix.Len())

	ix.Remove(cell)
	_, ok = ix.Lookup(cell)
	assert.False(t, ok)
	assert.Zero(t, ix.Len())
}

func TestIndexBounds(t *testing.T) {
	b := physics.NewBounds(40, 20)
	ix := NewIndex(b)
	assert.Equal(t, b, ix.Bounds())
}
