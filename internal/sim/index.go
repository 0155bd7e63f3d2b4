// Package sim implements the grid collision engine: per-tick discovery of
// boundary and cell conflicts, iterative cascade resolution, and movement
// that commits positions to the occupancy index.
package sim

import (
	"github.com/tomz197/particlebox/internal/object"
	"github.com/tomz197/particlebox/internal/physics"
)

// Index maps each occupied cell to the particle occupying it, and carries
// the world bounds used for wall detection. A cell holds at most one
// particle; the resolver is what keeps that true at the end of every tick.
//
// Entries are created when a particle spawns and re-pointed by the movement
// phase on cell changes. Capacity grows with the cells visited; there is no
// eviction.
type Index struct {
	bounds physics.Bounds
	cells  map[physics.Cell]object.ID
}

// NewIndex creates an empty index over the given bounds.
func NewIndex(bounds physics.Bounds) *Index {
	return &Index{
		bounds: bounds,
		cells:  make(map[physics.Cell]object.ID),
	}
}

// Bounds returns the world bounds.
func (ix *Index) Bounds() physics.Bounds {
	return ix.bounds
}

// Lookup returns the occupant of cell, if any.
func (ix *Index) Lookup(cell physics.Cell) (object.ID, bool) {
	id, ok := ix.cells[cell]
	return id, ok
}

// Insert points cell at id, replacing any previous occupant.
func (ix *Index) Insert(cell physics.Cell, id object.ID) {
	ix.cells[cell] = id
}

// Remove clears the entry for cell.
func (ix *Index) Remove(cell physics.Cell) {
	delete(ix.cells, cell)
}

// Len returns the number of occupied cells.
func (ix *Index) Len() int {
	return len(ix.cells)
}
