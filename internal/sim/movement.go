package sim

import "github.com/tomz197/particlebox/internal/object"

// move commits the resolved velocities. On a cell change the index entry is
// re-pointed: the old cell is cleared only if it still names this particle,
// which guards against stale entries left by a particle that moved away
// earlier in the same pass. The position itself advances unconditionally so
// sub-cell motion accumulates.
//
// No collision checks happen here; the resolver already guaranteed every
// destination cell is free.
func (w *World) move() {
	w.store.All(func(id object.ID, p *object.Particle) bool {
		current := p.Cell()
		next := p.Pos.Add(p.Vel)
		nextCell := next.Cell()

		if nextCell != current {
			if occ, ok := w.index.Lookup(current); ok && occ == id {
				w.index.Remove(current)
			}
			w.index.Insert(nextCell, id)
		}
		p.Pos = next
		return true
	})
}
