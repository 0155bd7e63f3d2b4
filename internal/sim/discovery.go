package sim

import (
	"github.com/tomz197/particlebox/internal/object"
	"github.com/tomz197/particlebox/internal/physics"
)

// discover runs one collision discovery pass. Every particle first
// receives gravity (stationary ones included), then particles predicted to
// cross a cell boundary are checked against the bounds and the index.
//
// Two dedup rules keep each physical contact down to one event per pass:
// symmetric pair events are collapsed through canonical pair keys, and each
// collision-free predicted cell is claimed so a later particle aiming at
// the same empty cell collides with the claimant rather than passing
// through it.
func (w *World) discover(dt float64) {
	clear(w.handled)
	clear(w.claimed)
	gravity := w.cfg.Gravity.Scale(dt)

	w.store.All(func(id object.ID, p *object.Particle) bool {
		p.Vel = p.Vel.Add(gravity)

		if p.Vel.IsZero() {
			return true
		}
		current := p.Cell()
		predicted := p.Pos.Add(p.Vel)
		if predicted.Cell() == current {
			return true
		}

		ev, ok := w.checkForCollision(id, predicted)
		if !ok {
			w.claimed[predicted.Cell()] = id
			return true
		}
		if ev.Kind == EventPair {
			key := makePairKey(ev.A, ev.B)
			if _, seen := w.handled[key]; seen {
				return true
			}
			w.handled[key] = struct{}{}
		}
		w.pending = append(w.pending, ev)
		return true
	})
}

// checkForCollision tests a predicted position against the world bounds
// first, then the occupancy index. Colliding with your own cell entry is
// not a collision.
func (w *World) checkForCollision(id object.ID, predicted physics.Vec2) (Event, bool) {
	if normal, outside := w.index.Bounds().Outside(predicted); outside {
		return Event{Kind: EventWorld, A: id, Normal: normal}, true
	}
	cell := predicted.Cell()
	if other, ok := w.index.Lookup(cell); ok && other != id {
		return Event{Kind: EventPair, A: id, B: other}, true
	}
	if other, ok := w.claimed[cell]; ok && other != id {
		return Event{Kind: EventPair, A: id, B: other}, true
	}
	return Event{}, false
}
