package sim

import (
	"github.com/tomz197/particlebox/internal/object"
	"github.com/tomz197/particlebox/internal/physics"
)

// workItem is one pending cascade re-check on the resolver's work list.
type workItem struct {
	id object.ID
}

// maxCascade bounds the re-checks processed for a single event.
// Quantization drains almost every chain long before this, but fully
// elastic particles in tight geometry can cycle without losing energy;
// past the bound the remaining re-checks are dropped and movement proceeds
// with the velocities resolved so far.
const maxCascade = 4096

// Resolve drains the event queue. After it returns, every queued collision
// has been resolved, including the chains of secondary collisions a
// velocity change can trigger, so movement can commit positions without
// re-checking.
func (w *World) Resolve() {
	for _, ev := range w.pending {
		w.resolve(ev)
	}
	w.pending = w.pending[:0]
}

// resolve handles one event and then processes the cascade work list it
// seeds. The list is explicit, LIFO, and processed iteratively, which keeps
// the source's depth-first cascade order without unbounded call-stack
// recursion. Termination relies on velocity quantization draining energy
// from every chain.
func (w *World) resolve(ev Event) {
	w.work = w.work[:0]
	w.apply(ev)

	for steps := 0; len(w.work) > 0 && steps < maxCascade; steps++ {
		item := w.work[len(w.work)-1]
		w.work = w.work[:len(w.work)-1]
		w.recheck(item.id)
	}
	w.work = w.work[:0]
}

// apply performs the velocity response for a single event. Events naming a
// despawned particle are skipped silently; collision delivery is best
// effort.
func (w *World) apply(ev Event) {
	switch ev.Kind {
	case EventPair:
		a, b, err := w.store.GetPair(ev.A, ev.B)
		if err != nil {
			// Stale reference: one side despawned after discovery.
			return
		}
		// Both sides are computed from pre-collision state, then both are
		// re-checked for secondary collisions. B first: it is the particle
		// that was standing in the way, so its cascade settles before A's.
		newA := calculateCollision(a, b)
		newB := calculateCollision(b, a)
		a.Vel = newA.Quantize()
		b.Vel = newB.Quantize()
		w.work = append(w.work, workItem{id: ev.A}, workItem{id: ev.B})

	case EventWorld:
		p, ok := w.store.Get(ev.A)
		if !ok {
			return
		}
		p.Vel = reflect(p.Vel, ev.Normal, p.Elasticity).Quantize()
		w.work = append(w.work, workItem{id: ev.A})
	}
}

// recheck re-runs detection for a particle whose velocity just changed. A
// hit is applied immediately, pushing further re-checks onto the work list.
// A miss claims the predicted cell, exactly like discovery does: without
// the claim, two particles rechecked in the same cascade could target the
// same empty cell and end up sharing it after movement.
func (w *World) recheck(id object.ID) {
	p, ok := w.store.Get(id)
	if !ok {
		return
	}
	if p.Vel.IsZero() {
		return
	}
	predicted := p.Pos.Add(p.Vel)
	if predicted.Cell() == p.Cell() {
		return
	}
	ev, hit := w.checkForCollision(id, predicted)
	if !hit {
		w.claimed[predicted.Cell()] = id
		return
	}
	w.apply(ev)
}

// calculateCollision returns the post-impact velocity of current using the
// elastic-impulse formula with current's elasticity:
//
//	(e·mo·(vo−vc) + mc·vc + mo·vo) / (mc + mo)
func calculateCollision(current, other *object.Particle) physics.Vec2 {
	impulse := other.Vel.Sub(current.Vel).Scale(current.Elasticity * other.Mass)
	momentum := current.Vel.Scale(current.Mass).Add(other.Vel.Scale(other.Mass))
	return impulse.Add(momentum).Scale(1 / (current.Mass + other.Mass))
}

// reflect bounces vel off a wall with the given inward normal:
//
//	v' = v − (1+e)·(v·n)·normalize(n)
//
// Corner normals arrive non-unit (diagonal) and are normalized here before
// use.
func reflect(vel, normal physics.Vec2, elasticity float64) physics.Vec2 {
	unit := normal.Normalized()
	return vel.Sub(unit.Scale((1 + elasticity) * vel.Dot(normal)))
}
