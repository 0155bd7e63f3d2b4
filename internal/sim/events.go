package sim

import (
	"github.com/tomz197/particlebox/internal/object"
	"github.com/tomz197/particlebox/internal/physics"
)

// EventKind identifies the type of collision event.
type EventKind int

const (
	// EventWorld is a particle predicted to cross the world bounds.
	EventWorld EventKind = iota
	// EventPair is two particles predicted to share a cell.
	EventPair
)

// Event is a transient collision record. Discovery creates events and the
// resolver consumes them within the same tick; they are never persisted.
type Event struct {
	Kind   EventKind
	A      object.ID    // the particle that triggered detection
	B      object.ID    // the other particle, pair events only
	Normal physics.Vec2 // inward wall normal, world events only
}

// pairKey is the canonical unordered identity of a particle pair, used to
// deduplicate symmetric events within one discovery pass.
type pairKey struct {
	lo, hi object.ID
}

func makePairKey(a, b object.ID) pairKey {
	if a > b {
		a, b = b, a
	}
	return pairKey{lo: a, hi: b}
}
