package sim

import (
	"github.com/tomz197/particlebox/internal/object"
	"github.com/tomz197/particlebox/internal/physics"
)

// World owns the simulation state: the entity store, the occupancy index,
// and the transient event queue. The three tick phases (discovery,
// resolution, movement) are methods on World and are never run
// concurrently; the engine serializes them.
type World struct {
	cfg   Config
	store *object.Store
	index *Index

	pending []Event                    // Events queued by discovery, drained by Resolve
	handled map[pairKey]struct{}       // Per-pass symmetric pair dedup, reused
	claimed map[physics.Cell]object.ID // Per-pass predicted-cell claims, reused
	work    []workItem                 // Resolver cascade work list, reused

	ticks uint64
}

// NewWorld creates a world with the given configuration and no particles.
func NewWorld(cfg Config) *World {
	bounds := physics.NewBounds(cfg.WorldWidth, cfg.WorldHeight)
	return &World{
		cfg:     cfg,
		store:   object.NewStore(),
		index:   NewIndex(bounds),
		handled: make(map[pairKey]struct{}),
		claimed: make(map[physics.Cell]object.ID),
	}
}

// Config returns the world's configuration.
func (w *World) Config() Config {
	return w.cfg
}

// Bounds returns the world bounds.
func (w *World) Bounds() physics.Bounds {
	return w.index.Bounds()
}

// Store returns the entity store.
func (w *World) Store() *object.Store {
	return w.store
}

// Ticks returns the number of completed fixed-interval ticks.
func (w *World) Ticks() uint64 {
	return w.ticks
}

// Spawn adds a particle and seeds its cell in the occupancy index so
// discovery can see it before it ever moves. After spawn, only the
// movement phase re-points index entries.
func (w *World) Spawn(p object.Particle) object.ID {
	id := w.store.Spawn(p)
	if prt, ok := w.store.Get(id); ok {
		w.index.Insert(prt.Cell(), id)
	}
	return id
}

// Despawn removes a particle and its index entry, if the entry still points
// at it. Pending events that reference the ID are skipped at resolution.
func (w *World) Despawn(id object.ID) bool {
	p, ok := w.store.Get(id)
	if !ok {
		return false
	}
	cell := p.Cell()
	if occ, ok := w.index.Lookup(cell); ok && occ == id {
		w.index.Remove(cell)
	}
	return w.store.Despawn(id)
}

// Occupant returns the particle occupying cell, if any.
func (w *World) Occupant(cell physics.Cell) (object.ID, bool) {
	return w.index.Lookup(cell)
}

// Tick advances the simulation by one fixed interval: discovery queues
// collision events, the resolver drains them so every destination cell is
// free, then movement commits positions and the index. The interval dt is
// in seconds of simulated time.
func (w *World) Tick(dt float64) {
	w.discover(dt)
	w.Resolve()
	w.move()
	w.ticks++
}

// Pending returns the number of queued, unresolved events.
func (w *World) Pending() int {
	return len(w.pending)
}
