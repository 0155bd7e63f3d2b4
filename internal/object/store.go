package object

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when a referenced particle no longer exists.
var ErrNotFound = errors.New("particle not found")

// Store owns all particle state and maps stable IDs to it. Iteration
// follows spawn order so simulation passes are reproducible.
//
// Store is not safe for concurrent use; the tick driver serializes all
// phases that touch it.
type Store struct {
	nextID    ID
	particles map[ID]*Particle
	order     []ID
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		nextID:    1,
		particles: make(map[ID]*Particle),
	}
}

// Spawn adds a particle and returns its new ID.
func (s *Store) Spawn(p Particle) ID {
	id := s.nextID
	s.nextID++
	s.particles[id] = &p
	s.order = append(s.order, id)
	return id
}

// Get returns the particle for id, or false if it has been despawned.
func (s *Store) Get(id ID) (*Particle, bool) {
	p, ok := s.particles[id]
	return p, ok
}

// GetPair returns both particles of a collision pair. If either ID is stale
// it returns ErrNotFound; callers treat that as a skipped event, never a
// fatal condition.
func (s *Store) GetPair(a, b ID) (*Particle, *Particle, error) {
	pa, ok := s.particles[a]
	if !ok {
		return nil, nil, fmt.Errorf("pair (%d, %d): %w", a, b, ErrNotFound)
	}
	pb, ok := s.particles[b]
	if !ok {
		return nil, nil, fmt.Errorf("pair (%d, %d): %w", a, b, ErrNotFound)
	}
	return pa, pb, nil
}

// Despawn removes a particle. Returns false if the ID was already stale.
func (s *Store) Despawn(id ID) bool {
	if _, ok := s.particles[id]; !ok {
		return false
	}
	delete(s.particles, id)

	kept := s.order[:0]
	for _, o := range s.order {
		if o != id {
			kept = append(kept, o)
		}
	}
	s.order = kept
	return true
}

// All calls fn for every particle in spawn order. Iteration stops early if
// fn returns false. The particle pointer is valid for mutation during the
// call.
func (s *Store) All(fn func(ID, *Particle) bool) {
	for _, id := range s.order {
		if !fn(id, s.particles[id]) {
			return
		}
	}
}

// Len returns the number of live particles.
func (s *Store) Len() int {
	return len(s.particles)
}
