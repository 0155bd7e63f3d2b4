// Package object holds particle state and the entity store that owns it.
package object

import "github.com/tomz197/particlebox/internal/physics"

// ID identifies a particle for its whole lifetime. IDs are never reused, so
// a stale ID reliably fails lookups instead of aliasing a newer particle.
type ID uint64

// DefaultElasticity is the energy retention applied to particles created
// without an explicit value.
const DefaultElasticity = 0.5

// Particle is the mutable kinematic state of one body on the grid.
type Particle struct {
	Pos        physics.Vec2 // Continuous position; floor gives the occupied cell
	Vel        physics.Vec2 // Units per fixed step
	Mass       float64      // Positive
	Elasticity float64      // Energy retention on impact, in [0,1]
}

// NewParticle creates a resting particle with the default elasticity.
func NewParticle(pos physics.Vec2, mass float64) Particle {
	return Particle{
		Pos:        pos,
		Mass:       mass,
		Elasticity: DefaultElasticity,
	}
}

// Cell returns the grid cell the particle currently occupies.
func (p *Particle) Cell() physics.Cell {
	return p.Pos.Cell()
}
