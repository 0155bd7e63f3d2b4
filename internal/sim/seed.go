package sim

import (
	"math/rand"

	"github.com/tomz197/particlebox/internal/object"
	"github.com/tomz197/particlebox/internal/physics"
)

// SeedDemo populates the world with the demo scene: a symmetric pair of
// unit-mass particles converging on the center, plus extra resting
// particles scattered over distinct cells up to the requested total.
func SeedDemo(w *World, total int) {
	left := object.NewParticle(physics.Vec2{X: -3.5, Y: 0.5}, 1)
	left.Vel = physics.Vec2{X: 1}
	left.Elasticity = 0.4
	w.Spawn(left)

	right := object.NewParticle(physics.Vec2{X: 3.5, Y: 0.5}, 1)
	right.Vel = physics.Vec2{X: -1}
	right.Elasticity = 0.4
	w.Spawn(right)

	bounds := w.Bounds()
	for w.Store().Len() < total {
		pos := physics.Vec2{
			X: bounds.Left + rand.Float64()*bounds.Width(),
			Y: bounds.Bottom + rand.Float64()*bounds.Height(),
		}
		if _, occupied := w.Occupant(pos.Cell()); occupied {
			continue
		}
		p := object.NewParticle(pos, 0.5+rand.Float64()*2)
		p.Elasticity = 0.2 + rand.Float64()*0.6
		w.Spawn(p)
	}
}
