package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tomz197/particlebox/internal/object"
	"github.com/tomz197/particlebox/internal/physics"
)

func TestSeedDemoPopulatesDistinctCells(t *testing.T) {
	w := newTestWorld(DefaultGravity)
	SeedDemo(w, 8)

	require.Equal(t, 8, w.Store().Len())
	assertWorldInvariants(t, w)

	// The converging pair is always present.
	var left, right bool
	w.Store().All(func(_ object.ID, p *object.Particle) bool {
		switch p.Vel {
		case (physics.Vec2{X: 1}):
			left = true
		case (physics.Vec2{X: -1}):
			right = true
		}
		return true
	})
	assert.True(t, left)
	assert.True(t, right)
}

func TestSeedDemoSurvivesTicks(t *testing.T) {
	w := newTestWorld(DefaultGravity)
	SeedDemo(w, 12)

	for i := 0; i < 200; i++ {
		w.Tick(0.25)
		assertWorldInvariants(t, w)
	}
}
