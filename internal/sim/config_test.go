package sim

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/tomz197/particlebox/internal/physics"
)

func TestConfigFromEnvDefaults(t *testing.T) {
	cfg := ConfigFromEnv()
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestConfigFromEnvOverrides(t *testing.T) {
	t.Setenv("SIM_WORLD_WIDTH", "80")
	t.Setenv("SIM_WORLD_HEIGHT", "30")
	t.Setenv("SIM_STEP", "100ms")
	t.Setenv("SIM_GRAVITY_X", "0.5")
	t.Setenv("SIM_GRAVITY_Y", "-2")
	t.Setenv("SIM_FRAME_RATE", "30")

	cfg := ConfigFromEnv()
	assert.Equal(t, 80, cfg.WorldWidth)
	assert.Equal(t, 30, cfg.WorldHeight)
	assert.Equal(t, 100*time.Millisecond, cfg.Step)
	assert.Equal(t, physics.Vec2{X: 0.5, Y: -2}, cfg.Gravity)
	assert.Equal(t, 30, cfg.FrameRate)
}

func TestConfigFrameTime(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, time.Second/60, cfg.FrameTime())

	cfg.FrameRate = 0
	assert.Equal(t, time.Second/60, cfg.FrameTime())

	cfg.FrameRate = 30
	assert.Equal(t, time.Second/30, cfg.FrameTime())
}
