package sim

import (
	"time"

	"github.com/tomz197/particlebox/internal/config"
	"github.com/tomz197/particlebox/internal/physics"
)

// Default simulation parameters.
const (
	DefaultWorldWidth  = 40 // Cells
	DefaultWorldHeight = 20 // Cells
	DefaultStep        = 250 * time.Millisecond
	DefaultFrameRate   = 60
)

// DefaultGravity is the acceleration applied to every particle, per second.
var DefaultGravity = physics.Vec2{X: 0, Y: -1}

// Config holds the simulation parameters supplied at startup.
type Config struct {
	WorldWidth  int           // World width in cells
	WorldHeight int           // World height in cells
	Step        time.Duration // Fixed simulated interval per tick
	Gravity     physics.Vec2  // Acceleration per second
	FrameRate   int           // Engine frame rate
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		WorldWidth:  DefaultWorldWidth,
		WorldHeight: DefaultWorldHeight,
		Step:        DefaultStep,
		Gravity:     DefaultGravity,
		FrameRate:   DefaultFrameRate,
	}
}

// ConfigFromEnv returns the defaults overridden by SIM_* environment
// variables.
func ConfigFromEnv() Config {
	return Config{
		WorldWidth:  config.GetEnvInt("SIM_WORLD_WIDTH", DefaultWorldWidth),
		WorldHeight: config.GetEnvInt("SIM_WORLD_HEIGHT", DefaultWorldHeight),
		Step:        config.GetEnvDuration("SIM_STEP", DefaultStep),
		Gravity: physics.Vec2{
			X: config.GetEnvFloat("SIM_GRAVITY_X", DefaultGravity.X),
			Y: config.GetEnvFloat("SIM_GRAVITY_Y", DefaultGravity.Y),
		},
		FrameRate: config.GetEnvInt("SIM_FRAME_RATE", DefaultFrameRate),
	}
}

// FrameTime returns the wall-clock duration of one engine frame.
func (c Config) FrameTime() time.Duration {
	rate := c.FrameRate
	if rate <= 0 {
		rate = DefaultFrameRate
	}
	return time.Second / time.Duration(rate)
}
