package sim

import (
	"context"
	"math/rand"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/tomz197/particlebox/internal/object"
	"github.com/tomz197/particlebox/internal/physics"
)

// ParticleView is the render-facing copy of one particle.
type ParticleView struct {
	ID   object.ID    `json:"id"`
	Pos  physics.Vec2 `json:"pos"`
	Vel  physics.Vec2 `json:"vel"`
	Cell physics.Cell `json:"cell"`
}

// Snapshot is an immutable view of the world for viewers. A new snapshot is
// published every engine frame; readers must not hold one across frames if
// they care about freshness, and must never mutate it.
type Snapshot struct {
	Particles []ParticleView `json:"particles"`
	Bounds    physics.Bounds `json:"bounds"`
	Ticks     uint64         `json:"ticks"`
	Paused    bool           `json:"paused"`
	Closing   bool           `json:"closing"`
}

// CommandKind identifies a viewer command.
type CommandKind int

const (
	// CommandPause toggles the fixed-step clock.
	CommandPause CommandKind = iota
	// CommandStep runs a single tick while paused.
	CommandStep
	// CommandSpawn adds a particle at a random free in-bounds cell.
	CommandSpawn
	// CommandReset despawns everything and reseeds the demo scene.
	CommandReset
)

// Command is a control message sent to the engine by a viewer.
type Command struct {
	Kind CommandKind
}

// Engine drives the world on two cadences: the resolver runs every frame,
// and a fixed-step accumulator fires discovery and movement every
// Config.Step of simulated time. All world access happens on the Run
// goroutine; viewers interact only through commands and snapshots.
type Engine struct {
	world    *World
	logger   *log.Logger
	commands chan Command

	snapshot     atomic.Pointer[Snapshot]
	snapshotBufs [2][]ParticleView
	snapshotIdx  int

	paused  bool
	closing atomic.Bool
	seed    func(*World)
}

// NewEngine creates an engine around the given world. seed reseeds the
// scene on CommandReset and may be nil.
func NewEngine(world *World, logger *log.Logger, seed func(*World)) *Engine {
	if logger == nil {
		logger = log.Default()
	}
	e := &Engine{
		world:    world,
		logger:   logger.With("component", "engine"),
		commands: make(chan Command, 64),
		seed:     seed,
	}
	e.publishSnapshot()
	return e
}

// World returns the engine's world. Only safe to touch before Run starts.
func (e *Engine) World() *World {
	return e.world
}

// Send queues a viewer command. Commands are dropped when the queue is
// full; they are all safe to lose.
func (e *Engine) Send(cmd Command) {
	select {
	case e.commands <- cmd:
	default:
	}
}

// Snapshot returns the most recently published world snapshot.
func (e *Engine) Snapshot() *Snapshot {
	return e.snapshot.Load()
}

// Shutdown marks the engine as closing so attached viewers disconnect. The
// caller cancels the Run context afterwards.
func (e *Engine) Shutdown() {
	e.closing.Store(true)
}

// Run starts the frame loop. Blocks until ctx is cancelled.
func (e *Engine) Run(ctx context.Context) {
	cfg := e.world.Config()
	frameTime := cfg.FrameTime()
	stepSeconds := cfg.Step.Seconds()

	e.logger.Info("engine started",
		"world", []int{cfg.WorldWidth, cfg.WorldHeight},
		"step", cfg.Step,
		"frame_rate", cfg.FrameRate)

	lastTime := time.Now()
	var accumulator time.Duration

	for {
		select {
		case <-ctx.Done():
			e.logger.Info("engine stopped", "ticks", e.world.Ticks())
			return
		default:
		}

		frameStart := time.Now()
		delta := frameStart.Sub(lastTime)
		lastTime = frameStart

		e.drainCommands()

		// Resolver runs every frame; between ticks the queue is normally
		// empty and this is a no-op.
		e.world.Resolve()

		if !e.paused {
			accumulator += delta
			for accumulator >= cfg.Step {
				accumulator -= cfg.Step
				e.world.Tick(stepSeconds)
			}
		}

		e.publishSnapshot()

		elapsed := time.Since(frameStart)
		if elapsed < frameTime {
			time.Sleep(frameTime - elapsed)
		}
	}
}

// drainCommands applies all queued viewer commands.
func (e *Engine) drainCommands() {
	for {
		select {
		case cmd := <-e.commands:
			e.handleCommand(cmd)
		default:
			return
		}
	}
}

func (e *Engine) handleCommand(cmd Command) {
	switch cmd.Kind {
	case CommandPause:
		e.paused = !e.paused
		e.logger.Debug("pause toggled", "paused", e.paused)
	case CommandStep:
		if e.paused {
			e.world.Tick(e.world.Config().Step.Seconds())
		}
	case CommandSpawn:
		if id, ok := e.spawnRandom(); ok {
			e.logger.Debug("particle spawned", "id", id)
		}
	case CommandReset:
		e.reset()
	}
}

// spawnRandom places a unit-mass particle at a random unoccupied in-bounds
// cell. Gives up after a few attempts when the world is crowded.
func (e *Engine) spawnRandom() (object.ID, bool) {
	bounds := e.world.Bounds()
	for attempt := 0; attempt < 16; attempt++ {
		pos := physics.Vec2{
			X: bounds.Left + rand.Float64()*bounds.Width(),
			Y: bounds.Bottom + rand.Float64()*bounds.Height(),
		}
		if _, occupied := e.world.Occupant(pos.Cell()); occupied {
			continue
		}
		return e.world.Spawn(object.NewParticle(pos, 1)), true
	}
	return 0, false
}

// reset rebuilds the world from its configuration and reseeds the scene.
func (e *Engine) reset() {
	e.world = NewWorld(e.world.Config())
	if e.seed != nil {
		e.seed(e.world)
	}
	e.logger.Info("world reset", "particles", e.world.Store().Len())
}

// publishSnapshot copies the particle state into one of two reusable
// buffers and swaps it in atomically, so viewers never block the loop.
func (e *Engine) publishSnapshot() {
	idx := e.snapshotIdx
	e.snapshotIdx = 1 - e.snapshotIdx

	buf := e.snapshotBufs[idx][:0]
	e.world.Store().All(func(id object.ID, p *object.Particle) bool {
		buf = append(buf, ParticleView{
			ID:   id,
			Pos:  p.Pos,
			Vel:  p.Vel,
			Cell: p.Cell(),
		})
		return true
	})
	e.snapshotBufs[idx] = buf

	e.snapshot.Store(&Snapshot{
		Particles: buf,
		Bounds:    e.world.Bounds(),
		Ticks:     e.world.Ticks(),
		Paused:    e.paused,
		Closing:   e.closing.Load(),
	})
}
