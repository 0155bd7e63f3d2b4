// Package view renders engine snapshots to a terminal and forwards
// keyboard commands. A viewer is read-only with respect to the world; it
// talks to the engine through commands and snapshots only, so any number
// of viewers can attach to one engine.
package view

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/tomz197/particlebox/internal/draw"
	"github.com/tomz197/particlebox/internal/input"
	"github.com/tomz197/particlebox/internal/sim"
)

// hudRows is the number of terminal rows reserved below the canvas.
const hudRows = 1

// cellColumns is how many terminal columns one world cell spans at full
// resolution. Two columns per one row keeps cells roughly square.
const cellColumns = 2

// Options configures a viewer.
type Options struct {
	TermSizeFunc draw.TermSizeFunc // Defaults to os.Stdout size
	FrameRate    int               // Defaults to the engine frame rate
}

// Viewer renders snapshots from an engine to a terminal.
type Viewer struct {
	engine       *sim.Engine
	writer       io.Writer
	stream       *input.Stream
	canvas       *draw.Canvas
	chunkWriter  *draw.ChunkWriter
	termSizeFunc draw.TermSizeFunc
	frameTime    time.Duration
	worldWidth   int
	worldHeight  int
}

// New creates a viewer reading keys from r and rendering to w.
func New(engine *sim.Engine, r *bufio.Reader, w io.Writer, opts Options) *Viewer {
	termSizeFunc := opts.TermSizeFunc
	if termSizeFunc == nil {
		termSizeFunc = draw.DefaultTermSizeFunc
	}
	rate := opts.FrameRate
	if rate <= 0 {
		rate = engine.World().Config().FrameRate
	}

	cfg := engine.World().Config()
	termWidth, termHeight, _ := termSizeFunc()
	renderW, renderH, offCol, offRow := clampTermSize(termWidth, termHeight, cfg.WorldWidth, cfg.WorldHeight)

	canvas := draw.NewCanvas(renderW, renderH, float64(cfg.WorldWidth), float64(cfg.WorldHeight))
	canvas.SetOffset(offCol, offRow)

	return &Viewer{
		engine:       engine,
		writer:       w,
		stream:       input.StartStream(r),
		canvas:       canvas,
		chunkWriter:  draw.NewChunkWriter(w, offCol, offRow),
		termSizeFunc: termSizeFunc,
		frameTime:    time.Second / time.Duration(rate),
		worldWidth:   cfg.WorldWidth,
		worldHeight:  cfg.WorldHeight,
	}
}

// Run starts the render loop. Blocks until the viewer quits, the engine
// closes, or ctx is cancelled.
func (v *Viewer) Run(ctx context.Context) error {
	draw.HideCursor(v.writer)
	defer draw.ShowCursor(v.writer)
	draw.ClearScreen(v.writer)

	for {
		select {
		case <-ctx.Done():
			draw.ClearScreen(v.writer)
			return ctx.Err()
		default:
		}

		frameStart := time.Now()

		if quit := v.processInput(); quit {
			draw.ClearScreen(v.writer)
			return nil
		}

		snapshot := v.engine.Snapshot()
		if snapshot.Closing {
			draw.ClearScreen(v.writer)
			fmt.Fprint(v.writer, "simulation shutting down\r\n")
			return nil
		}

		v.updateScreen()
		if err := v.drawFrame(snapshot); err != nil {
			return fmt.Errorf("draw frame: %w", err)
		}

		elapsed := time.Since(frameStart)
		if elapsed < v.frameTime {
			time.Sleep(v.frameTime - elapsed)
		}
	}
}

// processInput reads pending keys and forwards them as engine commands.
// Returns true when the viewer should quit.
func (v *Viewer) processInput() bool {
	in := input.ReadInput(v.stream)
	if in.Quit {
		return true
	}
	if in.Pause {
		v.engine.Send(sim.Command{Kind: sim.CommandPause})
	}
	if in.Step {
		v.engine.Send(sim.Command{Kind: sim.CommandStep})
	}
	if in.Spawn {
		v.engine.Send(sim.Command{Kind: sim.CommandSpawn})
	}
	if in.Reset {
		v.engine.Send(sim.Command{Kind: sim.CommandReset})
	}
	return false
}

// updateScreen handles terminal resize, clamping to the max render
// resolution and clearing residual content on actual changes.
func (v *Viewer) updateScreen() {
	termWidth, termHeight, err := v.termSizeFunc()
	if err != nil {
		return
	}
	renderW, renderH, offCol, offRow := clampTermSize(termWidth, termHeight, v.worldWidth, v.worldHeight)

	if renderW != v.canvas.TerminalWidth() || renderH != v.canvas.TerminalHeight() ||
		offCol != v.canvas.OffsetCol() || offRow != v.canvas.OffsetRow() {
		draw.ClearScreen(v.writer)
	}

	v.canvas.Resize(renderW, renderH)
	v.canvas.SetOffset(offCol, offRow)
	v.chunkWriter.SetOffset(offCol, offRow)
}

// drawFrame renders one snapshot: the world border, every occupied cell as
// a filled block, and the HUD line.
func (v *Viewer) drawFrame(snapshot *sim.Snapshot) error {
	draw.ClearScreen(v.writer)
	v.canvas.Clear()

	bounds := snapshot.Bounds
	for _, p := range snapshot.Particles {
		// Cell (cx, cy) covers world [cx,cx+1) x [cy,cy+1); canvas y grows
		// downward, world y grows upward.
		lx := float64(p.Cell.X) - bounds.Left
		ly := bounds.Top - float64(p.Cell.Y+1)
		v.canvas.FillCell(lx, ly)
	}

	v.canvas.RenderBorder(v.chunkWriter)
	v.canvas.Render(v.chunkWriter)

	hud := fmt.Sprintf(" particles %d | tick %d", len(snapshot.Particles), snapshot.Ticks)
	if snapshot.Paused {
		hud += " | PAUSED (n steps)"
	}
	hud += " | space pause  s spawn  r reset  q quit"
	hudRow := v.canvas.TerminalHeight() + 1
	if v.canvas.OffsetRow() >= 1 {
		hudRow++ // Below the border's bottom edge
	}
	v.chunkWriter.WriteAt(1, hudRow, hud)

	return v.chunkWriter.Flush()
}

// clampTermSize clamps terminal dimensions to the world's max render
// resolution and computes the centering offset for the render area.
func clampTermSize(termWidth, termHeight, worldWidth, worldHeight int) (renderWidth, renderHeight, offsetCol, offsetRow int) {
	renderWidth = termWidth
	renderHeight = termHeight - hudRows
	if maxW := worldWidth * cellColumns; renderWidth > maxW {
		renderWidth = maxW
	}
	if renderHeight > worldHeight {
		renderHeight = worldHeight
	}
	if renderWidth < 1 {
		renderWidth = 1
	}
	if renderHeight < 1 {
		renderHeight = 1
	}
	offsetCol = (termWidth - renderWidth) / 2
	offsetRow = (termHeight - hudRows - renderHeight) / 2
	if offsetCol < 0 {
		offsetCol = 0
	}
	if offsetRow < 0 {
		offsetRow = 0
	}
	return
}
