package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/tomz197/particlebox/internal/config"
	"github.com/tomz197/particlebox/internal/sim"
	"github.com/tomz197/particlebox/internal/view"
	"golang.org/x/term"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "sim error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	logger := newLogger()

	cfg := sim.ConfigFromEnv()
	world := sim.NewWorld(cfg)
	particles := config.GetEnvInt("SIM_PARTICLES", 8)
	seed := func(w *sim.World) { sim.SeedDemo(w, particles) }
	seed(world)

	engine := sim.NewEngine(world, logger, seed)

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("enable raw mode: %w", err)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go engine.Run(ctx)

	viewer := view.New(engine, bufio.NewReader(os.Stdin), os.Stdout, view.Options{})
	return viewer.Run(ctx)
}

// newLogger returns a logger that stays off the raw-mode terminal: it
// writes to the file named by SIM_LOG, or nowhere.
func newLogger() *log.Logger {
	path := config.GetEnv("SIM_LOG", "")
	if path == "" {
		return log.New(io.Discard)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return log.New(io.Discard)
	}
	return log.New(f)
}
