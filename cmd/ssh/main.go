package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/logging"
	"github.com/tomz197/particlebox/internal/config"
	"github.com/tomz197/particlebox/internal/draw"
	"github.com/tomz197/particlebox/internal/sim"
	"github.com/tomz197/particlebox/internal/view"
)

const (
	defaultHost        = "::"
	defaultPort        = "2222"
	defaultHostKeyPath = ".ssh/particlebox_host_key"
	shutdownGrace      = 10 * time.Second
)

// Shared engine - every SSH session attaches a viewer to the same world.
var (
	engine       *sim.Engine
	cancelEngine context.CancelFunc
	engineOnce   sync.Once
)

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "particlebox",
	})

	host := config.GetEnv("SSH_HOST", defaultHost)
	port := config.GetEnv("SSH_PORT", defaultPort)
	hostKeyPath := config.GetEnv("SSH_HOST_KEY", defaultHostKeyPath)

	engineOnce.Do(func() {
		cfg := sim.ConfigFromEnv()
		world := sim.NewWorld(cfg)
		particles := config.GetEnvInt("SIM_PARTICLES", 8)
		seed := func(w *sim.World) { sim.SeedDemo(w, particles) }
		seed(world)
		engine = sim.NewEngine(world, logger, seed)

		var ctx context.Context
		ctx, cancelEngine = context.WithCancel(context.Background())
		go engine.Run(ctx)
		logger.Info("engine started", "world", []int{cfg.WorldWidth, cfg.WorldHeight})
	})

	opts := []ssh.Option{
		wish.WithAddress(net.JoinHostPort(host, port)),
		wish.WithMiddleware(
			viewerMiddleware(logger),
			activeterm.Middleware(),
			logging.MiddlewareWithLogger(logger),
		),
		// Reduce latency for interactive keys.
		ssh.WrapConn(func(ctx ssh.Context, conn net.Conn) net.Conn {
			if tcpConn, ok := conn.(*net.TCPConn); ok {
				_ = tcpConn.SetNoDelay(true)
			}
			return conn
		}),
	}
	if hostKeyPath != "" {
		opts = append(opts, wish.WithHostKeyPath(hostKeyPath))
	}

	s, err := wish.NewServer(opts...)
	if err != nil {
		logger.Fatal("create server", "err", err)
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	logger.Info("starting SSH server", "host", host, "port", port)
	go func() {
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			logger.Fatal("server error", "err", err)
		}
	}()

	<-done
	logger.Info("shutting down")

	// Tell connected viewers to disconnect, then stop the engine.
	engine.Shutdown()
	time.Sleep(time.Second)
	cancelEngine()

	ctx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()
	if err := s.Shutdown(ctx); err != nil {
		logger.Fatal("shutdown error", "err", err)
	}
}

// viewerMiddleware attaches a read/control viewer for each SSH session.
func viewerMiddleware(logger *log.Logger) wish.Middleware {
	return func(next ssh.Handler) ssh.Handler {
		return func(sess ssh.Session) {
			pty, winCh, ok := sess.Pty()
			if !ok {
				fmt.Fprintln(sess, "Error: PTY required. Connect with: ssh -t user@host")
				return
			}

			logger.Info("session opened",
				"user", sess.User(),
				"term", pty.Term,
				"size", fmt.Sprintf("%dx%d", pty.Window.Width, pty.Window.Height))

			tracker := newSizeTracker(pty.Window.Width, pty.Window.Height)
			go func() {
				for win := range winCh {
					tracker.update(win.Width, win.Height)
				}
			}()

			viewer := view.New(engine, bufio.NewReader(sess), sess, view.Options{
				TermSizeFunc: tracker.getSize,
			})
			if err := viewer.Run(sess.Context()); err != nil && !errors.Is(err, context.Canceled) {
				logger.Error("viewer error", "user", sess.User(), "err", err)
			}

			logger.Info("session closed", "user", sess.User())
			next(sess)
		}
	}
}

// sizeTracker tracks terminal size from SSH window change events.
type sizeTracker struct {
	mu     sync.RWMutex
	width  int
	height int
}

func newSizeTracker(width, height int) *sizeTracker {
	return &sizeTracker{width: width, height: height}
}

func (s *sizeTracker) update(width, height int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.width = width
	s.height = height
}

func (s *sizeTracker) getSize() (int, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.width, s.height, nil
}

// Ensure sizeTracker.getSize satisfies draw.TermSizeFunc.
var _ draw.TermSizeFunc = (*sizeTracker)(nil).getSize
