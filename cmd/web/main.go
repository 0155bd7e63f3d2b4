// Command web serves a browser viewer: an embedded page that renders live
// world snapshots streamed over a websocket.
package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "embed"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"
	"github.com/tomz197/particlebox/internal/config"
	"github.com/tomz197/particlebox/internal/sim"
)

const (
	defaultHost    = "0.0.0.0"
	defaultPort    = "8080"
	streamInterval = 100 * time.Millisecond
)

//go:embed index.html
var htmlPage []byte

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "particlebox-web",
	})

	host := config.GetEnv("WEB_HOST", defaultHost)
	port := config.GetEnv("WEB_PORT", defaultPort)

	cfg := sim.ConfigFromEnv()
	world := sim.NewWorld(cfg)
	particles := config.GetEnvInt("SIM_PARTICLES", 8)
	seed := func(w *sim.World) { sim.SeedDemo(w, particles) }
	seed(world)
	engine := sim.NewEngine(world, logger, seed)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go engine.Run(ctx)

	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write(htmlPage)
	})
	mux.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		serveWS(engine, logger, w, r)
	})

	addr := net.JoinHostPort(host, port)
	server := &http.Server{Addr: addr, Handler: mux}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	logger.Info("starting web server", "addr", addr)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server error", "err", err)
		}
	}()

	<-done
	logger.Info("shutting down")
	engine.Shutdown()
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	_ = server.Shutdown(shutdownCtx)
}

// clientMessage is the control schema browsers may send back.
type clientMessage struct {
	Pause *bool `json:"pause,omitempty"`
	Spawn bool  `json:"spawn,omitempty"`
	Reset bool  `json:"reset,omitempty"`
}

// serveWS streams snapshots to one websocket client and applies its
// control messages until it disconnects.
func serveWS(engine *sim.Engine, logger *log.Logger, w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Error("websocket upgrade", "err", err)
		return
	}
	defer conn.Close()

	logger.Info("websocket client connected", "remote", r.RemoteAddr)

	// Reader: control messages and disconnect detection.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			var msg clientMessage
			if err := conn.ReadJSON(&msg); err != nil {
				return
			}
			if msg.Pause != nil {
				engine.Send(sim.Command{Kind: sim.CommandPause})
			}
			if msg.Spawn {
				engine.Send(sim.Command{Kind: sim.CommandSpawn})
			}
			if msg.Reset {
				engine.Send(sim.Command{Kind: sim.CommandReset})
			}
		}
	}()

	ticker := time.NewTicker(streamInterval)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			logger.Info("websocket client disconnected", "remote", r.RemoteAddr)
			return
		case <-ticker.C:
			snapshot := engine.Snapshot()
			if err := conn.WriteJSON(snapshot); err != nil {
				return
			}
			if snapshot.Closing {
				return
			}
		}
	}
}
