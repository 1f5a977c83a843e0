// whispergrove-server hosts the game over SSH. Every connection plays its
// own independent session. Build:
//
//	go build -o whispergrove-server ./cmd/server
//
// Usage:
//
//	./whispergrove-server [--port 2222] [--key server_host_key]
//
// Connect:
//
//	ssh -t -p 2222 localhost
package main

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/pem"
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	mrand "math/rand"
	"os"
	"time"

	"whispergrove/internal/config"
	"whispergrove/internal/game"
	internalssh "whispergrove/internal/ssh"

	gossh "github.com/gliderlabs/ssh"
	"github.com/google/uuid"
	xssh "golang.org/x/crypto/ssh"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	flag.IntVar(&cfg.SSHPort, "port", cfg.SSHPort, "SSH server port")
	flag.StringVar(&cfg.SSHHostKey, "key", cfg.SSHHostKey, "Path to the PEM-encoded host key (auto-generated if absent)")
	flag.StringVar(&cfg.StartLevel, "level", cfg.StartLevel, "start level: forest or pack")
	flag.Parse()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	lvl, _ := cfg.Level()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))

	signer, err := loadOrCreateHostKey(cfg.SSHHostKey, logger)
	if err != nil {
		log.Fatalf("host key: %v", err)
	}
	dataDir, err := cfg.DataPath()
	if err != nil {
		logger.Warn("run log disabled", "error", err)
		dataDir = ""
	}

	h := &host{cfg: cfg, dataDir: dataDir, logger: logger}
	srv := &gossh.Server{
		Addr:    fmt.Sprintf(":%d", cfg.SSHPort),
		Handler: h.handleSession,
		// Accept PTY requests from any client.
		PtyCallback: func(_ gossh.Context, _ gossh.Pty) bool { return true },
		// Accept any authentication — appropriate for a private home server.
		HostSigners: []gossh.Signer{signer},
	}

	logger.Info("whispergrove SSH server listening", "addr", srv.Addr)
	log.Fatal(srv.ListenAndServe())
}

// host runs one solo game per SSH session. Sessions share nothing but the
// configuration.
type host struct {
	cfg     config.Config
	dataDir string
	logger  *slog.Logger
}

// handleSession is the gliderlabs SSH handler for one connection. It blocks
// for the duration of the game so the SSH session stays open.
func (h *host) handleSession(s gossh.Session) {
	id := uuid.NewString()
	base := h.logger.With("remote", s.RemoteAddr().String())
	logger := base.With("session", id)

	screen, err := internalssh.NewScreen(s)
	if errors.Is(err, internalssh.ErrNoPty) {
		fmt.Fprintf(s, "Whispergrove needs a terminal. Connect with: ssh -t -p %d <host>\n", h.cfg.SSHPort)
		return
	}
	if err != nil {
		logger.Warn("terminal setup failed", "error", err)
		fmt.Fprintf(s, "Terminal setup failed: %v\n", err)
		return
	}
	defer screen.Fini()

	player := internalssh.PlayerName(s.User())
	logger.Info("session started", "player", player)
	g := game.New(screen, game.Options{
		Rand:           mrand.New(mrand.NewSource(h.seed())),
		AphorismChance: h.cfg.AphorismChance,
		StartLevel:     h.cfg.StartLevelName(),
		Logger:         base,
		SessionID:      id,
		Player:         player,
		DataDir:        h.dataDir,
	})
	g.Run(s.Context(), h.cfg.TickInterval)
	logger.Info("session ended")
}

// seed returns the configured seed, so every session replays the same
// aphorisms and pack positions, or a clock seed when none is set.
func (h *host) seed() int64 {
	if h.cfg.Seed != 0 {
		return h.cfg.Seed
	}
	return time.Now().UnixNano()
}

// ─── host key ───────────────────────────────────────────────────────────────

// loadOrCreateHostKey loads a PEM private key from path, or generates and
// persists a new ed25519 key if the file is absent or unreadable.
func loadOrCreateHostKey(path string, logger *slog.Logger) (gossh.Signer, error) {
	if data, err := os.ReadFile(path); err == nil {
		if signer, err := xssh.ParsePrivateKey(data); err == nil {
			logger.Info("loaded host key", "path", path)
			return signer, nil
		}
	}

	logger.Info("generating new ed25519 host key", "path", path)
	_, key, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("generate host key: %w", err)
	}
	signer, err := xssh.NewSignerFromKey(key)
	if err != nil {
		return nil, fmt.Errorf("create signer: %w", err)
	}
	// Persist for next run (non-fatal if it fails).
	pemBlock, err := xssh.MarshalPrivateKey(key, "whispergrove server")
	if err == nil {
		err = os.WriteFile(path, pem.EncodeToMemory(pemBlock), 0o600)
	}
	if err != nil {
		logger.Warn("host key not saved", "path", path, "error", err)
	}
	return signer, nil
}
