// whispergrove is a terminal game of listening: submit glyphs to a living
// forest, wake its entities, and follow the echoes onto the plains.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"whispergrove/internal/audio"
	"whispergrove/internal/config"
	"whispergrove/internal/game"
	"whispergrove/internal/sink"

	"github.com/gdamore/tcell/v2"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	flag.BoolVar(&cfg.AudioEnabled, "audio", cfg.AudioEnabled, "play sound cues")
	flag.IntVar(&cfg.MasterVolume, "volume", cfg.MasterVolume, "master volume, 0-100")
	flag.Int64Var(&cfg.Seed, "seed", cfg.Seed, "random seed (0 seeds from the clock)")
	flag.StringVar(&cfg.StartLevel, "level", cfg.StartLevel, "start level: forest or pack")
	flag.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "debug, info, warn or error")
	flag.Parse()

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg config.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	lvl, _ := cfg.Level()

	// stderr belongs to the screen, so logs go to a file in the data dir.
	logger := slog.New(slog.DiscardHandler)
	dataDir, err := cfg.DataPath()
	if err != nil {
		dataDir = ""
	} else if w, err := openLog(dataDir); err == nil {
		defer w.Close()
		logger = slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	var sound sink.Audio
	if cfg.AudioEnabled {
		eng := audio.New(cfg.MasterVolume)
		if err := eng.Init(); err != nil {
			logger.Warn("audio unavailable, continuing silently", "error", err)
		}
		defer eng.Close()
		if eng.Enabled() {
			sound = eng
		}
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g := game.New(screen, game.Options{
		Rand:           rand.New(rand.NewSource(seed)),
		AphorismChance: cfg.AphorismChance,
		StartLevel:     cfg.StartLevelName(),
		Audio:          sound,
		Logger:         logger,
		Player:         os.Getenv("USER"),
		DataDir:        dataDir,
	})
	logger.Info("session started", "seed", seed, "level", cfg.StartLevelName())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	g.Run(ctx, cfg.TickInterval)
	return nil
}

func openLog(dir string) (io.WriteCloser, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return os.OpenFile(filepath.Join(dir, "whispergrove.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
}
