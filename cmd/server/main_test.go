package main

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"whispergrove/internal/config"
)

func TestHostKeyIsPersisted(t *testing.T) {
	logger := slog.New(slog.DiscardHandler)
	path := filepath.Join(t.TempDir(), "host_key")

	first, err := loadOrCreateHostKey(path, logger)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("key not written: %v", err)
	}
	second, err := loadOrCreateHostKey(path, logger)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if !bytes.Equal(first.PublicKey().Marshal(), second.PublicKey().Marshal()) {
		t.Error("reloaded key differs from the generated one")
	}
}

func TestHostKeyReplacesGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "host_key")
	if err := os.WriteFile(path, []byte("not a key"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := loadOrCreateHostKey(path, slog.New(slog.DiscardHandler)); err != nil {
		t.Fatalf("loadOrCreateHostKey: %v", err)
	}
}

func TestSessionSeed(t *testing.T) {
	fixed := &host{cfg: config.Config{Seed: 99}}
	if fixed.seed() != 99 {
		t.Errorf("seed = %d; want 99", fixed.seed())
	}
	clock := &host{}
	if clock.seed() == 0 {
		t.Error("clock seed should not be zero")
	}
}
