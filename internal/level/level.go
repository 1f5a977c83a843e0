// Package level runs one glyph-submission cycle for the active level. The
// level kinds form a closed set: Forest and Pack.
package level

import (
	"errors"
	"log/slog"
	"math/rand"
	"time"

	"whispergrove/internal/sink"
	"whispergrove/internal/system"
)

// ErrUnintelligible marks a glyph outside the active set. It is reported in
// an Outcome, never returned as a failure.
var ErrUnintelligible = errors.New("unintelligible glyph")

// Outcome is what one cycle did.
type Outcome struct {
	Glyph    string
	Accepted bool
	Err      error // wraps ErrUnintelligible when the glyph was rejected
	Frozen   bool  // the level was already won; nothing changed
	Delta    float64
	Score    float64
	Entity   *system.Outcome
	Formed   [][]string // packs formed this cycle
	Labels   []sink.Label
	Won      bool // the gate was satisfied on this cycle
	Aphorism string
}

// Controller is a level. Cycle and Tick are the only mutating calls besides
// Reset; everything else returns snapshots.
type Controller interface {
	Name() string
	Cycle(glyph string) Outcome
	Tick()
	Reset()
	Won() bool
	Stats() sink.Stats
	Environment() system.Environment
	Lore() string
	Echoes(n int) []string
	Entities() []system.EntityView
	History() []system.Interaction
	Groups() []Group

	sealed()
}

// Group is a pack roaming the plains.
type Group struct {
	Members  []string
	Cohesion float64
	Strength float64
	X, Y     float64
	Formed   bool // formed by the player rather than present at load
}

// Options carries the collaborators shared by every level.
type Options struct {
	Hub            *sink.Hub
	Rand           *rand.Rand
	AphorismChance float64
	Logger         *slog.Logger
	Now            func() time.Time
}

func (o Options) withDefaults() Options {
	if o.Rand == nil {
		o.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if o.Logger == nil {
		o.Logger = slog.New(slog.DiscardHandler)
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	return o
}

var (
	_ Controller = (*Forest)(nil)
	_ Controller = (*Pack)(nil)
)
