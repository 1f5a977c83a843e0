package level

import (
	"whispergrove/assets"
	"whispergrove/internal/sink"
	"whispergrove/internal/system"
	"whispergrove/internal/vocab"
)

// Forest is Whispergrove, the opening level.
type Forest struct {
	core
}

// NewForest loads Whispergrove into store.
func NewForest(store *vocab.Store, opts Options) *Forest {
	return &Forest{
		core: newCore(assets.Forest, assets.ForestEntities, system.ForestRules(),
			system.ForestGate, assets.ForestLore, store, opts),
	}
}

// Cycle submits one glyph.
func (f *Forest) Cycle(glyph string) Outcome { return f.cycle(glyph, f) }

// Tick advances entity animation and reveals hidden entities.
func (f *Forest) Tick() { f.tick() }

// Reset restores the level's initial state.
func (f *Forest) Reset() { f.load() }

// Groups returns nil; the forest has no packs.
func (f *Forest) Groups() []Group { return nil }

// Environment derives the grove's labels from the score.
func (f *Forest) Environment() system.Environment {
	return system.ForestEnvironment(f.score.Value())
}

// Stats returns a progress snapshot.
func (f *Forest) Stats() sink.Stats {
	return f.baseStats(f.Environment().Mood)
}

func (f *Forest) prepare(string) (float64, [][]string) { return 0, nil }

func (f *Forest) progress() system.Progress {
	return system.Progress{EchoCount: f.echoes.Len(), Score: f.score.Value()}
}
