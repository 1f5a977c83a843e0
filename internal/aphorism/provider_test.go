package aphorism

import (
	"math/rand"
	"slices"
	"testing"

	"whispergrove/assets"
	"whispergrove/internal/sink"
)

func TestCategory(t *testing.T) {
	tests := []struct {
		score  float64
		echoes int
		want   string
	}{
		{0.95, 0, "harmony"},
		{0.8, 0, "consciousness"},
		{0.6, 30, "connection"},
		{0.1, 16, "transformation"},
		{0.1, 11, "language"},
		{0.1, 6, "forest"},
		{0.1, 5, "mystery"},
		{0, 0, "mystery"},
	}
	for _, tc := range tests {
		ctx := sink.AphorismContext{Score: tc.score, EchoCount: tc.echoes}
		if got := Category(ctx); got != tc.want {
			t.Errorf("Category(%v, %d) = %s; want %s", tc.score, tc.echoes, got, tc.want)
		}
	}
}

func TestContextualDrawsFromCategory(t *testing.T) {
	p := New(rand.New(rand.NewSource(1)))
	a := p.Contextual(sink.AphorismContext{Score: 0.95})
	if a.Category != "harmony" || !slices.Contains(assets.Aphorisms["harmony"], a.Text) {
		t.Errorf("Contextual = %+v", a)
	}
}

func TestSeededSelectionIsReproducible(t *testing.T) {
	a := New(rand.New(rand.NewSource(99)))
	b := New(rand.New(rand.NewSource(99)))
	for i := 0; i < 10; i++ {
		ctx := sink.AphorismContext{EchoCount: i * 2}
		x, y := a.Contextual(ctx), b.Contextual(ctx)
		if x != y {
			t.Fatalf("draw %d differs: %+v vs %+v", i, x, y)
		}
	}
}

func TestAvoidsRecentRepeats(t *testing.T) {
	p := New(rand.New(rand.NewSource(3)))
	lines := assets.WinAphorisms
	seen := map[string]bool{}
	for range lines {
		seen[p.WinLine()] = true
	}
	if len(seen) != len(lines) {
		t.Errorf("drew %d distinct lines out of %d before repeating", len(seen), len(lines))
	}
}

func TestHistoryBounded(t *testing.T) {
	p := New(rand.New(rand.NewSource(5)))
	for i := 0; i < 50; i++ {
		p.Contextual(sink.AphorismContext{EchoCount: i})
	}
	if n := len(p.History()); n != historySize {
		t.Errorf("history length = %d; want %d", n, historySize)
	}
}

func TestEntitySpecificFallback(t *testing.T) {
	p := New(rand.New(rand.NewSource(1)))
	if got := p.EntitySpecific("Sibroot"); !slices.Contains(assets.EntityAphorisms["Sibroot"], got) {
		t.Errorf("EntitySpecific(Sibroot) = %q", got)
	}
	if got := p.EntitySpecific("Nobody"); !slices.Contains(assets.Aphorisms["mystery"], got) {
		t.Errorf("fallback = %q; want a mystery line", got)
	}
	if got := p.Transition("a", "b"); !slices.Contains(assets.TransitionAphorisms, got) {
		t.Errorf("Transition = %q", got)
	}
}
