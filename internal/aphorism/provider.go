// Package aphorism selects flavor lines. Selection is randomized through an
// injected source so scenarios can be replayed.
package aphorism

import (
	"math/rand"
	"slices"

	"whispergrove/assets"
	"whispergrove/internal/sink"
)

const historySize = 20

// Provider implements sink.Aphorisms over the assets corpus.
type Provider struct {
	rng     *rand.Rand
	history []string
}

// New returns a provider drawing from rng.
func New(rng *rand.Rand) *Provider {
	return &Provider{rng: rng}
}

// Category maps progress to the category a contextual line is drawn from.
func Category(ctx sink.AphorismContext) string {
	switch {
	case ctx.Score > 0.9:
		return "harmony"
	case ctx.Score > 0.7:
		return "consciousness"
	case ctx.Score > 0.5:
		return "connection"
	case ctx.EchoCount > 15:
		return "transformation"
	case ctx.EchoCount > 10:
		return "language"
	case ctx.EchoCount > 5:
		return "forest"
	default:
		return "mystery"
	}
}

// Contextual picks a line for the player's current progress.
func (p *Provider) Contextual(ctx sink.AphorismContext) sink.Aphorism {
	cat := Category(ctx)
	return sink.Aphorism{Text: p.pick(assets.Aphorisms[cat]), Category: cat}
}

// EntitySpecific picks a line about the named entity, falling back to a
// mystery line for entities without their own.
func (p *Provider) EntitySpecific(name string) string {
	if lines, ok := assets.EntityAphorisms[name]; ok {
		return p.pick(lines)
	}
	return p.pick(assets.Aphorisms["mystery"])
}

// Transition picks a line for moving between levels.
func (p *Provider) Transition(from, to string) string {
	return p.pick(assets.TransitionAphorisms)
}

// WinLine picks a closing line.
func (p *Provider) WinLine() string {
	return p.pick(assets.WinAphorisms)
}

// History returns the most recent lines, oldest first.
func (p *Provider) History() []string { return slices.Clone(p.history) }

// pick prefers lines not shown recently.
func (p *Provider) pick(lines []string) string {
	if len(lines) == 0 {
		return ""
	}
	fresh := make([]string, 0, len(lines))
	for _, l := range lines {
		if !slices.Contains(p.history, l) {
			fresh = append(fresh, l)
		}
	}
	if len(fresh) == 0 {
		fresh = lines
	}
	line := fresh[p.rng.Intn(len(fresh))]
	p.history = append(p.history, line)
	if over := len(p.history) - historySize; over > 0 {
		p.history = p.history[over:]
	}
	return line
}

var _ sink.Aphorisms = (*Provider)(nil)
