package level

import (
	"slices"
	"strings"

	"whispergrove/assets"
	"whispergrove/internal/sink"
	"whispergrove/internal/system"
	"whispergrove/internal/vocab"
)

const (
	packBufferSize = 3
	formedCohesion = 0.6
	memberStrength = 0.3
	cohesionStep   = 0.05
	bufferBonus    = 0.005
	cohesionBonus  = 0.01
)

// Pack is the Vessel of First Light. On top of the shared cycle it buffers
// the player's recent glyphs and forms packs from recognized runs.
type Pack struct {
	core
	buffer   *system.PackBuffer
	groups   []Group
	cohesion float64 // grows by cohesionStep per formed pack, unbounded
}

// NewPack loads the Vessel of First Light into store.
func NewPack(store *vocab.Store, opts Options) *Pack {
	p := &Pack{
		core: newCore(assets.Pack, assets.PackWolves, system.PackRules(),
			system.PackGate, assets.PackLore, store, opts),
		buffer: system.NewPackBuffer(packBufferSize),
	}
	p.seed()
	return p
}

func (p *Pack) seed() {
	p.buffer.Reset()
	p.cohesion = 0
	p.groups = p.groups[:0]
	for _, s := range assets.InitialPacks {
		p.groups = append(p.groups, Group{
			Members:  slices.Clone(s.Members),
			Cohesion: s.Cohesion,
			Strength: float64(len(s.Members)) * memberStrength,
			X:        s.X,
			Y:        s.Y,
		})
	}
}

// Cycle submits one glyph.
func (p *Pack) Cycle(glyph string) Outcome { return p.cycle(glyph, p) }

// Tick advances wolf animation.
func (p *Pack) Tick() { p.tick() }

// Reset restores the level's initial state, including the initial packs.
func (p *Pack) Reset() {
	p.load()
	p.seed()
}

// Groups returns a copy of the packs on the plains.
func (p *Pack) Groups() []Group {
	out := make([]Group, len(p.groups))
	for i, g := range p.groups {
		g.Members = slices.Clone(g.Members)
		out[i] = g
	}
	return out
}

// Environment derives the plains' labels from the score and pack count.
func (p *Pack) Environment() system.Environment {
	return system.PlainsEnvironment(p.score.Value(), len(p.groups))
}

// Stats returns a progress snapshot.
func (p *Pack) Stats() sink.Stats {
	s := p.baseStats(p.Environment().Mood)
	s.Packs = true
	s.PackCount = len(p.groups)
	s.PackCohesion = p.cohesion
	return s
}

func (p *Pack) prepare(glyph string) (float64, [][]string) {
	p.buffer.Push(glyph)
	formed := system.MatchPackPatterns(p.buffer.Glyphs(), assets.PackPatterns)
	for _, members := range formed {
		p.form(members)
	}

	extra := p.cohesion * cohesionBonus
	if n := p.buffer.Len(); n >= 2 {
		extra += float64(n) * bufferBonus
	}
	return extra, formed
}

func (p *Pack) form(members []string) {
	g := Group{
		Members:  slices.Clone(members),
		Cohesion: formedCohesion,
		Strength: float64(len(members)) * memberStrength,
		X:        0.1 + p.opts.Rand.Float64()*0.8,
		Y:        0.2 + p.opts.Rand.Float64()*0.6,
		Formed:   true,
	}
	p.groups = append(p.groups, g)
	p.cohesion += cohesionStep

	p.opts.Logger.Info("pack formed", "members", strings.Join(members, ""), "packs", len(p.groups))
	p.opts.Hub.Feedback("A pack forms: " + strings.Join(members, " "))
	p.opts.Hub.EntityEffect(sink.EntityEffect{
		Cue:    sink.CuePackFormed,
		Glyphs: slices.Clone(members),
		X:      g.X,
		Y:      g.Y,
	})
}

func (p *Pack) progress() system.Progress {
	return system.Progress{
		EchoCount: p.echoes.Len(),
		Score:     p.score.Value(),
		PackCount: len(p.groups),
	}
}
