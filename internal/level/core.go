package level

import (
	"fmt"
	"time"

	"whispergrove/assets"
	"whispergrove/internal/factory"
	"whispergrove/internal/sink"
	"whispergrove/internal/system"
	"whispergrove/internal/vocab"
)

const (
	amplifyHarmonics  = 0.1
	amplifyCollective = 0.08
	summaryDelay      = 2 * time.Second
)

// rules is what a level kind adds to the shared cycle.
type rules interface {
	// prepare runs after the echo is recorded and before scoring. It returns
	// the extra score bonus and any packs formed.
	prepare(glyph string) (extra float64, formed [][]string)
	progress() system.Progress
	Environment() system.Environment
	Stats() sink.Stats
}

// core holds the state every level kind shares. It is also the
// EffectTarget handed to the registry, so entity echoes reach the level
// through these narrow methods only.
type core struct {
	def      assets.LevelDef
	entities []assets.EntityDef
	gate     system.Gate
	lore     []assets.LoreStep
	opts     Options

	vocab  *vocab.Store
	score  *system.Harmonics
	echoes system.EchoMemory
	reg    *system.Registry
	won    bool
}

func newCore(def assets.LevelDef, entities []assets.EntityDef, scoring system.HarmonicsRules,
	gate system.Gate, lore []assets.LoreStep, store *vocab.Store, opts Options) core {
	opts = opts.withDefaults()
	c := core{
		def:      def,
		entities: entities,
		gate:     gate,
		lore:     lore,
		opts:     opts,
		vocab:    store,
		score:    system.NewHarmonics(scoring, opts.Hub),
	}
	c.load()
	return c
}

// load puts the level in its initial state. The vocabulary only grows.
func (c *core) load() {
	c.vocab.ReplaceActive(c.def.ActiveGlyphs)
	for _, g := range c.def.InitialVocabulary {
		c.vocab.Teach(g)
	}
	c.score.Reset()
	c.echoes.Reset()
	c.reg = system.NewRegistry(factory.Populate(c.entities, c.opts.Logger), c.opts.Hub)
	c.reg.Now = c.opts.Now
	c.reg.Emerge = c.def.Emerge
	c.won = false
}

func (c *core) Name() string { return c.def.Name }

func (c *core) Won() bool { return c.won }

func (c *core) Echoes(n int) []string { return c.echoes.Window(n) }

func (c *core) Entities() []system.EntityView { return c.reg.Entities() }

func (c *core) History() []system.Interaction { return c.reg.History() }

func (c *core) Lore() string {
	return system.Lore(c.lore, c.echoes.Len(), c.score.Value())
}

func (c *core) sealed() {}

// EffectTarget

func (c *core) Release(glyph string) bool { return c.vocab.Release(glyph) }

func (c *core) Teach(glyph string) bool { return c.vocab.Teach(glyph) }

func (c *core) AmplifyScore() float64 { return c.score.Amplify(amplifyHarmonics) }

func (c *core) AmplifyCollective() float64 { return c.score.Amplify(amplifyCollective) }

func (c *core) Previous() (string, bool) { return c.echoes.Previous() }

// cycle runs validate, record, score, trigger, environment, gate, and the
// aphorism roll for one glyph.
func (c *core) cycle(glyph string, r rules) Outcome {
	out := Outcome{Glyph: glyph}
	if c.won {
		out.Frozen = true
		out.Score = c.score.Value()
		return out
	}
	hub := c.opts.Hub

	if !c.vocab.IsActive(glyph) {
		c.score.Reject()
		hub.Feedback(c.def.Unintelligible)
		out.Err = fmt.Errorf("%w: %q", ErrUnintelligible, glyph)
		out.Score = c.score.Value()
		c.opts.Logger.Debug("glyph rejected", "level", c.def.Name, "glyph", glyph, "harmonics", out.Score)
		return out
	}
	out.Accepted = true

	c.echoes.Append(glyph)
	extra, formed := r.prepare(glyph)
	out.Formed = formed
	out.Delta = c.score.Accept(glyph, extra)
	hub.GlyphAccepted(glyph, c.score.Value())

	if id, ok := c.reg.FindByGlyph(glyph); ok {
		fx := c.reg.Trigger(id, c)
		out.Entity = &fx
	}

	env := r.Environment()
	out.Labels = env.Labels
	hub.EnvironmentChanged(env.Labels)

	out.Score = c.score.Value()
	c.opts.Logger.Debug("glyph accepted", "level", c.def.Name, "glyph", glyph,
		"delta", out.Delta, "harmonics", out.Score)

	if c.gate.Check(r.progress()) {
		c.won = true
		out.Won = true
		c.win(r.Stats())
		return out
	}

	if c.opts.Rand.Float64() < c.opts.AphorismChance {
		a := hub.Contextual(sink.AphorismContext{
			Score:     out.Score,
			EchoCount: c.echoes.Len(),
			Mood:      env.Mood,
		})
		if a.Text != "" {
			hub.ShowAphorism(a.Text)
			out.Aphorism = a.Text
		}
	}
	return out
}

func (c *core) win(stats sink.Stats) {
	hub := c.opts.Hub
	c.opts.Logger.Info("level complete", "level", c.def.Name,
		"echoes", stats.EchoCount, "harmonics", stats.Score)
	hub.WinSequence(stats)
	if line := hub.WinAphorism(); line != "" {
		hub.ShowAphorism(line)
	}
	hub.LevelCompletion(c.def.Name, stats)
	if stats.Packs {
		hub.FeedbackAfter(summaryDelay, fmt.Sprintf("%s complete: %d echoes, %d packs, harmonics %.0f%%.",
			c.def.Name, stats.EchoCount, stats.PackCount, stats.Score*100))
	}
}

// tick decays entity glow and runs the reveal check. A won level only
// animates.
func (c *core) tick() {
	c.reg.DecayPulses()
	if c.won {
		return
	}
	for _, name := range c.reg.CheckReveals(c) {
		c.opts.Logger.Info("entity revealed", "level", c.def.Name, "entity", name)
		if line := c.opts.Hub.EntityAphorism(name); line != "" {
			c.opts.Hub.ShowAphorism(line)
		}
	}
}

func (c *core) baseStats(mood string) sink.Stats {
	views := c.reg.Entities()
	entities := make([]sink.EntityStat, 0, len(views))
	for _, v := range views {
		entities = append(entities, sink.EntityStat{
			Name:          v.Name,
			Count:         v.Count,
			LastTriggered: v.LastTriggered,
			Hidden:        v.Hidden,
		})
	}
	return sink.Stats{
		Level:         c.def.Name,
		EchoCount:     c.echoes.Len(),
		Score:         c.score.Value(),
		Mood:          mood,
		PatternBonus:  c.score.PatternBonus(),
		SequenceBonus: c.score.SequenceBonus(),
		Entities:      entities,
	}
}
