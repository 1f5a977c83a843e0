package system

import (
	"whispergrove/assets"
	"whispergrove/internal/sink"
)

// HarmonicsRules parameterises the harmonics score for one level.
type HarmonicsRules struct {
	Base           float64 // added for every accepted glyph
	Window         int     // trailing glyphs considered for patterns
	PatternWeight  float64
	PatternCap     int
	SequenceWeight float64
	SequenceCap    int
	SequenceGlyphs map[string]bool
	GlyphBonus     map[string]float64
	DefaultBonus   float64
	Penalty        float64 // subtracted for an unintelligible glyph
	JumpThreshold  float64 // deltas above this earn an audio cue; zero disables it
}

// ForestRules are the Whispergrove scoring rules.
func ForestRules() HarmonicsRules {
	seq := make(map[string]bool, len(assets.ForestEntities))
	for _, def := range assets.ForestEntities {
		seq[def.Glyph] = true
	}
	return HarmonicsRules{
		Base:           0.02,
		Window:         5,
		PatternWeight:  0.01,
		PatternCap:     5,
		SequenceWeight: 0.005,
		SequenceCap:    3,
		SequenceGlyphs: seq,
		GlyphBonus:     assets.ForestGlyphBonus,
		DefaultBonus:   assets.ForestDefaultBonus,
		Penalty:        0.05,
		JumpThreshold:  0.03,
	}
}

// PackRules are the plains scoring rules. Wolf glyphs earn a bonus
// proportional to the wolf's influence; pack-buffer and cohesion bonuses are
// supplied by the caller on each Accept. The plains have no progression cue.
func PackRules() HarmonicsRules {
	bonus := make(map[string]float64, len(assets.PackWolves))
	for _, def := range assets.PackWolves {
		bonus[def.Glyph] = def.Influence * 0.025
	}
	return HarmonicsRules{
		Base:       0.01,
		Window:     5,
		GlyphBonus: bonus,
		Penalty:    0.05,
	}
}

// Harmonics is the bounded resonance score. The value is always in [0, 1].
type Harmonics struct {
	rules    HarmonicsRules
	hub      *sink.Hub
	value    float64
	window   []string
	pattern  int
	sequence int
}

// NewHarmonics returns a zeroed score using rules. hub may be nil.
func NewHarmonics(rules HarmonicsRules, hub *sink.Hub) *Harmonics {
	return &Harmonics{rules: rules, hub: hub}
}

// Accept records glyph and raises the score. extra is any level-specific
// bonus; negative extras are ignored. It returns the delta actually applied
// after clamping.
func (h *Harmonics) Accept(glyph string, extra float64) float64 {
	h.window = append(h.window, glyph)
	if over := len(h.window) - h.rules.Window; over > 0 {
		h.window = h.window[over:]
	}
	h.pattern = DetectPatterns(h.window, h.rules.PatternCap)
	h.sequence = DetectSequences(h.window, h.rules.SequenceGlyphs, h.rules.SequenceCap)

	bonus, ok := h.rules.GlyphBonus[glyph]
	if !ok {
		bonus = h.rules.DefaultBonus
	}
	raw := h.rules.Base +
		float64(h.pattern)*h.rules.PatternWeight +
		float64(h.sequence)*h.rules.SequenceWeight +
		bonus + max(extra, 0)

	applied := h.raise(raw)
	if h.rules.JumpThreshold > 0 && raw > h.rules.JumpThreshold {
		h.hub.ScoreJump(h.value)
	}
	return applied
}

// Reject applies the unintelligible-glyph penalty and returns the amount
// actually removed.
func (h *Harmonics) Reject() float64 {
	before := h.value
	h.value = max(h.value-h.rules.Penalty, 0)
	return before - h.value
}

// Amplify raises the score by amount and returns the applied delta.
func (h *Harmonics) Amplify(amount float64) float64 {
	return h.raise(max(amount, 0))
}

func (h *Harmonics) raise(amount float64) float64 {
	before := h.value
	h.value = min(h.value+amount, 1)
	return h.value - before
}

// Value returns the current score.
func (h *Harmonics) Value() float64 { return h.value }

// PatternBonus is the capped pattern score of the last accepted glyph.
func (h *Harmonics) PatternBonus() int { return h.pattern }

// SequenceBonus is the capped sequence score of the last accepted glyph.
func (h *Harmonics) SequenceBonus() int { return h.sequence }

// Reset zeroes the score and forgets the window.
func (h *Harmonics) Reset() {
	h.value = 0
	h.window = nil
	h.pattern = 0
	h.sequence = 0
}
