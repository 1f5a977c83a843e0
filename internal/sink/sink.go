// Package sink defines the collaborators the core notifies: the visual
// scene, the audio engine, the text surface, and the aphorism provider.
// Every notification is fire-and-forget; nothing a sink does feeds back
// into harmonics, vocabulary, or entity state.
package sink

import "time"

// Cue names a visual effect attached to an entity or the scene.
type Cue uint8

const (
	CueTrigger Cue = iota // entity answered a glyph
	CueRelease            // glyph released into the active set
	CueTeach              // glyph learned
	CueDecay              // glyph power waning
	CueAmplify            // harmonics boosted
	CueSuggest            // pack glyphs suggested
	CueIsolate            // entity strengthened in solitude
	CueMirror             // previous echo mirrored
	CueReveal             // hidden entity revealed
	CuePackFormed         // player formed a pack
)

// EntityEffect is the payload of a visual cue.
type EntityEffect struct {
	Cue    Cue
	Entity string
	Glyph  string
	Glyphs []string
	X, Y   float64 // normalized scene position of the source
}

// Label is one derived environment reading, e.g. {"canopy", "Luminous"}.
type Label struct {
	Name  string
	Value string
}

// Stats is a read-only progress snapshot.
type Stats struct {
	Level         string
	EchoCount     int
	Score         float64
	Mood          string
	PatternBonus  int
	SequenceBonus int
	Packs         bool // the level tracks packs
	PackCount     int
	PackCohesion  float64
	Entities      []EntityStat
}

// EntityStat summarizes one entity for a Stats snapshot.
type EntityStat struct {
	Name          string
	Count         int
	LastTriggered time.Time
	Hidden        bool
}

// Visual receives scene notifications.
type Visual interface {
	GlyphAccepted(glyph string)
	EntityEffect(fx EntityEffect)
	EnvironmentChanged(labels []Label)
	Win()
	LevelTransition(name string)
}

// Audio receives sound cues.
type Audio interface {
	GlyphAccepted(glyph string, score float64)
	EntityResponse(tag string)
	ScoreJump(score float64)
	Win()
}

// Text receives player-facing messages.
type Text interface {
	Feedback(message string)
	Aphorism(text string)
	Highlight(glyphs []string)
	WinSequence(stats Stats)
	LevelCompletion(name string, stats Stats)
}

// AphorismContext is what the provider may look at when choosing a line.
type AphorismContext struct {
	Score     float64
	EchoCount int
	Mood      string
}

// Aphorism is a selected line and its category.
type Aphorism struct {
	Text     string
	Category string
}

// Aphorisms looks up flavor text. Implementations may be randomized.
type Aphorisms interface {
	Contextual(ctx AphorismContext) Aphorism
	EntitySpecific(name string) string
	Transition(from, to string) string
	WinLine() string
}
