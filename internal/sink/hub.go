package sink

import (
	"log/slog"
	"time"
)

// Hub fans notifications out to whichever collaborators are present. A nil
// collaborator is skipped and a panicking one is logged and ignored, so a
// broken sink never aborts a state change that has already been committed.
type Hub struct {
	Visual    Visual
	Audio     Audio
	Text      Text
	Aphorisms Aphorisms
	Later     Scheduler
	Logger    *slog.Logger
}

// Scheduler defers a cosmetic message. It must never call back into the core.
type Scheduler interface {
	After(d time.Duration, message string)
}

func (h *Hub) call(name string, fn func()) {
	defer func() {
		if r := recover(); r != nil && h.Logger != nil {
			h.Logger.Warn("sink call failed", "call", name, "panic", r)
		}
	}()
	fn()
}

// Feedback shows a short status message.
func (h *Hub) Feedback(message string) {
	if h == nil || h.Text == nil {
		return
	}
	h.call("feedback", func() { h.Text.Feedback(message) })
}

// FeedbackAfter shows message once d has elapsed, or immediately when no
// scheduler is attached.
func (h *Hub) FeedbackAfter(d time.Duration, message string) {
	if h == nil {
		return
	}
	if h.Later == nil {
		h.Feedback(message)
		return
	}
	h.call("schedule", func() { h.Later.After(d, message) })
}

// ShowAphorism displays an aphorism line.
func (h *Hub) ShowAphorism(text string) {
	if h == nil || h.Text == nil || text == "" {
		return
	}
	h.call("aphorism", func() { h.Text.Aphorism(text) })
}

// Highlight marks glyphs on the input surface.
func (h *Hub) Highlight(glyphs []string) {
	if h == nil || h.Text == nil {
		return
	}
	h.call("highlight", func() { h.Text.Highlight(glyphs) })
}

// WinSequence presents the end-of-level summary.
func (h *Hub) WinSequence(stats Stats) {
	if h == nil {
		return
	}
	if h.Visual != nil {
		h.call("visual win", h.Visual.Win)
	}
	if h.Audio != nil {
		h.call("audio win", h.Audio.Win)
	}
	if h.Text != nil {
		h.call("win sequence", func() { h.Text.WinSequence(stats) })
	}
}

// LevelCompletion presents a completed level and the one that follows.
// The win cues belong to WinSequence.
func (h *Hub) LevelCompletion(name string, stats Stats) {
	if h == nil || h.Text == nil {
		return
	}
	h.call("level completion", func() { h.Text.LevelCompletion(name, stats) })
}

// GlyphAccepted tells the scene and the audio engine about an accepted glyph.
func (h *Hub) GlyphAccepted(glyph string, score float64) {
	if h == nil {
		return
	}
	if h.Visual != nil {
		h.call("visual glyph", func() { h.Visual.GlyphAccepted(glyph) })
	}
	if h.Audio != nil {
		h.call("audio glyph", func() { h.Audio.GlyphAccepted(glyph, score) })
	}
}

// EntityEffect forwards a visual cue.
func (h *Hub) EntityEffect(fx EntityEffect) {
	if h == nil || h.Visual == nil {
		return
	}
	h.call("entity effect", func() { h.Visual.EntityEffect(fx) })
}

// EntityResponse plays the response cue for tag.
func (h *Hub) EntityResponse(tag string) {
	if h == nil || h.Audio == nil {
		return
	}
	h.call("entity response", func() { h.Audio.EntityResponse(tag) })
}

// ScoreJump plays the progression cue.
func (h *Hub) ScoreJump(score float64) {
	if h == nil || h.Audio == nil {
		return
	}
	h.call("score jump", func() { h.Audio.ScoreJump(score) })
}

// EnvironmentChanged forwards freshly derived labels.
func (h *Hub) EnvironmentChanged(labels []Label) {
	if h == nil || h.Visual == nil {
		return
	}
	h.call("environment", func() { h.Visual.EnvironmentChanged(labels) })
}

// LevelTransition announces that a new level is loading.
func (h *Hub) LevelTransition(name string) {
	if h == nil || h.Visual == nil {
		return
	}
	h.call("level transition", func() { h.Visual.LevelTransition(name) })
}

// Contextual returns a contextual aphorism, or the zero value without a provider.
func (h *Hub) Contextual(ctx AphorismContext) (a Aphorism) {
	if h == nil || h.Aphorisms == nil {
		return Aphorism{}
	}
	h.call("contextual aphorism", func() { a = h.Aphorisms.Contextual(ctx) })
	return a
}

// EntityAphorism returns a line for the named entity.
func (h *Hub) EntityAphorism(name string) (text string) {
	if h == nil || h.Aphorisms == nil {
		return ""
	}
	h.call("entity aphorism", func() { text = h.Aphorisms.EntitySpecific(name) })
	return text
}

// TransitionAphorism returns a line for moving between levels.
func (h *Hub) TransitionAphorism(from, to string) (text string) {
	if h == nil || h.Aphorisms == nil {
		return ""
	}
	h.call("transition aphorism", func() { text = h.Aphorisms.Transition(from, to) })
	return text
}

// WinAphorism returns a closing line.
func (h *Hub) WinAphorism() (text string) {
	if h == nil || h.Aphorisms == nil {
		return ""
	}
	h.call("win aphorism", func() { text = h.Aphorisms.WinLine() })
	return text
}
