// Package sinktest provides a recording implementation of every sink
// interface for tests.
package sinktest

import (
	"fmt"
	"strings"

	"whispergrove/internal/sink"
)

// Recorder implements sink.Visual, sink.Audio, sink.Text and sink.Aphorisms,
// keeping every notification it receives.
type Recorder struct {
	Events      []string
	Messages    []string
	Lines       []string
	Effects     []sink.EntityEffect
	Labels      [][]sink.Label
	Highlights  [][]string
	Responses   []string
	ScoreJumps  int
	Wins        int
	Completions []string
	Transitions []string
	LastStats   sink.Stats
}

// Hub returns a hub that routes every collaborator to r.
func (r *Recorder) Hub() *sink.Hub {
	return &sink.Hub{Visual: r, Audio: recorderAudio{r}, Text: r, Aphorisms: r}
}

func (r *Recorder) log(format string, args ...any) {
	r.Events = append(r.Events, fmt.Sprintf(format, args...))
}

// HasFeedback reports whether any feedback message contains substr.
func (r *Recorder) HasFeedback(substr string) bool {
	for _, m := range r.Messages {
		if strings.Contains(m, substr) {
			return true
		}
	}
	return false
}

// EffectsWith returns the recorded effects carrying cue.
func (r *Recorder) EffectsWith(cue sink.Cue) []sink.EntityEffect {
	var out []sink.EntityEffect
	for _, fx := range r.Effects {
		if fx.Cue == cue {
			out = append(out, fx)
		}
	}
	return out
}

// Visual

func (r *Recorder) GlyphAccepted(glyph string) { r.log("visual glyph %s", glyph) }

func (r *Recorder) EntityEffect(fx sink.EntityEffect) {
	r.Effects = append(r.Effects, fx)
	r.log("effect %d %s", fx.Cue, fx.Entity)
}

func (r *Recorder) EnvironmentChanged(labels []sink.Label) {
	r.Labels = append(r.Labels, labels)
}

func (r *Recorder) Win() { r.Wins++ }

func (r *Recorder) LevelTransition(name string) {
	r.Transitions = append(r.Transitions, name)
}

// Text

func (r *Recorder) Feedback(message string) { r.Messages = append(r.Messages, message) }

func (r *Recorder) Aphorism(text string) { r.Lines = append(r.Lines, text) }

func (r *Recorder) Highlight(glyphs []string) { r.Highlights = append(r.Highlights, glyphs) }

func (r *Recorder) WinSequence(stats sink.Stats) {
	r.LastStats = stats
	r.log("win sequence %s", stats.Level)
}

func (r *Recorder) LevelCompletion(name string, stats sink.Stats) {
	r.LastStats = stats
	r.Completions = append(r.Completions, name)
}

// Aphorisms

func (r *Recorder) Contextual(ctx sink.AphorismContext) sink.Aphorism {
	return sink.Aphorism{Text: "contextual", Category: "test"}
}

func (r *Recorder) EntitySpecific(name string) string { return "about " + name }

func (r *Recorder) Transition(from, to string) string { return from + " -> " + to }

func (r *Recorder) WinLine() string { return "won" }

// recorderAudio adapts Recorder to sink.Audio, whose GlyphAccepted and Win
// signatures collide with sink.Visual.
type recorderAudio struct{ r *Recorder }

func (a recorderAudio) GlyphAccepted(glyph string, score float64) {
	a.r.log("audio glyph %s %.3f", glyph, score)
}

func (a recorderAudio) EntityResponse(tag string) { a.r.Responses = append(a.r.Responses, tag) }

func (a recorderAudio) ScoreJump(score float64) { a.r.ScoreJumps++ }

func (a recorderAudio) Win() { a.r.log("audio win") }
