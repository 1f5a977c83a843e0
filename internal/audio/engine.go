// Package audio synthesizes the game's sound cues with beep.
package audio

import (
	"fmt"
	"sync"
	"time"

	"whispergrove/internal/sink"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// Engine plays cues through one shared mixer. Until Init succeeds every cue
// is dropped, so an engine without a device is a silent sink.
type Engine struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
}

// New returns an engine at master volume percent (0-100).
func New(volume int) *Engine {
	return &Engine{
		mixer:  &beep.Mixer{},
		volume: float64(min(max(volume, 0), 100)) / 100,
	}
}

// Init opens the audio device.
func (e *Engine) Init() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	speaker.Play(e.mixer)
	e.initialized = true
	return nil
}

// Enabled reports whether cues reach a device.
func (e *Engine) Enabled() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.initialized
}

// Close silences everything still playing.
func (e *Engine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.initialized {
		return
	}
	speaker.Lock()
	e.mixer.Clear()
	speaker.Unlock()
	e.initialized = false
}

func (e *Engine) play(s beep.Streamer) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.initialized || s == nil {
		return
	}
	speaker.Lock()
	e.mixer.Add(withVolume(s, e.volume))
	speaker.Unlock()
}

func (e *Engine) GlyphAccepted(glyph string, score float64) { e.play(GlyphSound(glyph, score)) }

func (e *Engine) EntityResponse(tag string) { e.play(ResponseSound(tag)) }

func (e *Engine) ScoreJump(score float64) { e.play(ProgressionSound(score)) }

func (e *Engine) Win() { e.play(WinSound()) }

var _ sink.Audio = (*Engine)(nil)
