package audio

import (
	"math"
	"time"

	"whispergrove/assets"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

const (
	sampleRate  = beep.SampleRate(44100)
	defaultTone = 261.63 // C4, for glyphs without a tone of their own

	echoDuration = 400 * time.Millisecond
	attack       = 15 * time.Millisecond
	release      = 120 * time.Millisecond
)

// tone returns a sine note of freq Hz lasting d, shaped with a short attack
// and release.
func tone(freq float64, d time.Duration) beep.Streamer {
	n := sampleRate.N(d)
	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return beep.Silence(n)
	}
	return newFade(beep.Take(n, sine), n, sampleRate.N(attack), sampleRate.N(release))
}

// fade applies a linear attack and release over a stream of known length.
type fade struct {
	s                  beep.Streamer
	pos, total         int
	attack, releaseLen int
}

func newFade(s beep.Streamer, total, attack, releaseLen int) *fade {
	return &fade{s: s, total: total, attack: attack, releaseLen: releaseLen}
}

func (f *fade) Stream(samples [][2]float64) (int, bool) {
	n, ok := f.s.Stream(samples)
	for i := 0; i < n; i++ {
		gain := 1.0
		if f.attack > 0 && f.pos < f.attack {
			gain = float64(f.pos) / float64(f.attack)
		}
		if left := f.total - f.pos; f.releaseLen > 0 && left < f.releaseLen {
			gain = math.Min(gain, float64(left)/float64(f.releaseLen))
		}
		samples[i][0] *= gain
		samples[i][1] *= gain
		f.pos++
	}
	return n, ok
}

func (f *fade) Err() error { return f.s.Err() }

// withVolume scales s linearly; zero or less is silent.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// GlyphSound is the echo of an accepted glyph. Higher harmonics brighten it
// with a fifth above the base tone.
func GlyphSound(glyph string, score float64) beep.Streamer {
	freq, ok := assets.GlyphTones[glyph]
	if !ok {
		freq = defaultTone
	}
	fifth := withVolume(tone(freq*1.5, echoDuration), 0.3*score)
	return withVolume(beep.Mix(tone(freq, echoDuration), fifth), 0.5)
}

// ResponseSound is an entity's answer, keyed by response tag.
func ResponseSound(tag string) beep.Streamer {
	short := 150 * time.Millisecond
	gap := func(d time.Duration) beep.Streamer { return beep.Silence(sampleRate.N(d)) }
	var s beep.Streamer
	switch tag {
	case "spore-pulse":
		s = beep.Seq(tone(440, short), tone(554.37, 250*time.Millisecond))
	case "pulse-rhythm":
		s = beep.Seq(tone(220, short), gap(80*time.Millisecond), tone(220, short), gap(80*time.Millisecond), tone(220, short))
	case "vanish":
		s = beep.Seq(tone(330, short), tone(247, short), tone(165, 300*time.Millisecond))
	case "resonate":
		s = beep.Mix(tone(330, 600*time.Millisecond), tone(495, 600*time.Millisecond))
	case "lead-pack":
		s = tone(196, 500*time.Millisecond)
	case "follow-alpha":
		s = beep.Seq(tone(247, short), tone(247, short))
	case "independent-hunt":
		s = tone(293.66, 350*time.Millisecond)
	case "mirror-actions":
		s = beep.Seq(tone(370, short), gap(60*time.Millisecond), withVolume(tone(370, short), 0.4))
	default:
		s = tone(defaultTone, short)
	}
	return withVolume(s, 0.6)
}

// ProgressionSound is the major chord played on a large harmonics jump.
func ProgressionSound(score float64) beep.Streamer {
	d := 700 * time.Millisecond
	root := 261.63 * (1 + score)
	return withVolume(beep.Mix(tone(root, d), tone(root*1.25, d), tone(root*1.5, d)), 0.35)
}

// WinSound is the rising arpeggio played on level completion.
func WinSound() beep.Streamer {
	step := 220 * time.Millisecond
	return withVolume(beep.Seq(
		tone(261.63, step),
		tone(329.63, step),
		tone(392.00, step),
		tone(523.25, 600*time.Millisecond),
	), 0.6)
}
