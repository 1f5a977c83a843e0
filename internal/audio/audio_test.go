package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
)

func drain(s beep.Streamer) int {
	buf := make([][2]float64, 512)
	total := 0
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		total += n
		if !ok {
			break
		}
	}
	return total
}

func TestToneLength(t *testing.T) {
	d := 100 * time.Millisecond
	if got, want := drain(tone(440, d)), sampleRate.N(d); got != want {
		t.Errorf("tone length = %d samples; want %d", got, want)
	}
}

func TestToneIsShaped(t *testing.T) {
	buf := make([][2]float64, 4)
	n, _ := tone(440, 100*time.Millisecond).Stream(buf)
	if n == 0 || buf[0][0] != 0 {
		t.Errorf("first sample = %v; attack should start from silence", buf[0][0])
	}
}

func TestSoundsTerminate(t *testing.T) {
	limit := sampleRate.N(3 * time.Second)
	sounds := map[string]beep.Streamer{
		"glyph":       GlyphSound("mni", 0.5),
		"unknown":     GlyphSound("zz", 0),
		"progression": ProgressionSound(0.4),
		"win":         WinSound(),
	}
	for _, tag := range []string{"spore-pulse", "pulse-rhythm", "vanish", "resonate",
		"lead-pack", "follow-alpha", "independent-hunt", "mirror-actions", "other"} {
		sounds["response "+tag] = ResponseSound(tag)
	}
	for name, s := range sounds {
		n := drain(s)
		if n == 0 || n > limit {
			t.Errorf("%s streamed %d samples", name, n)
		}
	}
}

func TestSilentVolume(t *testing.T) {
	buf := make([][2]float64, 256)
	s := withVolume(tone(440, 50*time.Millisecond), 0)
	n, _ := s.Stream(buf)
	for i := 0; i < n; i++ {
		if buf[i][0] != 0 || buf[i][1] != 0 {
			t.Fatalf("sample %d = %v; want silence", i, buf[i])
		}
	}
}

// Cues before Init must be dropped without touching the speaker.
func TestEngineUninitializedIsSilent(t *testing.T) {
	e := New(150)
	defer func() {
		if r := recover(); r != nil {
			t.Errorf("uninitialized engine panicked: %v", r)
		}
	}()
	e.GlyphAccepted("mni", 0.5)
	e.EntityResponse("resonate")
	e.ScoreJump(0.5)
	e.Win()
	e.Close()
	if e.Enabled() {
		t.Error("engine should not be enabled before Init")
	}
	if e.volume != 1 {
		t.Errorf("volume = %v; want clamp to 1", e.volume)
	}
}

func TestEngineInit(t *testing.T) {
	e := New(50)
	if err := e.Init(); err != nil {
		t.Logf("no audio device: %v", err)
		return
	}
	if err := e.Init(); err != nil {
		t.Errorf("second Init = %v; want no-op", err)
	}
	e.GlyphAccepted("mni", 0.2)
	e.Close()
}
