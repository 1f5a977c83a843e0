package render

import (
	"strings"
	"testing"

	"whispergrove/internal/level"
	"whispergrove/internal/sink"
	"whispergrove/internal/system"

	"github.com/gdamore/tcell/v2"
)

func newTestRenderer(t *testing.T) (*Renderer, tcell.SimulationScreen) {
	t.Helper()
	ss := tcell.NewSimulationScreen("UTF-8")
	ss.SetSize(80, 24)
	if err := ss.Init(); err != nil {
		t.Fatalf("SimulationScreen.Init: %v", err)
	}
	t.Cleanup(ss.Fini)
	return NewRenderer(ss), ss
}

// screenText returns the whole screen as newline-separated rows.
func screenText(s tcell.Screen) string {
	w, h := s.Size()
	var b strings.Builder
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			mainc, combc, _, _ := s.GetContent(x, y)
			b.WriteRune(mainc)
			for _, c := range combc {
				b.WriteRune(c)
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func forestScene() Scene {
	return Scene{
		Level: "Whispergrove",
		Entities: []system.EntityView{
			{Name: "Mycolith", Glyph: "mni", X: 0.2, Y: 0.7},
			{Name: "Sibroot", Glyph: "ȹu", X: 0.8, Y: 0.6, Pulse: 1},
			{Name: "Cryptoglyph", Glyph: "kə", X: 0.3, Y: 0.4, Hidden: true},
		},
		Echoes: []string{"mni", "ȹu"},
		Active: []string{"ȹu", "ʘa", "kə", "mni"},
		Stats:  sink.Stats{Level: "Whispergrove", EchoCount: 2, Score: 0.5, Mood: "Curious"},
		Lore:   "Mni knows the thirst.",
		Input:  "mn",
	}
}

func TestDrawSceneAndHUD(t *testing.T) {
	r, ss := newTestRenderer(t)
	r.EnvironmentChanged([]sink.Label{{Name: "canopy", Value: "Aetheric"}})
	r.Draw(forestScene())
	text := screenText(ss)

	for _, want := range []string{"Whispergrove", "Mycolith", "Sibroot", "Harmonics", "50%",
		"Echoes 2", "canopy: Aetheric", "Mni knows the thirst.", "> mn", "4:mni"} {
		if !strings.Contains(text, want) {
			t.Errorf("screen missing %q", want)
		}
	}
	if strings.Contains(text, "Cryptoglyph") {
		t.Error("hidden entity drawn")
	}
}

func TestPackHUD(t *testing.T) {
	r, ss := newTestRenderer(t)
	s := forestScene()
	s.Level = "Vessel of First Light"
	s.Stats.Packs = true
	s.Stats.PackCount = 4
	s.Groups = []level.Group{{Members: []string{"α", "β"}, X: 0.5, Y: 0.5, Formed: true}}
	r.Draw(s)
	text := screenText(ss)
	if !strings.Contains(text, "Packs 4") || !strings.Contains(text, "[αβ]") {
		t.Errorf("pack HUD missing:\n%s", text)
	}
}

func TestFeedbackLogBounded(t *testing.T) {
	r, ss := newTestRenderer(t)
	for i := 0; i < 60; i++ {
		r.Feedback(strings.Repeat("x", i%5+1))
	}
	r.Feedback("first line")
	r.Feedback("second line")
	if n := len(r.Messages()); n != maxMessages {
		t.Errorf("messages = %d; want %d", n, maxMessages)
	}
	r.Draw(forestScene())
	text := screenText(ss)
	if !strings.Contains(text, "first line") || !strings.Contains(text, "second line") {
		t.Error("latest feedback not shown")
	}
}

func TestMarksAndHighlightsExpire(t *testing.T) {
	r, _ := newTestRenderer(t)
	r.EntityEffect(sink.EntityEffect{Cue: sink.CueRelease, X: 0.5, Y: 0.5})
	r.Highlight([]string{"β", "γ"})
	for i := 0; i < effectTTL; i++ {
		r.Advance()
	}
	if len(r.marks) != 0 {
		t.Errorf("marks = %d after TTL", len(r.marks))
	}
	if len(r.highlights) != 2 {
		t.Errorf("highlights expired early: %v", r.highlights)
	}
	for i := 0; i < highlightTT; i++ {
		r.Advance()
	}
	if len(r.highlights) != 0 {
		t.Errorf("highlights = %v after TTL", r.highlights)
	}
}

func TestCompletionOverlay(t *testing.T) {
	r, ss := newTestRenderer(t)
	stats := sink.Stats{Level: "Whispergrove", EchoCount: 20, Score: 0.95, Mood: "Transcendent"}
	r.WinSequence(stats)
	r.Aphorism("You are no longer listening. You are remembering.")
	s := forestScene()
	s.Prompt = "Press Enter to continue"
	r.Draw(s)
	text := screenText(ss)
	for _, want := range []string{"Whispergrove complete", "Echoes 20", "Press Enter to continue"} {
		if !strings.Contains(text, want) {
			t.Errorf("overlay missing %q", want)
		}
	}

	r.LevelTransition("Vessel of First Light")
	if r.won || r.completion != nil {
		t.Error("transition should clear the win state")
	}
}

func TestHarmonicsBar(t *testing.T) {
	if got := harmonicsBar(0); strings.Contains(got, "█") {
		t.Errorf("empty bar = %s", got)
	}
	if got := harmonicsBar(1); strings.Contains(got, "░") {
		t.Errorf("full bar = %s", got)
	}
	if got := harmonicsBar(0.5); strings.Count(got, "█") != barWidth/2 {
		t.Errorf("half bar = %s", got)
	}
}

func TestDrawTextAttachesCombiningMarks(t *testing.T) {
	r, ss := newTestRenderer(t)
	if cols := r.drawText(0, 0, "e\u0301x", tcell.StyleDefault); cols != 2 {
		t.Errorf("columns = %d; want 2", cols)
	}
	mainc, combc, _, _ := ss.GetContent(0, 0)
	if mainc != 'e' || len(combc) != 1 {
		t.Errorf("cell 0 = %q %q", mainc, combc)
	}
	if x, _, _, _ := ss.GetContent(1, 0); x != 'x' {
		t.Errorf("cell 1 = %q", x)
	}
}

func TestCamera(t *testing.T) {
	c := NewCamera(1, 81, 11)
	if x, y, ok := c.SceneToScreen(0, 0); !ok || x != 0 || y != 1 {
		t.Errorf("origin = %d,%d,%v", x, y, ok)
	}
	if x, y, ok := c.SceneToScreen(1, 1); !ok || x != 80 || y != 11 {
		t.Errorf("far corner = %d,%d,%v", x, y, ok)
	}
	if _, _, ok := c.SceneToScreen(1.2, 0.5); ok {
		t.Error("out-of-range position reported visible")
	}
	if x, y := c.ScreenToScene(40, 6); x != 0.5 || y != 0.5 {
		t.Errorf("ScreenToScene = %v,%v", x, y)
	}
}
