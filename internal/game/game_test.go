package game

import (
	"encoding/json"
	"math/rand"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
	"time"

	"whispergrove/assets"

	"github.com/gdamore/tcell/v2"
)

type clock struct{ t time.Time }

func (c *clock) Now() time.Time { return c.t }

func newTestGame(t *testing.T, start string) (*Game, *clock, tcell.SimulationScreen) {
	t.Helper()
	ss := tcell.NewSimulationScreen("UTF-8")
	ss.SetSize(100, 30)
	if err := ss.Init(); err != nil {
		t.Fatalf("SimulationScreen.Init: %v", err)
	}
	t.Cleanup(ss.Fini)

	c := &clock{t: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)}
	g := New(ss, Options{
		Rand:       rand.New(rand.NewSource(1)),
		StartLevel: start,
		Now:        c.Now,
		DataDir:    t.TempDir(),
		SessionID:  "test-session",
	})
	return g, c, ss
}

func key(r rune) *tcell.EventKey { return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone) }

func special(k tcell.Key) *tcell.EventKey { return tcell.NewEventKey(k, 0, tcell.ModNone) }

func typeGlyph(g *Game, glyph string) {
	for _, r := range glyph {
		g.HandleKey(key(r))
	}
	g.HandleKey(special(tcell.KeyEnter))
}

func hasMessage(g *Game, substr string) bool {
	return slices.ContainsFunc(g.Messages(), func(m string) bool { return strings.Contains(m, substr) })
}

func winForest(t *testing.T, g *Game) {
	t.Helper()
	for i := 0; i < 20; i++ {
		g.Submit([]string{"mni", "ȹu"}[i%2])
	}
	if g.State() != StateComplete {
		t.Fatalf("setup: forest not won, stats %+v", g.Level().Stats())
	}
}

func TestNormalize(t *testing.T) {
	cases := []struct {
		name, in, want string
	}{
		{"trims whitespace", "  mni\n", "mni"},
		{"composes marks", "e\u0301", "\u00e9"},
		{"keeps glyphs", "ȹu", "ȹu"},
		{"empty", "", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Normalize(tc.in); got != tc.want {
				t.Errorf("Normalize(%q) = %q; want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestTypedGlyphIsSubmitted(t *testing.T) {
	g, _, _ := newTestGame(t, "")
	typeGlyph(g, "mni")
	if n := g.Level().Stats().EchoCount; n != 1 {
		t.Errorf("EchoCount = %d; want 1", n)
	}
	if g.Input() != "" {
		t.Errorf("input %q not cleared after submit", g.Input())
	}
}

func TestEditingInput(t *testing.T) {
	g, _, _ := newTestGame(t, "")
	g.HandleKey(key('m'))
	g.HandleKey(key('x'))
	g.HandleKey(special(tcell.KeyBackspace2))
	if g.Input() != "m" {
		t.Errorf("input = %q; want m", g.Input())
	}
	g.HandleKey(special(tcell.KeyBackspace2))
	g.HandleKey(special(tcell.KeyBackspace2))
	g.HandleKey(special(tcell.KeyEnter))
	if n := g.Level().Stats().EchoCount; n != 0 {
		t.Errorf("empty submit recorded %d echoes", n)
	}
	if hasMessage(g, "Unintelligible") {
		t.Error("empty submit should not be judged")
	}
}

func TestPaletteKeySubmitsActiveGlyph(t *testing.T) {
	g, _, _ := newTestGame(t, "")
	g.HandleKey(key('4'))
	if echoes := g.Level().Echoes(4); !slices.Equal(echoes, []string{"mni"}) {
		t.Errorf("echoes = %v; want [mni]", echoes)
	}
	g.HandleKey(key('9'))
	if n := g.Level().Stats().EchoCount; n != 1 {
		t.Errorf("palette slot past the active set submitted; EchoCount = %d", n)
	}
}

func TestRejectedInputIsCounted(t *testing.T) {
	g, _, _ := newTestGame(t, "")
	typeGlyph(g, "zz")
	if !hasMessage(g, "Unintelligible echo") {
		t.Errorf("messages = %v", g.Messages())
	}
	if g.runLog.Rejected != 1 || g.runLog.Echoes != 0 {
		t.Errorf("run log = %+v", g.runLog)
	}
}

func TestWelcomeMessageIsScheduled(t *testing.T) {
	g, c, _ := newTestGame(t, "")
	welcome := assets.Forest.Welcome
	g.Tick()
	if hasMessage(g, welcome) {
		t.Fatal("welcome shown before its delay")
	}
	c.t = c.t.Add(welcomeDelay)
	g.Tick()
	if !hasMessage(g, welcome) {
		t.Errorf("messages = %v; want the welcome line", g.Messages())
	}
	if g.schedule.Len() != 0 {
		t.Errorf("schedule still holds %d messages", g.schedule.Len())
	}
}

func TestForestToPackTransition(t *testing.T) {
	g, c, _ := newTestGame(t, "")
	winForest(t, g)

	if p := g.Scene().Prompt; !strings.Contains(p, assets.LevelPack) {
		t.Errorf("prompt = %q", p)
	}
	g.HandleKey(key('m'))
	if g.Input() != "" {
		t.Error("typing accepted while the level is complete")
	}

	g.HandleKey(special(tcell.KeyEnter))
	if g.State() != StatePlaying || g.Level().Name() != assets.LevelPack {
		t.Fatalf("after continue: state %d, level %s", g.State(), g.Level().Name())
	}
	if !slices.Contains(g.Scene().Active, "α") {
		t.Errorf("active = %v; want pack glyphs", g.Scene().Active)
	}
	if !slices.Equal(g.runLog.LevelsCompleted, []string{assets.LevelForest}) {
		t.Errorf("levels completed = %v", g.runLog.LevelsCompleted)
	}

	c.t = c.t.Add(welcomeDelay)
	g.Tick()
	if !hasMessage(g, assets.Pack.Welcome) {
		t.Errorf("messages = %v; want the pack welcome", g.Messages())
	}
}

func TestPackWinFinishesJourney(t *testing.T) {
	g, c, _ := newTestGame(t, assets.LevelPack)
	for i := 0; i < 40; i++ {
		g.Submit([]string{"α", "β"}[i%2])
	}
	if g.State() != StateFinished {
		t.Fatalf("state = %d; stats %+v", g.State(), g.Level().Stats())
	}
	if g.Continue() {
		t.Error("Continue after the last level should do nothing")
	}
	if p := g.Scene().Prompt; !strings.Contains(p, "journey rests") {
		t.Errorf("prompt = %q", p)
	}

	c.t = c.t.Add(5 * time.Second)
	g.Tick()
	if !hasMessage(g, "Vessel of First Light complete") {
		t.Errorf("messages = %v; want the delayed summary", g.Messages())
	}
}

func TestResetAfterWin(t *testing.T) {
	g, _, _ := newTestGame(t, "")
	winForest(t, g)
	g.HandleKey(special(tcell.KeyCtrlR))

	if g.State() != StatePlaying || g.Level().Won() {
		t.Errorf("state = %d after reset", g.State())
	}
	if s := g.Level().Stats(); s.EchoCount != 0 || s.Score != 0 {
		t.Errorf("stats after reset = %+v", s)
	}
	if !hasMessage(g, "returns to its first echo") {
		t.Errorf("messages = %v", g.Messages())
	}
}

func TestKeyToAction(t *testing.T) {
	cases := []struct {
		name string
		ev   *tcell.EventKey
		want Action
	}{
		{"escape", special(tcell.KeyEscape), ActionQuit},
		{"ctrl-c", special(tcell.KeyCtrlC), ActionQuit},
		{"enter", special(tcell.KeyEnter), ActionSubmit},
		{"space", key(' '), ActionSubmit},
		{"backspace", special(tcell.KeyBackspace2), ActionErase},
		{"ctrl-r", special(tcell.KeyCtrlR), ActionReset},
		{"digit", key('3'), ActionPalette},
		{"zero", key('0'), ActionInsert},
		{"letter", key('m'), ActionInsert},
		{"glyph rune", key('ȹ'), ActionInsert},
		{"arrow", special(tcell.KeyUp), ActionNone},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := keyToAction(tc.ev); got != tc.want {
				t.Errorf("keyToAction = %d; want %d", got, tc.want)
			}
		})
	}
}

func TestDrawShowsLevel(t *testing.T) {
	g, _, ss := newTestGame(t, "")
	g.Draw()
	w, _ := ss.Size()
	var title strings.Builder
	for x := 0; x < w; x++ {
		r, _, _, _ := ss.GetContent(x, 0)
		title.WriteRune(r)
	}
	if !strings.Contains(title.String(), assets.LevelForest) {
		t.Errorf("title row = %q", title.String())
	}
}

func TestCloseWritesRunLog(t *testing.T) {
	g, _, _ := newTestGame(t, "")
	g.Submit("mni")
	g.Submit("zz")
	g.Close()

	data, err := os.ReadFile(filepath.Join(g.opts.DataDir, "runs.jsonl"))
	if err != nil {
		t.Fatalf("runs.jsonl not created: %v", err)
	}
	var got RunLog
	if err := json.Unmarshal([]byte(strings.TrimSpace(string(data))), &got); err != nil {
		t.Fatalf("decode run log: %v", err)
	}
	if got.SessionID != "test-session" || got.FinalLevel != assets.LevelForest {
		t.Errorf("run log = %+v", got)
	}
	if got.Echoes != 1 || got.Rejected != 1 || got.Glyphs["mni"] != 1 {
		t.Errorf("counts = %+v", got)
	}
	if !slices.Contains(got.Vocabulary, "mni") || !slices.Contains(got.Active, "ʘa") || slices.Contains(got.Vocabulary, "zz") {
		t.Errorf("vocabulary = %v, active = %v", got.Vocabulary, got.Active)
	}
}

func TestSaveRunLogAppendsMultiple(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested")
	for i := range 3 {
		if err := SaveRunLog(dir, RunLog{SessionID: "s", Echoes: i, Glyphs: map[string]int{}}); err != nil {
			t.Fatalf("SaveRunLog: %v", err)
		}
	}
	data, err := os.ReadFile(filepath.Join(dir, "runs.jsonl"))
	if err != nil {
		t.Fatalf("runs.jsonl not found: %v", err)
	}
	// Each call appends one JSON line; count the newlines.
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if len(lines) != 3 {
		t.Errorf("expected 3 log lines, got %d", len(lines))
	}
}

func TestSchedule(t *testing.T) {
	c := &clock{t: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
	s := NewSchedule(c.Now)
	s.After(2*time.Second, "late")
	s.After(500*time.Millisecond, "early")
	s.After(time.Second, "middle")

	if due := s.Due(c.t); len(due) != 0 {
		t.Errorf("due at start = %v", due)
	}
	if due := s.Due(c.t.Add(time.Second)); !slices.Equal(due, []string{"early", "middle"}) {
		t.Errorf("due at 1s = %v", due)
	}
	if due := s.Due(c.t.Add(time.Minute)); !slices.Equal(due, []string{"late"}) {
		t.Errorf("due at 1m = %v", due)
	}
	if s.Len() != 0 {
		t.Errorf("Len = %d", s.Len())
	}
}
