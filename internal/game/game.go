// Package game is the top-level orchestrator. It owns the vocabulary, the
// active level and the renderer, turns key presses into glyph submissions,
// and moves the player from one level to the next.
package game

import (
	"fmt"
	"log/slog"
	"math/rand"
	"strings"
	"time"

	"whispergrove/assets"
	"whispergrove/internal/aphorism"
	"whispergrove/internal/level"
	"whispergrove/internal/render"
	"whispergrove/internal/sink"
	"whispergrove/internal/vocab"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"
	"golang.org/x/text/unicode/norm"
)

// State tracks the main state machine.
type State uint8

const (
	StatePlaying  State = iota
	StateComplete       // level won, waiting for the continue key
	StateFinished       // last level won
)

const (
	echoWindow   = 8
	maxInput     = 16
	welcomeDelay = time.Second
)

// nextLevel is the play order.
var nextLevel = map[string]string{
	assets.LevelForest: assets.LevelPack,
}

// Options configures a Game.
type Options struct {
	Rand           *rand.Rand
	AphorismChance float64
	StartLevel     string     // level name; empty starts in the forest
	Audio          sink.Audio // nil plays nothing
	Logger         *slog.Logger
	Now            func() time.Time
	SessionID      string // generated when empty
	Player         string
	DataDir        string // run log directory; empty disables the run log
}

// Game is one play session on one screen.
type Game struct {
	screen    tcell.Screen
	renderer  *render.Renderer
	hub       *sink.Hub
	aphorisms *aphorism.Provider
	schedule  *Schedule
	store     *vocab.Store
	level     level.Controller
	opts      Options
	state     State
	input     []rune
	runLog    RunLog
}

// New creates a Game drawing on screen and loads the start level. The
// caller owns the screen: it must already be initialized and is not
// finalized by the Game.
func New(screen tcell.Screen, opts Options) *Game {
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.SessionID == "" {
		opts.SessionID = uuid.NewString()
	}
	opts.Logger = opts.Logger.With("session", opts.SessionID)

	g := &Game{
		screen:    screen,
		renderer:  render.NewRenderer(screen),
		aphorisms: aphorism.New(opts.Rand),
		schedule:  NewSchedule(opts.Now),
		store:     vocab.New(nil, nil),
		opts:      opts,
	}
	g.hub = &sink.Hub{
		Visual:    g.renderer,
		Text:      g.renderer,
		Aphorisms: g.aphorisms,
		Later:     g.schedule,
		Logger:    opts.Logger,
	}
	if opts.Audio != nil {
		g.hub.Audio = opts.Audio
	}
	g.runLog = RunLog{
		SessionID: opts.SessionID,
		Player:    opts.Player,
		Started:   opts.Now(),
		Glyphs:    make(map[string]int),
	}

	start := opts.StartLevel
	if start == "" {
		start = assets.LevelForest
	}
	g.enter(start)
	g.hub.ShowAphorism(definition(start).Intro)
	return g
}

func definition(name string) assets.LevelDef {
	if name == assets.LevelPack {
		return assets.Pack
	}
	return assets.Forest
}

// enter loads the named level into the shared vocabulary.
func (g *Game) enter(name string) {
	lo := level.Options{
		Hub:            g.hub,
		Rand:           g.opts.Rand,
		AphorismChance: g.opts.AphorismChance,
		Logger:         g.opts.Logger,
		Now:            g.opts.Now,
	}
	switch name {
	case assets.LevelPack:
		g.level = level.NewPack(g.store, lo)
	default:
		g.level = level.NewForest(g.store, lo)
	}
	g.state = StatePlaying
	g.input = g.input[:0]
	g.hub.FeedbackAfter(welcomeDelay, definition(name).Welcome)
	g.opts.Logger.Info("level entered", "level", g.level.Name())
}

// Normalize trims raw input and puts it in NFC so composed and decomposed
// spellings of a glyph compare equal.
func Normalize(raw string) string {
	return norm.NFC.String(strings.TrimSpace(raw))
}

// Submit runs one cycle of the active level with the normalized input.
func (g *Game) Submit(raw string) level.Outcome {
	glyph := Normalize(raw)
	out := g.level.Cycle(glyph)
	switch {
	case out.Frozen:
	case out.Accepted:
		g.runLog.Echoes++
		g.runLog.Glyphs[glyph]++
	default:
		g.runLog.Rejected++
	}
	if out.Won {
		g.runLog.LevelsCompleted = append(g.runLog.LevelsCompleted, g.level.Name())
		g.state = StateFinished
		if _, ok := nextLevel[g.level.Name()]; ok {
			g.state = StateComplete
		}
	}
	return out
}

// Continue moves from a completed level to the next one. It reports
// whether a transition happened.
func (g *Game) Continue() bool {
	if g.state != StateComplete {
		return false
	}
	from := g.level.Name()
	to := nextLevel[from]
	g.hub.LevelTransition(to)
	g.opts.Logger.Info("level transition", "from", from, "to", to)
	g.enter(to)
	g.hub.ShowAphorism(definition(to).Intro)
	if line := g.hub.TransitionAphorism(from, to); line != "" {
		g.hub.Feedback(line)
	}
	return true
}

// Reset restores the active level's initial state.
func (g *Game) Reset() {
	g.level.Reset()
	g.renderer.Reset()
	g.state = StatePlaying
	g.input = g.input[:0]
	g.hub.Feedback(fmt.Sprintf("%s returns to its first echo.", g.level.Name()))
	g.opts.Logger.Info("level reset", "level", g.level.Name())
}

// Tick advances time: entity glow and reveals, due scheduled messages,
// and the renderer's transient marks.
func (g *Game) Tick() {
	g.level.Tick()
	for _, msg := range g.schedule.Due(g.opts.Now()) {
		g.hub.Feedback(msg)
	}
	g.renderer.Advance()
}

// State returns the session state.
func (g *Game) State() State { return g.state }

// Level returns the active level.
func (g *Game) Level() level.Controller { return g.level }

// Messages returns the feedback log, oldest first.
func (g *Game) Messages() []string { return g.renderer.Messages() }

// Input returns the pending, unsubmitted input.
func (g *Game) Input() string { return string(g.input) }

// Scene snapshots everything the renderer needs for one frame.
func (g *Game) Scene() render.Scene {
	return render.Scene{
		Level:    g.level.Name(),
		Entities: g.level.Entities(),
		Groups:   g.level.Groups(),
		Echoes:   g.level.Echoes(echoWindow),
		Active:   g.store.Active(),
		Stats:    g.level.Stats(),
		Lore:     g.level.Lore(),
		Input:    string(g.input),
		Prompt:   g.prompt(),
	}
}

func (g *Game) prompt() string {
	switch g.state {
	case StateComplete:
		return "Press Enter to continue to " + nextLevel[g.level.Name()]
	case StateFinished:
		return "The journey rests here. Ctrl-R replays the level, Esc leaves."
	}
	return ""
}

// Draw renders one frame.
func (g *Game) Draw() { g.renderer.Draw(g.Scene()) }

// Close records the run. Run log failures are logged, never fatal.
func (g *Game) Close() {
	stats := g.level.Stats()
	g.runLog.Ended = g.opts.Now()
	g.runLog.FinalLevel = stats.Level
	g.runLog.FinalHarmonics = stats.Score
	g.runLog.Packs = stats.PackCount
	snap := g.store.Snapshot()
	g.runLog.Vocabulary = snap.Vocabulary
	g.runLog.Active = snap.Active
	if g.opts.DataDir == "" {
		return
	}
	if err := SaveRunLog(g.opts.DataDir, g.runLog); err != nil {
		g.opts.Logger.Warn("run log: write failed", "error", err)
	}
}
