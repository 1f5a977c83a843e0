package render

import (
	"math"
	"sort"

	"whispergrove/internal/level"
	"whispergrove/internal/sink"
	"whispergrove/internal/system"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

const (
	hudRows     = 8
	maxMessages = 50
	maxNodes    = 12
	effectTTL   = 24 // frames
	highlightTT = 60
)

// Scene is the read-only snapshot the game hands the renderer each frame.
type Scene struct {
	Level    string
	Entities []system.EntityView
	Groups   []level.Group
	Echoes   []string
	Active   []string
	Stats    sink.Stats
	Lore     string
	Input    string
	Prompt   string // shown over the scene when a level is complete
}

type mark struct {
	x, y  float64
	glyph string
	color tcell.Color
	ttl   int
}

type node struct {
	x, y  float64
	glyph string
}

// Renderer draws the scene and HUD onto a tcell screen. It also implements
// sink.Visual and sink.Text; notifications only update what the next frame
// shows.
type Renderer struct {
	screen tcell.Screen
	camera *Camera

	messages   []string
	aphorism   string
	labels     []sink.Label
	marks      []mark
	nodes      []node
	accepted   int
	highlights map[string]int
	won        bool
	banner     string
	completion *sink.Stats
}

// NewRenderer creates a Renderer for the given screen.
func NewRenderer(screen tcell.Screen) *Renderer {
	r := &Renderer{screen: screen, highlights: map[string]int{}}
	r.camera = NewCamera(1, 0, 0)
	r.Resize()
	return r
}

// Resize refits the camera to the screen.
func (r *Renderer) Resize() {
	w, h := r.screen.Size()
	r.camera.Resize(1, w, max(h-hudRows-1, 1))
}

// Advance ages transient marks by one frame.
func (r *Renderer) Advance() {
	live := r.marks[:0]
	for _, m := range r.marks {
		m.ttl--
		if m.ttl > 0 {
			live = append(live, m)
		}
	}
	r.marks = live
	for g, ttl := range r.highlights {
		if ttl <= 1 {
			delete(r.highlights, g)
			continue
		}
		r.highlights[g] = ttl - 1
	}
}

// Messages returns the feedback log, oldest first.
func (r *Renderer) Messages() []string { return append([]string(nil), r.messages...) }

// Reset clears per-level notification state.
func (r *Renderer) Reset() {
	r.marks = nil
	r.nodes = nil
	r.accepted = 0
	r.won = false
	r.completion = nil
	r.labels = nil
	clear(r.highlights)
}

// Visual

func (r *Renderer) GlyphAccepted(glyph string) {
	angle := float64(r.accepted) * 0.7
	r.accepted++
	r.nodes = append(r.nodes, node{
		x:     0.5 + 0.35*math.Cos(angle),
		y:     0.5 + 0.35*math.Sin(angle),
		glyph: glyph,
	})
	if over := len(r.nodes) - maxNodes; over > 0 {
		r.nodes = r.nodes[over:]
	}
}

func (r *Renderer) EntityEffect(fx sink.EntityEffect) {
	glyph, color := cueGlyph(fx.Cue)
	if fx.Cue == sink.CueMirror && fx.Glyph != "" {
		glyph = fx.Glyph
	}
	r.marks = append(r.marks, mark{x: fx.X, y: fx.Y, glyph: glyph, color: color, ttl: effectTTL})
}

func (r *Renderer) EnvironmentChanged(labels []sink.Label) {
	r.labels = append(r.labels[:0], labels...)
}

func (r *Renderer) Win() { r.won = true }

func (r *Renderer) LevelTransition(name string) {
	r.Reset()
	r.banner = name
}

// Text

func (r *Renderer) Feedback(message string) {
	r.messages = append(r.messages, message)
	if over := len(r.messages) - maxMessages; over > 0 {
		r.messages = r.messages[over:]
	}
}

func (r *Renderer) Aphorism(text string) { r.aphorism = text }

func (r *Renderer) Highlight(glyphs []string) {
	for _, g := range glyphs {
		r.highlights[g] = highlightTT
	}
}

func (r *Renderer) WinSequence(stats sink.Stats) {
	r.won = true
	r.completion = &stats
}

func (r *Renderer) LevelCompletion(name string, stats sink.Stats) {
	r.completion = &stats
	r.banner = name
}

// Draw renders a full frame.
func (r *Renderer) Draw(s Scene) {
	r.screen.Clear()
	theme := themeFor(s.Level)
	r.drawTitle(s)
	r.drawGround(theme, s.Stats.Score)
	r.drawNodes(theme)
	r.drawGroups(theme, s.Groups)
	r.drawEntities(theme, s.Entities)
	r.drawMarks()
	r.DrawHUD(s)
	if r.won && s.Prompt != "" {
		r.drawCompletion(s)
	}
	r.screen.Show()
}

func (r *Renderer) drawTitle(s Scene) {
	w, _ := r.screen.Size()
	title := s.Level
	if r.banner != "" && r.banner != s.Level {
		title = r.banner + " → " + s.Level
	}
	style := tcell.StyleDefault.Foreground(MoodColor(s.Stats.Mood)).Bold(true)
	r.drawCentered(0, w, title, style)
}

// drawGround scatters the level's ground glyph; more of the canopy lights
// up as harmonics rise.
func (r *Renderer) drawGround(theme Theme, score float64) {
	c := r.camera
	dim := tcell.StyleDefault.Foreground(theme.Dim)
	lit := tcell.StyleDefault.Foreground(theme.Canopy)
	root := tcell.StyleDefault.Foreground(theme.Root)
	for y := 0; y < c.ViewHeight; y++ {
		for x := 0; x < c.ViewWidth; x++ {
			cell := x*31 + y*17
			if cell%theme.GroundRate != 0 {
				continue
			}
			style := dim
			if float64(cell%100)/100 < score {
				style = lit
			}
			if y == c.ViewHeight-1 {
				style = root
			}
			r.putGlyph(x, c.OffsetY+y, theme.Ground, style)
		}
	}
}

func (r *Renderer) drawNodes(theme Theme) {
	style := tcell.StyleDefault.Foreground(theme.Node)
	for _, n := range r.nodes {
		if sx, sy, ok := r.camera.SceneToScreen(n.x, n.y); ok {
			r.putGlyph(sx, sy, n.glyph, style)
		}
	}
}

func (r *Renderer) drawGroups(theme Theme, groups []level.Group) {
	for _, g := range groups {
		sx, sy, ok := r.camera.SceneToScreen(g.X, g.Y)
		if !ok {
			continue
		}
		style := tcell.StyleDefault.Foreground(theme.Dim)
		if g.Formed {
			style = tcell.StyleDefault.Foreground(theme.Accent)
		}
		label := "["
		for _, m := range g.Members {
			label += m
		}
		r.drawText(sx, sy, label+"]", style)
	}
}

// drawEntities renders visible entities, brightest pulse last.
func (r *Renderer) drawEntities(theme Theme, views []system.EntityView) {
	visible := make([]system.EntityView, 0, len(views))
	for _, v := range views {
		if !v.Hidden {
			visible = append(visible, v)
		}
	}
	sort.SliceStable(visible, func(i, j int) bool { return visible[i].Pulse < visible[j].Pulse })

	for _, v := range visible {
		sx, sy, ok := r.camera.SceneToScreen(v.X, v.Y)
		if !ok {
			continue
		}
		style := tcell.StyleDefault.Foreground(theme.Entity)
		if v.Color != tcell.ColorDefault {
			style = style.Foreground(v.Color)
		}
		if v.Pulse > 0.5 {
			style = style.Bold(true).Foreground(theme.Accent)
		}
		r.putGlyph(sx, sy, v.Glyph, style)
		r.drawText(sx+runewidth.StringWidth(v.Glyph)+1, sy, v.Name, tcell.StyleDefault.Foreground(theme.Dim))
	}
}

func (r *Renderer) drawMarks() {
	for _, m := range r.marks {
		sx, sy, ok := r.camera.SceneToScreen(m.x, m.y)
		if !ok {
			continue
		}
		// Marks float upward as they fade.
		sy -= (effectTTL - m.ttl) / 6
		if sy < r.camera.OffsetY {
			continue
		}
		r.putGlyph(sx, sy, m.glyph, tcell.StyleDefault.Foreground(m.color))
	}
}

func (r *Renderer) drawCompletion(s Scene) {
	w, h := r.screen.Size()
	stats := s.Stats
	if r.completion != nil {
		stats = *r.completion
	}
	lines := []string{
		stats.Level + " complete",
		"",
		statsLine(stats),
		"",
	}
	if r.aphorism != "" {
		lines = append(lines, r.aphorism, "")
	}
	lines = append(lines, s.Prompt)

	top := max((h-hudRows-len(lines))/2, 1)
	style := tcell.StyleDefault.Foreground(tcell.ColorGold)
	for i, l := range lines {
		r.drawCentered(top+i, w, l, style)
	}
}

// putGlyph draws a glyph at screen position (x, y). Glyphs may be several
// letters wide, such as "mni".
func (r *Renderer) putGlyph(x, y int, glyph string, style tcell.Style) {
	r.drawText(x, y, glyph, style)
}

var (
	_ sink.Visual = (*Renderer)(nil)
	_ sink.Text   = (*Renderer)(nil)
)
