package system

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"whispergrove/assets"
	"whispergrove/internal/component"
	"whispergrove/internal/ecs"
	"whispergrove/internal/effect"
	"whispergrove/internal/sink"

	"github.com/gdamore/tcell/v2"
)

const (
	historySize    = 10
	pulseDecay     = 0.95
	isolationBoost = 0.1
	releaseEcho    = 500 * time.Millisecond
)

// EffectTarget is the level state an entity's echo may touch. The registry
// applies entity-local effects itself and routes everything else here.
type EffectTarget interface {
	Release(glyph string) bool
	Teach(glyph string) bool
	AmplifyScore() float64
	AmplifyCollective() float64
	Previous() (string, bool)
}

// Interaction is one entry of the trigger history.
type Interaction struct {
	Entity   string
	Glyph    string
	Response string
	At       time.Time
}

// Outcome reports what a trigger did.
type Outcome struct {
	Entity    string
	Response  string
	Effect    effect.Descriptor
	Fresh     bool    // a release or teach introduced a glyph
	Amplified float64 // score delta applied by an amplify effect
	Mirrored  string
}

// EntityView is a read-only snapshot of one entity.
type EntityView struct {
	Name          string
	Glyph         string
	Response      string
	Hidden        bool
	Count         int
	LastTriggered time.Time
	Pulse         float64
	Strength      float64
	X, Y          float64
	Color         tcell.Color
}

// Registry owns a level's entities and applies their echoes.
type Registry struct {
	world   *ecs.World
	hub     *sink.Hub
	history []Interaction

	// Now stamps triggers; defaults to time.Now.
	Now func() time.Time
	// Emerge formats the delayed line that follows a fresh release. Empty
	// means no delayed line.
	Emerge string
}

// NewRegistry wraps a populated world. hub may be nil.
func NewRegistry(w *ecs.World, hub *sink.Hub) *Registry {
	return &Registry{world: w, hub: hub, Now: time.Now}
}

// FindByGlyph returns the first entity bound to glyph. Hidden entities
// answer too; hiding only keeps them out of the scene.
func (r *Registry) FindByGlyph(glyph string) (ecs.EntityID, bool) {
	id := r.world.First(func(id ecs.EntityID) bool {
		return r.world.Get(id, component.CTrigger).(component.Trigger).Glyph == glyph
	}, component.CTrigger)
	return id, id != ecs.NilEntity
}

func (r *Registry) byName(name string) ecs.EntityID {
	return r.world.First(func(id ecs.EntityID) bool {
		return r.world.Get(id, component.CSpirit).(component.Spirit).Name == name
	}, component.CSpirit)
}

func (r *Registry) name(id ecs.EntityID) string {
	if c := r.world.Get(id, component.CSpirit); c != nil {
		return c.(component.Spirit).Name
	}
	return ""
}

func (r *Registry) position(id ecs.EntityID) (float64, float64) {
	if c := r.world.Get(id, component.CPosition); c != nil {
		p := c.(component.Position)
		return p.X, p.Y
	}
	return 0, 0
}

// Trigger wakes entity id: it records the interaction, announces the
// response, and applies the entity's echo.
func (r *Registry) Trigger(id ecs.EntityID, target EffectTarget) Outcome {
	trig := r.world.Get(id, component.CTrigger).(component.Trigger)
	name := r.name(id)
	now := r.Now()

	state := component.TriggerState{}
	if c := r.world.Get(id, component.CTriggerState); c != nil {
		state = c.(component.TriggerState)
	}
	state.Count++
	state.LastTriggered = now
	r.world.Add(id, state)
	r.world.Add(id, component.Pulse{Value: 1})

	r.history = append(r.history, Interaction{Entity: name, Glyph: trig.Glyph, Response: trig.Response, At: now})
	if over := len(r.history) - historySize; over > 0 {
		r.history = r.history[over:]
	}

	text, ok := assets.ResponseTexts[trig.Response]
	if !ok {
		text = fmt.Sprintf("%s responds with %s", name, trig.Response)
	}
	x, y := r.position(id)
	r.hub.Feedback(text)
	r.hub.EntityResponse(trig.Response)
	r.hub.EntityEffect(sink.EntityEffect{Cue: sink.CueTrigger, Entity: name, Glyph: trig.Glyph, X: x, Y: y})

	out := Outcome{Entity: name, Response: trig.Response}
	if c := r.world.Get(id, component.CEcho); c != nil {
		out.Effect = c.(component.Echo).Effect
	}
	r.apply(name, x, y, &out, target)
	return out
}

func (r *Registry) apply(name string, x, y float64, out *Outcome, target EffectTarget) {
	d := out.Effect
	fx := sink.EntityEffect{Entity: name, Glyph: d.Glyph, X: x, Y: y}
	switch d.Kind {
	case effect.Release:
		if out.Fresh = target.Release(d.Glyph); out.Fresh {
			r.hub.Feedback("New glyph released: " + d.Glyph)
			if r.Emerge != "" {
				r.hub.FeedbackAfter(releaseEcho, fmt.Sprintf(r.Emerge, d.Glyph))
			}
			fx.Cue = sink.CueRelease
			r.hub.EntityEffect(fx)
		}
	case effect.Teach:
		if out.Fresh = target.Teach(d.Glyph); out.Fresh {
			r.hub.Feedback("You learn the glyph: " + d.Glyph)
			fx.Cue = sink.CueTeach
			r.hub.EntityEffect(fx)
		}
	case effect.Decay:
		// Notification only; the glyph stays active and known.
		r.hub.Feedback(fmt.Sprintf("The %s glyph's power wanes...", d.Glyph))
		fx.Cue = sink.CueDecay
		r.hub.EntityEffect(fx)
	case effect.AmplifyScore:
		out.Amplified = target.AmplifyScore()
		r.hub.Feedback(fmt.Sprintf("Harmonics amplified by the %s!", name))
		fx.Cue = sink.CueAmplify
		r.hub.EntityEffect(fx)
	case effect.AmplifyCollective:
		out.Amplified = target.AmplifyCollective()
		r.hub.Feedback(fmt.Sprintf("Collective harmonics amplified by the %s!", name))
		fx.Cue = sink.CueAmplify
		r.hub.EntityEffect(fx)
	case effect.FormPack:
		r.hub.Feedback("Pack suggestion: " + strings.Join(d.Glyphs, " "))
		r.hub.Highlight(d.Glyphs)
		fx.Cue = sink.CueSuggest
		fx.Glyphs = slices.Clone(d.Glyphs)
		r.hub.EntityEffect(fx)
	case effect.Isolate:
		id := r.byName(d.Target)
		if id == ecs.NilEntity || !r.world.Has(id, component.CWolf) {
			return
		}
		wolf := r.world.Get(id, component.CWolf).(component.Wolf)
		wolf.Strength += isolationBoost
		r.world.Add(id, wolf)
		r.hub.Feedback(fmt.Sprintf("The %s isolates itself, gaining strength in solitude.", d.Target))
		fx.Cue = sink.CueIsolate
		r.hub.EntityEffect(fx)
	case effect.Mirror:
		prev, ok := target.Previous()
		if !ok {
			return
		}
		out.Mirrored = prev
		r.hub.Feedback(fmt.Sprintf("The %s mirrors: %s", name, prev))
		fx.Cue = sink.CueMirror
		fx.Glyph = prev
		r.hub.EntityEffect(fx)
	}
}

// CheckReveals reveals every hidden entity whose prerequisites have all
// triggered, releasing its glyph. It returns the names revealed by this
// call; revealed entities are never revealed again.
func (r *Registry) CheckReveals(target EffectTarget) []string {
	var revealed []string
	for _, id := range r.world.Query(component.CHidden) {
		hidden := r.world.Get(id, component.CHidden).(component.Hidden)
		if !r.allTriggered(hidden.RevealAfter) {
			continue
		}
		r.world.Remove(id, component.CHidden)
		name := r.name(id)
		revealed = append(revealed, name)

		glyph := ""
		if c := r.world.Get(id, component.CTrigger); c != nil {
			glyph = c.(component.Trigger).Glyph
			target.Release(glyph)
		}
		x, y := r.position(id)
		r.hub.Feedback(assets.RevealText)
		r.hub.EntityEffect(sink.EntityEffect{Cue: sink.CueReveal, Entity: name, Glyph: glyph, X: x, Y: y})
	}
	return revealed
}

func (r *Registry) allTriggered(names []string) bool {
	for _, n := range names {
		id := r.byName(n)
		if id == ecs.NilEntity {
			return false
		}
		c := r.world.Get(id, component.CTriggerState)
		if c == nil || c.(component.TriggerState).Count == 0 {
			return false
		}
	}
	return true
}

// DecayPulses fades every entity's glow by one tick.
func (r *Registry) DecayPulses() {
	for _, id := range r.world.Query(component.CPulse) {
		p := r.world.Get(id, component.CPulse).(component.Pulse)
		if p.Value == 0 {
			continue
		}
		p.Value *= pulseDecay
		if p.Value < 0.01 {
			p.Value = 0
		}
		r.world.Add(id, p)
	}
}

// History returns the most recent interactions, oldest first.
func (r *Registry) History() []Interaction { return slices.Clone(r.history) }

// Entities returns a snapshot of every entity, in creation order.
func (r *Registry) Entities() []EntityView {
	ids := r.world.Query(component.CSpirit, component.CTrigger)
	out := make([]EntityView, 0, len(ids))
	for _, id := range ids {
		trig := r.world.Get(id, component.CTrigger).(component.Trigger)
		v := EntityView{
			Name:     r.name(id),
			Glyph:    trig.Glyph,
			Response: trig.Response,
			Hidden:   r.world.Has(id, component.CHidden),
		}
		v.X, v.Y = r.position(id)
		if c := r.world.Get(id, component.CTriggerState); c != nil {
			st := c.(component.TriggerState)
			v.Count, v.LastTriggered = st.Count, st.LastTriggered
		}
		if c := r.world.Get(id, component.CPulse); c != nil {
			v.Pulse = c.(component.Pulse).Value
		}
		if c := r.world.Get(id, component.CWolf); c != nil {
			v.Strength = c.(component.Wolf).Strength
		}
		if c := r.world.Get(id, component.CRenderable); c != nil {
			v.Color = c.(component.Renderable).FGColor
		}
		out = append(out, v)
	}
	return out
}
