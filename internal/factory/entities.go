package factory

import (
	"log/slog"

	"whispergrove/assets"
	"whispergrove/internal/component"
	"whispergrove/internal/ecs"
	"whispergrove/internal/effect"

	"github.com/gdamore/tcell/v2"
)

// NewEntity creates a scene entity from its definition. The echo template is
// parsed here, once; a template that does not parse leaves the entity with a
// no-op effect and is reported to logger.
func NewEntity(w *ecs.World, def assets.EntityDef, logger *slog.Logger) ecs.EntityID {
	eff, err := effect.Parse(def.Echo)
	if err != nil && logger != nil {
		logger.Warn("echo template ignored", "entity", def.Name, "template", def.Echo, "error", err)
	}

	color := tcell.ColorAqua
	if def.Strength > 0 || def.Influence > 0 {
		color = tcell.ColorSilver
	}

	id := w.CreateEntity()
	w.Add(id, component.Spirit{Name: def.Name, Description: def.Description})
	w.Add(id, component.Position{X: def.X, Y: def.Y})
	w.Add(id, component.Renderable{Glyph: def.Glyph, FGColor: color})
	w.Add(id, component.Trigger{
		Glyph:    def.Glyph,
		Response: def.Response,
		Affinity: append([]string(nil), def.Affinity...),
	})
	w.Add(id, component.Echo{Template: def.Echo, Effect: eff})
	w.Add(id, component.TriggerState{})
	w.Add(id, component.Pulse{})
	if def.Hidden {
		w.Add(id, component.Hidden{RevealAfter: append([]string(nil), def.RevealAfter...)})
	}
	if def.Strength > 0 || def.Influence > 0 {
		w.Add(id, component.Wolf{Strength: def.Strength, Influence: def.Influence})
	}
	return id
}

// Populate builds a world holding one entity per definition, in order.
func Populate(defs []assets.EntityDef, logger *slog.Logger) *ecs.World {
	w := ecs.NewWorld()
	for _, def := range defs {
		NewEntity(w, def, logger)
	}
	return w
}
