package component

import (
	"whispergrove/internal/ecs"

	"github.com/gdamore/tcell/v2"
)

const CRenderable ecs.ComponentType = 2

// Renderable is how an entity is tinted in the scene.
type Renderable struct {
	Glyph   string
	FGColor tcell.Color
}

func (Renderable) Type() ecs.ComponentType { return CRenderable }
