package component

import (
	"whispergrove/internal/ecs"
	"whispergrove/internal/effect"
)

const CEcho ecs.ComponentType = 6

// Echo is the effect an entity applies when triggered. Template keeps the
// source text for display; Effect is its parsed form.
type Echo struct {
	Template string
	Effect   effect.Descriptor
}

func (Echo) Type() ecs.ComponentType { return CEcho }
