package component

import "whispergrove/internal/ecs"

const CWolf ecs.ComponentType = 9

// Wolf carries the pack-level attributes of a wolf entity.
type Wolf struct {
	Strength  float64
	Influence float64
}

func (Wolf) Type() ecs.ComponentType { return CWolf }
