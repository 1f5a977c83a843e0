package component

import "whispergrove/internal/ecs"

const CPosition ecs.ComponentType = 1

// Position is a normalized scene coordinate in [0,1]×[0,1].
type Position struct {
	X, Y float64
}

func (Position) Type() ecs.ComponentType { return CPosition }
