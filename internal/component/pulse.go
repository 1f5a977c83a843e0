package component

import "whispergrove/internal/ecs"

const CPulse ecs.ComponentType = 8

// Pulse is the cosmetic glow of an entity; set to 1 on trigger and decayed
// every tick.
type Pulse struct {
	Value float64
}

func (Pulse) Type() ecs.ComponentType { return CPulse }
