package component

import "whispergrove/internal/ecs"

const CSpirit ecs.ComponentType = 3

// Spirit names an entity of the scene (forest spirit or wolf).
type Spirit struct {
	Name        string
	Description string
}

func (Spirit) Type() ecs.ComponentType { return CSpirit }
