package component

import (
	"time"

	"whispergrove/internal/ecs"
)

const (
	CTrigger      ecs.ComponentType = 4
	CTriggerState ecs.ComponentType = 5
)

// Trigger binds an entity to the glyph that wakes it.
type Trigger struct {
	Glyph    string
	Response string // response tag: keys feedback text and audio cue
	Affinity []string
}

func (Trigger) Type() ecs.ComponentType { return CTrigger }

// TriggerState counts how often an entity has answered.
type TriggerState struct {
	Count         int
	LastTriggered time.Time
}

func (TriggerState) Type() ecs.ComponentType { return CTriggerState }
