package component

import "whispergrove/internal/ecs"

const CHidden ecs.ComponentType = 7

// Hidden keeps an entity out of the scene until every entity named in
// RevealAfter has been triggered at least once. It is removed on reveal.
type Hidden struct {
	RevealAfter []string
}

func (Hidden) Type() ecs.ComponentType { return CHidden }
