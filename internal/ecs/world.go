package ecs

import "sort"

// World stores entities and their components. Queries return entities in
// creation order so that lookups by glyph or name resolve deterministically.
// A level builds its world once and never destroys entities; Reset builds a
// fresh one.
type World struct {
	nextID     EntityID
	components map[ComponentType]map[EntityID]Component
}

// NewWorld creates an empty World.
func NewWorld() *World {
	return &World{
		nextID:     1,
		components: make(map[ComponentType]map[EntityID]Component),
	}
}

// CreateEntity mints a new entity ID.
func (w *World) CreateEntity() EntityID {
	id := w.nextID
	w.nextID++
	return id
}

// Add attaches a component to an entity, replacing any component of the
// same type.
func (w *World) Add(id EntityID, c Component) {
	t := c.Type()
	if w.components[t] == nil {
		w.components[t] = make(map[EntityID]Component)
	}
	w.components[t][id] = c
}

// Get returns the component of the given type for entity id, or nil.
func (w *World) Get(id EntityID, t ComponentType) Component {
	store := w.components[t]
	if store == nil {
		return nil
	}
	return store[id]
}

// Remove detaches a component from an entity.
func (w *World) Remove(id EntityID, t ComponentType) {
	if store := w.components[t]; store != nil {
		delete(store, id)
	}
}

// Has reports whether entity id has a component of the given type.
func (w *World) Has(id EntityID, t ComponentType) bool {
	return w.Get(id, t) != nil
}

// Query returns all entities that have every listed component type,
// ordered by ID.
func (w *World) Query(types ...ComponentType) []EntityID {
	if len(types) == 0 {
		return nil
	}
	// Use the smallest store as the candidate set.
	smallest := types[0]
	for _, t := range types[1:] {
		if len(w.components[t]) < len(w.components[smallest]) {
			smallest = t
		}
	}
	store := w.components[smallest]
	if store == nil {
		return nil
	}
	var result []EntityID
	for id := range store {
		match := true
		for _, t := range types {
			if t != smallest && !w.Has(id, t) {
				match = false
				break
			}
		}
		if match {
			result = append(result, id)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i] < result[j] })
	return result
}

// First returns the lowest-ID entity matching every listed component type
// for which keep reports true, or NilEntity.
func (w *World) First(keep func(EntityID) bool, types ...ComponentType) EntityID {
	for _, id := range w.Query(types...) {
		if keep == nil || keep(id) {
			return id
		}
	}
	return NilEntity
}
