package ecs

import "github.com/milk9111/topdown/ecs/component"

// System updates a world each frame.
type System interface {
	Update(w *World)
}

// World owns entities, component stores, and system order. The order
// systems are registered in is the order they run in; callers rely on
// that for cross-system contracts.
type World struct {
	entities entityStore
	systems  []System
	stores   map[component.ComponentID]*SparseSet
}

// NewWorld creates an empty ECS world.
func NewWorld() *World {
	return &World{stores: map[component.ComponentID]*SparseSet{}}
}

// CreateEntity allocates a new entity.
func (w *World) CreateEntity() Entity {
	return w.entities.create()
}

// DestroyEntity removes an entity and all of its components.
func (w *World) DestroyEntity(e Entity) bool {
	if !w.entities.destroy(e) {
		return false
	}
	for _, s := range w.stores {
		s.Remove(e)
	}
	return true
}

// IsAlive reports whether an entity handle is valid.
func (w *World) IsAlive(e Entity) bool {
	return w.entities.isAlive(e)
}

// AddSystem appends a system to the update order.
func (w *World) AddSystem(s System) {
	if s == nil {
		return
	}
	w.systems = append(w.systems, s)
}

// Update runs all systems once in registration order.
func (w *World) Update() {
	if w == nil {
		return
	}
	for _, s := range w.systems {
		s.Update(w)
	}
}

// Store returns the sparse set for a component kind, creating it on
// first use.
func (w *World) Store(k component.ComponentKind) *SparseSet {
	if w == nil || !k.Valid() {
		return nil
	}
	s, ok := w.stores[k.ID()]
	if !ok {
		s = &SparseSet{}
		w.stores[k.ID()] = s
	}
	return s
}

// Query returns entities that hold every listed component kind.
func (w *World) Query(kinds ...component.ComponentKind) []Entity {
	if w == nil || len(kinds) == 0 {
		return nil
	}
	smallest := w.Store(kinds[0])
	for _, k := range kinds[1:] {
		if s := w.Store(k); s.Len() < smallest.Len() {
			smallest = s
		}
	}
	out := make([]Entity, 0, smallest.Len())
	for _, e := range smallest.Entities() {
		match := true
		for _, k := range kinds {
			if !w.Store(k).Has(e) {
				match = false
				break
			}
		}
		if match {
			out = append(out, e)
		}
	}
	return out
}

// First returns the first entity holding the component kind.
func (w *World) First(k component.ComponentKind) (Entity, bool) {
	s := w.Store(k)
	if s.Len() == 0 {
		return 0, false
	}
	return s.Entities()[0], true
}
