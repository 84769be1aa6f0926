package ecs

import "github.com/milk9111/topdown/ecs/component"

// Add attaches a component value to an entity. The stored pointer stays
// live, so systems mutate components in place.
func Add[T any](w *World, e Entity, h component.ComponentHandle[T], value *T) error {
	if w == nil || !w.IsAlive(e) {
		return component.ErrEntityNotAlive
	}
	if value == nil {
		return component.ErrNilComponent
	}
	s := w.Store(h.Kind())
	if s == nil {
		return component.ErrInvalidComponentKind
	}
	s.Set(e, value)
	return nil
}

// Get returns the component pointer for an entity, if present.
func Get[T any](w *World, e Entity, h component.ComponentHandle[T]) (*T, bool) {
	if w == nil {
		return nil, false
	}
	v := w.Store(h.Kind()).Get(e)
	if v == nil {
		return nil, false
	}
	cast, ok := v.(*T)
	return cast, ok
}

// Has reports whether the entity holds the component.
func Has[T any](w *World, e Entity, h component.ComponentHandle[T]) bool {
	if w == nil {
		return false
	}
	return w.Store(h.Kind()).Has(e)
}

// Remove detaches the component from the entity.
func Remove[T any](w *World, e Entity, h component.ComponentHandle[T]) bool {
	if w == nil {
		return false
	}
	return w.Store(h.Kind()).Remove(e)
}

// ForEach visits every entity holding the component.
func ForEach[T any](w *World, h component.ComponentHandle[T], fn func(e Entity, v *T)) {
	if w == nil || fn == nil {
		return
	}
	s := w.Store(h.Kind())
	for _, e := range s.Entities() {
		if v, ok := s.Get(e).(*T); ok {
			fn(e, v)
		}
	}
}
