package component

import (
	"errors"
	"sync/atomic"
)

var (
	ErrEntityNotAlive       = errors.New("ecs: entity not alive")
	ErrNilComponent         = errors.New("ecs: component is nil")
	ErrInvalidComponentKind = errors.New("ecs: invalid component kind")
)

// ComponentID is the process-wide identifier of a registered component.
type ComponentID uint32

// ComponentKind is the untyped key used by world storage and queries.
type ComponentKind struct {
	id ComponentID
}

func (k ComponentKind) ID() ComponentID {
	return k.id
}

func (k ComponentKind) Valid() bool {
	return k.id != 0
}

// ComponentHandle ties a component type to its kind. Handles are created
// once at package init via NewComponent.
type ComponentHandle[T any] struct {
	kind ComponentKind
}

func NewComponent[T any]() ComponentHandle[T] {
	return ComponentHandle[T]{kind: ComponentKind{id: ComponentID(nextComponentID.Add(1))}}
}

func (h ComponentHandle[T]) Kind() ComponentKind {
	return h.kind
}

var nextComponentID atomic.Uint32
