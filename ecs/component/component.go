package component

import (
	"errors"
	"sync/atomic"

	"github.com/milk9111/ninjaroll/common"
)

// Sentinel errors returned by the world and by prefab decoding. Callers
// match them with errors.Is; wrapped messages add the entity or field.
var (
	ErrEntityNotAlive       = errors.New("ecs: entity not alive")
	ErrNilComponent         = errors.New("ecs: component is nil")
	ErrInvalidComponentKind = errors.New("ecs: invalid component kind")

	// ErrUnknownLayer is returned for a layer or mask name outside the
	// fixed set in collision_layer.go.
	ErrUnknownLayer = errors.New("component: unknown layer")
	// ErrUnknownCurve is common.ErrUnknownCurve, repeated here so tuning
	// callers only need this package.
	ErrUnknownCurve = common.ErrUnknownCurve
)

// ComponentID is the storage slot of one component type, unique per process.
type ComponentID uint32

var nextComponentID atomic.Uint32

// ComponentKind is the typed key the world stores T under.
type ComponentKind[T any] struct {
	id ComponentID
}

func NewComponentKind[T any]() ComponentKind[T] {
	return ComponentKind[T]{id: ComponentID(nextComponentID.Add(1))}
}

func (k ComponentKind[T]) ID() ComponentID {
	return k.id
}

// Valid reports whether k came from NewComponentKind. The zero kind is
// rejected by every world operation.
func (k ComponentKind[T]) Valid() bool {
	return k.id != 0
}

// ComponentHandle is declared once per component file as XComponent.
type ComponentHandle[T any] struct {
	kind ComponentKind[T]
}

func NewComponent[T any]() ComponentHandle[T] {
	return ComponentHandle[T]{kind: NewComponentKind[T]()}
}

func (h ComponentHandle[T]) Kind() ComponentKind[T] {
	return h.kind
}

