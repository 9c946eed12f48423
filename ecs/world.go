package ecs

import "github.com/milk9111/ninjaroll/ecs/component"

// World owns entities, component stores, the event queue and the simulation clock.
type World struct {
	entities entityStore
	stores   map[component.ComponentID]*SparseSet
	events   EventQueue
	clock    Clock
}

// Clock is the engine clock driven by per-tick delta time.
type Clock struct {
	Now   float64
	Delta float64
	Ticks uint64
}

// NewWorld creates an empty ECS world.
func NewWorld() *World {
	return &World{stores: make(map[component.ComponentID]*SparseSet)}
}

// CreateEntity allocates a new entity.
func CreateEntity(w *World) Entity {
	return w.entities.create()
}

// DestroyEntity removes every component of e and invalidates the handle.
func DestroyEntity(w *World, e Entity) bool {
	if w == nil || !w.entities.isAlive(e) {
		return false
	}
	for _, set := range w.stores {
		set.Remove(e)
	}
	return w.entities.destroy(e)
}

// IsAlive reports whether an entity handle is valid.
func IsAlive(w *World, e Entity) bool {
	if w == nil {
		return false
	}
	return w.entities.isAlive(e)
}

// Entities returns every live entity.
func Entities(w *World) []Entity {
	if w == nil {
		return nil
	}
	out := make([]Entity, 0, w.entities.count)
	w.entities.each(func(e Entity) { out = append(out, e) })
	return out
}

// Clear destroys every entity but keeps the clock running.
func Clear(w *World) {
	for _, e := range Entities(w) {
		DestroyEntity(w, e)
	}
}

func (w *World) store(id component.ComponentID, create bool) *SparseSet {
	if w == nil {
		return nil
	}
	set := w.stores[id]
	if set == nil && create {
		if w.stores == nil {
			w.stores = make(map[component.ComponentID]*SparseSet)
		}
		set = &SparseSet{}
		w.stores[id] = set
	}
	return set
}

// Advance moves the clock forward by dt seconds.
func (w *World) Advance(dt float64) {
	if w == nil {
		return
	}
	if dt < 0 {
		dt = 0
	}
	w.clock.Delta = dt
	w.clock.Now += dt
	w.clock.Ticks++
}

// Now returns the elapsed simulation time in seconds.
func (w *World) Now() float64 {
	if w == nil {
		return 0
	}
	return w.clock.Now
}

// Delta returns the duration of the current tick in seconds.
func (w *World) Delta() float64 {
	if w == nil {
		return 0
	}
	return w.clock.Delta
}

// Ticks returns the number of ticks advanced so far.
func (w *World) Ticks() uint64 {
	if w == nil {
		return 0
	}
	return w.clock.Ticks
}

// Events returns the world event queue.
func (w *World) Events() *EventQueue {
	if w == nil {
		return nil
	}
	return &w.events
}
