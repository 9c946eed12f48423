package system

import (
	"log"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/ninjaroll/ecs"
	"github.com/milk9111/ninjaroll/ecs/component"
)

// Die moves a live actor to the terminal Dead state: it stops and freezes
// the body, removes it from collisions, hides it and schedules a level
// reset. Calling Die on a dead actor does nothing.
func Die(w *ecs.World, e ecs.Entity) bool {
	actor, ok := ecs.Get(w, e, component.ActorComponent.Kind())
	if !ok || !actor.Alive() {
		return false
	}
	actor.State = component.ActorDead
	actor.Grounded = false

	if body, ok := BodyOf(w, e); ok {
		body.SetVelocity(cp.Vector{})
		body.SetFrozen(true)
		body.SetCollisionEnabled(false)
	}
	if sprite, ok := ecs.Get(w, e, component.SpriteComponent.Kind()); ok {
		sprite.Hidden = true
	}
	playSound(w, e, "death", 1)
	fireTrigger(w, e, "Die")

	delay := 0.0
	if rules, ok := ecs.Get(w, e, component.ContactRulesComponent.Kind()); ok {
		delay = rules.RespawnDelay
	}
	w.Events().Push(ecs.Event{Kind: ecs.EventDeath, Entity: e})
	scheduleReset(w, e, delay)
	if actor.Debug {
		log.Printf("death: entity %v died, reset in %.2fs", e, delay)
	}
	return true
}

// ResetActor returns an actor to its spawn point, alive and at rest.
func ResetActor(w *ecs.World, e ecs.Entity) bool {
	actor, ok := ecs.Get(w, e, component.ActorComponent.Kind())
	if !ok {
		return false
	}
	actor.State = component.ActorAlive
	actor.Grounded = false
	spawn := cp.Vector{X: actor.SpawnX, Y: actor.SpawnY}

	if body, ok := BodyOf(w, e); ok {
		body.SetFrozen(false)
		body.SetCollisionEnabled(true)
		body.SetPosition(spawn)
		body.SetVelocity(cp.Vector{})
		body.SetAngularVelocity(0)
	}
	if t, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
		t.X, t.Y = spawn.X, spawn.Y
	}
	if sprite, ok := ecs.Get(w, e, component.SpriteComponent.Kind()); ok {
		sprite.Hidden = false
	}
	if state, ok := ecs.Get(w, e, component.BounceStateComponent.Kind()); ok {
		*state = component.BounceState{}
	}
	if queue, ok := ecs.Get(w, e, component.ContactQueueComponent.Kind()); ok {
		queue.Drain()
	}
	ecs.Remove(w, e, component.ResetTimerComponent.Kind())
	return true
}

// scheduleReset attaches the reset timer. When the timer cannot be attached
// the reset is raised at once so a dead actor is never left waiting.
func scheduleReset(w *ecs.World, e ecs.Entity, delay float64) {
	err := ecs.Add(w, e, component.ResetTimerComponent.Kind(), &component.ResetTimer{Remaining: delay})
	if err == nil {
		return
	}
	log.Printf("death: schedule reset for entity %v: %v", e, err)
	w.Events().Push(ecs.Event{Kind: ecs.EventLevelReset, Entity: e})
}

// LevelResetSystem counts down reset timers and raises a level reset event
// for the actor when one expires.
type LevelResetSystem struct{}

func NewLevelResetSystem() *LevelResetSystem {
	return &LevelResetSystem{}
}

func (s *LevelResetSystem) Update(w *ecs.World) {
	dt := w.Delta()
	ecs.ForEach(w, component.ResetTimerComponent.Kind(), func(e ecs.Entity, timer *component.ResetTimer) {
		timer.Remaining -= dt
		if timer.Remaining > 0 {
			return
		}
		ecs.Remove(w, e, component.ResetTimerComponent.Kind())
		w.Events().Push(ecs.Event{Kind: ecs.EventLevelReset, Entity: e})
	})
}

// LevelLoader is the level lifecycle collaborator that acts on reset and
// advance requests.
type LevelLoader interface {
	ResetLevel(actor ecs.Entity) error
	AdvanceLevel(index int) error
}

// DispatchLevelEvents drains the world's events and forwards level requests
// to loader. Only the first level request of a tick is honoured since it
// replaces the world.
func DispatchLevelEvents(w *ecs.World, loader LevelLoader) error {
	for _, evt := range w.Events().Drain() {
		switch evt.Kind {
		case ecs.EventLevelReset:
			return loader.ResetLevel(evt.Entity)
		case ecs.EventLevelAdvance:
			return loader.AdvanceLevel(int(evt.Value))
		}
	}
	return nil
}
