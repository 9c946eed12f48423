package system

import (
	"log"

	"github.com/milk9111/ninjaroll/common"
	"github.com/milk9111/ninjaroll/ecs"
	"github.com/milk9111/ninjaroll/ecs/component"
)

type ContactClass int

const (
	ClassNone ContactClass = iota
	ClassEnemy
	ClassWall
	ClassHazard
)

func (c ContactClass) String() string {
	switch c {
	case ClassEnemy:
		return "enemy"
	case ClassWall:
		return "wall"
	case ClassHazard:
		return "hazard"
	}
	return "none"
}

// Classify resolves a collision layer in fixed priority: enemy, platform
// (only when bouncing), hazard, then the catch-all policy.
func Classify(layer component.Layer, rules component.ContactRules, bounce component.WallBounce) ContactClass {
	switch {
	case layer.Has(rules.EnemyMask):
		return ClassEnemy
	case bounce.Enabled && layer.Has(rules.PlatformMask):
		return ClassWall
	case layer.Has(rules.HazardMask):
		return ClassHazard
	}
	if !bounce.Enabled {
		return ClassNone
	}
	isDefault := layer == component.LayerNone || layer == component.LayerDefault
	switch bounce.CatchAll {
	case component.CatchAllWall:
		if !isDefault || bounce.Force {
			return ClassWall
		}
	case component.CatchAllNonDefault:
		if !isDefault {
			return ClassWall
		}
	}
	return ClassNone
}

// ContactSystem drains each actor's contact queue and dispatches to the
// kill, bounce and death handlers.
type ContactSystem struct{}

func NewContactSystem() *ContactSystem {
	return &ContactSystem{}
}

func (s *ContactSystem) Update(w *ecs.World) {
	ecs.ForEach3(w, component.ActorComponent.Kind(), component.ContactRulesComponent.Kind(), component.ContactQueueComponent.Kind(), func(e ecs.Entity, actor *component.Actor, rules *component.ContactRules, queue *component.ContactQueue) {
		contacts := queue.Drain()
		var bounce component.WallBounce
		if wb, ok := ecs.Get(w, e, component.WallBounceComponent.Kind()); ok {
			bounce = *wb
		}
		for _, c := range contacts {
			if !actor.Alive() {
				return
			}
			HandleContact(w, e, c, *rules, bounce)
		}
		if actor.Alive() {
			checkBounds(w, e)
		}
	})
}

// HandleContact classifies one contact of a live actor and runs its handler.
func HandleContact(w *ecs.World, e ecs.Entity, c component.Contact, rules component.ContactRules, bounce component.WallBounce) ContactClass {
	other := ecs.Entity(c.Other)
	if debugEnabled(w, e) {
		log.Printf("contact: entity %d %s with %d (layer %s)", e, c.Kind, other, c.Layer)
	}

	switch c.Kind {
	case component.ContactTrigger:
		switch {
		case c.Layer.Has(rules.HazardMask), c.Tags.Has(rules.DeathTags):
			Die(w, e)
			return ClassHazard
		case c.Layer.Has(rules.EnemyMask):
			Kill(w, e, other)
			return ClassEnemy
		}
		return ClassNone
	case component.ContactStay:
		if !bounce.Enabled || c.Velocity.Length() <= bounce.Deadzone {
			return ClassNone
		}
	}

	class := Classify(c.Layer, rules, bounce)
	switch class {
	case ClassEnemy:
		Kill(w, e, other)
	case ClassWall:
		BounceOffWall(w, e, c)
	case ClassHazard:
		Die(w, e)
	}
	return class
}

// checkBounds kills an actor that left the level.
func checkBounds(w *ecs.World, e ecs.Entity) {
	be, ok := ecs.First(w, component.LevelBoundsComponent.Kind())
	if !ok {
		return
	}
	bounds, ok := ecs.Get(w, be, component.LevelBoundsComponent.Kind())
	if !ok {
		return
	}
	body, ok := BodyOf(w, e)
	if !ok {
		return
	}
	if p := body.Position(); !bounds.Contains(p.X, p.Y) {
		Die(w, e)
	}
}

// Kill removes enemy on behalf of a live actor. It is a no-op when either
// side is already gone.
func Kill(w *ecs.World, actor, enemy ecs.Entity) bool {
	if actor == enemy || !ecs.IsAlive(w, enemy) {
		return false
	}
	a, ok := ecs.Get(w, actor, component.ActorComponent.Kind())
	if !ok || !a.Alive() {
		return false
	}

	playSound(w, actor, "kill", 1)
	fireTrigger(w, actor, "Kill")
	if rules, ok := ecs.Get(w, actor, component.ContactRulesComponent.Kind()); ok && rules.BounceOffEnemies {
		if body, ok := BodyOf(w, actor); ok {
			body.ApplyImpulse(common.Up.Mult(rules.EnemyBounceForce))
		}
	}
	w.Events().Push(ecs.Event{Kind: ecs.EventKill, Entity: actor, Other: enemy})
	ecs.DestroyEntity(w, enemy)
	if a.Debug {
		log.Printf("contact: entity %d killed %d", actor, enemy)
	}
	return true
}
