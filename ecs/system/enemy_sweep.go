package system

import (
	"github.com/milk9111/ninjaroll/ecs"
	"github.com/milk9111/ninjaroll/ecs/component"
)

// EnemySweepSystem kills every enemy overlapping an actor's detection circle,
// catching overlaps that never produced a contact.
type EnemySweepSystem struct {
	query SpatialQuery
}

func NewEnemySweepSystem(query SpatialQuery) *EnemySweepSystem {
	return &EnemySweepSystem{query: query}
}

func (s *EnemySweepSystem) Update(w *ecs.World) {
	if s == nil || s.query == nil {
		return
	}
	ecs.ForEach3(w, component.ActorComponent.Kind(), component.ContactRulesComponent.Kind(), component.PhysicsBodyComponent.Kind(), func(e ecs.Entity, actor *component.Actor, rules *component.ContactRules, bodyComp *component.PhysicsBody) {
		if !actor.Alive() || rules.EnemyMask == component.LayerNone || bodyComp.Body == nil {
			return
		}
		radius := rules.DetectionRadius
		if radius <= 0 {
			radius = colliderHalfWidth(bodyComp) * 1.2
		}
		for _, enemy := range s.query.OverlapCircle(bodyComp.Body.Position(), radius, rules.EnemyMask) {
			if enemy == e || !ecs.IsAlive(w, enemy) {
				continue
			}
			Kill(w, e, enemy)
		}
	})
}
