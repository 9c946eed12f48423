package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/ninjaroll/common"
	"github.com/milk9111/ninjaroll/ecs"
	"github.com/milk9111/ninjaroll/ecs/component"
)

// patrolArriveDistance is how close to a waypoint counts as arrived.
const patrolArriveDistance = 0.1

type PatrolSystem struct{}

func NewPatrolSystem() *PatrolSystem {
	return &PatrolSystem{}
}

func (s *PatrolSystem) Update(w *ecs.World) {
	dt := w.Delta()
	ecs.ForEach2(w, component.PatrolComponent.Kind(), component.PhysicsBodyComponent.Kind(), func(e ecs.Entity, p *component.Patrol, bodyComp *component.PhysicsBody) {
		if bodyComp.Body == nil {
			return
		}
		if !p.Initialized {
			p.Initialized = true
			p.TowardB = p.StartRight
			faceTarget(w, e, p)
		}

		if p.Waiting {
			p.WaitCounter -= dt
			if p.WaitCounter <= 0 {
				p.Waiting = false
				p.TowardB = !p.TowardB
				faceTarget(w, e, p)
			}
			return
		}

		target := p.PointA
		if p.TowardB {
			target = p.PointB
		}
		pivot, angle := frameOf(w, e)
		target = toFrame(pivot, angle, target)
		pos := bodyComp.Body.Position()
		if pos.Distance(target) < patrolArriveDistance {
			bodyComp.Body.SetVelocity(cp.Vector{})
			p.Waiting = true
			p.WaitCounter = p.WaitTime
			setAnimBool(w, e, "IsMoving", false)
			return
		}
		bodyComp.Body.SetVelocity(common.Normalize(target.Sub(pos)).Mult(p.Speed))
		setAnimBool(w, e, "IsMoving", true)
	})
}

func faceTarget(w *ecs.World, e ecs.Entity, p *component.Patrol) {
	if sprite, ok := ecs.Get(w, e, component.SpriteComponent.Kind()); ok {
		sprite.FacingLeft = !p.TowardB
	}
}
