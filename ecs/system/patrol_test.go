package system

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/ninjaroll/ecs"
	"github.com/milk9111/ninjaroll/ecs/component"
)

func TestPatrolWalksWaitsAndTurns(t *testing.T) {
	w := newTestWorld(0.5)
	body := &stubBody{pos: cp.Vector{X: 0}}
	e := ecs.CreateEntity(w)
	mustAdd(w, e, component.PatrolComponent, &component.Patrol{
		PointA:     cp.Vector{X: 0},
		PointB:     cp.Vector{X: 4},
		Speed:      2,
		WaitTime:   1,
		StartRight: true,
	})
	mustAdd(w, e, component.PhysicsBodyComponent, &component.PhysicsBody{Body: body})
	mustAdd(w, e, component.SpriteComponent, &component.Sprite{})
	mustAdd(w, e, component.AnimatorComponent, component.NewAnimator(map[string]component.ParamKind{
		"IsMoving": component.ParamBool,
	}))
	s := NewPatrolSystem()
	p, _ := ecs.Get(w, e, component.PatrolComponent.Kind())
	sprite, _ := ecs.Get(w, e, component.SpriteComponent.Kind())
	anim, _ := ecs.Get(w, e, component.AnimatorComponent.Kind())

	s.Update(w)
	if body.vel != (cp.Vector{X: 2}) || sprite.FacingLeft || !anim.Bool("IsMoving") {
		t.Fatalf("expected walking right, got vel %v", body.vel)
	}

	body.pos = cp.Vector{X: 4}
	s.Update(w)
	if !p.Waiting || body.vel != (cp.Vector{}) || anim.Bool("IsMoving") {
		t.Fatalf("expected waiting at B")
	}

	s.Update(w)
	if !p.Waiting {
		t.Fatalf("still waiting halfway through")
	}
	s.Update(w)
	if p.Waiting || p.TowardB || !sprite.FacingLeft {
		t.Fatalf("expected to turn toward A after the wait")
	}

	s.Update(w)
	if body.vel != (cp.Vector{X: -2}) {
		t.Fatalf("expected walking left, got %v", body.vel)
	}
}

func TestPatrolStartLeft(t *testing.T) {
	w := newTestWorld(0.1)
	body := &stubBody{pos: cp.Vector{X: 2, Y: 1}}
	e := ecs.CreateEntity(w)
	mustAdd(w, e, component.PatrolComponent, &component.Patrol{PointA: cp.Vector{X: 0, Y: 1}, PointB: cp.Vector{X: 4, Y: 1}, Speed: 3})
	mustAdd(w, e, component.PhysicsBodyComponent, &component.PhysicsBody{Body: body})
	mustAdd(w, e, component.SpriteComponent, &component.Sprite{})

	NewPatrolSystem().Update(w)

	sprite, _ := ecs.Get(w, e, component.SpriteComponent.Kind())
	if !sprite.FacingLeft || body.vel != (cp.Vector{X: -3}) {
		t.Fatalf("expected to head for A, got %v", body.vel)
	}
}
