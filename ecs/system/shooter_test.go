package system

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/ninjaroll/ecs"
	"github.com/milk9111/ninjaroll/ecs/component"
)

type spawnRecorder struct {
	prefabs   []string
	positions []cp.Vector
	withBody  *stubBody
	err       error
}

func (r *spawnRecorder) spawn(w *ecs.World, prefab string, pos cp.Vector) (ecs.Entity, error) {
	r.prefabs = append(r.prefabs, prefab)
	r.positions = append(r.positions, pos)
	if r.err != nil {
		return 0, r.err
	}
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: pos.X, Y: pos.Y}); err != nil {
		return 0, err
	}
	if r.withBody != nil {
		if err := ecs.Add(w, e, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{Body: r.withBody}); err != nil {
			return 0, err
		}
	}
	return e, nil
}

func addShooter(w *ecs.World, sh component.Shooter) ecs.Entity {
	e := ecs.CreateEntity(w)
	mustAdd(w, e, component.ShooterComponent, &sh)
	mustAdd(w, e, component.TransformComponent, &component.Transform{X: 3, Y: 2})
	mustAdd(w, e, component.SpriteComponent, &component.Sprite{})
	mustAdd(w, e, component.AudioComponent, newTestAudio("shoot"))
	mustAdd(w, e, component.AnimatorComponent, component.NewAnimator(map[string]component.ParamKind{
		"Shoot": component.ParamTrigger,
	}))
	return e
}

func TestShooterFiresOnInterval(t *testing.T) {
	w := newTestWorld(0.5)
	rec := &spawnRecorder{}
	e := addShooter(w, component.Shooter{
		Interval:    1,
		BulletSpeed: 6,
		Direction:   cp.Vector{X: -2},
		ShootOffset: cp.Vector{X: -0.5},
		Prefab:      "bullet",
	})
	s := NewShooterSystem(rec.spawn, rand.New(rand.NewSource(7)))

	shots := 0
	for i := 0; i < 12; i++ {
		s.Update(w)
		shots = len(rec.prefabs)
	}
	// a random phase in [0, 1) then one shot per second
	if shots < 5 || shots > 6 {
		t.Fatalf("expected about one shot per second, got %d", shots)
	}
	if rec.prefabs[0] != "bullet" || rec.positions[0] != (cp.Vector{X: 2.5, Y: 2}) {
		t.Fatalf("unexpected spawn %v at %v", rec.prefabs[0], rec.positions[0])
	}

	sprite, _ := ecs.Get(w, e, component.SpriteComponent.Kind())
	if !sprite.FacingLeft {
		t.Fatalf("shooter aiming left should face left")
	}

	launched := 0
	ecs.ForEach2(w, component.LaunchComponent.Kind(), component.TransformComponent.Kind(), func(b ecs.Entity, l *component.Launch, tr *component.Transform) {
		launched++
		if l.Velocity != (cp.Vector{X: -6}) {
			t.Fatalf("expected launch velocity (-6, 0), got %v", l.Velocity)
		}
		if !near(math.Abs(tr.Rotation), math.Pi, 1e-9) {
			t.Fatalf("expected bullet rotated to face left, got %g", tr.Rotation)
		}
	})
	if launched != shots {
		t.Fatalf("expected every bullet launched, got %d of %d", launched, shots)
	}
}

func TestShooterSetsVelocityOnExistingBody(t *testing.T) {
	w := newTestWorld(1)
	body := &stubBody{}
	rec := &spawnRecorder{withBody: body}
	addShooter(w, component.Shooter{Interval: 1, BulletSpeed: 4, Direction: cp.Vector{Y: 3}, Prefab: "bullet"})

	NewShooterSystem(rec.spawn, rand.New(rand.NewSource(1))).Update(w)

	if len(rec.prefabs) != 1 {
		t.Fatalf("expected one shot")
	}
	if body.vel != (cp.Vector{Y: 4}) {
		t.Fatalf("expected body velocity (0, 4), got %v", body.vel)
	}
	if ecs.Count(w, component.LaunchComponent.Kind()) != 0 {
		t.Fatalf("no launch needed when the body exists")
	}
}

func TestShooterSpawnErrorStillFeedsBack(t *testing.T) {
	w := newTestWorld(1)
	rec := &spawnRecorder{err: errors.New("missing prefab")}
	e := addShooter(w, component.Shooter{Interval: 1, Direction: cp.Vector{X: 1}, Prefab: "nope"})

	NewShooterSystem(rec.spawn, nil).Update(w)

	audio, _ := ecs.Get(w, e, component.AudioComponent.Kind())
	if !audio.Requested("shoot") || len(rec.prefabs) != 1 {
		t.Fatalf("expected a shot attempt with feedback")
	}
}
