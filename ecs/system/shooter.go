package system

import (
	"log"
	"math"
	"math/rand"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/ninjaroll/common"
	"github.com/milk9111/ninjaroll/ecs"
	"github.com/milk9111/ninjaroll/ecs/component"
)

// Spawner builds a prefab instance at pos.
type Spawner func(w *ecs.World, prefab string, pos cp.Vector) (ecs.Entity, error)

type ShooterSystem struct {
	spawn Spawner
	rng   *rand.Rand
}

func NewShooterSystem(spawn Spawner, rng *rand.Rand) *ShooterSystem {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	return &ShooterSystem{spawn: spawn, rng: rng}
}

func (s *ShooterSystem) Update(w *ecs.World) {
	dt := w.Delta()
	ecs.ForEach2(w, component.ShooterComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, sh *component.Shooter, t *component.Transform) {
		if !sh.Initialized {
			sh.Initialized = true
			sh.Timer = s.rng.Float64() * sh.Interval
			if sprite, ok := ecs.Get(w, e, component.SpriteComponent.Kind()); ok {
				sprite.FacingLeft = sh.Direction.X <= 0
			}
		}
		sh.Timer -= dt
		if sh.Timer > 0 {
			return
		}
		sh.Timer = sh.Interval
		s.shoot(w, e, sh, cp.Vector{X: t.X, Y: t.Y})
	})
}

func (s *ShooterSystem) shoot(w *ecs.World, e ecs.Entity, sh *component.Shooter, pos cp.Vector) {
	fireTrigger(w, e, "Shoot")
	playSound(w, e, "shoot", 1)
	if s.spawn == nil || sh.Prefab == "" {
		return
	}

	_, angle := frameOf(w, e)
	turn := cp.ForAngle(angle)
	bullet, err := s.spawn(w, sh.Prefab, pos.Add(sh.ShootOffset.Rotate(turn)))
	if err != nil {
		log.Printf("shooter: spawn %s: %v", sh.Prefab, err)
		return
	}
	dir := common.Normalize(sh.Direction).Rotate(turn)
	if t, ok := ecs.Get(w, bullet, component.TransformComponent.Kind()); ok {
		t.Rotation = math.Atan2(dir.Y, dir.X)
	}
	if bodyComp, ok := ecs.Get(w, bullet, component.PhysicsBodyComponent.Kind()); ok && bodyComp.Body != nil {
		bodyComp.Body.SetVelocity(dir.Mult(sh.BulletSpeed))
		return
	}
	// the physics system picks the velocity up when it creates the body
	_ = ecs.Add(w, bullet, component.LaunchComponent.Kind(), &component.Launch{Velocity: dir.Mult(sh.BulletSpeed)})
}
