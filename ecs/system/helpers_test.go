package system

import (
	"fmt"
	"math"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/ninjaroll/ecs"
	"github.com/milk9111/ninjaroll/ecs/component"
	"go.uber.org/mock/gomock"
)

const testEpsilon = 1e-9

func near(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

// vecNear matches a cp.Vector within eps on both axes.
type vecNearMatcher struct {
	want cp.Vector
	eps  float64
}

func vecNear(want cp.Vector) gomock.Matcher {
	return vecNearMatcher{want: want, eps: 1e-6}
}

func (m vecNearMatcher) Matches(x any) bool {
	v, ok := x.(cp.Vector)
	return ok && near(v.X, m.want.X, m.eps) && near(v.Y, m.want.Y, m.eps)
}

func (m vecNearMatcher) String() string {
	return fmt.Sprintf("is within %g of (%g, %g)", m.eps, m.want.X, m.want.Y)
}

// stubBody is a plain in-memory Body for tests that care about resulting
// state rather than call order.
type stubBody struct {
	pos      cp.Vector
	vel      cp.Vector
	angle    float64
	angVel   float64
	mass     float64
	frozen   bool
	disabled bool
	impulses []cp.Vector
	forces   []cp.Vector
}

func (b *stubBody) Position() cp.Vector          { return b.pos }
func (b *stubBody) SetPosition(p cp.Vector)      { b.pos = p }
func (b *stubBody) Velocity() cp.Vector          { return b.vel }
func (b *stubBody) SetVelocity(v cp.Vector)      { b.vel = v }
func (b *stubBody) Angle() float64               { return b.angle }
func (b *stubBody) SetAngle(a float64)           { b.angle = a }
func (b *stubBody) AngularVelocity() float64     { return b.angVel }
func (b *stubBody) SetAngularVelocity(w float64) { b.angVel = w }
func (b *stubBody) Mass() float64                { return b.mass }
func (b *stubBody) SetFrozen(frozen bool)        { b.frozen = frozen }
func (b *stubBody) SetCollisionEnabled(on bool)  { b.disabled = !on }
func (b *stubBody) ApplyForce(f cp.Vector)       { b.forces = append(b.forces, f) }
func (b *stubBody) ApplyImpulse(j cp.Vector) {
	b.impulses = append(b.impulses, j)
	m := b.mass
	if m <= 0 {
		m = 1
	}
	b.vel = b.vel.Add(j.Mult(1 / m))
}

// fakeQuery answers spatial queries from canned results and records them.
type fakeQuery struct {
	hits     map[cp.Vector]bool
	overlaps []ecs.Entity
	rays     []cp.Vector
	masks    []component.Layer
	radii    []float64
}

func (q *fakeQuery) Raycast(origin, dir cp.Vector, maxDist float64, mask component.Layer) (Hit, bool) {
	q.rays = append(q.rays, origin)
	q.masks = append(q.masks, mask)
	if q.hits[origin] {
		return Hit{Point: origin.Add(dir.Mult(maxDist / 2)), Distance: maxDist / 2}, true
	}
	return Hit{}, false
}

func (q *fakeQuery) OverlapCircle(origin cp.Vector, radius float64, mask component.Layer) []ecs.Entity {
	q.radii = append(q.radii, radius)
	q.masks = append(q.masks, mask)
	return q.overlaps
}

func newTestWorld(dt float64) *ecs.World {
	w := ecs.NewWorld()
	w.Advance(dt)
	return w
}

func mustAdd[T any](w *ecs.World, e ecs.Entity, h component.ComponentHandle[T], v *T) {
	if err := ecs.Add(w, e, h.Kind(), v); err != nil {
		panic(err)
	}
}

// addActor builds a player-like actor around body.
func addActor(w *ecs.World, body component.Body) ecs.Entity {
	e := ecs.CreateEntity(w)
	mustAdd(w, e, component.ActorComponent, &component.Actor{State: component.ActorAlive})
	mustAdd(w, e, component.TransformComponent, &component.Transform{})
	mustAdd(w, e, component.PhysicsBodyComponent, &component.PhysicsBody{Body: body, Width: 1, Height: 1})
	mustAdd(w, e, component.ContactQueueComponent, &component.ContactQueue{})
	mustAdd(w, e, component.ContactRulesComponent, &component.ContactRules{
		EnemyMask:        component.LayerEnemy,
		PlatformMask:     component.LayerPlatform,
		HazardMask:       component.LayerHazard,
		DeathTags:        component.TagTrap | component.TagBullet,
		EnemyBounceForce: 5,
		RespawnDelay:     1,
	})
	mustAdd(w, e, component.WallBounceComponent, &component.WallBounce{
		Enabled:           true,
		MinForce:          1,
		MaxForce:          5,
		Multiplier:        1.2,
		Deadzone:          0.5,
		MaxBounceVelocity: 8,
		Cooldown:          0.1,
	})
	mustAdd(w, e, component.AudioComponent, &component.Audio{
		Names:   []string{"wall_bounce", "kill", "death"},
		Players: make([]*audio.Player, 3),
		Volume:  make([]float64, 3),
		Play:    make([]bool, 3),
		Stop:    make([]bool, 3),
	})
	mustAdd(w, e, component.AnimatorComponent, component.NewAnimator(map[string]component.ParamKind{
		"Bounce":          component.ParamTrigger,
		"Kill":            component.ParamTrigger,
		"Die":             component.ParamTrigger,
		"BounceIntensity": component.ParamFloat,
		"Grounded":        component.ParamBool,
	}))
	mustAdd(w, e, component.SpriteComponent, &component.Sprite{})
	return e
}

func addEnemy(w *ecs.World) ecs.Entity {
	e := ecs.CreateEntity(w)
	mustAdd(w, e, component.EnemyTagComponent, &component.EnemyTag{})
	mustAdd(w, e, component.CollisionLayerComponent, &component.CollisionLayer{Category: component.LayerEnemy})
	return e
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func ecsGetActor(w *ecs.World, e ecs.Entity) (*component.Actor, bool) {
	return ecs.Get(w, e, component.ActorComponent.Kind())
}

func newTestAudio(names ...string) *component.Audio {
	return &component.Audio{
		Names:   names,
		Players: make([]*audio.Player, len(names)),
		Volume:  make([]float64, len(names)),
		Play:    make([]bool, len(names)),
		Stop:    make([]bool, len(names)),
	}
}
