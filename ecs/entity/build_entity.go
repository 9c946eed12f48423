package entity

import (
	"fmt"
	"log"
	"sort"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/ninjaroll/common"
	"github.com/milk9111/ninjaroll/ecs"
	"github.com/milk9111/ninjaroll/ecs/component"
	"github.com/milk9111/ninjaroll/ecs/system"
	"github.com/milk9111/ninjaroll/prefabs"
)

type entityPrefabSpec = prefabs.EntityBuildSpec

// Placement positions a prefab instance. Rotation is in degrees.
type Placement struct {
	X        float64
	Y        float64
	Rotation float64
	// Attached puts the instance's scripted motion in the level frame.
	Attached bool
}

type buildContext struct {
	PrefabPath string
	Placement  Placement
	Builder    *Builder
}

type componentBuildFn func(w *ecs.World, e ecs.Entity, raw any, ctx *buildContext) error

var componentRegistry = map[string]componentBuildFn{
	"transform":       addTransform,
	"level_root":      addLevelRoot,
	"tags":            addTags,
	"input":           addInput,
	"sprite":          addSprite,
	"actor":           addActor,
	"ground_probe":    addGroundProbe,
	"air_movement":    addAirMovement,
	"wall_bounce":     addWallBounce,
	"bounce_state":    addBounceState,
	"contact_rules":   addContactRules,
	"contact_queue":   addContactQueue,
	"collision_layer": addCollisionLayer,
	"physics_body":    addPhysicsBody,
	"gravity_scale":   addGravityScale,
	"level_child":     addLevelChild,
	"hazard":          addHazard,
	"motion_cycle":    addMotionCycle,
	"spike_trap":      addSpikeTrap,
	"rotation_drag":   addRotationDrag,
	"patrol":          addPatrol,
	"shooter":         addShooter,
	"bullet":          addBullet,
	"goal":            addGoal,
	"ttl":             addTTL,
	"animator":        addAnimator,
	"audio":           addAudio,
}

// transform comes first so later builders can read the placed pose.
var componentBuildOrder = []string{
	"transform",
	"level_root",
	"tags",
	"input",
	"sprite",
	"actor",
	"ground_probe",
	"air_movement",
	"wall_bounce",
	"bounce_state",
	"contact_rules",
	"contact_queue",
	"collision_layer",
	"physics_body",
	"gravity_scale",
	"level_child",
	"hazard",
	"motion_cycle",
	"spike_trap",
	"rotation_drag",
	"patrol",
	"shooter",
	"bullet",
	"goal",
	"ttl",
	"animator",
	"audio",
}

// Builder turns prefab yaml into entities.
type Builder struct {
	// LoadAudio creates clip players. Nil builds clips without players,
	// which play nothing.
	LoadAudio AudioLoader
	// Debug forces actor debug logging on.
	Debug bool
}

// NewBuilder returns a builder that plays embedded sounds.
func NewBuilder() *Builder {
	return &Builder{LoadAudio: defaultAudioLoader}
}

var defaultBuilder = NewBuilder()

// BuildEntity builds prefabPath at the origin with the default builder.
func BuildEntity(w *ecs.World, prefabPath string) (ecs.Entity, error) {
	return defaultBuilder.Build(w, prefabPath, Placement{})
}

// Spawn builds prefab at pos. It satisfies system.Spawner.
func (b *Builder) Spawn(w *ecs.World, prefab string, pos cp.Vector) (ecs.Entity, error) {
	return b.Build(w, prefab, Placement{X: pos.X, Y: pos.Y})
}

var _ system.Spawner = (*Builder)(nil).Spawn

func (b *Builder) Build(w *ecs.World, prefabPath string, at Placement) (ecs.Entity, error) {
	if w == nil {
		return 0, fmt.Errorf("build entity: world is nil")
	}

	spec, err := prefabs.LoadEntityBuildSpec(prefabPath)
	if err != nil {
		return 0, fmt.Errorf("build entity: load %q: %w", prefabPath, err)
	}
	return b.BuildSpec(w, prefabPath, spec, at)
}

// BuildSpec builds an already decoded prefab.
func (b *Builder) BuildSpec(w *ecs.World, prefabPath string, spec entityPrefabSpec, at Placement) (ecs.Entity, error) {
	if len(spec.Components) == 0 {
		return 0, fmt.Errorf("build entity: prefab %q does not define components", prefabPath)
	}

	e := ecs.CreateEntity(w)
	ctx := &buildContext{PrefabPath: prefabPath, Placement: at, Builder: b}

	remaining := make(map[string]any, len(spec.Components))
	for k, v := range spec.Components {
		remaining[k] = v
	}
	if _, ok := remaining["transform"]; !ok {
		remaining["transform"] = nil
	}

	for _, name := range componentBuildOrder {
		raw, ok := remaining[name]
		if !ok {
			continue
		}
		if err := componentRegistry[name](w, e, raw, ctx); err != nil {
			ecs.DestroyEntity(w, e)
			return 0, fmt.Errorf("build entity: %q: add %q: %w", prefabPath, name, err)
		}
		delete(remaining, name)
	}

	if len(remaining) > 0 {
		names := make([]string, 0, len(remaining))
		for name := range remaining {
			names = append(names, name)
		}
		sort.Strings(names)
		ecs.DestroyEntity(w, e)
		return 0, fmt.Errorf("build entity: %q: no builder for component %q", prefabPath, names[0])
	}

	if at.Attached {
		if err := ecs.Add(w, e, component.LevelAttachedComponent.Kind(), &component.LevelAttached{}); err != nil {
			ecs.DestroyEntity(w, e)
			return 0, fmt.Errorf("build entity: %q: attach: %w", prefabPath, err)
		}
	}
	if err := ecs.Add(w, e, component.PrefabRefComponent.Kind(), &component.PrefabRef{Path: prefabPath}); err != nil {
		ecs.DestroyEntity(w, e)
		return 0, fmt.Errorf("build entity: %q: add prefab ref: %w", prefabPath, err)
	}

	return e, nil
}

// SetEntityTransform moves an entity and its body. Rotation is in degrees.
func SetEntityTransform(w *ecs.World, e ecs.Entity, x, y, rotation float64) error {
	t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok || t == nil {
		t = &component.Transform{ScaleX: 1, ScaleY: 1}
	}
	t.X = x
	t.Y = y
	t.Rotation = common.Deg2Rad(rotation)
	if body, ok := system.BodyOf(w, e); ok {
		body.SetPosition(cp.Vector{X: x, Y: y})
		body.SetAngle(t.Rotation)
	}
	return ecs.Add(w, e, component.TransformComponent.Kind(), t)
}

type transformSpec = prefabs.TransformComponentSpec

// addTransform places the prefab's local pose at the placement.
func addTransform(w *ecs.World, e ecs.Entity, raw any, ctx *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[transformSpec](raw)
	if err != nil {
		return fmt.Errorf("decode transform spec: %w", err)
	}
	if spec.ScaleX == 0 {
		spec.ScaleX = 1
	}
	if spec.ScaleY == 0 {
		spec.ScaleY = 1
	}
	return ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{
		X:        ctx.Placement.X + spec.X,
		Y:        ctx.Placement.Y + spec.Y,
		ScaleX:   spec.ScaleX,
		ScaleY:   spec.ScaleY,
		Rotation: common.Deg2Rad(ctx.Placement.Rotation + spec.Rotation),
	})
}

// placed returns the entity's built position.
func placed(w *ecs.World, e ecs.Entity) cp.Vector {
	if t, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
		return cp.Vector{X: t.X, Y: t.Y}
	}
	return cp.Vector{}
}

func addLevelRoot(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.LevelRootTagComponent.Kind(), &component.LevelRootTag{})
}

func addInput(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.InputComponent.Kind(), &component.Input{})
}

func addTags(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	names, err := prefabs.DecodeComponentSpec[[]string](raw)
	if err != nil {
		return fmt.Errorf("decode tags: %w", err)
	}
	set, err := component.ParseTags(names)
	if err != nil {
		return err
	}
	if set.Has(component.TagPlayer) {
		if err := ecs.Add(w, e, component.PlayerTagComponent.Kind(), &component.PlayerTag{}); err != nil {
			return err
		}
	}
	if set.Has(component.TagEnemy) {
		if err := ecs.Add(w, e, component.EnemyTagComponent.Kind(), &component.EnemyTag{}); err != nil {
			return err
		}
	}
	return ecs.Add(w, e, component.TagsComponent.Kind(), &component.Tags{Set: set})
}

type spriteSpec = prefabs.SpriteComponentSpec

func addSprite(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[spriteSpec](raw)
	if err != nil {
		return fmt.Errorf("decode sprite spec: %w", err)
	}
	sprite := component.Sprite{Hidden: spec.Hidden, FacingLeft: spec.FacingLeft}
	if spec.Color != nil {
		sprite.Color = spec.Color.Color
	}
	return ecs.Add(w, e, component.SpriteComponent.Kind(), &sprite)
}

type actorSpec = prefabs.ActorComponentSpec

func addActor(w *ecs.World, e ecs.Entity, raw any, ctx *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[actorSpec](raw)
	if err != nil {
		return fmt.Errorf("decode actor spec: %w", err)
	}
	spawn := placed(w, e)
	return ecs.Add(w, e, component.ActorComponent.Kind(), &component.Actor{
		State:  component.ActorAlive,
		SpawnX: spawn.X,
		SpawnY: spawn.Y,
		Debug:  spec.Debug || ctx.Builder.Debug,
	})
}

type groundProbeSpec = prefabs.GroundProbeComponentSpec

func addGroundProbe(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[groundProbeSpec](raw)
	if err != nil {
		return fmt.Errorf("decode ground probe spec: %w", err)
	}
	probe, err := GroundProbeFromSpec(spec)
	if err != nil {
		return err
	}
	return ecs.Add(w, e, component.GroundProbeComponent.Kind(), &probe)
}

type airMovementSpec = prefabs.AirMovementComponentSpec

func addAirMovement(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[airMovementSpec](raw)
	if err != nil {
		return fmt.Errorf("decode air movement spec: %w", err)
	}
	air, err := AirMovementFromSpec(spec)
	if err != nil {
		return err
	}
	return ecs.Add(w, e, component.AirMovementComponent.Kind(), &air)
}

type wallBounceSpec = prefabs.WallBounceComponentSpec

func addWallBounce(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[wallBounceSpec](raw)
	if err != nil {
		return fmt.Errorf("decode wall bounce spec: %w", err)
	}
	bounce, err := WallBounceFromSpec(spec)
	if err != nil {
		return err
	}
	return ecs.Add(w, e, component.WallBounceComponent.Kind(), &bounce)
}

func addBounceState(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.BounceStateComponent.Kind(), &component.BounceState{})
}

type contactRulesSpec = prefabs.ContactRulesComponentSpec

func addContactRules(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[contactRulesSpec](raw)
	if err != nil {
		return fmt.Errorf("decode contact rules spec: %w", err)
	}
	rules, err := ContactRulesFromSpec(spec)
	if err != nil {
		return err
	}
	return ecs.Add(w, e, component.ContactRulesComponent.Kind(), &rules)
}

func addContactQueue(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.ContactQueueComponent.Kind(), &component.ContactQueue{})
}

type collisionLayerSpec = prefabs.CollisionLayerComponentSpec

func addCollisionLayer(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[collisionLayerSpec](raw)
	if err != nil {
		return fmt.Errorf("decode collision layer spec: %w", err)
	}
	cat := component.LayerDefault
	if spec.Category != "" {
		if cat, err = component.ParseLayer(spec.Category); err != nil {
			return err
		}
	}
	mask := component.LayerAll
	if len(spec.Mask) > 0 {
		if mask, err = component.ParseLayerMask(spec.Mask); err != nil {
			return err
		}
	}
	return ecs.Add(w, e, component.CollisionLayerComponent.Kind(), &component.CollisionLayer{Category: cat, Mask: mask})
}

type physicsBodySpec = prefabs.PhysicsBodyComponentSpec

var bodyKinds = map[string]component.BodyKind{
	"":          component.BodyDynamic,
	"dynamic":   component.BodyDynamic,
	"static":    component.BodyStatic,
	"kinematic": component.BodyKinematic,
}

func addPhysicsBody(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[physicsBodySpec](raw)
	if err != nil {
		return fmt.Errorf("decode physics body spec: %w", err)
	}
	kind, ok := bodyKinds[spec.Kind]
	if !ok {
		return fmt.Errorf("unknown body kind %q", spec.Kind)
	}

	width, height, radius := spec.Width, spec.Height, spec.Radius
	if tr, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok && tr != nil {
		width *= tr.ScaleX
		height *= tr.ScaleY
		radius *= tr.ScaleX
	}
	if kind == component.BodyDynamic && spec.Mass == 0 {
		spec.Mass = 1
	}

	return ecs.Add(w, e, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{
		Kind:       kind,
		Width:      width,
		Height:     height,
		Radius:     radius,
		Mass:       spec.Mass,
		Friction:   spec.Friction,
		Elasticity: spec.Elasticity,
		Sensor:     spec.Sensor,
		FixedAngle: spec.FixedAngle,
	})
}

type gravityScaleSpec = prefabs.GravityScaleComponentSpec

func addGravityScale(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[gravityScaleSpec](raw)
	if err != nil {
		return fmt.Errorf("decode gravity scale spec: %w", err)
	}
	return ecs.Add(w, e, component.GravityScaleComponent.Kind(), &component.GravityScale{Scale: spec.Scale})
}

type levelChildSpec = prefabs.LevelChildComponentSpec

func addLevelChild(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[levelChildSpec](raw)
	if err != nil {
		return fmt.Errorf("decode level child spec: %w", err)
	}
	if spec.AngularDamping == 0 {
		spec.AngularDamping = 0.95
	}
	return ecs.Add(w, e, component.LevelChildComponent.Kind(), &component.LevelChild{
		DownForce:      spec.DownForce,
		AngularDamping: spec.AngularDamping,
	})
}

type hazardSpec = prefabs.HazardComponentSpec

func addHazard(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[hazardSpec](raw)
	if err != nil {
		return fmt.Errorf("decode hazard spec: %w", err)
	}
	active := true
	if spec.Active != nil {
		active = *spec.Active
	}
	return ecs.Add(w, e, component.HazardComponent.Kind(), &component.Hazard{Active: active})
}

type motionCycleSpec = prefabs.MotionCycleComponentSpec

func addMotionCycle(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[motionCycleSpec](raw)
	if err != nil {
		return fmt.Errorf("decode motion cycle spec: %w", err)
	}
	m := system.NewMotionCycle(placed(w, e), spec.Direction.Vector(), spec.Distance, spec.MoveDuration, spec.DelayDuration, spec.StartActive)
	m.ToggleHazard = spec.ToggleHazard
	m.RotationSpeed = spec.RotationSpeed
	if t, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
		m.BaseRotation = t.Rotation
	}
	if spec.Enabled != nil {
		m.Enabled = *spec.Enabled
	}
	if hz, ok := ecs.Get(w, e, component.HazardComponent.Kind()); ok && m.ToggleHazard {
		hz.Active = spec.StartActive
	}
	return ecs.Add(w, e, component.MotionCycleComponent.Kind(), &m)
}

type spikeTrapSpec = prefabs.SpikeTrapComponentSpec

func addSpikeTrap(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[spikeTrapSpec](raw)
	if err != nil {
		return fmt.Errorf("decode spike trap spec: %w", err)
	}
	behavior, err := component.ParseSpikeBehavior(spec.Behavior)
	if err != nil {
		return err
	}
	if !ecs.Has(w, e, component.HazardComponent.Kind()) {
		if err := ecs.Add(w, e, component.HazardComponent.Kind(), &component.Hazard{}); err != nil {
			return err
		}
	}
	return ecs.Add(w, e, component.SpikeTrapComponent.Kind(), &component.SpikeTrap{
		Behavior:               behavior,
		ActivationDelay:        spec.ActivationDelay,
		RetractDelay:           spec.RetractDelay,
		TimeBetweenActivations: spec.TimeBetweenActivations,
		StartActive:            spec.StartActive,
		DetectionRadius:        spec.DetectionRadius,
		ArmTimer:               -1,
		RetractTimer:           -1,
	})
}

type rotationDragSpec = prefabs.RotationDragComponentSpec

func addRotationDrag(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[rotationDragSpec](raw)
	if err != nil {
		return fmt.Errorf("decode rotation drag spec: %w", err)
	}
	r := RotationDragFromSpec(spec)
	return ecs.Add(w, e, component.RotationDragComponent.Kind(), &r)
}

type patrolSpec = prefabs.PatrolComponentSpec

func addPatrol(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[patrolSpec](raw)
	if err != nil {
		return fmt.Errorf("decode patrol spec: %w", err)
	}
	origin := placed(w, e)
	return ecs.Add(w, e, component.PatrolComponent.Kind(), &component.Patrol{
		PointA:     origin.Add(spec.PointA.Vector()),
		PointB:     origin.Add(spec.PointB.Vector()),
		Speed:      spec.Speed,
		WaitTime:   spec.WaitTime,
		StartRight: spec.StartRight,
	})
}

type shooterSpec = prefabs.ShooterComponentSpec

func addShooter(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[shooterSpec](raw)
	if err != nil {
		return fmt.Errorf("decode shooter spec: %w", err)
	}
	if spec.Interval <= 0 {
		return fmt.Errorf("shooter interval must be positive, got %g", spec.Interval)
	}
	dir := spec.Direction.Vector()
	if dir == (cp.Vector{}) {
		dir = cp.Vector{X: -1}
	}
	return ecs.Add(w, e, component.ShooterComponent.Kind(), &component.Shooter{
		Interval:    spec.Interval,
		BulletSpeed: spec.BulletSpeed,
		Direction:   dir,
		ShootOffset: spec.ShootOffset.Vector(),
		Prefab:      spec.Prefab,
	})
}

type bulletSpec = prefabs.BulletComponentSpec

func addBullet(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[bulletSpec](raw)
	if err != nil {
		return fmt.Errorf("decode bullet spec: %w", err)
	}
	ignore, err := component.ParseLayerMask(spec.Ignore)
	if err != nil {
		return err
	}
	if spec.Lifetime > 0 && !ecs.Has(w, e, component.TTLComponent.Kind()) {
		if err := ecs.Add(w, e, component.TTLComponent.Kind(), &component.TTL{Seconds: spec.Lifetime}); err != nil {
			return err
		}
	}
	return ecs.Add(w, e, component.BulletComponent.Kind(), &component.Bullet{Lifetime: spec.Lifetime, IgnoreMask: ignore})
}

type goalSpec = prefabs.GoalComponentSpec

func addGoal(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[goalSpec](raw)
	if err != nil {
		return fmt.Errorf("decode goal spec: %w", err)
	}
	next := -1
	if spec.NextLevel != nil {
		next = *spec.NextLevel
	}
	return ecs.Add(w, e, component.GoalComponent.Kind(), &component.Goal{NextLevel: next, TransitionDelay: spec.TransitionDelay})
}

type ttlSpec = prefabs.TTLComponentSpec

func addTTL(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[ttlSpec](raw)
	if err != nil {
		return fmt.Errorf("decode ttl spec: %w", err)
	}
	return ecs.Add(w, e, component.TTLComponent.Kind(), &component.TTL{Seconds: spec.Seconds})
}

type animatorSpec = prefabs.AnimatorComponentSpec

func addAnimator(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[animatorSpec](raw)
	if err != nil {
		return fmt.Errorf("decode animator spec: %w", err)
	}
	params := make(map[string]component.ParamKind, len(spec.Bools)+len(spec.Floats)+len(spec.Triggers))
	declare := func(names []string, kind component.ParamKind) error {
		for _, name := range names {
			if _, dup := params[name]; dup {
				return fmt.Errorf("animator parameter %q declared twice", name)
			}
			params[name] = kind
		}
		return nil
	}
	if err := declare(spec.Bools, component.ParamBool); err != nil {
		return err
	}
	if err := declare(spec.Floats, component.ParamFloat); err != nil {
		return err
	}
	if err := declare(spec.Triggers, component.ParamTrigger); err != nil {
		return err
	}
	return ecs.Add(w, e, component.AnimatorComponent.Kind(), component.NewAnimator(params))
}

func addAudio(w *ecs.World, e ecs.Entity, raw any, ctx *buildContext) error {
	clips, err := prefabs.DecodeComponentSpec[[]prefabs.AudioSpec](raw)
	if err != nil {
		return fmt.Errorf("decode audio spec: %w", err)
	}
	comp, err := buildAudioComponent(clips, ctx.Builder.LoadAudio)
	if err != nil {
		return fmt.Errorf("build audio component from spec: %w", err)
	}
	if comp == nil {
		return nil
	}
	if ctx.Builder.Debug {
		log.Printf("entity: %s has %d clips", ctx.PrefabPath, len(comp.Names))
	}
	return ecs.Add(w, e, component.AudioComponent.Kind(), comp)
}
