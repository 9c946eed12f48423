package prefabs

import "gopkg.in/yaml.v3"

// EntityBuildSpec is a prefab: a name plus one raw block per component,
// keyed by the component's registry name.
type EntityBuildSpec struct {
	Name       string         `yaml:"name"`
	Components map[string]any `yaml:"components"`
}

func LoadEntityBuildSpec(filename string) (EntityBuildSpec, error) {
	return LoadSpec[EntityBuildSpec](filename)
}

func DecodeComponentSpec[T any](raw any) (T, error) {
	var zero T
	if raw == nil {
		return zero, nil
	}
	b, err := yaml.Marshal(raw)
	if err != nil {
		return zero, err
	}
	var out T
	if err := yaml.Unmarshal(b, &out); err != nil {
		return zero, err
	}
	return out, nil
}

// TransformComponentSpec rotation is in degrees.
type TransformComponentSpec struct {
	X        float64 `yaml:"x"`
	Y        float64 `yaml:"y"`
	ScaleX   float64 `yaml:"scale_x"`
	ScaleY   float64 `yaml:"scale_y"`
	Rotation float64 `yaml:"rotation"`
}

type SpriteComponentSpec struct {
	Color      *YAMLColor `yaml:"color"`
	Hidden     bool       `yaml:"hidden"`
	FacingLeft bool       `yaml:"facing_left"`
}

type ActorComponentSpec struct {
	Debug bool `yaml:"debug"`
}

type GroundProbeComponentSpec struct {
	Distance float64  `yaml:"distance"`
	Offset   float64  `yaml:"offset"`
	Inset    float64  `yaml:"inset"`
	Mask     []string `yaml:"mask"`
}

// AirMovementComponentSpec selects the drag curve by name, or by a tengo
// script file when DragScript is set.
type AirMovementComponentSpec struct {
	Enabled            bool    `yaml:"enabled"`
	AirDrag            float64 `yaml:"air_drag"`
	TerminalVelocity   float64 `yaml:"terminal_velocity"`
	HorizontalTerminal float64 `yaml:"horizontal_terminal"`
	DragCurve          string  `yaml:"drag_curve"`
	DragScript         string  `yaml:"drag_script"`
	Braking            bool    `yaml:"braking"`
	BrakingThreshold   float64 `yaml:"braking_threshold"`
	BrakingMultiplier  float64 `yaml:"braking_multiplier"`
}

// WallBounceComponentSpec leaves Multiplier nil to mean 1; an explicit 0
// switches bounce impulses off.
type WallBounceComponentSpec struct {
	Enabled           bool     `yaml:"enabled"`
	MinForce          float64  `yaml:"min_force"`
	MaxForce          float64  `yaml:"max_force"`
	Multiplier        *float64 `yaml:"multiplier"`
	Deadzone          float64  `yaml:"deadzone"`
	MaxBounceVelocity float64  `yaml:"max_bounce_velocity"`
	UpwardAssist      bool     `yaml:"upward_assist"`
	UpwardForce       float64  `yaml:"upward_force"`
	Force             bool     `yaml:"force"`
	Cooldown          float64  `yaml:"cooldown"`
	CatchAll          string   `yaml:"catch_all"`
}

type ContactRulesComponentSpec struct {
	EnemyMask        []string `yaml:"enemy_mask"`
	PlatformMask     []string `yaml:"platform_mask"`
	HazardMask       []string `yaml:"hazard_mask"`
	DeathTags        []string `yaml:"death_tags"`
	BounceOffEnemies bool     `yaml:"bounce_off_enemies"`
	EnemyBounceForce float64  `yaml:"enemy_bounce_force"`
	DetectionRadius  float64  `yaml:"detection_radius"`
	RespawnDelay     float64  `yaml:"respawn_delay"`
}

type PhysicsBodyComponentSpec struct {
	Kind       string  `yaml:"kind"`
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	Radius     float64 `yaml:"radius"`
	Mass       float64 `yaml:"mass"`
	Friction   float64 `yaml:"friction"`
	Elasticity float64 `yaml:"elasticity"`
	Sensor     bool    `yaml:"sensor"`
	FixedAngle bool    `yaml:"fixed_angle"`
}

type GravityScaleComponentSpec struct {
	Scale float64 `yaml:"scale"`
}

type CollisionLayerComponentSpec struct {
	Category string   `yaml:"category"`
	Mask     []string `yaml:"mask"`
}

type HazardComponentSpec struct {
	Active *bool `yaml:"active"`
}

// MotionCycleComponentSpec moves Distance along Direction from the spawn
// point. RotationSpeed is in degrees per second.
type MotionCycleComponentSpec struct {
	Enabled       *bool    `yaml:"enabled"`
	Direction     Vec2Spec `yaml:"direction"`
	Distance      float64  `yaml:"distance"`
	MoveDuration  float64  `yaml:"move_duration"`
	DelayDuration float64  `yaml:"delay_duration"`
	StartActive   bool     `yaml:"start_active"`
	ToggleHazard  bool     `yaml:"toggle_hazard"`
	RotationSpeed float64  `yaml:"rotation_speed"`
}

type SpikeTrapComponentSpec struct {
	Behavior               string  `yaml:"behavior"`
	ActivationDelay        float64 `yaml:"activation_delay"`
	RetractDelay           float64 `yaml:"retract_delay"`
	TimeBetweenActivations float64 `yaml:"time_between_activations"`
	StartActive            bool    `yaml:"start_active"`
	DetectionRadius        float64 `yaml:"detection_radius"`
}

// RotationDragComponentSpec leaves Sensitivity nil to mean 1; an explicit 0
// turns dragging off.
type RotationDragComponentSpec struct {
	Sensitivity      *float64 `yaml:"sensitivity"`
	MaxRotationSpeed float64  `yaml:"max_rotation_speed"`
	Damping          float64  `yaml:"damping"`
	SnapBackSpeed    float64  `yaml:"snap_back_speed"`
	UseLimits        bool     `yaml:"use_limits"`
	MaxAngle         float64  `yaml:"max_angle"`
	AutoSnapBack     bool     `yaml:"auto_snap_back"`
}

type LevelChildComponentSpec struct {
	DownForce      float64 `yaml:"down_force"`
	AngularDamping float64 `yaml:"angular_damping"`
}

// PatrolComponentSpec waypoints are offsets from the spawn point.
type PatrolComponentSpec struct {
	PointA     Vec2Spec `yaml:"point_a"`
	PointB     Vec2Spec `yaml:"point_b"`
	Speed      float64  `yaml:"speed"`
	WaitTime   float64  `yaml:"wait_time"`
	StartRight bool     `yaml:"start_right"`
}

type ShooterComponentSpec struct {
	Interval    float64  `yaml:"interval"`
	BulletSpeed float64  `yaml:"bullet_speed"`
	Direction   Vec2Spec `yaml:"direction"`
	ShootOffset Vec2Spec `yaml:"shoot_offset"`
	Prefab      string   `yaml:"prefab"`
}

type BulletComponentSpec struct {
	Lifetime float64  `yaml:"lifetime"`
	Ignore   []string `yaml:"ignore"`
}

// GoalComponentSpec NextLevel is an explicit level index; omit it to go to
// the next level.
type GoalComponentSpec struct {
	NextLevel       *int    `yaml:"next_level"`
	TransitionDelay float64 `yaml:"transition_delay"`
}

type AnimatorComponentSpec struct {
	Bools    []string `yaml:"bools"`
	Floats   []string `yaml:"floats"`
	Triggers []string `yaml:"triggers"`
}

type TTLComponentSpec struct {
	Seconds float64 `yaml:"seconds"`
}
