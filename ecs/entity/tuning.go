package entity

import (
	"fmt"
	"log"
	"strings"

	"github.com/milk9111/ninjaroll/common"
	"github.com/milk9111/ninjaroll/ecs"
	"github.com/milk9111/ninjaroll/ecs/component"
	"github.com/milk9111/ninjaroll/prefabs"
	"gopkg.in/yaml.v3"
)

func GroundProbeFromSpec(spec prefabs.GroundProbeComponentSpec) (component.GroundProbe, error) {
	mask := component.LayerPlatform
	if len(spec.Mask) > 0 {
		var err error
		if mask, err = component.ParseLayerMask(spec.Mask); err != nil {
			return component.GroundProbe{}, err
		}
	}
	return component.GroundProbe{
		Distance: spec.Distance,
		Offset:   spec.Offset,
		Inset:    spec.Inset,
		Mask:     mask,
	}, nil
}

// AirMovementFromSpec compiles the drag curve. A script curve wins over a
// named one.
func AirMovementFromSpec(spec prefabs.AirMovementComponentSpec) (component.AirMovement, error) {
	air := component.AirMovement{
		Enabled:            spec.Enabled,
		AirDrag:            spec.AirDrag,
		TerminalVelocity:   spec.TerminalVelocity,
		HorizontalTerminal: spec.HorizontalTerminal,
		Braking:            spec.Braking,
		BrakingThreshold:   spec.BrakingThreshold,
		BrakingMultiplier:  spec.BrakingMultiplier,
	}
	if spec.DragScript != "" {
		src, err := prefabs.LoadScript(spec.DragScript)
		if err != nil {
			return air, err
		}
		curve, err := common.NewScriptCurve(string(src))
		if err != nil {
			return air, fmt.Errorf("drag script %s: %w", spec.DragScript, err)
		}
		air.DragCurve = curve
		air.CurveName = "script:" + spec.DragScript
		return air, nil
	}
	curve, err := common.NamedCurve(spec.DragCurve)
	if err != nil {
		return air, err
	}
	air.DragCurve = curve
	air.CurveName = spec.DragCurve
	return air, nil
}

func WallBounceFromSpec(spec prefabs.WallBounceComponentSpec) (component.WallBounce, error) {
	policy, err := component.ParseCatchAll(spec.CatchAll)
	if err != nil {
		return component.WallBounce{}, err
	}
	if spec.MaxBounceVelocity < spec.Deadzone {
		return component.WallBounce{}, fmt.Errorf("max_bounce_velocity %g below deadzone %g", spec.MaxBounceVelocity, spec.Deadzone)
	}
	multiplier := 1.0
	if spec.Multiplier != nil {
		multiplier = *spec.Multiplier
	}
	return component.WallBounce{
		Enabled:           spec.Enabled,
		MinForce:          spec.MinForce,
		MaxForce:          spec.MaxForce,
		Multiplier:        multiplier,
		Deadzone:          spec.Deadzone,
		MaxBounceVelocity: spec.MaxBounceVelocity,
		UpwardAssist:      spec.UpwardAssist,
		UpwardForce:       spec.UpwardForce,
		Force:             spec.Force,
		Cooldown:          spec.Cooldown,
		CatchAll:          policy,
	}, nil
}

func ContactRulesFromSpec(spec prefabs.ContactRulesComponentSpec) (component.ContactRules, error) {
	var rules component.ContactRules
	var err error
	if rules.EnemyMask, err = component.ParseLayerMask(spec.EnemyMask); err != nil {
		return rules, fmt.Errorf("enemy_mask: %w", err)
	}
	if rules.PlatformMask, err = component.ParseLayerMask(spec.PlatformMask); err != nil {
		return rules, fmt.Errorf("platform_mask: %w", err)
	}
	if rules.HazardMask, err = component.ParseLayerMask(spec.HazardMask); err != nil {
		return rules, fmt.Errorf("hazard_mask: %w", err)
	}
	if rules.DeathTags, err = component.ParseTags(spec.DeathTags); err != nil {
		return rules, fmt.Errorf("death_tags: %w", err)
	}
	rules.BounceOffEnemies = spec.BounceOffEnemies
	rules.EnemyBounceForce = spec.EnemyBounceForce
	rules.DetectionRadius = spec.DetectionRadius
	rules.RespawnDelay = spec.RespawnDelay
	return rules, nil
}

func RotationDragFromSpec(spec prefabs.RotationDragComponentSpec) component.RotationDrag {
	sensitivity := 1.0
	if spec.Sensitivity != nil {
		sensitivity = *spec.Sensitivity
	}
	return component.RotationDrag{
		Sensitivity:      sensitivity,
		MaxRotationSpeed: spec.MaxRotationSpeed,
		Damping:          spec.Damping,
		SnapBackSpeed:    spec.SnapBackSpeed,
		UseLimits:        spec.UseLimits,
		MaxAngle:         spec.MaxAngle,
		AutoSnapBack:     spec.AutoSnapBack,
	}
}

// ActorTuning is the hot-reloadable part of an actor prefab.
type ActorTuning struct {
	GroundProbe  *prefabs.GroundProbeComponentSpec  `yaml:"ground_probe,omitempty"`
	AirMovement  *prefabs.AirMovementComponentSpec  `yaml:"air_movement,omitempty"`
	WallBounce   *prefabs.WallBounceComponentSpec   `yaml:"wall_bounce,omitempty"`
	ContactRules *prefabs.ContactRulesComponentSpec `yaml:"contact_rules,omitempty"`
	RotationDrag *prefabs.RotationDragComponentSpec `yaml:"rotation_drag,omitempty"`
}

// SnapshotTuning captures e's live tuning in prefab yaml form.
func SnapshotTuning(w *ecs.World, e ecs.Entity) ([]byte, error) {
	var t ActorTuning
	if p, ok := ecs.Get(w, e, component.GroundProbeComponent.Kind()); ok {
		t.GroundProbe = &prefabs.GroundProbeComponentSpec{
			Distance: p.Distance,
			Offset:   p.Offset,
			Inset:    p.Inset,
			Mask:     p.Mask.Names(),
		}
	}
	if a, ok := ecs.Get(w, e, component.AirMovementComponent.Kind()); ok {
		spec := &prefabs.AirMovementComponentSpec{
			Enabled:            a.Enabled,
			AirDrag:            a.AirDrag,
			TerminalVelocity:   a.TerminalVelocity,
			HorizontalTerminal: a.HorizontalTerminal,
			DragCurve:          a.CurveName,
			Braking:            a.Braking,
			BrakingThreshold:   a.BrakingThreshold,
			BrakingMultiplier:  a.BrakingMultiplier,
		}
		if script, ok := strings.CutPrefix(a.CurveName, "script:"); ok {
			spec.DragCurve = ""
			spec.DragScript = script
		}
		t.AirMovement = spec
	}
	if b, ok := ecs.Get(w, e, component.WallBounceComponent.Kind()); ok {
		t.WallBounce = &prefabs.WallBounceComponentSpec{
			Enabled:           b.Enabled,
			MinForce:          b.MinForce,
			MaxForce:          b.MaxForce,
			Multiplier:        &b.Multiplier,
			Deadzone:          b.Deadzone,
			MaxBounceVelocity: b.MaxBounceVelocity,
			UpwardAssist:      b.UpwardAssist,
			UpwardForce:       b.UpwardForce,
			Force:             b.Force,
			Cooldown:          b.Cooldown,
			CatchAll:          b.CatchAll.String(),
		}
	}
	if r, ok := ecs.Get(w, e, component.ContactRulesComponent.Kind()); ok {
		t.ContactRules = &prefabs.ContactRulesComponentSpec{
			EnemyMask:        r.EnemyMask.Names(),
			PlatformMask:     r.PlatformMask.Names(),
			HazardMask:       r.HazardMask.Names(),
			DeathTags:        r.DeathTags.Names(),
			BounceOffEnemies: r.BounceOffEnemies,
			EnemyBounceForce: r.EnemyBounceForce,
			DetectionRadius:  r.DetectionRadius,
			RespawnDelay:     r.RespawnDelay,
		}
	}
	if r, ok := ecs.Get(w, e, component.RotationDragComponent.Kind()); ok {
		t.RotationDrag = &prefabs.RotationDragComponentSpec{
			Sensitivity:      &r.Sensitivity,
			MaxRotationSpeed: r.MaxRotationSpeed,
			Damping:          r.Damping,
			SnapBackSpeed:    r.SnapBackSpeed,
			UseLimits:        r.UseLimits,
			MaxAngle:         r.MaxAngle,
			AutoSnapBack:     r.AutoSnapBack,
		}
	}
	out, err := yaml.Marshal(map[string]any{"components": t})
	if err != nil {
		return nil, fmt.Errorf("entity: snapshot tuning: %w", err)
	}
	return out, nil
}

// ReloadTuning re-reads the prefab of every live entity built from file and
// swaps its tuning in place. Runtime state (bounce history, drag angle) is
// kept. It returns the number of entities updated.
func ReloadTuning(w *ecs.World, file string) (int, error) {
	spec, err := prefabs.LoadEntityBuildSpec(file)
	if err != nil {
		return 0, err
	}
	raw, err := yaml.Marshal(spec.Components)
	if err != nil {
		return 0, fmt.Errorf("entity: reload %s: %w", file, err)
	}
	var tuning ActorTuning
	if err := yaml.Unmarshal(raw, &tuning); err != nil {
		return 0, fmt.Errorf("entity: reload %s: %w", file, err)
	}

	want := strings.TrimSuffix(file, ".yaml")
	var targets []ecs.Entity
	ecs.ForEach(w, component.PrefabRefComponent.Kind(), func(e ecs.Entity, ref *component.PrefabRef) {
		if strings.TrimSuffix(ref.Path, ".yaml") == want {
			targets = append(targets, e)
		}
	})

	for _, e := range targets {
		if err := applyTuning(w, e, tuning); err != nil {
			return 0, fmt.Errorf("entity: reload %s: %w", file, err)
		}
	}
	if len(targets) > 0 {
		log.Printf("entity: reloaded %s on %d entities", file, len(targets))
	}
	return len(targets), nil
}

func applyTuning(w *ecs.World, e ecs.Entity, t ActorTuning) error {
	if t.GroundProbe != nil {
		if cur, ok := ecs.Get(w, e, component.GroundProbeComponent.Kind()); ok {
			next, err := GroundProbeFromSpec(*t.GroundProbe)
			if err != nil {
				return err
			}
			*cur = next
		}
	}
	if t.AirMovement != nil {
		if cur, ok := ecs.Get(w, e, component.AirMovementComponent.Kind()); ok {
			next, err := AirMovementFromSpec(*t.AirMovement)
			if err != nil {
				return err
			}
			*cur = next
		}
	}
	if t.WallBounce != nil {
		if cur, ok := ecs.Get(w, e, component.WallBounceComponent.Kind()); ok {
			next, err := WallBounceFromSpec(*t.WallBounce)
			if err != nil {
				return err
			}
			*cur = next
		}
	}
	if t.ContactRules != nil {
		if cur, ok := ecs.Get(w, e, component.ContactRulesComponent.Kind()); ok {
			next, err := ContactRulesFromSpec(*t.ContactRules)
			if err != nil {
				return err
			}
			*cur = next
		}
	}
	if t.RotationDrag != nil {
		if cur, ok := ecs.Get(w, e, component.RotationDragComponent.Kind()); ok {
			next := RotationDragFromSpec(*t.RotationDrag)
			next.Dragging, next.Target, next.Current = cur.Dragging, cur.Target, cur.Current
			next.Velocity, next.LastPoint = cur.Velocity, cur.LastPoint
			*cur = next
		}
	}
	return nil
}
