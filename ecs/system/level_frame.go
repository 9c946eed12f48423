package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/ninjaroll/ecs"
	"github.com/milk9111/ninjaroll/ecs/component"
)

// levelFrame returns the level root's pivot and angle in radians. Without a
// root the frame is the identity.
func levelFrame(w *ecs.World) (cp.Vector, float64) {
	root, ok := ecs.First(w, component.LevelRootTagComponent.Kind())
	if !ok {
		return cp.Vector{}, 0
	}
	t, ok := ecs.Get(w, root, component.TransformComponent.Kind())
	if !ok {
		return cp.Vector{}, 0
	}
	return cp.Vector{X: t.X, Y: t.Y}, t.Rotation
}

// frameOf is the frame e's scripted motion lives in: the level frame for
// attached entities, the identity otherwise.
func frameOf(w *ecs.World, e ecs.Entity) (cp.Vector, float64) {
	if !ecs.Has(w, e, component.LevelAttachedComponent.Kind()) {
		return cp.Vector{}, 0
	}
	return levelFrame(w)
}

// toFrame maps a point given relative to pivot at angle 0 into the rotated frame.
func toFrame(pivot cp.Vector, angle float64, p cp.Vector) cp.Vector {
	if angle == 0 {
		return p
	}
	return pivot.Add(p.Sub(pivot).Rotate(cp.ForAngle(angle)))
}
