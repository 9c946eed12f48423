package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/ninjaroll/common"
	"github.com/milk9111/ninjaroll/ecs"
	"github.com/milk9111/ninjaroll/ecs/component"
)

// GroundCheckSystem casts three short downward probes (center, left, right)
// from the bottom of each actor's collider.
type GroundCheckSystem struct {
	query SpatialQuery
}

func NewGroundCheckSystem(query SpatialQuery) *GroundCheckSystem {
	return &GroundCheckSystem{query: query}
}

func (s *GroundCheckSystem) Update(w *ecs.World) {
	if s == nil || s.query == nil {
		return
	}
	ecs.ForEach3(w, component.ActorComponent.Kind(), component.GroundProbeComponent.Kind(), component.PhysicsBodyComponent.Kind(), func(e ecs.Entity, actor *component.Actor, probe *component.GroundProbe, bodyComp *component.PhysicsBody) {
		if bodyComp.Body == nil {
			return
		}
		if !actor.Alive() {
			actor.Grounded = false
			return
		}
		actor.Grounded = Grounded(s.query, bodyComp.Body.Position(), colliderHalfHeight(bodyComp), *probe)
		setAnimBool(w, e, "Grounded", actor.Grounded)
	})
}

// Grounded reports whether any of the three probes under a collider whose
// center is pos hits the probe mask.
func Grounded(query SpatialQuery, pos cp.Vector, halfHeight float64, probe component.GroundProbe) bool {
	mask := probe.Mask
	if mask == component.LayerNone {
		mask = component.LayerPlatform
	}
	bottom := pos.Y - halfHeight + probe.Inset
	for _, dx := range [3]float64{0, -probe.Offset, probe.Offset} {
		origin := cp.Vector{X: pos.X + dx, Y: bottom}
		if _, ok := query.Raycast(origin, common.Down, probe.Distance, mask); ok {
			return true
		}
	}
	return false
}

func colliderHalfHeight(b *component.PhysicsBody) float64 {
	if b.Radius > 0 {
		return b.Radius
	}
	return b.Height / 2
}

func colliderHalfWidth(b *component.PhysicsBody) float64 {
	if b.Radius > 0 {
		return b.Radius
	}
	return b.Width / 2
}
