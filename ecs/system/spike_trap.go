package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/ninjaroll/ecs"
	"github.com/milk9111/ninjaroll/ecs/component"
)

// SpikeTrapSystem extends and retracts spike hazards by timer, player
// proximity or a one-time player trigger.
type SpikeTrapSystem struct {
	query SpatialQuery
}

func NewSpikeTrapSystem(query SpatialQuery) *SpikeTrapSystem {
	return &SpikeTrapSystem{query: query}
}

func (s *SpikeTrapSystem) Update(w *ecs.World) {
	dt := w.Delta()
	ecs.ForEach2(w, component.SpikeTrapComponent.Kind(), component.HazardComponent.Kind(), func(e ecs.Entity, spike *component.SpikeTrap, hz *component.Hazard) {
		if !spike.Initialized {
			initSpike(w, e, spike, hz)
		}

		if spike.ArmTimer >= 0 {
			spike.ArmTimer -= dt
			if spike.ArmTimer <= 0 {
				spike.ArmTimer = -1
				if spike.Extended {
					hz.Active = true
				}
			}
		}

		switch spike.Behavior {
		case component.SpikeTimedCycle:
			spike.Timer -= dt
			if spike.Timer > 0 {
				break
			}
			if spike.Extended {
				retractSpike(w, e, spike, hz)
				spike.Timer = spike.TimeBetweenActivations
			} else {
				extendSpike(w, e, spike, hz)
				spike.Timer = spike.RetractDelay
			}
		case component.SpikePlayerProximity:
			s.updateProximity(w, e, spike, hz, dt)
		case component.SpikeOneTimeTriggered:
			if queue, ok := ecs.Get(w, e, component.ContactQueueComponent.Kind()); ok {
				for _, c := range queue.Drain() {
					if !spike.Extended && c.Tags.Has(component.TagPlayer) {
						extendSpike(w, e, spike, hz)
					}
				}
			}
		}
	})
}

func (s *SpikeTrapSystem) updateProximity(w *ecs.World, e ecs.Entity, spike *component.SpikeTrap, hz *component.Hazard, dt float64) {
	if s.query == nil || spike.DetectionRadius <= 0 {
		return
	}
	t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		return
	}
	near := false
	for _, p := range s.query.OverlapCircle(cp.Vector{X: t.X, Y: t.Y}, spike.DetectionRadius, component.LayerPlayer) {
		if ecs.IsAlive(w, p) {
			near = true
			break
		}
	}

	if near {
		spike.RetractTimer = -1
		if !spike.Extended {
			extendSpike(w, e, spike, hz)
		}
		return
	}
	if !spike.Extended {
		return
	}
	if spike.RetractTimer < 0 {
		spike.RetractTimer = spike.RetractDelay
	}
	spike.RetractTimer -= dt
	if spike.RetractTimer <= 0 {
		spike.RetractTimer = -1
		retractSpike(w, e, spike, hz)
	}
}

func initSpike(w *ecs.World, e ecs.Entity, spike *component.SpikeTrap, hz *component.Hazard) {
	spike.Initialized = true
	spike.ArmTimer = -1
	spike.RetractTimer = -1
	hz.Active = spike.StartActive
	spike.Timer = spike.TimeBetweenActivations

	switch {
	case spike.Behavior == component.SpikeAlwaysActive:
		hz.Active = true
		spike.Extended = true
		setAnimBool(w, e, "IsExtended", true)
	case spike.StartActive && spike.Behavior == component.SpikeTimedCycle:
		spike.Extended = true
		spike.Timer = spike.RetractDelay
		setAnimBool(w, e, "IsExtended", true)
	}
}

// extendSpike shows the spikes; the hazard goes live after ActivationDelay.
func extendSpike(w *ecs.World, e ecs.Entity, spike *component.SpikeTrap, hz *component.Hazard) {
	spike.Extended = true
	setAnimBool(w, e, "IsExtended", true)
	if spike.ActivationDelay > 0 {
		spike.ArmTimer = spike.ActivationDelay
	} else {
		hz.Active = true
	}
	playSound(w, e, "activate", 1)
}

func retractSpike(w *ecs.World, e ecs.Entity, spike *component.SpikeTrap, hz *component.Hazard) {
	spike.Extended = false
	spike.ArmTimer = -1
	hz.Active = false
	setAnimBool(w, e, "IsExtended", false)
	playSound(w, e, "retract", 1)
}
