package system

import (
	"github.com/milk9111/ninjaroll/ecs"
	"github.com/milk9111/ninjaroll/ecs/component"
)

// Feedback helpers forward to optional audio and animator components. A
// missing component or an undeclared parameter is a no-op.

func playSound(w *ecs.World, e ecs.Entity, name string, volume float64) {
	if a, ok := ecs.Get(w, e, component.AudioComponent.Kind()); ok {
		a.Request(name, volume)
	}
}

func fireTrigger(w *ecs.World, e ecs.Entity, name string) {
	if a, ok := ecs.Get(w, e, component.AnimatorComponent.Kind()); ok {
		a.SetTrigger(name)
	}
}

func setAnimBool(w *ecs.World, e ecs.Entity, name string, v bool) {
	if a, ok := ecs.Get(w, e, component.AnimatorComponent.Kind()); ok {
		a.SetBool(name, v)
	}
}

func setAnimFloat(w *ecs.World, e ecs.Entity, name string, v float64) {
	if a, ok := ecs.Get(w, e, component.AnimatorComponent.Kind()); ok {
		a.SetFloat(name, v)
	}
}
