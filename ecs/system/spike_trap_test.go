package system

import (
	"testing"

	"github.com/milk9111/ninjaroll/ecs"
	"github.com/milk9111/ninjaroll/ecs/component"
)

func addSpike(w *ecs.World, spike component.SpikeTrap) (ecs.Entity, *component.SpikeTrap, *component.Hazard) {
	e := ecs.CreateEntity(w)
	mustAdd(w, e, component.SpikeTrapComponent, &spike)
	mustAdd(w, e, component.HazardComponent, &component.Hazard{})
	mustAdd(w, e, component.TransformComponent, &component.Transform{X: 1, Y: 1})
	mustAdd(w, e, component.ContactQueueComponent, &component.ContactQueue{})
	mustAdd(w, e, component.AudioComponent, newTestAudio("activate", "retract"))
	mustAdd(w, e, component.AnimatorComponent, component.NewAnimator(map[string]component.ParamKind{
		"IsExtended": component.ParamBool,
	}))
	s, _ := ecs.Get(w, e, component.SpikeTrapComponent.Kind())
	hz, _ := ecs.Get(w, e, component.HazardComponent.Kind())
	return e, s, hz
}

func TestSpikeTrapTimedCycle(t *testing.T) {
	w := newTestWorld(0.25)
	_, spike, hz := addSpike(w, component.SpikeTrap{
		Behavior:               component.SpikeTimedCycle,
		ActivationDelay:        0.2,
		RetractDelay:           0.5,
		TimeBetweenActivations: 1,
	})
	s := NewSpikeTrapSystem(nil)

	steps := []struct {
		extended bool
		active   bool
	}{
		{false, false},
		{false, false},
		{false, false},
		{true, false}, // extended, waiting out the activation delay
		{true, true},
		{false, false},
		{false, false},
	}
	for i, want := range steps {
		s.Update(w)
		if spike.Extended != want.extended || hz.Active != want.active {
			t.Fatalf("step %d: expected extended=%v active=%v, got %v %v", i, want.extended, want.active, spike.Extended, hz.Active)
		}
	}
}

func TestSpikeTrapStartStates(t *testing.T) {
	w := newTestWorld(0.25)
	_, always, alwaysHz := addSpike(w, component.SpikeTrap{Behavior: component.SpikeAlwaysActive})
	e, timed, timedHz := addSpike(w, component.SpikeTrap{Behavior: component.SpikeTimedCycle, StartActive: true, RetractDelay: 1, TimeBetweenActivations: 1})

	NewSpikeTrapSystem(nil).Update(w)

	if !always.Extended || !alwaysHz.Active {
		t.Fatalf("always active spikes start extended")
	}
	if !timed.Extended || !timedHz.Active || !near(timed.Timer, 0.75, 1e-12) {
		t.Fatalf("start active timed spikes begin extended, got %+v", timed)
	}
	anim, _ := ecs.Get(w, e, component.AnimatorComponent.Kind())
	if !anim.Bool("IsExtended") {
		t.Fatalf("expected IsExtended")
	}
}

func TestSpikeTrapProximity(t *testing.T) {
	w := newTestWorld(0.25)
	player := ecs.CreateEntity(w)
	_, spike, hz := addSpike(w, component.SpikeTrap{Behavior: component.SpikePlayerProximity, DetectionRadius: 2, RetractDelay: 0.5})
	q := &fakeQuery{}
	s := NewSpikeTrapSystem(q)

	q.overlaps = []ecs.Entity{player}
	s.Update(w)
	if !spike.Extended || !hz.Active {
		t.Fatalf("expected extension when the player is near")
	}
	if q.masks[0] != component.LayerPlayer || q.radii[0] != 2 {
		t.Fatalf("unexpected query %v %v", q.masks, q.radii)
	}

	// leaving and coming back cancels the retraction
	q.overlaps = nil
	s.Update(w)
	q.overlaps = []ecs.Entity{player}
	s.Update(w)
	q.overlaps = nil
	s.Update(w)
	if !spike.Extended {
		t.Fatalf("retraction should restart after the player returned")
	}
	s.Update(w)
	if spike.Extended || hz.Active {
		t.Fatalf("expected retraction after the delay")
	}

	ecs.DestroyEntity(w, player)
	q.overlaps = []ecs.Entity{player}
	s.Update(w)
	if spike.Extended {
		t.Fatalf("a destroyed player does not count")
	}
}

func TestSpikeTrapOneTimeTrigger(t *testing.T) {
	w := newTestWorld(0.25)
	e, spike, hz := addSpike(w, component.SpikeTrap{Behavior: component.SpikeOneTimeTriggered})
	queue, _ := ecs.Get(w, e, component.ContactQueueComponent.Kind())
	s := NewSpikeTrapSystem(nil)

	queue.Push(component.Contact{Kind: component.ContactTrigger, Tags: component.TagEnemy})
	s.Update(w)
	if spike.Extended {
		t.Fatalf("only the player triggers the spikes")
	}

	queue.Push(component.Contact{Kind: component.ContactTrigger, Tags: component.TagPlayer})
	s.Update(w)
	if !spike.Extended || !hz.Active {
		t.Fatalf("expected triggered spikes")
	}
	audio, _ := ecs.Get(w, e, component.AudioComponent.Kind())
	if !audio.Requested("activate") {
		t.Fatalf("expected activate sound")
	}

	for i := 0; i < 20; i++ {
		s.Update(w)
	}
	if !spike.Extended {
		t.Fatalf("triggered spikes stay out")
	}
}
