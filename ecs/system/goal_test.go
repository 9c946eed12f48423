package system

import (
	"testing"

	"github.com/milk9111/ninjaroll/ecs"
	"github.com/milk9111/ninjaroll/ecs/component"
)

func addGoal(w *ecs.World, g component.Goal) (ecs.Entity, *component.Goal, *component.ContactQueue) {
	e := ecs.CreateEntity(w)
	mustAdd(w, e, component.GoalComponent, &g)
	queue := &component.ContactQueue{}
	mustAdd(w, e, component.ContactQueueComponent, queue)
	mustAdd(w, e, component.AudioComponent, newTestAudio("victory"))
	goal, _ := ecs.Get(w, e, component.GoalComponent.Kind())
	return e, goal, queue
}

func countEvents(events []ecs.Event, kind ecs.EventKind) int {
	n := 0
	for _, evt := range events {
		if evt.Kind == kind {
			n++
		}
	}
	return n
}

func TestGoalNeedsLivePlayerAndNoEnemies(t *testing.T) {
	w := newTestWorld(0.5)
	player := addActor(w, &stubBody{mass: 1})
	enemy := addEnemy(w)
	_, goal, queue := addGoal(w, component.Goal{NextLevel: 2, TransitionDelay: 1})
	s := NewGoalSystem()
	touch := component.Contact{Kind: component.ContactTrigger, Other: uint64(player), Tags: component.TagPlayer, Layer: component.LayerPlayer}

	queue.Push(touch)
	s.Update(w)
	if goal.Completed {
		t.Fatalf("goal must wait for the last enemy")
	}

	ecs.DestroyEntity(w, enemy)
	queue.Push(component.Contact{Kind: component.ContactTrigger, Other: uint64(enemy), Tags: component.TagEnemy})
	s.Update(w)
	if goal.Completed {
		t.Fatalf("only the player completes the goal")
	}

	queue.Push(touch)
	s.Update(w)
	if !goal.Completed {
		t.Fatalf("expected completion")
	}
	events := w.Events().Drain()
	if countEvents(events, ecs.EventGoalReached) != 1 || countEvents(events, ecs.EventLevelAdvance) != 0 {
		t.Fatalf("expected goal reached without advancing yet, got %+v", events)
	}

	s.Update(w)
	if w.Events().Len() != 0 {
		t.Fatalf("advance raised before the delay")
	}
	s.Update(w)
	events = w.Events().Drain()
	if countEvents(events, ecs.EventLevelAdvance) != 1 || events[0].Value != 2 {
		t.Fatalf("expected advance to level 2, got %+v", events)
	}

	queue.Push(touch)
	s.Update(w)
	s.Update(w)
	if w.Events().Len() != 0 {
		t.Fatalf("advance must be requested once")
	}
}

func TestGoalIgnoresDeadPlayer(t *testing.T) {
	w := newTestWorld(0.5)
	player := addActor(w, &stubBody{mass: 1})
	Die(w, player)
	w.Events().Drain()
	_, goal, queue := addGoal(w, component.Goal{NextLevel: -1})

	queue.Push(component.Contact{Kind: component.ContactTrigger, Other: uint64(player), Tags: component.TagPlayer})
	NewGoalSystem().Update(w)
	if goal.Completed {
		t.Fatalf("a dead player cannot finish the level")
	}
}

func TestGoalWithoutDelayAdvancesImmediately(t *testing.T) {
	w := newTestWorld(0.5)
	player := addActor(w, &stubBody{mass: 1})
	_, _, queue := addGoal(w, component.Goal{NextLevel: -1})

	queue.Push(component.Contact{Kind: component.ContactEnter, Other: uint64(player), Tags: component.TagPlayer})
	NewGoalSystem().Update(w)

	events := w.Events().Drain()
	if countEvents(events, ecs.EventLevelAdvance) != 1 {
		t.Fatalf("expected an immediate advance, got %+v", events)
	}
	for _, evt := range events {
		if evt.Kind == ecs.EventLevelAdvance && evt.Value != -1 {
			t.Fatalf("expected next-level sentinel, got %g", evt.Value)
		}
	}
}
