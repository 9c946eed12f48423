package main

import (
	"testing"

	"github.com/milk9111/ninjaroll/ecs"
	"github.com/milk9111/ninjaroll/ecs/component"
	"github.com/milk9111/ninjaroll/ecs/entity"
	"github.com/milk9111/ninjaroll/ecs/system"
	"github.com/milk9111/ninjaroll/levels"
)

func newTestSession(t *testing.T) *session {
	t.Helper()
	s := newSession(ecs.NewWorld(), system.NewPhysicsSystem(), &entity.Builder{})
	if err := s.load(0); err != nil {
		t.Fatalf("load: %v", err)
	}
	return s
}

func TestSessionLoadsPlayer(t *testing.T) {
	s := newTestSession(t)
	if !s.player.Valid() || !ecs.IsAlive(s.world, s.player) {
		t.Fatalf("expected a live player")
	}
	if _, ok := system.BodyOf(s.world, s.player); !ok {
		t.Fatalf("player body should exist right after load")
	}
}

func TestSessionAdvanceWraps(t *testing.T) {
	s := newTestSession(t)
	count := len(levels.Names())

	for i := 1; i <= count; i++ {
		if err := s.AdvanceLevel(-1); err != nil {
			t.Fatalf("advance: %v", err)
		}
		if want := i % count; s.levelIndex != want {
			t.Fatalf("after %d advances at level %d, want %d", i, s.levelIndex, want)
		}
	}

	if err := s.AdvanceLevel(1); err != nil {
		t.Fatalf("advance to 1: %v", err)
	}
	if s.levelIndex != 1%count {
		t.Fatalf("explicit index ignored, at %d", s.levelIndex)
	}
}

func TestSessionResetRebuildsWorld(t *testing.T) {
	s := newTestSession(t)
	before := len(ecs.Entities(s.world))

	system.Die(s.world, s.player)
	if err := s.ResetLevel(s.player); err != nil {
		t.Fatalf("reset: %v", err)
	}
	if got := len(ecs.Entities(s.world)); got != before {
		t.Fatalf("reset changed entity count from %d to %d", before, got)
	}
	actor, ok := ecs.Get(s.world, s.player, component.ActorComponent.Kind())
	if !ok || !actor.Alive() {
		t.Fatalf("player should be alive after a reset")
	}
	if ecs.Count(s.world, component.LevelRootTagComponent.Kind()) != 1 {
		t.Fatalf("expected exactly one level root")
	}
}

func TestSessionRespawnOverride(t *testing.T) {
	s := newSession(ecs.NewWorld(), system.NewPhysicsSystem(), &entity.Builder{})
	s.respawnDelay = 0.25
	if err := s.load(0); err != nil {
		t.Fatalf("load: %v", err)
	}
	rules, _ := ecs.Get(s.world, s.player, component.ContactRulesComponent.Kind())
	if rules.RespawnDelay != 0.25 {
		t.Fatalf("respawn delay %g", rules.RespawnDelay)
	}
}

func TestDispatchAdvanceEvent(t *testing.T) {
	s := newTestSession(t)
	s.world.Events().Push(ecs.Event{Kind: ecs.EventLevelAdvance, Value: -1})
	if err := system.DispatchLevelEvents(s.world, s); err != nil {
		t.Fatalf("dispatch: %v", err)
	}
	if want := 1 % len(levels.Names()); s.levelIndex != want {
		t.Fatalf("at level %d, want %d", s.levelIndex, want)
	}
}
