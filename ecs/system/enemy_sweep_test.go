package system

import (
	"testing"

	"github.com/milk9111/ninjaroll/ecs"
	"github.com/milk9111/ninjaroll/ecs/component"
)

func TestEnemySweepKillsOverlaps(t *testing.T) {
	w := newTestWorld(1.0 / 60)
	e := addActor(w, &stubBody{mass: 1})
	a := addEnemy(w)
	b := addEnemy(w)

	// self, a duplicate and a stale id are all reported by the query
	stale := addEnemy(w)
	ecs.DestroyEntity(w, stale)
	q := &fakeQuery{overlaps: []ecs.Entity{e, a, a, stale, b}}

	NewEnemySweepSystem(q).Update(w)

	if ecs.IsAlive(w, a) || ecs.IsAlive(w, b) {
		t.Fatalf("expected overlapping enemies killed")
	}
	actor, _ := ecsGetActor(w, e)
	if !actor.Alive() {
		t.Fatalf("actor should survive its own sweep")
	}
	kills := 0
	for _, evt := range w.Events().Drain() {
		if evt.Kind == ecs.EventKill {
			kills++
		}
	}
	if kills != 2 {
		t.Fatalf("expected 2 kills, got %d", kills)
	}
	if len(q.radii) != 1 || !near(q.radii[0], 0.6, 1e-9) {
		t.Fatalf("expected radius derived from the collider, got %v", q.radii)
	}
	if q.masks[0] != component.LayerEnemy {
		t.Fatalf("expected enemy mask, got %s", q.masks[0])
	}
}

func TestEnemySweepSkipsDeadActors(t *testing.T) {
	w := newTestWorld(1.0 / 60)
	e := addActor(w, &stubBody{mass: 1})
	rules, _ := ecs.Get(w, e, component.ContactRulesComponent.Kind())
	rules.DetectionRadius = 2
	enemy := addEnemy(w)
	q := &fakeQuery{overlaps: []ecs.Entity{enemy}}
	s := NewEnemySweepSystem(q)

	s.Update(w)
	if ecs.IsAlive(w, enemy) || q.radii[0] != 2 {
		t.Fatalf("expected kill with the configured radius")
	}

	other := addEnemy(w)
	q.overlaps = []ecs.Entity{other}
	Die(w, e)
	s.Update(w)
	if !ecs.IsAlive(w, other) {
		t.Fatalf("a dead actor must not sweep")
	}
}
