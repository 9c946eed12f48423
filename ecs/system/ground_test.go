package system

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/ninjaroll/ecs"
	"github.com/milk9111/ninjaroll/ecs/component"
)

func TestGrounded(t *testing.T) {
	probe := component.GroundProbe{Distance: 0.1, Offset: 0.5}
	pos := cp.Vector{X: 2, Y: 3}
	bottom := 2.5

	cases := []struct {
		name string
		hits []cp.Vector
		want bool
	}{
		{"no_hits", nil, false},
		{"center", []cp.Vector{{X: 2, Y: bottom}}, true},
		{"left_edge", []cp.Vector{{X: 1.5, Y: bottom}}, true},
		{"right_edge", []cp.Vector{{X: 2.5, Y: bottom}}, true},
		{"off_probe", []cp.Vector{{X: 3, Y: bottom}}, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			q := &fakeQuery{hits: map[cp.Vector]bool{}}
			for _, h := range c.hits {
				q.hits[h] = true
			}
			if got := Grounded(q, pos, 0.5, probe); got != c.want {
				t.Fatalf("expected %v, got %v", c.want, got)
			}
			for _, m := range q.masks {
				if m != component.LayerPlatform {
					t.Fatalf("expected the platform mask by default, got %s", m)
				}
			}
		})
	}
}

func TestGroundedStopsAtFirstHit(t *testing.T) {
	q := &fakeQuery{hits: map[cp.Vector]bool{{X: 0, Y: -1}: true}}
	probe := component.GroundProbe{Distance: 0.2, Offset: 0.3, Mask: component.LayerPlatform | component.LayerEnemy}
	if !Grounded(q, cp.Vector{}, 1, probe) {
		t.Fatalf("expected grounded")
	}
	if len(q.rays) != 1 || q.masks[0] != probe.Mask {
		t.Fatalf("expected one ray with the configured mask, got %v %v", q.rays, q.masks)
	}
}

func TestGroundCheckSystem(t *testing.T) {
	w := newTestWorld(1.0 / 60)
	body := &stubBody{pos: cp.Vector{X: 0, Y: 1}}
	e := addActor(w, body)
	mustAdd(w, e, component.GroundProbeComponent, &component.GroundProbe{Distance: 0.1, Offset: 0.4})

	q := &fakeQuery{hits: map[cp.Vector]bool{{X: 0, Y: 0.5}: true}}
	s := NewGroundCheckSystem(q)
	s.Update(w)

	actor, _ := ecsGetActor(w, e)
	anim, _ := ecs.Get(w, e, component.AnimatorComponent.Kind())
	if !actor.Grounded || !anim.Bool("Grounded") {
		t.Fatalf("expected grounded actor")
	}

	body.pos = cp.Vector{X: 0, Y: 4}
	s.Update(w)
	if actor.Grounded || anim.Bool("Grounded") {
		t.Fatalf("expected airborne actor")
	}

	body.pos = cp.Vector{X: 0, Y: 1}
	Die(w, e)
	s.Update(w)
	if actor.Grounded {
		t.Fatalf("dead actors are never grounded")
	}
}
