package system

import (
	"log"

	"github.com/milk9111/ninjaroll/ecs"
	"github.com/milk9111/ninjaroll/ecs/component"
)

// GoalSystem completes the level once a live player touches the goal with
// no enemies left, then requests the next level after a delay.
type GoalSystem struct{}

func NewGoalSystem() *GoalSystem {
	return &GoalSystem{}
}

func (s *GoalSystem) Update(w *ecs.World) {
	dt := w.Delta()
	ecs.ForEach2(w, component.GoalComponent.Kind(), component.ContactQueueComponent.Kind(), func(e ecs.Entity, g *component.Goal, queue *component.ContactQueue) {
		contacts := queue.Drain()
		if g.Completed {
			g.Timer -= dt
			requestAdvance(w, e, g)
			return
		}
		for _, c := range contacts {
			if !c.Tags.Has(component.TagPlayer) || !playerAlive(w, ecs.Entity(c.Other)) {
				continue
			}
			if ecs.Count(w, component.EnemyTagComponent.Kind()) > 0 {
				continue
			}
			g.Completed = true
			g.Timer = g.TransitionDelay
			fireTrigger(w, e, "Activate")
			playSound(w, e, "victory", 1)
			w.Events().Push(ecs.Event{Kind: ecs.EventGoalReached, Entity: e, Other: ecs.Entity(c.Other)})
			log.Printf("goal: level complete, advancing in %.2fs", g.TransitionDelay)
			requestAdvance(w, e, g)
			return
		}
	})
}

func playerAlive(w *ecs.World, e ecs.Entity) bool {
	actor, ok := ecs.Get(w, e, component.ActorComponent.Kind())
	return ok && actor.Alive()
}

func requestAdvance(w *ecs.World, e ecs.Entity, g *component.Goal) {
	if g.Requested || g.Timer > 0 {
		return
	}
	g.Requested = true
	w.Events().Push(ecs.Event{Kind: ecs.EventLevelAdvance, Entity: e, Value: float64(g.NextLevel)})
}
