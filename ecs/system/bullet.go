package system

import (
	"github.com/milk9111/ninjaroll/ecs"
	"github.com/milk9111/ninjaroll/ecs/component"
)

// BulletSystem destroys bullets that touched anything outside their ignore
// mask or left the level.
type BulletSystem struct{}

func NewBulletSystem() *BulletSystem {
	return &BulletSystem{}
}

func (s *BulletSystem) Update(w *ecs.World) {
	var bounds *component.LevelBounds
	if be, ok := ecs.First(w, component.LevelBoundsComponent.Kind()); ok {
		bounds, _ = ecs.Get(w, be, component.LevelBoundsComponent.Kind())
	}

	ecs.ForEach2(w, component.BulletComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, b *component.Bullet, t *component.Transform) {
		if queue, ok := ecs.Get(w, e, component.ContactQueueComponent.Kind()); ok {
			for _, c := range queue.Drain() {
				if c.Layer.Has(b.IgnoreMask) {
					continue
				}
				ecs.DestroyEntity(w, e)
				return
			}
		}
		if bounds != nil && !bounds.Contains(t.X, t.Y) {
			ecs.DestroyEntity(w, e)
		}
	})
}
