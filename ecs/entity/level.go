package entity

import (
	"fmt"

	"github.com/milk9111/ninjaroll/ecs"
	"github.com/milk9111/ninjaroll/ecs/component"
	"github.com/milk9111/ninjaroll/levels"
)

// LoadLevelToWorld builds lvl into w: kill bounds, the rotating root, merged
// static geometry and every placed prefab. It returns the player entity, or
// zero when the level places none.
func (b *Builder) LoadLevelToWorld(w *ecs.World, lvl *levels.Level) (ecs.Entity, error) {
	if w == nil || lvl == nil {
		return ecs.NoEntity, fmt.Errorf("load level: world and level are required")
	}

	minX, minY, maxX, maxY := lvl.Bounds()
	boundsEntity := ecs.CreateEntity(w)
	if err := ecs.Add(w, boundsEntity, component.LevelBoundsComponent.Kind(), &component.LevelBounds{
		MinX: minX, MinY: minY, MaxX: maxX, MaxY: maxY,
	}); err != nil {
		return ecs.NoEntity, err
	}

	// the root must exist before statics so they are carried by it
	if _, err := b.Build(w, lvl.RootPrefab(), Placement{}); err != nil {
		return ecs.NoEntity, fmt.Errorf("load level %q: %w", lvl.Name, err)
	}

	for _, rect := range lvl.SolidRects() {
		center, width, height := lvl.RectWorld(rect)
		e, err := b.Build(w, rect.Prefab, Placement{X: center.X, Y: center.Y})
		if err != nil {
			return ecs.NoEntity, fmt.Errorf("load level %q: tile %d,%d: %w", lvl.Name, rect.Col, rect.Row, err)
		}
		if body, ok := ecs.Get(w, e, component.PhysicsBodyComponent.Kind()); ok {
			body.Width, body.Height, body.Radius = width, height, 0
		}
	}

	player := ecs.NoEntity
	place := func(prefab string, x, y, rotation float64) error {
		pos := lvl.ToWorld(x, y)
		e, err := b.Build(w, prefab, Placement{X: pos.X, Y: pos.Y, Rotation: rotation, Attached: true})
		if err != nil {
			return fmt.Errorf("load level %q: place %s at %g,%g: %w", lvl.Name, prefab, x, y, err)
		}
		if ecs.Has(w, e, component.PlayerTagComponent.Kind()) {
			if player.Valid() {
				return fmt.Errorf("load level %q: more than one player", lvl.Name)
			}
			player = e
		}
		return nil
	}

	for _, p := range lvl.Placements() {
		if err := place(p.Prefab, float64(p.Col)+0.5, float64(p.Row)+0.5, 0); err != nil {
			return ecs.NoEntity, err
		}
	}
	for _, ent := range lvl.Entities {
		if err := place(ent.Prefab, ent.X, ent.Y, ent.Rotation); err != nil {
			return ecs.NoEntity, err
		}
	}

	return player, nil
}
