package entity

import (
	"github.com/milk9111/ninjaroll/ecs"
)

func NewPlayer(w *ecs.World) (ecs.Entity, error) {
	return BuildEntity(w, "player.yaml")
}

// NewPlayerAt builds the player with its spawn point at x, y.
func NewPlayerAt(w *ecs.World, x, y float64) (ecs.Entity, error) {
	return defaultBuilder.Build(w, "player.yaml", Placement{X: x, Y: y})
}
