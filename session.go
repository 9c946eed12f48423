package main

import (
	"fmt"
	"log"

	"github.com/milk9111/ninjaroll/ecs"
	"github.com/milk9111/ninjaroll/ecs/component"
	"github.com/milk9111/ninjaroll/ecs/entity"
	"github.com/milk9111/ninjaroll/ecs/system"
	"github.com/milk9111/ninjaroll/levels"
)

// session owns the loaded level and rebuilds the world on reset and advance.
type session struct {
	world   *ecs.World
	physics *system.PhysicsSystem
	builder *entity.Builder

	levelIndex int
	levelName  string
	player     ecs.Entity

	// respawnDelay overrides the player's respawn delay when non-negative.
	respawnDelay float64
}

var _ system.LevelLoader = (*session)(nil)

func newSession(w *ecs.World, ps *system.PhysicsSystem, b *entity.Builder) *session {
	return &session{world: w, physics: ps, builder: b, respawnDelay: -1}
}

// load replaces the world with level index i. Indices wrap around.
func (s *session) load(i int) error {
	lvl, idx, err := levels.LoadIndex(i)
	if err != nil {
		return err
	}

	s.physics.Reset()
	ecs.Clear(s.world)
	s.player = 0

	player, err := s.builder.LoadLevelToWorld(s.world, lvl)
	if err != nil {
		return fmt.Errorf("session: load level %d: %w", idx, err)
	}
	s.levelIndex = idx
	s.levelName = lvl.Name
	s.player = player

	if s.respawnDelay >= 0 && player.Valid() {
		if rules, ok := ecs.Get(s.world, player, component.ContactRulesComponent.Kind()); ok {
			rules.RespawnDelay = s.respawnDelay
		}
	}

	s.physics.Sync(s.world)
	log.Printf("session: loaded level %d %q", idx, lvl.Name)
	return nil
}

// ResetLevel rebuilds the current level.
func (s *session) ResetLevel(actor ecs.Entity) error {
	log.Printf("session: reset level %d (actor %d)", s.levelIndex, actor)
	return s.load(s.levelIndex)
}

// AdvanceLevel loads index, or the next level when index is negative.
func (s *session) AdvanceLevel(index int) error {
	if index < 0 {
		index = s.levelIndex + 1
	}
	return s.load(index)
}
