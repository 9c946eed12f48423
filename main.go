package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/ninjaroll/common"
	"github.com/milk9111/ninjaroll/prefabs"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug mode")
	levelName := flag.String("level", "", "level name in levels/ (basename, .json optional)")
	tps := flag.Int("tps", common.TPS, "simulation ticks per second")
	prefabDir := flag.String("prefabs", "prefabs", "directory checked for prefab overrides and watched for edits; empty disables both")
	respawn := flag.Float64("respawn", -1, "override the player's respawn delay in seconds")
	seed := flag.Int64("seed", 1, "seed for shooter jitter")
	flag.Parse()

	prefabs.SetDiskRoot(*prefabDir)

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(common.BaseWidth, common.BaseHeight)
	ebiten.SetWindowTitle("ninjaroll")
	ebiten.SetTPS(*tps)

	game, err := NewGame(GameConfig{
		Level:        *levelName,
		Debug:        *debug,
		PrefabDir:    *prefabDir,
		RespawnDelay: *respawn,
		Seed:         *seed,
	})
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
