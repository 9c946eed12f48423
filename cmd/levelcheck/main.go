// Command levelcheck builds every embedded level headlessly and reports what
// each one contains. It exits non-zero when a level fails to build.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/milk9111/ninjaroll/ecs"
	"github.com/milk9111/ninjaroll/ecs/component"
	"github.com/milk9111/ninjaroll/ecs/entity"
	"github.com/milk9111/ninjaroll/levels"
	"github.com/milk9111/ninjaroll/prefabs"
)

func main() {
	only := flag.String("level", "", "check a single level (basename, .json optional)")
	prefabDir := flag.String("prefabs", "", "directory checked for prefab overrides")
	flag.Parse()

	prefabs.SetDiskRoot(*prefabDir)

	names := levels.Names()
	if *only != "" {
		names = []string{*only}
	}

	failed := 0
	for _, name := range names {
		if err := check(name); err != nil {
			log.Printf("%s: %v", name, err)
			failed++
		}
	}
	if failed > 0 {
		os.Exit(1)
	}
}

func check(name string) error {
	lvl, err := levels.Load(name)
	if err != nil {
		return err
	}

	w := ecs.NewWorld()
	player, err := (&entity.Builder{}).LoadLevelToWorld(w, lvl)
	if err != nil {
		return err
	}
	if !player.Valid() {
		return fmt.Errorf("no player")
	}
	goals := ecs.Count(w, component.GoalComponent.Kind())
	if goals == 0 {
		return fmt.Errorf("no goal")
	}

	fmt.Printf("%-16s %-20q %dx%d entities=%d solids=%d enemies=%d hazards=%d goals=%d\n",
		name, lvl.Name, lvl.Width(), lvl.Height(),
		len(ecs.Entities(w)),
		len(lvl.SolidRects()),
		ecs.Count(w, component.EnemyTagComponent.Kind()),
		ecs.Count(w, component.HazardComponent.Kind()),
		goals,
	)
	return nil
}
