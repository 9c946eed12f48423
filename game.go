package main

import (
	"fmt"
	"log"
	"math/rand"
	"path/filepath"
	"strings"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/milk9111/ninjaroll/common"
	"github.com/milk9111/ninjaroll/ecs"
	"github.com/milk9111/ninjaroll/ecs/component"
	"github.com/milk9111/ninjaroll/ecs/entity"
	"github.com/milk9111/ninjaroll/ecs/system"
	"github.com/milk9111/ninjaroll/levels"
	"github.com/milk9111/ninjaroll/prefabs"
	"golang.design/x/clipboard"
	"golang.org/x/image/colornames"
)

// GameConfig collects the command line options.
type GameConfig struct {
	Level        string
	Debug        bool
	PrefabDir    string
	RespawnDelay float64
	Seed         int64
}

type Game struct {
	world   *ecs.World
	physics *system.PhysicsSystem
	input   *system.InputSystem
	audio   *system.AudioSystem
	session *session

	systems *ecs.Scheduler

	watcher   *prefabs.Watcher
	clipboard bool

	pauseUI *ebitenui.UI
	paused  bool
	debug   bool
	err     error
}

func NewGame(cfg GameConfig) (*Game, error) {
	w := ecs.NewWorld()
	ps := system.NewPhysicsSystem()

	builder := entity.NewBuilder()
	builder.Debug = cfg.Debug

	g := &Game{
		world:   w,
		physics: ps,
		input:   system.NewInputSystem(),
		audio:   system.NewAudioSystem(),
		session: newSession(w, ps, builder),
		debug:   cfg.Debug,
	}
	g.audio.Debug = cfg.Debug
	g.session.respawnDelay = cfg.RespawnDelay

	g.systems = ecs.NewScheduler()
	g.systems.AddTo(ecs.PhaseFixed,
		system.NewGroundCheckSystem(ps),
		system.NewAirMovementSystem(),
		system.NewRotationSmoothingSystem(),
		system.NewStabilizeSystem(),
		system.NewPatrolSystem(),
		system.NewMotionCycleSystem(),
		ps,
		system.NewContactSystem(),
	)
	g.systems.AddTo(ecs.PhaseFrame,
		system.NewRotationDragSystem(),
		system.NewEnemySweepSystem(ps),
		system.NewSpikeTrapSystem(ps),
		system.NewShooterSystem(builder.Spawn, rand.New(rand.NewSource(cfg.Seed))),
		system.NewBulletSystem(),
		system.NewTTLSystem(),
		system.NewGoalSystem(),
		system.NewLevelResetSystem(),
		g.audio,
	)

	start := 0
	if cfg.Level != "" {
		if start = levels.Index(cfg.Level); start < 0 {
			return nil, fmt.Errorf("game: unknown level %q (have %s)", cfg.Level, strings.Join(levels.Names(), ", "))
		}
	}
	if err := g.session.load(start); err != nil {
		return nil, err
	}

	if cfg.PrefabDir != "" {
		watcher, err := prefabs.NewWatcher(cfg.PrefabDir, filepath.Join(cfg.PrefabDir, "scripts"))
		if err != nil {
			log.Printf("game: prefab hot reload disabled: %v", err)
		} else {
			g.watcher = watcher
		}
	}

	if err := clipboard.Init(); err != nil {
		log.Printf("game: clipboard unavailable: %v", err)
	} else {
		g.clipboard = true
	}

	return g, nil
}

// Close stops the prefab watcher.
func (g *Game) Close() error {
	if g.watcher == nil {
		return nil
	}
	return g.watcher.Close()
}

func (g *Game) Update() error {
	if g.err != nil {
		return g.err
	}

	g.input.Update(g.world)
	input := g.rootInput()

	if input.PausePressed {
		g.setPaused(!g.paused)
	}
	if input.DebugPressed {
		g.debug = !g.debug
	}
	if input.CopyPressed {
		g.copyTuning()
	}

	if g.paused {
		g.pauseUI.Update()
		return nil
	}

	g.reloadPrefabs()

	if input.RestartPressed {
		return g.restart()
	}

	g.world.Advance(1.0 / float64(ebiten.TPS()))
	g.systems.Update(g.world)
	return system.DispatchLevelEvents(g.world, g.session)
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colornames.Black)
	system.DrawPhysicsDebug(g.physics, g.world, screen)

	status := fmt.Sprintf("%s  FPS: %.0f", g.session.levelName, ebiten.ActualFPS())
	ebitenutil.DebugPrint(screen, status)
	if g.debug {
		system.DrawActorDebug(g.world, screen)
	}

	if g.paused && g.pauseUI != nil {
		g.pauseUI.Draw(screen)
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}

func (g *Game) rootInput() component.Input {
	root, ok := ecs.First(g.world, component.InputComponent.Kind())
	if !ok {
		return component.Input{}
	}
	input, _ := ecs.Get(g.world, root, component.InputComponent.Kind())
	return *input
}

func (g *Game) setPaused(paused bool) {
	if paused && !g.paused {
		g.pauseUI = NewPauseUI(g)
	}
	g.paused = paused
}

func (g *Game) restart() error {
	g.setPaused(false)
	if err := g.session.ResetLevel(g.session.player); err != nil {
		g.err = err
		return err
	}
	return nil
}

// reloadPrefabs applies edited tuning to live entities. A script edit
// reloads every prefab since any of them may reference it.
func (g *Game) reloadPrefabs() {
	changed := g.watcher.Poll()
	if len(changed) == 0 {
		return
	}

	var files []string
	for _, name := range changed {
		if filepath.Ext(name) == ".tengo" {
			files = prefabs.Names()
			break
		}
		files = append(files, name)
	}
	for _, file := range files {
		if _, err := entity.ReloadTuning(g.world, file); err != nil {
			log.Printf("game: reload %s: %v", file, err)
		}
	}
}

func (g *Game) copyTuning() {
	player := g.session.player
	if !ecs.IsAlive(g.world, player) {
		return
	}
	out, err := entity.SnapshotTuning(g.world, player)
	if err != nil {
		log.Printf("game: snapshot tuning: %v", err)
		return
	}
	if !g.clipboard {
		log.Printf("game: tuning snapshot\n%s", out)
		return
	}
	clipboard.Write(clipboard.FmtText, out)
	log.Printf("game: copied tuning snapshot to clipboard")
}
