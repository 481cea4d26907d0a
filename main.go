package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/floater/ecs"
	"github.com/milk9111/floater/ecs/entity"
	"github.com/milk9111/floater/logger"
	"github.com/milk9111/floater/prefabs"
)

func main() {
	debug := flag.Bool("debug", false, "show the controller overlay")
	headless := flag.Int("headless", 0, "run N ticks without a window and print the final state")
	sceneName := flag.String("scene", "scene.yaml", "scene prefab in prefabs/")
	script := flag.String("script", "", "drive the player from a tengo script in prefabs/scripts/")
	watch := flag.Bool("watch", true, "hot reload tuning when prefabs/ changes on disk")
	logLevel := flag.String("log-level", "info", "debug, info, warn or error")
	logFormat := flag.String("log-format", "console", "console, text or json")
	flag.Parse()

	lg := logger.Init(logger.Config{Level: *logLevel, Format: *logFormat, Output: os.Stderr})

	world := ecs.NewWorld()
	scene, err := entity.LoadScene(world, *sceneName, *script)
	if err != nil {
		log.Fatal(err)
	}
	lg.Info("scene loaded", "scene", scene.Spec.Name, "tick_rate", scene.Spec.TickRate, "player", scene.Player.String())

	if *headless > 0 {
		if err := runHeadless(world, scene, *headless); err != nil {
			log.Fatal(err)
		}
		return
	}

	var watcher *prefabs.Watcher
	if *watch {
		watcher, err = prefabs.NewWatcher(prefabs.DefaultDebounce, prefabs.Dir)
		if err != nil {
			lg.Warn("hot reload disabled", "dir", prefabs.Dir, "err", err)
			watcher = nil
		}
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("floater")
	ebiten.SetTPS(scene.Spec.TickRate)

	game := NewGame(world, scene, watcher, *debug)
	defer func() {
		if err := game.Close(); err != nil {
			lg.Warn("shutdown", "err", err)
		}
	}()

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}

// runHeadless steps the scene with scripted input only.
func runHeadless(world *ecs.World, scene *entity.Scene, ticks int) error {
	scheduler := newScheduler(scene, nil, nil, nil)
	defer scheduler.Close()

	for i := 0; i < ticks; i++ {
		scheduler.Update(world)
		for _, evt := range world.Events().Drain() {
			logger.L().Info(evt.Type, "tick", i, "entity", evt.Entity.String(), "data", fmt.Sprintf("%+v", evt.Data))
		}
	}

	fmt.Print(describePlayer(world, scene.Player, nil))
	return nil
}
