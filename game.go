package main

import (
	"fmt"
	"math"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/floater/ecs"
	"github.com/milk9111/floater/ecs/component"
	"github.com/milk9111/floater/ecs/entity"
	"github.com/milk9111/floater/ecs/system"
	"github.com/milk9111/floater/logger"
	"github.com/milk9111/floater/prefabs"
	"golang.org/x/image/colornames"
)

const (
	screenWidth  = 1280
	screenHeight = 720
)

type Game struct {
	world     *ecs.World
	scene     *entity.Scene
	scheduler *ecs.Scheduler
	events    *system.EventLogSystem
	debug     bool
	paused    bool
	ticks     int
}

// newScheduler wires the per-tick pipeline. keys may be nil when no
// keyboard is attached; watcher may be nil to disable hot reload. Without
// an event log the caller drains world events itself.
func newScheduler(scene *entity.Scene, keys system.KeySource, watcher *prefabs.Watcher, events *system.EventLogSystem) *ecs.Scheduler {
	dt := scene.Dt()
	s := ecs.NewScheduler()
	if keys != nil {
		s.Add(system.NewInputSystem(keys, dt))
	}
	s.Add(system.NewScriptInputSystem(dt))
	s.Add(system.NewTuningReloadSystem(watcher))
	s.Add(system.NewPlatformSystem(dt))
	s.Add(system.NewPlayerControllerSystem(scene.Physics, dt))
	s.Add(system.NewPhysicsSystem(scene.Physics, dt))
	s.Add(system.NewCameraSystem())
	if events != nil {
		s.Add(events)
	}
	return s
}

func NewGame(world *ecs.World, scene *entity.Scene, watcher *prefabs.Watcher, debug bool) *Game {
	events := system.NewEventLogSystem()
	g := &Game{
		world:     world,
		scene:     scene,
		scheduler: newScheduler(scene, ebitenKeys{}, watcher, events),
		events:    events,
		debug:     debug,
	}
	return g
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		g.debug = !g.debug
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.paused = !g.paused
		logger.L().Info("pause toggled", "paused", g.paused)
	}
	if g.paused && !inpututil.IsKeyJustPressed(ebiten.KeyN) {
		return nil
	}

	g.scheduler.Update(g.world)
	g.ticks++
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colornames.Midnightblue)

	cam := camera{scale: 1, width: screenWidth, height: screenHeight}
	if c, ok := ecs.Get(g.world, g.scene.Camera, component.CameraComponent.Kind()); ok {
		cam.center = cp.Vector{X: c.Center.X(), Y: c.Center.Y()}
		cam.scale = c.Zoom
	}
	drawSpace(g.scene.Physics.Space(), screen, cam)

	player, ok := ecs.Get(g.world, g.scene.Player, component.PlayerComponent.Kind())
	if ok && player.HasLast {
		drawGroundProbe(screen, cam, cp.Vector{X: player.Last.Position.X(), Y: player.Last.Position.Y()}, player.Last)
	}

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("TPS %0.1f  FPS %0.1f  tick %d", ebiten.ActualTPS(), ebiten.ActualFPS(), g.ticks), 8, 8)
	if g.debug {
		ebitenutil.DebugPrintAt(screen, g.debugText(), 8, 28)
	}
	if g.paused {
		ebitenutil.DebugPrintAt(screen, "PAUSED (N to step)", screenWidth/2-60, 8)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

func (g *Game) Close() error {
	return g.scheduler.Close()
}

func (g *Game) debugText() string {
	return describePlayer(g.world, g.scene.Player, g.events)
}

// describePlayer renders the controller state as plain text lines. It is
// shared by the overlay and headless mode.
func describePlayer(w *ecs.World, e ecs.Entity, events *system.EventLogSystem) string {
	player, ok := ecs.Get(w, e, component.PlayerComponent.Kind())
	if !ok {
		return "no player"
	}
	st := &player.State

	var b strings.Builder
	fmt.Fprintf(&b, "state     %s\n", st.Grounded)
	fmt.Fprintf(&b, "distance  %s\n", optFloat(st.GroundDistance))
	fmt.Fprintf(&b, "height    %s\n", optFloat(st.GroundHeight))
	fmt.Fprintf(&b, "jump cd   %0.2f/%0.2f\n", st.JumpCooldown.Elapsed, st.JumpCooldown.Duration)
	fmt.Fprintf(&b, "grace     %0.2f/%0.2f\n", st.SinceGrounded.Elapsed, st.SinceGrounded.Duration)
	fmt.Fprintf(&b, "crouching %t  pushed %t\n", st.Crouching, st.PushedDown)
	fmt.Fprintf(&b, "carried   (%0.2f, %0.2f)\n", st.CarriedVelocity.X(), st.CarriedVelocity.Y())

	if player.HasLast {
		v := player.Last.Velocity
		fmt.Fprintf(&b, "pos       (%0.2f, %0.2f)\n", player.Last.Position.X(), player.Last.Position.Y())
		fmt.Fprintf(&b, "speed     %0.2f  vy %0.2f\n", math.Hypot(v.X(), v.Z()), v.Y())
		fmt.Fprintf(&b, "gravity   x%0.2f\n", player.Last.GravityScale)
	}
	if in, ok := ecs.Get(w, e, component.InputComponent.Kind()); ok {
		fmt.Fprintf(&b, "yaw       %0.2f\n", in.Yaw)
	}

	if events != nil {
		b.WriteString("events\n")
		for _, evt := range events.Recent() {
			fmt.Fprintf(&b, "  %s %v\n", evt.Type, evt.Data)
		}
	}
	return b.String()
}

func optFloat(v *float64) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%0.3f", *v)
}
