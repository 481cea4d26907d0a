package entity

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/floater/controller"
	"github.com/milk9111/floater/ecs"
	"github.com/milk9111/floater/ecs/component"
	"github.com/milk9111/floater/physics"
	"github.com/milk9111/floater/prefabs"
)

func NewPlayer(w *ecs.World, pw *physics.World, prefab string, at mgl64.Vec3) (ecs.Entity, error) {
	spec, err := prefabs.LoadPlayerSpec(prefab)
	if err != nil {
		return 0, fmt.Errorf("player: %w", err)
	}
	return NewPlayerFromSpec(w, pw, prefab, spec, at)
}

// NewPlayerFromSpec spawns a standing, airborne player at `at`. The body is
// registered in pw under the entity's id so queries can exclude it.
func NewPlayerFromSpec(w *ecs.World, pw *physics.World, prefab string, spec prefabs.PlayerSpec, at mgl64.Vec3) (ecs.Entity, error) {
	if w == nil || pw == nil {
		return 0, fmt.Errorf("player: nil world")
	}
	cfg := spec.Tuning
	ctrl, err := controller.New(cfg)
	if err != nil {
		return 0, fmt.Errorf("player: %w", err)
	}

	e := ecs.CreateEntity(w)
	body := pw.NewBody(controller.EntityRef(e), at, cfg.StandShape(), cfg.Mass)

	adds := []func() error{
		func() error { return ecs.Add(w, e, component.PlayerTagComponent.Kind(), &component.PlayerTag{}) },
		func() error {
			return ecs.Add(w, e, component.PlayerComponent.Kind(), &component.Player{
				Controller: ctrl,
				State:      controller.NewState(cfg),
				Tuning:     prefab,
			})
		},
		func() error {
			return ecs.Add(w, e, component.InputComponent.Kind(), &component.Input{TurnSpeed: spec.Input.TurnSpeed})
		},
		func() error {
			return ecs.Add(w, e, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{Body: body})
		},
		func() error {
			return ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{Position: at})
		},
	}
	for _, add := range adds {
		if err := add(); err != nil {
			DestroyPlayer(w, pw, e)
			return 0, fmt.Errorf("player: add component: %w", err)
		}
	}
	return e, nil
}

// DestroyPlayer removes the player's body and shapes from pw and drops the
// entity.
func DestroyPlayer(w *ecs.World, pw *physics.World, e ecs.Entity) bool {
	if pw != nil {
		pw.Remove(controller.EntityRef(e))
	}
	return ecs.DestroyEntity(w, e)
}

// AttachInputScript hands the player's input over to a tengo script.
func AttachInputScript(w *ecs.World, e ecs.Entity, path string) error {
	if err := ecs.Add(w, e, component.InputScriptComponent.Kind(), &component.InputScript{Path: path}); err != nil {
		return fmt.Errorf("player: attach script %s: %w", path, err)
	}
	return nil
}
