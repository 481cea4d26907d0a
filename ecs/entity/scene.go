package entity

import (
	"fmt"

	"github.com/milk9111/floater/ecs"
	"github.com/milk9111/floater/physics"
	"github.com/milk9111/floater/prefabs"
)

// Scene is a built level: the physics world and the spawned player.
type Scene struct {
	Spec    prefabs.SceneSpec
	Physics *physics.World
	Player  ecs.Entity
	Camera  ecs.Entity
}

func (s *Scene) Dt() float64 {
	return s.Spec.Dt()
}

// BuildScene creates the physics world for spec and populates w with its
// terrain, platforms and player. A non-empty script overrides the scene's
// own input script.
func BuildScene(w *ecs.World, spec prefabs.SceneSpec, script string) (*Scene, error) {
	if w == nil {
		return nil, fmt.Errorf("scene: nil world")
	}
	pw := physics.NewWorld(physics.Vec2(0, spec.Gravity), spec.Iterations)

	for _, t := range spec.Terrain {
		if _, err := NewTerrain(w, pw, t); err != nil {
			return nil, fmt.Errorf("scene %s: %w", spec.Name, err)
		}
	}
	for _, p := range spec.Platforms {
		if _, err := NewPlatform(w, pw, p); err != nil {
			return nil, fmt.Errorf("scene %s: %w", spec.Name, err)
		}
	}

	player, err := NewPlayer(w, pw, spec.Player.Prefab, spec.Player.At.Vec3())
	if err != nil {
		return nil, fmt.Errorf("scene %s: %w", spec.Name, err)
	}
	if script == "" {
		script = spec.Player.Script
	}
	if script != "" {
		if err := AttachInputScript(w, player, script); err != nil {
			return nil, fmt.Errorf("scene %s: %w", spec.Name, err)
		}
	}

	camera, err := NewCamera(w, spec.Camera)
	if err != nil {
		return nil, fmt.Errorf("scene %s: %w", spec.Name, err)
	}

	return &Scene{Spec: spec, Physics: pw, Player: player, Camera: camera}, nil
}

// LoadScene reads the scene prefab and builds it.
func LoadScene(w *ecs.World, name, script string) (*Scene, error) {
	spec, err := prefabs.LoadSceneSpec(name)
	if err != nil {
		return nil, err
	}
	return BuildScene(w, spec, script)
}
