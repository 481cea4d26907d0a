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

func NewPlatform(w *ecs.World, pw *physics.World, spec prefabs.PlatformSpec) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)
	waypoints := make([]mgl64.Vec3, 0, len(spec.Waypoints))
	for _, p := range spec.Waypoints {
		waypoints = append(waypoints, p.Vec3())
	}
	p := pw.NewPlatform(controller.EntityRef(e), spec.Center.Vec3(), spec.Width, spec.Height, spec.Friction, physics.PlatformPath{
		Waypoints:    waypoints,
		Speed:        spec.Speed,
		AngularSpeed: spec.AngularSpeed,
	})
	if p == nil {
		ecs.DestroyEntity(w, e)
		return 0, fmt.Errorf("platform %s: no physics space", spec.Name)
	}

	if err := ecs.Add(w, e, component.PlatformTagComponent.Kind(), &component.PlatformTag{}); err != nil {
		return 0, fmt.Errorf("platform %s: %w", spec.Name, err)
	}
	if err := ecs.Add(w, e, component.PlatformComponent.Kind(), &component.Platform{Platform: p}); err != nil {
		return 0, fmt.Errorf("platform %s: %w", spec.Name, err)
	}
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{Position: p.Position()}); err != nil {
		return 0, fmt.Errorf("platform %s: %w", spec.Name, err)
	}
	return e, nil
}

func NewTerrain(w *ecs.World, pw *physics.World, spec prefabs.TerrainSpec) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)
	ref := controller.EntityRef(e)
	switch spec.Kind {
	case prefabs.TerrainSegment:
		pw.AddStaticSegment(ref, spec.A.Vec3(), spec.B.Vec3(), spec.Radius, spec.Friction)
	case prefabs.TerrainBox:
		pw.AddStaticBox(ref, spec.Center.Vec3(), spec.Width, spec.Height, spec.Friction)
	default:
		ecs.DestroyEntity(w, e)
		return 0, fmt.Errorf("terrain %s: unknown kind %q", spec.Name, spec.Kind)
	}
	if err := ecs.Add(w, e, component.TerrainTagComponent.Kind(), &component.TerrainTag{}); err != nil {
		return 0, fmt.Errorf("terrain %s: %w", spec.Name, err)
	}
	return e, nil
}
