package entity

import (
	"fmt"

	"github.com/milk9111/floater/ecs"
	"github.com/milk9111/floater/ecs/component"
	"github.com/milk9111/floater/prefabs"
)

func NewCamera(w *ecs.World, spec prefabs.CameraSpec) (ecs.Entity, error) {
	camera := ecs.CreateEntity(w)
	if err := ecs.Add(w, camera, component.CameraComponent.Kind(), &component.Camera{
		Zoom:       spec.Zoom,
		Smoothness: spec.Smoothness,
		LookAhead:  spec.LookAhead,
	}); err != nil {
		return 0, fmt.Errorf("camera: add camera: %w", err)
	}
	return camera, nil
}
