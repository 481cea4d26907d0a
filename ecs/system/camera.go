package system

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/floater/common"
	"github.com/milk9111/floater/ecs"
	"github.com/milk9111/floater/ecs/component"
)

type CameraSystem struct {
	camEntity    ecs.Entity
	targetEntity ecs.Entity
}

func NewCameraSystem() *CameraSystem {
	return &CameraSystem{}
}

// Update eases the camera centre towards the player's transform.
func (cs *CameraSystem) Update(w *ecs.World) {
	if !ecs.IsAlive(w, cs.camEntity) {
		e, ok := ecs.First(w, component.CameraComponent.Kind())
		if !ok {
			return
		}
		cs.camEntity = e
	}
	if !ecs.IsAlive(w, cs.targetEntity) {
		e, ok := ecs.First(w, component.PlayerTagComponent.Kind())
		if !ok {
			return
		}
		cs.targetEntity = e
	}

	cam, ok := ecs.Get(w, cs.camEntity, component.CameraComponent.Kind())
	if !ok {
		return
	}
	target, ok := ecs.Get(w, cs.targetEntity, component.TransformComponent.Kind())
	if !ok {
		return
	}

	goal := target.Position
	if pb, ok := ecs.Get(w, cs.targetEntity, component.PhysicsBodyComponent.Kind()); ok && pb.Body != nil {
		goal = goal.Add(mgl64.Vec3{pb.Body.Velocity().X() * cam.LookAhead, 0, 0})
	}

	if !cam.Snapped {
		cam.Center = goal
		cam.Snapped = true
		return
	}
	t := common.Clamp(cam.Smoothness, 0, 1)
	cam.Center = mgl64.Vec3{
		common.Lerp(cam.Center.X(), goal.X(), t),
		common.Lerp(cam.Center.Y(), goal.Y(), t),
		common.Lerp(cam.Center.Z(), goal.Z(), t),
	}
}
