package system

import (
	"github.com/milk9111/floater/ecs"
	"github.com/milk9111/floater/ecs/component"
	"github.com/milk9111/floater/physics"
)

// PhysicsSystem advances the Chipmunk space one fixed step and mirrors the
// resulting poses into Transform components.
type PhysicsSystem struct {
	world *physics.World
	dt    float64
}

func NewPhysicsSystem(pw *physics.World, dt float64) *PhysicsSystem {
	return &PhysicsSystem{world: pw, dt: dt}
}

func (ps *PhysicsSystem) World() *physics.World {
	return ps.world
}

func (ps *PhysicsSystem) Update(w *ecs.World) {
	if w == nil || ps.world == nil {
		return
	}
	ps.world.Step(ps.dt)
	ps.syncTransforms(w)
}

func (ps *PhysicsSystem) syncTransforms(w *ecs.World) {
	ecs.ForEach2(w, component.PhysicsBodyComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, pb *component.PhysicsBody, t *component.Transform) {
		if pb.Body == nil {
			return
		}
		t.Position = pb.Body.Position()
	})
	ecs.ForEach2(w, component.PlatformComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, p *component.Platform, t *component.Transform) {
		if p.Platform == nil {
			return
		}
		t.Position = p.Platform.Position()
		t.Angle = p.Platform.Angle()
	})
}
