package system

import (
	"github.com/milk9111/floater/controller"
	"github.com/milk9111/floater/ecs"
	"github.com/milk9111/floater/ecs/component"
	"github.com/milk9111/floater/logger"
	"github.com/milk9111/floater/physics"
)

// PlayerControllerSystem ticks every player's floating controller against
// the physics world and reports transitions on the world event queue.
type PlayerControllerSystem struct {
	physics *physics.World
	dt      float64
}

func NewPlayerControllerSystem(pw *physics.World, dt float64) *PlayerControllerSystem {
	return &PlayerControllerSystem{physics: pw, dt: dt}
}

func (s *PlayerControllerSystem) Update(w *ecs.World) {
	if w == nil || s.physics == nil {
		return
	}
	gravity := s.physics.Gravity()

	ecs.ForEach3(w, component.PlayerComponent.Kind(), component.PhysicsBodyComponent.Kind(), component.InputComponent.Kind(), func(e ecs.Entity, player *component.Player, pb *component.PhysicsBody, input *component.Input) {
		if player.Controller == nil || pb.Body == nil {
			return
		}
		env := controller.Env{
			Query:     s.physics,
			Platforms: s.physics,
			Gravity:   gravity,
			Self:      controller.EntityRef(e),
		}
		res := player.Controller.Tick(env, pb.Body, &player.State, input.Snapshot(), s.dt)
		player.Last = res
		player.HasLast = true
		input.Yaw += res.CarriedYaw

		events := w.Events()
		if res.Previous != res.Current {
			events.Push(ecs.Event{Type: ecs.EventGroundedChanged, Entity: e, Data: ecs.GroundedChanged{From: res.Previous, To: res.Current}})
			logger.L().Debug("grounded state changed", "entity", e, "from", res.Previous, "to", res.Current)
		}
		if res.Jumped {
			events.Push(ecs.Event{Type: ecs.EventJumped, Entity: e, Data: ecs.Jumped{VerticalSpeed: res.Velocity.Y()}})
			logger.L().Debug("player jumped", "entity", e, "vy", res.Velocity.Y())
		}
		if res.CrouchChanged {
			events.Push(ecs.Event{Type: ecs.EventCrouchChanged, Entity: e, Data: ecs.CrouchChanged{Crouching: player.State.Crouching}})
		}
	})
}
