package system

import (
	"github.com/milk9111/floater/ecs"
	"github.com/milk9111/floater/ecs/component"
)

type Action int

const (
	ActionForward Action = iota
	ActionBack
	ActionLeft
	ActionRight
	ActionJump
	ActionCrouch
	ActionTurnLeft
	ActionTurnRight
	ActionReload
)

// KeySource answers whether an action is held this frame and whether it
// went down this frame.
type KeySource interface {
	Pressed(a Action) bool
	JustPressed(a Action) bool
}

// InputSystem copies polled keys into every keyboard-driven Input. Entities
// with an InputScript are left to ScriptInputSystem.
type InputSystem struct {
	keys KeySource
	dt   float64
}

func NewInputSystem(keys KeySource, dt float64) *InputSystem {
	return &InputSystem{keys: keys, dt: dt}
}

func (i *InputSystem) Update(w *ecs.World) {
	if w == nil || i.keys == nil {
		return
	}
	k := i.keys

	ecs.ForEach(w, component.InputComponent.Kind(), func(e ecs.Entity, input *component.Input) {
		if ecs.Has(w, e, component.InputScriptComponent.Kind()) {
			return
		}
		input.Forward = k.Pressed(ActionForward)
		input.Back = k.Pressed(ActionBack)
		input.Left = k.Pressed(ActionLeft)
		input.Right = k.Pressed(ActionRight)
		input.Jump = k.Pressed(ActionJump)
		input.JumpPressed = k.JustPressed(ActionJump)
		input.Crouch = k.Pressed(ActionCrouch)
		input.TurnLeft = k.Pressed(ActionTurnLeft)
		input.TurnRight = k.Pressed(ActionTurnRight)
		turn(input, i.dt)
	})

	if k.JustPressed(ActionReload) {
		req := ecs.CreateEntity(w)
		_ = ecs.Add(w, req, component.ReloadRequestComponent.Kind(), &component.ReloadRequest{})
	}
}

// turn advances the yaw of the movement basis. Left is counterclockwise
// seen from above.
func turn(input *component.Input, dt float64) {
	if input.TurnLeft {
		input.Yaw += input.TurnSpeed * dt
	}
	if input.TurnRight {
		input.Yaw -= input.TurnSpeed * dt
	}
}
