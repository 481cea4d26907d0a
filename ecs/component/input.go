package component

import "github.com/milk9111/floater/controller"

// Input stores the polled intents for an entity. Yaw turns the movement
// basis about world up at TurnSpeed rad/s while TurnLeft or TurnRight is
// held.
type Input struct {
	Forward     bool
	Back        bool
	Left        bool
	Right       bool
	Jump        bool
	JumpPressed bool
	Crouch      bool
	TurnLeft    bool
	TurnRight   bool

	Yaw       float64
	TurnSpeed float64
}

// Snapshot freezes the intents into what the controller consumes.
func (i Input) Snapshot() controller.InputSnapshot {
	return controller.InputSnapshot{
		Forward:     i.Forward,
		Back:        i.Back,
		Left:        i.Left,
		Right:       i.Right,
		Jump:        i.Jump,
		JumpPressed: i.JumpPressed,
		Crouch:      i.Crouch,
		Basis:       controller.BasisFromYaw(i.Yaw),
	}
}

var InputComponent = NewComponent[Input]()
