package controller

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/floater/common"
)

// Basis orients movement intents. The zero value means forward is -Z and
// right is +X.
type Basis struct {
	Forward mgl64.Vec3
	Right   mgl64.Vec3
}

// BasisFromYaw rotates the default basis about world up.
func BasisFromYaw(yaw float64) Basis {
	s, c := math.Sin(yaw), math.Cos(yaw)
	return Basis{
		Forward: mgl64.Vec3{-s, 0, -c},
		Right:   mgl64.Vec3{c, 0, -s},
	}
}

// InputSnapshot is one tick of polled input.
type InputSnapshot struct {
	Forward     bool
	Back        bool
	Left        bool
	Right       bool
	Jump        bool
	JumpPressed bool
	Crouch      bool
	Basis       Basis
}

func (in InputSnapshot) HasMovement() bool {
	return in.Direction() != (mgl64.Vec3{})
}

// Direction is the unit planar direction of the held intents, or zero when
// nothing is held or opposing keys cancel.
func (in InputSnapshot) Direction() mgl64.Vec3 {
	b := in.Basis
	if b.Forward == (mgl64.Vec3{}) && b.Right == (mgl64.Vec3{}) {
		b = BasisFromYaw(0)
	}
	forward := common.NormalizeOrZero(common.Horizontal(b.Forward))
	right := common.NormalizeOrZero(common.Horizontal(b.Right))

	var dir mgl64.Vec3
	if in.Forward {
		dir = dir.Add(forward)
	}
	if in.Back {
		dir = dir.Sub(forward)
	}
	if in.Right {
		dir = dir.Add(right)
	}
	if in.Left {
		dir = dir.Sub(right)
	}
	return common.NormalizeOrZero(common.Horizontal(dir))
}
