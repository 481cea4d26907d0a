package controller

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/floater/common"
)

const carriedRestSpeed = 1e-4

// FloorContact is the supporting body read from the ground sample.
// HasMotion is false for static ground.
type FloorContact struct {
	Entity    EntityRef
	Point     mgl64.Vec3
	Motion    PlatformMotion
	HasMotion bool
}

type RideResult struct {
	// Velocity is the new horizontal velocity of the body.
	Velocity   mgl64.Vec3
	CarriedYaw float64
}

// RidePlatform folds the supporting body's point velocity into the player's
// horizontal velocity. Whatever the integrator added on top of last tick's
// carried velocity is treated as drift and damped by 1/(1+dt*k).
func RidePlatform(cfg Config, st *State, floor FloorContact, ok bool, vel mgl64.Vec3, dt float64) RideResult {
	damp := 1 / (1 + dt*cfg.DriftDamping)
	var res RideResult

	switch {
	case ok && floor.HasMotion:
		st.CarriedVelocity = common.Horizontal(floor.Motion.PointVelocity(floor.Point))
		if st.FloorEntity == floor.Entity && st.LastFloorTransform != nil {
			res.CarriedYaw = wrapAngle(common.YawOf(floor.Motion.Rotation) - common.YawOf(st.LastFloorTransform.Rotation))
		}
		st.FloorEntity = floor.Entity
		st.LastFloorTransform = &Transform{Position: floor.Motion.Origin, Rotation: floor.Motion.Rotation}
	case ok:
		st.CarriedVelocity = mgl64.Vec3{}
		st.FloorEntity = floor.Entity
		st.LastFloorTransform = nil
	default:
		st.CarriedVelocity = st.CarriedVelocity.Mul(damp)
		if st.CarriedVelocity.Len() < carriedRestSpeed {
			st.CarriedVelocity = mgl64.Vec3{}
		}
		st.FloorEntity = 0
		st.LastFloorTransform = nil
	}

	drift := common.Horizontal(vel).Sub(st.LastUnsimulatedVelocity).Mul(damp)
	res.Velocity = st.CarriedVelocity.Add(drift)
	st.LastUnsimulatedVelocity = st.CarriedVelocity
	return res
}

func wrapAngle(a float64) float64 {
	for a > math.Pi {
		a -= 2 * math.Pi
	}
	for a < -math.Pi {
		a += 2 * math.Pi
	}
	return a
}
