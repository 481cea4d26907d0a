package controller

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/floater/common"
)

// DesiredVelocity is the velocity the player is steering toward, and
// whether it is a friction term rather than a steering target.
func DesiredVelocity(cfg Config, st *State, in InputSnapshot, own mgl64.Vec3) (mgl64.Vec3, bool) {
	dir := in.Direction()

	if st.Grounded != Grounded {
		if dir == (mgl64.Vec3{}) {
			return mgl64.Vec3{}, false
		}
		return capSpeed(dir.Mul(cfg.AirborneSpeed), cfg.GroundedMaxSpeed), false
	}

	if dir == (mgl64.Vec3{}) {
		back := common.NormalizeOrZero(common.Horizontal(own)).Mul(-1)
		return back.Mul(cfg.GroundFriction), true
	}

	desired := dir.Mul(cfg.GroundedSpeed)
	if st.GroundNormal != nil {
		desired = common.RejectFrom(desired, *st.GroundNormal)
	}
	return capSpeed(desired, cfg.GroundedMaxSpeed), false
}

// MovementForce turns the desired velocity into a force. own is the
// player's horizontal velocity with carried platform velocity removed.
//
// The feed-forward term cancels the platform rider's drift damping so own
// velocity settles exactly on the desired velocity.
func MovementForce(cfg Config, st *State, in InputSnapshot, own mgl64.Vec3, mass, dt float64) mgl64.Vec3 {
	own = common.Horizontal(own)
	desired, friction := DesiredVelocity(cfg, st, in, own)
	if desired == (mgl64.Vec3{}) {
		return mgl64.Vec3{}
	}

	damp := 1 + dt*cfg.DriftDamping
	if friction {
		speed := own.Len()
		if speed < 1e-9 || dt <= 0 {
			return mgl64.Vec3{}
		}
		// Never decelerate past rest.
		decel := math.Min(cfg.GroundFriction, speed/(damp*dt))
		return common.NormalizeOrZero(desired).Mul(decel * mass)
	}

	accel := cfg.GroundedAcceleration
	if st.Grounded != Grounded {
		accel = cfg.AirborneAcceleration
	}
	planar := common.Horizontal(desired)
	steer := planar.Sub(own).Mul(accel)
	feedForward := planar.Mul(cfg.DriftDamping / damp)
	return steer.Add(feedForward).Mul(mass)
}

func capSpeed(v mgl64.Vec3, limit float64) mgl64.Vec3 {
	if limit <= 0 {
		return v
	}
	if l := v.Len(); l > limit {
		return v.Mul(limit / l)
	}
	return v
}
