package controller

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/floater/common"
)

// SuspensionInput is the body state read before the suspension runs.
// Headroom is the free travel above the body, nil when nothing was hit.
type SuspensionInput struct {
	Position mgl64.Vec3
	Velocity mgl64.Vec3
	Headroom *float64
	Dt       float64
}

// SuspensionResult is what the suspension wants written to the body.
// When SetHeight is true the body's vertical position is overwritten
// directly, bypassing the integrator for that axis.
type SuspensionResult struct {
	GravityScale float64
	SetHeight    bool
	Height       float64
	ZeroVertical bool
	Force        mgl64.Vec3
}

func Suspend(cfg Config, st *State, in SuspensionInput) SuspensionResult {
	if cfg.Suspension == SuspensionSpring {
		return suspendSpring(cfg, st, in)
	}
	return suspendKinematic(cfg, st, in)
}

func suspendKinematic(cfg Config, st *State, in SuspensionInput) SuspensionResult {
	if st.Grounded != Grounded || st.GroundHeight == nil {
		st.PushedDown = false
		return SuspensionResult{GravityScale: 1}
	}
	// Let a fresh jump leave the ground.
	if !st.JumpCooldown.Finished() {
		return SuspensionResult{GravityScale: 1}
	}

	y := in.Position.Dot(common.Up)
	target := *st.GroundHeight + cfg.FloatHeight
	limit := target
	if in.Headroom != nil && y+*in.Headroom < target {
		limit = y + *in.Headroom
		st.PushedDown = true
	}

	vy := in.Velocity.Dot(common.Up)
	switch {
	case y <= limit:
		next := limit
		if st.PushedDown && limit == target {
			next = common.MoveToward(y, target, cfg.RecoverRate*in.Dt)
		}
		if next == target {
			st.PushedDown = false
		}
		return SuspensionResult{GravityScale: 0, SetHeight: true, Height: next, ZeroVertical: true}
	case y-limit <= cfg.RampSlack && vy <= 0:
		// Within slack above the target: stay glued over crests.
		if limit == target {
			st.PushedDown = false
		}
		return SuspensionResult{GravityScale: 0, SetHeight: true, Height: limit, ZeroVertical: true}
	default:
		return SuspensionResult{GravityScale: 1}
	}
}

func suspendSpring(cfg Config, st *State, in SuspensionInput) SuspensionResult {
	st.PushedDown = false
	if st.Grounded == Airborne || st.GroundDistance == nil {
		return SuspensionResult{GravityScale: 1}
	}

	offset := *st.GroundDistance - cfg.FloatHeight
	vUp := in.Velocity.Dot(common.Up)
	// Damping opposes vertical velocity whichever way the body moves.
	mag := -offset*cfg.SpringStrength - vUp*cfg.SpringDamping
	return SuspensionResult{GravityScale: 1, Force: common.Up.Mul(mag)}
}
