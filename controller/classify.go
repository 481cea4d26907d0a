package controller

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/floater/common"
)

// Classification is the grounding verdict for one tick.
type Classification struct {
	State    GroundedState
	Distance *float64
	Height   *float64
	Normal   *mgl64.Vec3
}

func Classify(sample GroundSample, ok bool, cfg Config) Classification {
	if !ok || sample.Distance > cfg.FloatHeight+cfg.RampSlack {
		return Classification{State: Airborne}
	}

	distance := sample.Distance
	height := sample.Height
	normal := sample.Normal
	return Classification{
		State:    ClassifySlope(SlopeAngle(normal), cfg),
		Distance: &distance,
		Height:   &height,
		Normal:   &normal,
	}
}

// SlopeAngle is the angle in degrees between n and world up.
func SlopeAngle(n mgl64.Vec3) float64 {
	return common.AngleDeg(n, common.Up)
}

// ClassifySlope is inclusive at MaxSlopeDegrees+SlopeSlack.
func ClassifySlope(angle float64, cfg Config) GroundedState {
	if angle <= cfg.MaxSlopeDegrees+cfg.SlopeSlack {
		return Grounded
	}
	return SteepSlope
}

// Apply overwrites every grounding field of st, clearing stale contact
// data when airborne.
func (c Classification) Apply(st *State) {
	st.Grounded = c.State
	st.GroundDistance = c.Distance
	st.GroundHeight = c.Height
	st.GroundNormal = c.Normal
}
