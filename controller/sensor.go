package controller

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/floater/common"
)

// GroundSample is one tick's fused ray and sweep result. It is never stored.
type GroundSample struct {
	Distance     float64
	Height       float64
	Normal       mgl64.Vec3
	ContactPoint mgl64.Vec3
	Entity       EntityRef
}

// Probe describes the ground query for one body.
type Probe struct {
	Origin      mgl64.Vec3
	Collider    Shape
	Sensor      Shape
	RayLength   float64
	SweepLength float64
	FloatHeight float64
	Exclude     EntityRef
}

func newProbe(cfg Config, origin mgl64.Vec3, collider Shape, self EntityRef) Probe {
	return Probe{
		Origin:      origin,
		Collider:    collider,
		Sensor:      cfg.SensorShape(collider),
		RayLength:   cfg.rayLength(),
		SweepLength: cfg.sweepLength(),
		FloatHeight: cfg.FloatHeight,
		Exclude:     self,
	}
}

// SenseGround probes below the body with a short ray and falls back to a
// longer capsule sweep when the ray misses or lands beyond float height.
func SenseGround(q SpatialQuery, p Probe) (GroundSample, bool) {
	if q == nil {
		return GroundSample{}, false
	}

	down := common.Up.Mul(-1)
	var sample GroundSample
	found := false

	if hit, ok := q.CastRay(p.Origin, down, p.RayLength, p.Exclude); ok {
		found = true
		if hit.Distance <= 0 {
			// Ray started inside the floor; assume flat ground at the
			// collider's feet.
			d := p.Collider.HalfExtent()
			sample = GroundSample{
				Distance:     d,
				Normal:       common.Up,
				ContactPoint: p.Origin.Sub(common.Up.Mul(d)),
				Entity:       hit.Entity,
			}
		} else {
			sample = GroundSample{
				Distance:     hit.Distance,
				Normal:       hit.Normal,
				ContactPoint: hit.Point,
				Entity:       hit.Entity,
			}
		}
	}

	if !found || sample.Distance > p.FloatHeight {
		if hit, ok := q.CastShape(p.Sensor, p.Origin, down, p.SweepLength, p.Exclude); ok {
			found = true
			sample = GroundSample{
				Distance:     p.Origin.Sub(hit.Point).Dot(common.Up),
				Normal:       hit.Normal,
				ContactPoint: hit.Point,
				Entity:       hit.Entity,
			}
		}
	}

	if !found {
		return GroundSample{}, false
	}

	sample.Normal = common.NormalizeOrZero(sample.Normal)
	if sample.Normal == (mgl64.Vec3{}) {
		sample.Normal = common.Up
	}
	sample.Height = p.Origin.Dot(common.Up) - sample.Distance
	return sample, true
}
