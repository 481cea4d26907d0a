package common

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Up is the world up axis.
var Up = mgl64.Vec3{0, 1, 0}

const vecEpsilon = 1e-9

// NormalizeOrZero returns v scaled to unit length, or the zero vector when v
// is too short to have a direction.
func NormalizeOrZero(v mgl64.Vec3) mgl64.Vec3 {
	l := v.Len()
	if l < vecEpsilon {
		return mgl64.Vec3{}
	}
	return v.Mul(1 / l)
}

// RejectFrom removes the component of v along n.
func RejectFrom(v, n mgl64.Vec3) mgl64.Vec3 {
	nn := n.Dot(n)
	if nn < vecEpsilon {
		return v
	}
	return v.Sub(n.Mul(v.Dot(n) / nn))
}

// Horizontal drops the vertical component of v.
func Horizontal(v mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{v.X(), 0, v.Z()}
}

// AngleDeg is the angle between a and b in degrees. Zero-length inputs
// yield 0.
func AngleDeg(a, b mgl64.Vec3) float64 {
	la, lb := a.Len(), b.Len()
	if la < vecEpsilon || lb < vecEpsilon {
		return 0
	}
	c := Clamp(a.Dot(b)/(la*lb), -1, 1)
	return mgl64.RadToDeg(math.Acos(c))
}

// YawOf returns the rotation of q about the world up axis in radians.
func YawOf(q mgl64.Quat) float64 {
	f := q.Rotate(mgl64.Vec3{0, 0, -1})
	return math.Atan2(-f.X(), -f.Z())
}
