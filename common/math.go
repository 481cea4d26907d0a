package common

import "math"

// Gravity is the default world gravity along Y in units/s^2.
const Gravity = -9.81

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// MoveToward steps current toward target by at most maxDelta.
func MoveToward(current, target, maxDelta float64) float64 {
	if math.Abs(target-current) <= maxDelta {
		return target
	}
	if target > current {
		return current + maxDelta
	}
	return current - maxDelta
}

func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func ApproxEqual(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}
