package component

import "github.com/go-gl/mathgl/mgl64"

// Transform mirrors the simulated pose after each physics step.
type Transform struct {
	Position mgl64.Vec3
	Angle    float64
}

var TransformComponent = NewComponent[Transform]()
