// Package physics runs the controller against a Chipmunk2D space. The space
// is the vertical X/Y plane of the controller's 3D frame: world Z is dropped
// and rotations happen about Z.
package physics

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/jakecoffman/cp"
)

func toCP(v mgl64.Vec3) cp.Vector {
	return cp.Vector{X: v.X(), Y: v.Y()}
}

func fromCP(v cp.Vector) mgl64.Vec3 {
	return mgl64.Vec3{v.X, v.Y, 0}
}

// Vec2 builds a point in the simulation plane.
func Vec2(x, y float64) mgl64.Vec3 {
	return mgl64.Vec3{x, y, 0}
}
