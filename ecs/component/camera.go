package component

import "github.com/go-gl/mathgl/mgl64"

// Camera follows the first PlayerTag entity. Zoom is pixels per world
// unit; Smoothness is the fraction of the remaining distance closed each
// tick (1 snaps). LookAhead leads the target along its horizontal
// velocity, in seconds.
type Camera struct {
	Center     mgl64.Vec3
	Zoom       float64
	Smoothness float64
	LookAhead  float64
	Snapped    bool
}

var CameraComponent = NewComponent[Camera]()
