package controller

import "github.com/go-gl/mathgl/mgl64"

// Shape is a vertical capsule: a segment of length Height swept by Radius.
// Height 0 is a sphere.
type Shape struct {
	Radius float64
	Height float64
}

// HalfExtent is the distance from the capsule center to its bottom.
func (s Shape) HalfExtent() float64 {
	return s.Height/2 + s.Radius
}

// Hit is a spatial query result. Distance is the travel along the cast
// direction before contact.
type Hit struct {
	Distance float64
	Point    mgl64.Vec3
	Normal   mgl64.Vec3
	Entity   EntityRef
}

type SpatialQuery interface {
	CastRay(origin, dir mgl64.Vec3, maxDist float64, exclude EntityRef) (Hit, bool)
	CastShape(shape Shape, origin, dir mgl64.Vec3, maxDist float64, exclude EntityRef) (Hit, bool)
}

// Body is the rigid body the controller drives. SetPosition is only used by
// the kinematic suspension, on the vertical axis.
type Body interface {
	Position() mgl64.Vec3
	SetPosition(mgl64.Vec3)
	Velocity() mgl64.Vec3
	SetVelocity(mgl64.Vec3)
	ApplyForce(mgl64.Vec3)
	GravityScale() float64
	SetGravityScale(float64)
	Mass() float64
	SetCollider(Shape)
}

// PlatformMotion is the state of a moving supporting body.
type PlatformMotion struct {
	Linear   mgl64.Vec3
	Angular  mgl64.Vec3
	Origin   mgl64.Vec3
	Rotation mgl64.Quat
}

// PointVelocity is the velocity of the body at world point p.
func (m PlatformMotion) PointVelocity(p mgl64.Vec3) mgl64.Vec3 {
	return m.Linear.Add(m.Angular.Cross(p.Sub(m.Origin)))
}

type PlatformSource interface {
	PlatformMotion(e EntityRef) (PlatformMotion, bool)
}
