package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/floater/controller"
)

// Body is a dynamic, rotation-locked capsule body driven by the controller.
type Body struct {
	world *World
	ref   controller.EntityRef

	body         *cp.Body
	shape        *cp.Shape
	collider     controller.Shape
	filter       cp.ShapeFilter
	gravityScale float64
}

var _ controller.Body = (*Body)(nil)

// NewBody creates the player body at pos with the given collider.
func (w *World) NewBody(ref controller.EntityRef, pos mgl64.Vec3, collider controller.Shape, mass float64) *Body {
	if w == nil || w.space == nil {
		return nil
	}
	if old, ok := w.bodies[ref]; ok {
		old.detach()
	}

	body := cp.NewBody(mass, math.Inf(1))
	body.SetPosition(toCP(pos))

	b := &Body{
		world:        w,
		ref:          ref,
		body:         body,
		gravityScale: 1,
	}
	body.SetVelocityUpdateFunc(func(body *cp.Body, gravity cp.Vector, damping float64, dt float64) {
		cp.BodyUpdateVelocity(body, gravity.Mult(b.gravityScale), damping, dt)
	})
	w.space.AddBody(body)

	b.filter = cp.NewShapeFilter(w.groupFor(ref), cp.ALL_CATEGORIES, cp.ALL_CATEGORIES)
	b.SetCollider(collider)
	w.bodies[ref] = b
	return b
}

func (b *Body) Ref() controller.EntityRef {
	return b.ref
}

func (b *Body) CP() *cp.Body {
	if b == nil {
		return nil
	}
	return b.body
}

func (b *Body) Collider() controller.Shape {
	return b.collider
}

func (b *Body) Position() mgl64.Vec3 {
	return fromCP(b.body.Position())
}

func (b *Body) SetPosition(p mgl64.Vec3) {
	b.body.SetPosition(toCP(p))
}

func (b *Body) Velocity() mgl64.Vec3 {
	return fromCP(b.body.Velocity())
}

func (b *Body) SetVelocity(v mgl64.Vec3) {
	b.body.SetVelocityVector(toCP(v))
}

// ApplyForce accumulates a force at the center of mass until the next step.
func (b *Body) ApplyForce(f mgl64.Vec3) {
	b.body.ApplyForceAtWorldPoint(toCP(f), b.body.Position())
}

func (b *Body) GravityScale() float64 {
	return b.gravityScale
}

func (b *Body) SetGravityScale(scale float64) {
	b.gravityScale = scale
}

func (b *Body) Mass() float64 {
	return b.body.Mass()
}

// SetCollider swaps the capsule shape in place.
func (b *Body) SetCollider(s controller.Shape) {
	space := b.world.space
	if b.shape != nil {
		space.RemoveShape(b.shape)
		delete(b.world.shapes, b.shape)
	}

	var shape *cp.Shape
	if s.Height <= 0 {
		shape = cp.NewCircle(b.body, s.Radius, cp.Vector{})
	} else {
		half := s.Height / 2
		shape = cp.NewSegment(b.body, cp.Vector{Y: -half}, cp.Vector{Y: half}, s.Radius)
	}
	shape.SetFriction(0)
	shape.SetElasticity(0)
	shape.SetFilter(b.filter)
	space.AddShape(shape)

	b.shape = shape
	b.collider = s
	b.world.shapes[shape] = b.ref
}

func (b *Body) detach() {
	space := b.world.space
	if b.shape != nil {
		space.RemoveShape(b.shape)
		delete(b.world.shapes, b.shape)
		b.shape = nil
	}
	if b.body != nil {
		space.RemoveBody(b.body)
	}
}
