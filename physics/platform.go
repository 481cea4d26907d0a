package physics

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/floater/controller"
)

// PlatformPath moves a platform back and forth through its waypoints at
// Speed units/s and spins it at AngularSpeed rad/s.
type PlatformPath struct {
	Waypoints    []mgl64.Vec3
	Speed        float64
	AngularSpeed float64
}

// Platform is a kinematic box. Its velocity is set every tick by Drive and
// the space integrates its position.
type Platform struct {
	world *World
	ref   controller.EntityRef

	body   *cp.Body
	shape  *cp.Shape
	width  float64
	height float64

	path   PlatformPath
	target int
}

var _ controller.PlatformSource = (*World)(nil)

func (w *World) NewPlatform(ref controller.EntityRef, pos mgl64.Vec3, width, height, friction float64, path PlatformPath) *Platform {
	if w == nil || w.space == nil {
		return nil
	}
	if old, ok := w.platforms[ref]; ok {
		old.detach()
	}

	body := cp.NewKinematicBody()
	body.SetPosition(toCP(pos))
	w.space.AddBody(body)

	shape := cp.NewBox(body, width, height, 0)
	shape.SetFriction(friction)
	w.space.AddShape(shape)

	p := &Platform{
		world:  w,
		ref:    ref,
		body:   body,
		shape:  shape,
		width:  width,
		height: height,
		path:   path,
	}
	if len(path.Waypoints) > 1 {
		p.target = 1
	}
	w.shapes[shape] = ref
	w.platforms[ref] = p
	return p
}

func (p *Platform) Ref() controller.EntityRef {
	return p.ref
}

func (p *Platform) Size() (float64, float64) {
	return p.width, p.height
}

func (p *Platform) Position() mgl64.Vec3 {
	return fromCP(p.body.Position())
}

func (p *Platform) Angle() float64 {
	return p.body.Angle()
}

// Drive sets the velocity that carries the platform toward its next
// waypoint this step, landing exactly on it when in reach.
func (p *Platform) Drive(dt float64) {
	if p == nil || dt <= 0 {
		return
	}
	p.body.SetAngularVelocity(p.path.AngularSpeed)

	if len(p.path.Waypoints) < 2 || p.path.Speed <= 0 {
		p.body.SetVelocityVector(cp.Vector{})
		return
	}

	pos := p.Position()
	to := p.path.Waypoints[p.target].Sub(pos)
	to = mgl64.Vec3{to.X(), to.Y(), 0}
	dist := to.Len()
	if dist <= p.path.Speed*dt {
		p.body.SetVelocityVector(toCP(to.Mul(1 / dt)))
		p.target = (p.target + 1) % len(p.path.Waypoints)
		return
	}
	p.body.SetVelocityVector(toCP(to.Mul(p.path.Speed / dist)))
}

func (p *Platform) Motion() controller.PlatformMotion {
	return controller.PlatformMotion{
		Linear:   fromCP(p.body.Velocity()),
		Angular:  mgl64.Vec3{0, 0, p.body.AngularVelocity()},
		Origin:   p.Position(),
		Rotation: mgl64.QuatRotate(p.body.Angle(), mgl64.Vec3{0, 0, 1}),
	}
}

// PlatformMotion reports the motion of a moving platform. Static terrain
// and unknown entities report false.
func (w *World) PlatformMotion(ref controller.EntityRef) (controller.PlatformMotion, bool) {
	p, ok := w.Platform(ref)
	if !ok {
		return controller.PlatformMotion{}, false
	}
	return p.Motion(), true
}

func (p *Platform) detach() {
	space := p.world.space
	if p.shape != nil {
		space.RemoveShape(p.shape)
		delete(p.world.shapes, p.shape)
		p.shape = nil
	}
	if p.body != nil {
		space.RemoveBody(p.body)
	}
}
