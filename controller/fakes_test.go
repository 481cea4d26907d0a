package controller

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/floater/common"
)

const testDt = 1.0 / 60.0

var testGravity = mgl64.Vec3{0, common.Gravity, 0}

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) <= 1e-6
}

func approxVec(a, b mgl64.Vec3, eps float64) bool {
	return a.Sub(b).Len() <= eps
}

func float64Ptr(f float64) *float64 {
	return &f
}

func vecPtr(v mgl64.Vec3) *mgl64.Vec3 {
	return &v
}

// slopeNormal tilts world up by deg degrees toward +X.
func slopeNormal(deg float64) mgl64.Vec3 {
	r := mgl64.DegToRad(deg)
	return mgl64.Vec3{math.Sin(r), math.Cos(r), 0}
}

type plane struct {
	point  mgl64.Vec3
	normal mgl64.Vec3
	entity EntityRef
}

// planeWorld answers queries against infinite one-sided planes. Planes only
// block casts that travel against their normal.
type planeWorld struct {
	planes    []plane
	rayCalls  int
	shapeCast int
}

func (w *planeWorld) CastRay(origin, dir mgl64.Vec3, maxDist float64, exclude EntityRef) (Hit, bool) {
	w.rayCalls++
	return w.cast(origin, dir, maxDist, exclude, func(n mgl64.Vec3) mgl64.Vec3 { return origin })
}

func (w *planeWorld) CastShape(shape Shape, origin, dir mgl64.Vec3, maxDist float64, exclude EntityRef) (Hit, bool) {
	w.shapeCast++
	support := func(n mgl64.Vec3) mgl64.Vec3 {
		end := origin.Sub(common.Up.Mul(shape.Height / 2))
		if n.Dot(common.Up) < 0 {
			end = origin.Add(common.Up.Mul(shape.Height / 2))
		}
		return end.Sub(n.Mul(shape.Radius))
	}
	return w.cast(origin, dir, maxDist, exclude, support)
}

func (w *planeWorld) cast(origin, dir mgl64.Vec3, maxDist float64, exclude EntityRef, support func(n mgl64.Vec3) mgl64.Vec3) (Hit, bool) {
	best := Hit{Distance: math.Inf(1)}
	found := false
	for _, p := range w.planes {
		if p.entity != 0 && p.entity == exclude {
			continue
		}
		n := p.normal.Normalize()
		denom := dir.Dot(n)
		if denom >= 0 {
			continue
		}
		s := support(n)
		depth := s.Sub(p.point).Dot(n)
		var hit Hit
		if depth <= 0 {
			hit = Hit{Distance: 0, Point: s.Sub(n.Mul(depth)), Normal: n, Entity: p.entity}
		} else {
			t := -depth / denom
			if t > maxDist {
				continue
			}
			hit = Hit{Distance: t, Point: s.Add(dir.Mul(t)), Normal: n, Entity: p.entity}
		}
		if hit.Distance < best.Distance {
			best = hit
			found = true
		}
	}
	return best, found
}

// fakeBody integrates like a semi-implicit Euler rigid body with gravity
// scale and accumulated forces.
type fakeBody struct {
	pos     mgl64.Vec3
	vel     mgl64.Vec3
	force   mgl64.Vec3
	mass    float64
	gravity float64
	shape   Shape

	colliderSets int
	positionSets int
}

func newFakeBody(pos mgl64.Vec3) *fakeBody {
	return &fakeBody{pos: pos, mass: 1, gravity: 1}
}

func (b *fakeBody) Position() mgl64.Vec3          { return b.pos }
func (b *fakeBody) SetPosition(p mgl64.Vec3)      { b.pos = p; b.positionSets++ }
func (b *fakeBody) Velocity() mgl64.Vec3          { return b.vel }
func (b *fakeBody) SetVelocity(v mgl64.Vec3)      { b.vel = v }
func (b *fakeBody) ApplyForce(f mgl64.Vec3)       { b.force = b.force.Add(f) }
func (b *fakeBody) GravityScale() float64         { return b.gravity }
func (b *fakeBody) SetGravityScale(scale float64) { b.gravity = scale }
func (b *fakeBody) Mass() float64                 { return b.mass }
func (b *fakeBody) SetCollider(s Shape)           { b.shape = s; b.colliderSets++ }

func (b *fakeBody) step(gravity mgl64.Vec3, dt float64) {
	accel := gravity.Mul(b.gravity).Add(b.force.Mul(1 / b.mass))
	b.vel = b.vel.Add(accel.Mul(dt))
	b.pos = b.pos.Add(b.vel.Mul(dt))
	b.force = mgl64.Vec3{}
}

type platformTable map[EntityRef]PlatformMotion

func (p platformTable) PlatformMotion(e EntityRef) (PlatformMotion, bool) {
	m, ok := p[e]
	return m, ok
}
