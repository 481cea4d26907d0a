package physics

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/floater/controller"
)

const defaultIterations = 20

type World struct {
	space *cp.Space

	shapes    map[*cp.Shape]controller.EntityRef
	bodies    map[controller.EntityRef]*Body
	platforms map[controller.EntityRef]*Platform
	statics   map[controller.EntityRef][]*cp.Shape
	groups    map[controller.EntityRef]uint
	nextGroup uint
}

func NewWorld(gravity mgl64.Vec3, iterations int) *World {
	if iterations <= 0 {
		iterations = defaultIterations
	}
	space := cp.NewSpace()
	space.Iterations = uint(iterations)
	space.SetGravity(toCP(gravity))
	return &World{
		space:     space,
		shapes:    make(map[*cp.Shape]controller.EntityRef),
		bodies:    make(map[controller.EntityRef]*Body),
		platforms: make(map[controller.EntityRef]*Platform),
		statics:   make(map[controller.EntityRef][]*cp.Shape),
		groups:    make(map[controller.EntityRef]uint),
	}
}

func (w *World) Space() *cp.Space {
	if w == nil {
		return nil
	}
	return w.space
}

func (w *World) Gravity() mgl64.Vec3 {
	if w == nil || w.space == nil {
		return mgl64.Vec3{}
	}
	return fromCP(w.space.Gravity())
}

// Step advances the simulation by dt seconds.
func (w *World) Step(dt float64) {
	if w == nil || w.space == nil || dt <= 0 {
		return
	}
	w.space.Step(dt)
}

// AddStaticSegment adds a fixed line of terrain. radius thickens it.
func (w *World) AddStaticSegment(ref controller.EntityRef, a, b mgl64.Vec3, radius, friction float64) {
	if w == nil || w.space == nil {
		return
	}
	shape := cp.NewSegment(w.space.StaticBody, toCP(a), toCP(b), radius)
	shape.SetFriction(friction)
	w.addStatic(ref, shape)
}

// AddStaticBox adds a fixed axis-aligned box centered at center.
func (w *World) AddStaticBox(ref controller.EntityRef, center mgl64.Vec3, width, height, friction float64) {
	if w == nil || w.space == nil {
		return
	}
	bb := cp.BB{
		L: center.X() - width/2,
		B: center.Y() - height/2,
		R: center.X() + width/2,
		T: center.Y() + height/2,
	}
	shape := cp.NewBox2(w.space.StaticBody, bb, 0)
	shape.SetFriction(friction)
	w.addStatic(ref, shape)
}

func (w *World) addStatic(ref controller.EntityRef, shape *cp.Shape) {
	w.space.AddShape(shape)
	w.shapes[shape] = ref
	w.statics[ref] = append(w.statics[ref], shape)
}

// Remove drops every body and shape registered for ref.
func (w *World) Remove(ref controller.EntityRef) {
	if w == nil || w.space == nil {
		return
	}
	if b, ok := w.bodies[ref]; ok {
		b.detach()
		delete(w.bodies, ref)
	}
	if p, ok := w.platforms[ref]; ok {
		p.detach()
		delete(w.platforms, ref)
	}
	for _, shape := range w.statics[ref] {
		w.space.RemoveShape(shape)
		delete(w.shapes, shape)
	}
	delete(w.statics, ref)
	delete(w.groups, ref)
}

// EntityAt reports which entity owns shape.
func (w *World) EntityAt(shape *cp.Shape) (controller.EntityRef, bool) {
	if w == nil || shape == nil {
		return 0, false
	}
	ref, ok := w.shapes[shape]
	return ref, ok
}

func (w *World) Body(ref controller.EntityRef) (*Body, bool) {
	if w == nil {
		return nil, false
	}
	b, ok := w.bodies[ref]
	return b, ok
}

func (w *World) Platform(ref controller.EntityRef) (*Platform, bool) {
	if w == nil {
		return nil, false
	}
	p, ok := w.platforms[ref]
	return p, ok
}

// groupFor hands out a collision group so queries can skip an entity's own
// shapes.
func (w *World) groupFor(ref controller.EntityRef) uint {
	if g, ok := w.groups[ref]; ok {
		return g
	}
	w.nextGroup++
	w.groups[ref] = w.nextGroup
	return w.nextGroup
}

func (w *World) filterExcluding(ref controller.EntityRef) cp.ShapeFilter {
	if g, ok := w.groups[ref]; ok && ref != 0 {
		return cp.NewShapeFilter(g, cp.ALL_CATEGORIES, cp.ALL_CATEGORIES)
	}
	return cp.SHAPE_FILTER_ALL
}
