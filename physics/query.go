package physics

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/floater/common"
	"github.com/milk9111/floater/controller"
)

var _ controller.SpatialQuery = (*World)(nil)

func (w *World) CastRay(origin, dir mgl64.Vec3, maxDist float64, exclude controller.EntityRef) (controller.Hit, bool) {
	return w.cast(origin, dir, maxDist, 0, exclude)
}

// CastShape sweeps a capsule along dir. Only the leading hemisphere is
// cast, which covers the vertical ground and ceiling probes.
func (w *World) CastShape(shape controller.Shape, origin, dir mgl64.Vec3, maxDist float64, exclude controller.EntityRef) (controller.Hit, bool) {
	dir = common.NormalizeOrZero(dir)
	start := origin
	if shape.Height > 0 {
		lead := common.Up.Mul(shape.Height / 2)
		if dir.Dot(common.Up) < 0 {
			lead = lead.Mul(-1)
		}
		start = origin.Add(lead)
	}
	return w.cast(start, dir, maxDist, shape.Radius, exclude)
}

func (w *World) cast(start, dir mgl64.Vec3, maxDist, radius float64, exclude controller.EntityRef) (controller.Hit, bool) {
	if w == nil || w.space == nil || maxDist <= 0 {
		return controller.Hit{}, false
	}
	dir = common.NormalizeOrZero(mgl64.Vec3{dir.X(), dir.Y(), 0})
	if dir == (mgl64.Vec3{}) {
		return controller.Hit{}, false
	}

	end := start.Add(dir.Mul(maxDist))
	info := w.space.SegmentQueryFirst(toCP(start), toCP(end), radius, w.filterExcluding(exclude))
	if info.Shape == nil {
		return controller.Hit{}, false
	}

	travel := info.Alpha * maxDist
	normal := fromCP(info.Normal)
	center := start.Add(dir.Mul(travel))
	// The contact sits one radius behind the swept circle's center.
	point := center.Sub(normal.Mul(radius))

	ref := w.shapes[info.Shape]
	return controller.Hit{
		Distance: travel,
		Point:    point,
		Normal:   normal,
		Entity:   ref,
	}, true
}
