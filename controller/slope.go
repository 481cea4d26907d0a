package controller

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/floater/common"
)

// SlopeSlideForce pushes a body off slopes steeper than the walkable limit.
// With flatten set the force lies in the horizontal plane but keeps the
// magnitude of the tangential gravity.
func SlopeSlideForce(st *State, mass float64, gravity mgl64.Vec3, flatten bool) mgl64.Vec3 {
	if st.Grounded != SteepSlope || st.GroundNormal == nil {
		return mgl64.Vec3{}
	}

	tangential := common.RejectFrom(gravity.Mul(mass), *st.GroundNormal)
	if !flatten {
		return tangential
	}
	dir := common.NormalizeOrZero(common.Horizontal(tangential))
	return dir.Mul(tangential.Len())
}
