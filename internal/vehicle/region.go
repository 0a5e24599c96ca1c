package vehicle

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// Region is an axis-aligned rectangle on the ground plane (X/Z).
// Bounds are inclusive: a point exactly on an edge is inside.
type Region struct {
	MinX, MaxX float64
	MinZ, MaxZ float64
}

// DefaultRegion returns the drivable area enclosed by the outer billboards.
func DefaultRegion() Region {
	return Region{MinX: -50, MaxX: 26, MinZ: -48, MaxZ: 28}
}

// Outside reports whether p lies beyond any edge of the region.
// The Y component is ignored.
func (r Region) Outside(p mgl64.Vec3) bool {
	return p.X() < r.MinX || p.X() > r.MaxX || p.Z() < r.MinZ || p.Z() > r.MaxZ
}

// Center returns the midpoint of the region on the ground plane.
func (r Region) Center() mgl64.Vec3 {
	return mgl64.Vec3{(r.MinX + r.MaxX) / 2, 0, (r.MinZ + r.MaxZ) / 2}
}

// Validate checks that the region has a positive area.
func (r Region) Validate() error {
	if r.MinX >= r.MaxX || r.MinZ >= r.MaxZ {
		return fmt.Errorf("boundary must have min < max, got x[%v,%v] z[%v,%v]", r.MinX, r.MaxX, r.MinZ, r.MaxZ)
	}
	return nil
}
