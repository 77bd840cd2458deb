package core

import "math"

// AABB represents an axis-aligned bounding box
type AABB struct {
	Min Vec3 // Minimum corner
	Max Vec3 // Maximum corner
}

// NewAABB creates an AABB spanning two corner points. The corners may be
// given in any order; the result always satisfies Min <= Max per axis.
func NewAABB(a, b Vec3) AABB {
	return AABB{
		Min: Vec3{
			X: math.Min(a.X, b.X),
			Y: math.Min(a.Y, b.Y),
			Z: math.Min(a.Z, b.Z),
		},
		Max: Vec3{
			X: math.Max(a.X, b.X),
			Y: math.Max(a.Y, b.Y),
			Z: math.Max(a.Z, b.Z),
		},
	}
}

// NewAABBPoint creates a zero-volume AABB at a point
func NewAABBPoint(p Vec3) AABB {
	return AABB{Min: p, Max: p}
}

// Union returns the smallest AABB that bounds both this AABB and another
func (aabb AABB) Union(other AABB) AABB {
	return AABB{
		Min: Vec3{
			X: math.Min(aabb.Min.X, other.Min.X),
			Y: math.Min(aabb.Min.Y, other.Min.Y),
			Z: math.Min(aabb.Min.Z, other.Min.Z),
		},
		Max: Vec3{
			X: math.Max(aabb.Max.X, other.Max.X),
			Y: math.Max(aabb.Max.Y, other.Max.Y),
			Z: math.Max(aabb.Max.Z, other.Max.Z),
		},
	}
}

// Centroid returns the center point of the AABB
func (aabb AABB) Centroid() Vec3 {
	return aabb.Min.Multiply(0.5).Add(aabb.Max.Multiply(0.5))
}

// Diagonal returns the vector from the min corner to the max corner
func (aabb AABB) Diagonal() Vec3 {
	return aabb.Max.Subtract(aabb.Min)
}

// MaximumExtent returns the axis (0=X, 1=Y, 2=Z) along which the box is
// longest. Ties go to the later axis.
func (aabb AABB) MaximumExtent() int {
	d := aabb.Diagonal()
	if d.X > d.Y && d.X > d.Z {
		return 0
	}
	if d.Y > d.Z {
		return 1
	}
	return 2
}

// Hit tests if a ray intersects this AABB within [tMin, tMax] using the slab
// method: the running parametric interval is intersected with each axis's
// slab interval, exiting as soon as the interval becomes empty.
func (aabb AABB) Hit(ray Ray, tMin, tMax float64) bool {
	for axis := 0; axis < 3; axis++ {
		origin := ray.Origin.Component(axis)
		direction := ray.Direction.Component(axis)
		slabMin := aabb.Min.Component(axis)
		slabMax := aabb.Max.Component(axis)

		if direction == 0 {
			// Parallel to the slab: the ray is either inside it for all t
			// or misses the box entirely.
			if origin < slabMin || origin > slabMax {
				return false
			}
			continue
		}

		invDirection := 1.0 / direction
		t1 := (slabMin - origin) * invDirection
		t2 := (slabMax - origin) * invDirection

		// The ray may cross the max plane before the min plane
		if t1 > t2 {
			t1, t2 = t2, t1
		}

		tMin = math.Max(tMin, t1)
		tMax = math.Min(tMax, t2)
		if tMin >= tMax {
			return false
		}
	}

	return true
}
