package core

import "math/rand"

// Shape is anything a ray can intersect that knows its own bounds
type Shape interface {
	// Hit returns the closest intersection within [tMin, tMax], if any
	Hit(ray Ray, tMin, tMax float64) (*HitRecord, bool)

	// BoundingBox returns the axis-aligned bounding box of the shape
	BoundingBox() AABB
}

// Material scatters rays that hit a surface. Materials are immutable and may
// be shared across shapes and across render workers.
type Material interface {
	// Scatter produces an outgoing ray and attenuation for an incoming ray,
	// or reports false if the ray was absorbed
	Scatter(rayIn Ray, hit *HitRecord, random *rand.Rand) (ScatterResult, bool)
}

// Emitter is implemented by materials that emit light
type Emitter interface {
	Emit() Vec3
}

// ScatterResult contains the result of material scattering
type ScatterResult struct {
	Scattered   Ray  // The outgoing ray
	Attenuation Vec3 // Color attenuation
}

// HitRecord contains information about a ray-shape intersection. It is
// produced by an intersection test and consumed immediately by the
// integrator, never persisted.
type HitRecord struct {
	Point     Vec3     // Point of intersection
	Normal    Vec3     // Surface normal, always oriented against the ray
	T         float64  // Parameter t along the ray
	FrontFace bool     // Whether the ray struck the front (outward) face
	UV        Vec2     // Texture coordinate
	Material  Material // Material of the hit shape
}

// SetFaceNormal records whether the ray hit the front or back face and
// orients the normal to point back toward the ray origin side.
func (h *HitRecord) SetFaceNormal(ray Ray, outwardNormal Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Multiply(-1)
	}
}
