package integrator

import (
	"math"
	"math/rand"

	"github.com/spectra-render/spectra/pkg/core"
)

// PathTracer recursively evaluates radiance along camera rays, bounded by a
// maximum recursion depth.
type PathTracer struct {
	MaxDepth int
}

// NewPathTracer creates a new path tracing integrator
func NewPathTracer(maxDepth int) *PathTracer {
	return &PathTracer{MaxDepth: maxDepth}
}

// RayColor computes the radiance along a ray: emission from whatever the ray
// strikes plus the attenuated radiance of the scattered ray. Rays that miss
// everything pick up the background gradient.
func (pt *PathTracer) RayColor(ray core.Ray, world *core.BVH, random *rand.Rand, depth int) core.Vec3 {
	// Recursion bound: no more light is gathered
	if depth <= 0 {
		return core.Vec3{}
	}

	hit, ok := world.Hit(ray, 0.001, math.Inf(1))
	if !ok {
		return BackgroundGradient(ray)
	}

	emitted := emittedLight(hit)

	scatter, didScatter := hit.Material.Scatter(ray, hit, random)
	if !didScatter {
		return emitted
	}

	return emitted.Add(scatter.Attenuation.MultiplyVec(
		pt.RayColor(scatter.Scattered, world, random, depth-1)))
}

// BackgroundGradient is the sky color for a ray that escapes the scene:
// white at the horizon blending to light blue overhead.
func BackgroundGradient(ray core.Ray) core.Vec3 {
	unitDirection := ray.Direction.Normalize()
	t := 0.5 * (unitDirection.Y + 1.0)

	white := core.NewVec3(1.0, 1.0, 1.0)
	blue := core.NewVec3(0.5, 0.7, 1.0)
	return white.Multiply(1.0 - t).Add(blue.Multiply(t))
}

func emittedLight(hit *core.HitRecord) core.Vec3 {
	if emitter, ok := hit.Material.(core.Emitter); ok {
		return emitter.Emit()
	}
	return core.Vec3{}
}
