package material

import (
	"math"
	"math/rand"

	"github.com/spectra-render/spectra/pkg/core"
)

// Dielectric represents a transparent material like glass that can both
// reflect and refract
type Dielectric struct {
	RefractiveIndex float64 // Index of refraction (e.g. 1.5 for glass)
}

// NewDielectric creates a new dielectric material
func NewDielectric(refractiveIndex float64) *Dielectric {
	return &Dielectric{RefractiveIndex: refractiveIndex}
}

// Scatter implements the Material interface for dielectric scattering. The
// choice between reflection and refraction is stochastic, weighted by the
// Schlick reflectance; total internal reflection always reflects.
func (d *Dielectric) Scatter(rayIn core.Ray, hit *core.HitRecord, random *rand.Rand) (core.ScatterResult, bool) {
	// Clear glass absorbs nothing
	attenuation := core.NewVec3(1.0, 1.0, 1.0)

	// The refractive-index ordering depends on which side was struck
	etaFrom, etaTo := 1.0, d.RefractiveIndex
	if !hit.FrontFace {
		etaFrom, etaTo = d.RefractiveIndex, 1.0
	}

	unitDirection := rayIn.Direction.Normalize()
	cosTheta := math.Min(unitDirection.Negate().Dot(hit.Normal), 1.0)

	var direction core.Vec3
	if Reflectance(cosTheta, d.RefractiveIndex) > random.Float64() {
		direction = rayIn.Direction.Reflect(hit.Normal)
	} else if refracted, ok := unitDirection.Refract(hit.Normal, etaFrom, etaTo); ok {
		direction = refracted
	} else {
		// Total internal reflection
		direction = rayIn.Direction.Reflect(hit.Normal)
	}

	return core.ScatterResult{
		Scattered:   core.NewRay(hit.Point, direction),
		Attenuation: attenuation,
	}, true
}

// Reflectance calculates the Fresnel reflectance using Schlick's
// approximation
func Reflectance(cosine, refractiveIndex float64) float64 {
	r0 := (1 - refractiveIndex) / (1 + refractiveIndex)
	r0 = r0 * r0
	return r0 + (1-r0)*math.Pow(1-cosine, 5)
}
