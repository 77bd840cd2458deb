package scene

import (
	"math/rand"

	"github.com/spectra-render/spectra/pkg/core"
	"github.com/spectra-render/spectra/pkg/geometry"
	"github.com/spectra-render/spectra/pkg/material"
	"github.com/spectra-render/spectra/pkg/renderer"
)

// NewCoverScene builds the classic random-sphere scene: a large diffuse
// ground sphere, a grid of small randomized spheres, and three large feature
// spheres (glass, diffuse, metal).
func NewCoverScene(aspectRatio float64, seed int64) *Scene {
	random := rand.New(rand.NewSource(seed))

	objects := []core.Shape{
		geometry.NewSphere(
			core.NewVec3(0, -1000, 0), 1000,
			material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5)),
		),
	}

	for a := -11; a < 11; a++ {
		for b := -11; b < 11; b++ {
			center := core.NewVec3(
				float64(a)+0.9*random.Float64(),
				0.2,
				float64(b)+0.9*random.Float64(),
			)

			// Keep the grid clear of the large metal sphere
			if center.Subtract(core.NewVec3(4, 0.2, 0)).Length() <= 0.9 {
				continue
			}

			var mat core.Material
			switch chooseMat := random.Float64(); {
			case chooseMat < 0.8:
				albedo := randomColor(random).MultiplyVec(randomColor(random))
				mat = material.NewLambertian(albedo)
			case chooseMat < 0.95:
				albedo := randomColor(random)
				fuzziness := 0.5 * random.Float64()
				mat = material.NewMetal(albedo, fuzziness)
			default:
				mat = material.NewDielectric(1.5)
			}

			objects = append(objects, geometry.NewSphere(center, 0.2, mat))
		}
	}

	objects = append(objects,
		geometry.NewSphere(core.NewVec3(0, 1, 0), 1.0, material.NewDielectric(1.5)),
		geometry.NewSphere(core.NewVec3(-4, 1, 0), 1.0, material.NewLambertian(core.NewVec3(0.4, 0.2, 0.1))),
		geometry.NewSphere(core.NewVec3(4, 1, 0), 1.0, material.NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0.0)),
	)

	return &Scene{
		Name:        "cover",
		Description: "Random grid of diffuse, metal and glass spheres",
		Objects:     objects,
		Camera: renderer.CameraConfig{
			AspectRatio:   aspectRatio,
			VFov:          20,
			Up:            core.NewVec3(0, 1, 0),
			LookFrom:      core.NewVec3(13, 2, 3),
			LookAt:        core.NewVec3(0, 0, 0),
			Aperture:      0.1,
			FocusDistance: 10.0,
		},
	}
}

func randomColor(random *rand.Rand) core.Vec3 {
	return core.NewVec3(random.Float64(), random.Float64(), random.Float64())
}
