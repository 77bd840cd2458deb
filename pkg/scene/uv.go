package scene

import (
	"github.com/spectra-render/spectra/pkg/core"
	"github.com/spectra-render/spectra/pkg/geometry"
	"github.com/spectra-render/spectra/pkg/material"
	"github.com/spectra-render/spectra/pkg/renderer"
)

// NewUVScene builds a texture-mapping test scene: a single large sphere
// wrapped in the given color source, or the UV debug gradient when none is
// supplied.
func NewUVScene(aspectRatio float64, texture material.ColorSource) *Scene {
	if texture == nil {
		texture = material.NewUVColor()
	}

	objects := []core.Shape{
		geometry.NewSphere(
			core.NewVec3(0, -1000, 0), 1000,
			material.NewLambertian(core.NewVec3(0.7, 0.7, 0.7)),
		),
		geometry.NewSphere(
			core.NewVec3(0, 1.5, 0), 1.5,
			material.NewTexturedLambertian(texture),
		),
	}

	return &Scene{
		Name:        "uv",
		Description: "Texture-mapped sphere",
		Objects:     objects,
		Camera: renderer.CameraConfig{
			AspectRatio:   aspectRatio,
			VFov:          30,
			Up:            core.NewVec3(0, 1, 0),
			LookFrom:      core.NewVec3(0, 2, 9),
			LookAt:        core.NewVec3(0, 1.5, 0),
			Aperture:      0.0,
			FocusDistance: 9.0,
		},
	}
}
