package scene

import (
	"github.com/spectra-render/spectra/pkg/core"
	"github.com/spectra-render/spectra/pkg/geometry"
	"github.com/spectra-render/spectra/pkg/material"
	"github.com/spectra-render/spectra/pkg/renderer"
)

// NewLightsScene builds a scene lit by emissive spheres: two lights over a
// diffuse floor with a metal sphere between them.
func NewLightsScene(aspectRatio float64) *Scene {
	objects := []core.Shape{
		geometry.NewSphere(
			core.NewVec3(0, -1000, 0), 1000,
			material.NewLambertian(core.NewVec3(0.6, 0.6, 0.6)),
		),
		geometry.NewSphere(
			core.NewVec3(0, 1, 0), 1.0,
			material.NewMetal(core.NewVec3(0.8, 0.8, 0.9), 0.05),
		),
		geometry.NewSphere(
			core.NewVec3(-2.5, 2.5, 0), 0.6,
			material.NewEmissive(core.NewVec3(1.0, 0.9, 0.7), 8.0),
		),
		geometry.NewSphere(
			core.NewVec3(2.5, 2.5, 0), 0.6,
			material.NewEmissive(core.NewVec3(0.7, 0.8, 1.0), 8.0),
		),
	}

	return &Scene{
		Name:        "lights",
		Description: "Emissive spheres over a diffuse floor",
		Objects:     objects,
		Camera: renderer.CameraConfig{
			AspectRatio:   aspectRatio,
			VFov:          35,
			Up:            core.NewVec3(0, 1, 0),
			LookFrom:      core.NewVec3(0, 2, 8),
			LookAt:        core.NewVec3(0, 1, 0),
			Aperture:      0.0,
			FocusDistance: 8.0,
		},
	}
}
