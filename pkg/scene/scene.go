// Package scene provides the built-in scene constructions.
package scene

import (
	"fmt"

	"github.com/spectra-render/spectra/pkg/core"
	"github.com/spectra-render/spectra/pkg/material"
	"github.com/spectra-render/spectra/pkg/renderer"
)

// Scene couples a primitive collection with the camera that frames it
type Scene struct {
	Name        string
	Description string
	Objects     []core.Shape
	Camera      renderer.CameraConfig
}

// Info describes an available scene for listings
type Info struct {
	Name        string
	Description string
}

// List returns the available scenes
func List() []Info {
	return []Info{
		{Name: "cover", Description: "Random grid of diffuse, metal and glass spheres"},
		{Name: "lights", Description: "Emissive spheres over a diffuse floor"},
		{Name: "uv", Description: "Texture-mapped sphere (UV gradient unless a texture is supplied)"},
	}
}

// Build constructs a scene by name. The texture color source is only used by
// scenes that sample one and may be nil.
func Build(name string, aspectRatio float64, seed int64, texture material.ColorSource) (*Scene, error) {
	switch name {
	case "cover":
		return NewCoverScene(aspectRatio, seed), nil
	case "lights":
		return NewLightsScene(aspectRatio), nil
	case "uv":
		return NewUVScene(aspectRatio, texture), nil
	default:
		return nil, fmt.Errorf("unknown scene %q", name)
	}
}
