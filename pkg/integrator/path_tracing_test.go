package integrator

import (
	"math/rand"
	"testing"

	"github.com/spectra-render/spectra/pkg/core"
	"github.com/spectra-render/spectra/pkg/geometry"
	"github.com/spectra-render/spectra/pkg/material"
)

func TestBackgroundGradient(t *testing.T) {
	tests := []struct {
		name      string
		direction core.Vec3
		want      core.Vec3
	}{
		{"straight up is blue", core.NewVec3(0, 1, 0), core.NewVec3(0.5, 0.7, 1.0)},
		{"straight down is white", core.NewVec3(0, -1, 0), core.NewVec3(1, 1, 1)},
		{"horizontal is the midpoint", core.NewVec3(1, 0, 0), core.NewVec3(0.75, 0.85, 1.0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := core.NewRay(core.NewVec3(0, 0, 0), tt.direction)
			got := BackgroundGradient(ray)
			if got.Subtract(tt.want).Length() > 1e-9 {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestPathTracer_DepthExhaustedIsBlack(t *testing.T) {
	pt := NewPathTracer(5)
	world := core.NewBVH(nil)
	random := rand.New(rand.NewSource(1))

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0))
	if got := pt.RayColor(ray, world, random, 0); got != (core.Vec3{}) {
		t.Errorf("Expected black at depth 0, got %v", got)
	}
}

func TestPathTracer_MissReturnsBackground(t *testing.T) {
	pt := NewPathTracer(5)
	world := core.NewBVH(nil)
	random := rand.New(rand.NewSource(1))

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0))
	got := pt.RayColor(ray, world, random, 5)
	if got.Subtract(core.NewVec3(0.5, 0.7, 1.0)).Length() > 1e-9 {
		t.Errorf("Expected background gradient, got %v", got)
	}
}

func TestPathTracer_EmissiveContributesEmission(t *testing.T) {
	light := material.NewEmissive(core.NewVec3(1, 0.5, 0.25), 4.0)
	world := core.NewBVH([]core.Shape{
		geometry.NewSphere(core.NewVec3(0, 0, -5), 1.0, light),
	})
	pt := NewPathTracer(5)
	random := rand.New(rand.NewSource(1))

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	got := pt.RayColor(ray, world, random, 5)
	if got != core.NewVec3(4, 2, 1) {
		t.Errorf("Expected emitted light (4,2,1), got %v", got)
	}
}

func TestPathTracer_DiffuseBounceTerminatesBlack(t *testing.T) {
	// With depth 1 the single scattered ray is cut off by the recursion
	// bound, so a non-emissive surface contributes nothing
	world := core.NewBVH([]core.Shape{
		geometry.NewSphere(core.NewVec3(0, 0, -5), 1.0, material.NewLambertian(core.NewVec3(0.8, 0.8, 0.8))),
	})
	pt := NewPathTracer(1)
	random := rand.New(rand.NewSource(1))

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	if got := pt.RayColor(ray, world, random, pt.MaxDepth); got != (core.Vec3{}) {
		t.Errorf("Expected black after the last bounce, got %v", got)
	}
}

func TestPathTracer_MirrorBounceSeesBackground(t *testing.T) {
	// A perfect mirror facing straight down the z axis reflects the ray back
	// the way it came, where it escapes into the horizontal background color
	world := core.NewBVH([]core.Shape{
		geometry.NewSphere(core.NewVec3(0, 0, -6), 1.0, material.NewMetal(core.NewVec3(1, 1, 1), 0)),
	})
	pt := NewPathTracer(2)
	random := rand.New(rand.NewSource(1))

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	got := pt.RayColor(ray, world, random, pt.MaxDepth)

	want := core.NewVec3(0.75, 0.85, 1.0)
	if got.Subtract(want).Length() > 1e-9 {
		t.Errorf("Expected reflected background %v, got %v", want, got)
	}
}
