package material

import (
	"math/rand"
	"testing"

	"github.com/spectra-render/spectra/pkg/core"
)

func TestLambertian_ScatterStaysAboveSurface(t *testing.T) {
	mat := NewLambertian(core.NewVec3(0.8, 0.3, 0.3))
	random := rand.New(rand.NewSource(1))

	hit := &core.HitRecord{
		Point:     core.NewVec3(0, 0, 0),
		Normal:    core.NewVec3(0, 1, 0),
		FrontFace: true,
	}
	rayIn := core.NewRay(core.NewVec3(0, 1, -1), core.NewVec3(0, -1, 1))

	for i := 0; i < 1000; i++ {
		scatter, ok := mat.Scatter(rayIn, hit, random)
		if !ok {
			t.Fatal("Lambertian must always scatter")
		}
		if scatter.Scattered.Origin != hit.Point {
			t.Fatalf("Scattered ray must originate at the hit point, got %v", scatter.Scattered.Origin)
		}
		// normal + unit vector always has a positive component along the
		// normal (up to the near-zero fallback)
		if scatter.Scattered.Direction.Dot(hit.Normal) < 0 {
			t.Fatalf("Scatter direction below surface: %v", scatter.Scattered.Direction)
		}
		if scatter.Attenuation != core.NewVec3(0.8, 0.3, 0.3) {
			t.Fatalf("Expected albedo attenuation, got %v", scatter.Attenuation)
		}
	}
}

func TestLambertian_TexturedAttenuation(t *testing.T) {
	mat := NewTexturedLambertian(NewUVColor())
	random := rand.New(rand.NewSource(1))

	hit := &core.HitRecord{
		Point:  core.NewVec3(0, 0, 0),
		Normal: core.NewVec3(0, 1, 0),
		UV:     core.NewVec2(0.25, 0.75),
	}
	rayIn := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0))

	scatter, ok := mat.Scatter(rayIn, hit, random)
	if !ok {
		t.Fatal("Expected scatter")
	}
	if scatter.Attenuation != core.NewVec3(0.25, 0, 0.75) {
		t.Errorf("Expected UV-derived attenuation, got %v", scatter.Attenuation)
	}
}
