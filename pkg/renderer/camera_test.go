package renderer

import (
	"math/rand"
	"testing"

	"github.com/spectra-render/spectra/pkg/core"
)

func testCameraConfig() CameraConfig {
	return CameraConfig{
		AspectRatio:   1.0,
		VFov:          90.0,
		Up:            core.NewVec3(0, 1, 0),
		LookFrom:      core.NewVec3(0, 0, 5),
		LookAt:        core.NewVec3(0, 0, 0),
		Aperture:      0.0,
		FocusDistance: 1.0,
	}
}

func TestCamera_CenterRayPointsAtTarget(t *testing.T) {
	camera := NewCamera(testCameraConfig())
	random := rand.New(rand.NewSource(1))

	ray := camera.GetRay(0.5, 0.5, random)
	if ray.Origin != core.NewVec3(0, 0, 5) {
		t.Errorf("Expected ray origin at the camera, got %v", ray.Origin)
	}
	if ray.Direction.Subtract(core.NewVec3(0, 0, -1)).Length() > 1e-9 {
		t.Errorf("Expected center ray toward the target, got %v", ray.Direction)
	}
}

func TestCamera_CornerRays(t *testing.T) {
	// 90 degree vfov at focus distance 1 gives a 2x2 viewport, so the corner
	// rays diverge one unit in each image axis
	camera := NewCamera(testCameraConfig())
	random := rand.New(rand.NewSource(1))

	lowerLeft := camera.GetRay(0, 0, random)
	if lowerLeft.Direction.Subtract(core.NewVec3(-1, -1, -1)).Length() > 1e-9 {
		t.Errorf("Expected lower-left direction (-1,-1,-1), got %v", lowerLeft.Direction)
	}

	upperRight := camera.GetRay(1, 1, random)
	if upperRight.Direction.Subtract(core.NewVec3(1, 1, -1)).Length() > 1e-9 {
		t.Errorf("Expected upper-right direction (1,1,-1), got %v", upperRight.Direction)
	}
}

func TestNewCamera_InvalidConfigPanics(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*CameraConfig)
	}{
		{"zero fov", func(c *CameraConfig) { c.VFov = 0 }},
		{"fov at 180", func(c *CameraConfig) { c.VFov = 180 }},
		{"look-from equals look-at", func(c *CameraConfig) { c.LookAt = c.LookFrom }},
		{"up parallel to view", func(c *CameraConfig) { c.Up = core.NewVec3(0, 0, 1) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("Expected panic")
				}
			}()
			config := testCameraConfig()
			tt.mutate(&config)
			NewCamera(config)
		})
	}
}
