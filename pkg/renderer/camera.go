package renderer

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/spectra-render/spectra/pkg/core"
)

// CameraConfig holds the externally supplied camera parameters
type CameraConfig struct {
	AspectRatio   float64   // Image width / height
	VFov          float64   // Vertical field of view in degrees, in (0, 180)
	Up            core.Vec3 // World-space up vector
	LookFrom      core.Vec3 // Camera position
	LookAt        core.Vec3 // Point the camera looks at
	Aperture      float64   // Lens diameter (0 disables depth of field)
	FocusDistance float64   // Distance to the plane of perfect focus
}

// Camera maps normalized image-plane coordinates plus lens jitter to
// world-space rays using a thin-lens model.
type Camera struct {
	origin          core.Vec3
	lowerLeftCorner core.Vec3
	horizontal      core.Vec3
	vertical        core.Vec3
	u, v            core.Vec3
	lensRadius      float64
}

// NewCamera creates a camera from its configuration. A field of view outside
// (0, 180) degrees or an up vector parallel to the view direction is a fatal
// configuration error.
func NewCamera(config CameraConfig) *Camera {
	if config.VFov <= 0 || config.VFov >= 180 {
		panic(fmt.Sprintf("camera: vertical fov must be in (0, 180) degrees, got %v", config.VFov))
	}
	if config.LookFrom.Subtract(config.LookAt).NearZero() {
		panic("camera: look-from and look-at coincide")
	}

	viewportHeight := 2.0 * math.Tan(config.VFov*math.Pi/180.0/2.0)
	viewportWidth := viewportHeight * config.AspectRatio

	origin := config.LookFrom
	w := config.LookFrom.Subtract(config.LookAt).Normalize()

	uCross := config.Up.Cross(w)
	if uCross.NearZero() {
		panic("camera: up vector is parallel to the view direction")
	}
	u := uCross.Normalize()
	v := w.Cross(u)

	horizontal := u.Multiply(viewportWidth * config.FocusDistance)
	vertical := v.Multiply(viewportHeight * config.FocusDistance)
	lowerLeftCorner := origin.
		Subtract(horizontal.Multiply(0.5)).
		Subtract(vertical.Multiply(0.5)).
		Subtract(w.Multiply(config.FocusDistance))

	return &Camera{
		origin:          origin,
		lowerLeftCorner: lowerLeftCorner,
		horizontal:      horizontal,
		vertical:        vertical,
		u:               u,
		v:               v,
		lensRadius:      config.Aperture / 2.0,
	}
}

// GetRay generates a ray for image-plane coordinates (s, t) where
// 0 <= s,t <= 1, jittered by a random point on the lens for depth of field
func (c *Camera) GetRay(s, t float64, random *rand.Rand) core.Ray {
	pointOnLens := core.RandomInUnitDisk(random).Multiply(c.lensRadius)
	offset := c.u.Multiply(pointOnLens.X).Add(c.v.Multiply(pointOnLens.Y))

	origin := c.origin.Add(offset)
	direction := c.lowerLeftCorner.
		Add(c.horizontal.Multiply(s)).
		Add(c.vertical.Multiply(t)).
		Subtract(c.origin).
		Subtract(offset)

	return core.NewRay(origin, direction)
}
