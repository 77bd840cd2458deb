package material

import (
	"math/rand"

	"github.com/spectra-render/spectra/pkg/core"
)

// Emissive represents a constant light-emitting material
type Emissive struct {
	Color      core.Vec3 // Emitted light color
	Brightness float64   // Emission intensity multiplier
}

// NewEmissive creates a new emissive material
func NewEmissive(color core.Vec3, brightness float64) *Emissive {
	return &Emissive{Color: color, Brightness: brightness}
}

// Scatter implements the Material interface for emissive materials. They
// never scatter: incoming rays are absorbed.
func (e *Emissive) Scatter(rayIn core.Ray, hit *core.HitRecord, random *rand.Rand) (core.ScatterResult, bool) {
	return core.ScatterResult{}, false
}

// Emit returns the emitted light for this material
func (e *Emissive) Emit() core.Vec3 {
	return e.Color.Multiply(e.Brightness)
}
