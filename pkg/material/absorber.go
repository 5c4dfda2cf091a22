package material

import "github.com/df07/go-scanline-raytracer/pkg/core"

// Absorber swallows every incoming ray
type Absorber struct{}

// NewAbsorber creates a fully absorbing material
func NewAbsorber() *Absorber {
	return &Absorber{}
}

// Scatter always reports absorption
func (a *Absorber) Scatter(rayIn core.Ray, hit core.HitRecord, sampler core.Sampler) (core.ScatterResult, bool) {
	return core.ScatterResult{}, false
}
