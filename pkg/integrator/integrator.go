package integrator

import (
	"github.com/df07/go-scanline-raytracer/pkg/core"
)

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// RayColor estimates the radiance arriving along ray using at most depth
	// bounces. Implementations must not mutate shared state; all randomness
	// comes from sampler.
	RayColor(ray core.Ray, depth int, world core.Hittable, sampler core.Sampler) core.Vec3
}
