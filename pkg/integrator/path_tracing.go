package integrator

import (
	"math"

	"github.com/df07/go-scanline-raytracer/pkg/core"
)

// ShadowAcneEpsilon is the lower bound of every intersection query. It keeps
// secondary rays from re-hitting the surface they leave. The value assumes
// scenes of roughly unit scale.
const ShadowAcneEpsilon = 0.001

// PathTracingIntegrator implements unidirectional path tracing without
// light sampling: a path ends when it escapes to the background, is
// absorbed, or runs out of bounces.
type PathTracingIntegrator struct {
	Background Background
}

// NewPathTracingIntegrator creates a path tracer with the default sky
func NewPathTracingIntegrator() *PathTracingIntegrator {
	return &PathTracingIntegrator{Background: DefaultBackground()}
}

// RayColor computes the color for a single ray.
//
// The recurrence color(r, d) = attenuation * color(scattered, d-1) is unrolled
// into a loop that carries the attenuation product forward, so stack use does
// not grow with depth.
func (pt *PathTracingIntegrator) RayColor(ray core.Ray, depth int, world core.Hittable, sampler core.Sampler) core.Vec3 {
	throughput := core.NewVec3(1, 1, 1)
	rayT := core.NewInterval(ShadowAcneEpsilon, math.Inf(1))

	for ; depth > 0; depth-- {
		hit, isHit := world.Hit(ray, rayT)
		if !isHit {
			return throughput.MultiplyVec(pt.Background.Evaluate(ray))
		}

		scatter, didScatter := hit.Material.Scatter(ray, *hit, sampler)
		if !didScatter {
			return core.Vec3{}
		}

		throughput = throughput.MultiplyVec(scatter.Attenuation)
		ray = scatter.Scattered
	}

	// Bounce budget exhausted
	return core.Vec3{}
}
