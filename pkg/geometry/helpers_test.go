package geometry

import (
	"math"

	"github.com/df07/go-scanline-raytracer/pkg/core"
)

// DummyMaterial is a no-op material for intersection tests
type DummyMaterial struct{}

func (DummyMaterial) Scatter(rayIn core.Ray, hit core.HitRecord, sampler core.Sampler) (core.ScatterResult, bool) {
	return core.ScatterResult{}, false
}

var forward = core.NewInterval(0.001, math.Inf(1))

func vecNear(a, b core.Vec3, tolerance float64) bool {
	return a.Subtract(b).Length() <= tolerance
}
