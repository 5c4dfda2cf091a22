package integrator

import "github.com/df07/go-scanline-raytracer/pkg/core"

// Background is the sky seen by rays that escape the scene
type Background struct {
	Horizon core.Vec3 // Color straight down (unit direction y = -1)
	Zenith  core.Vec3 // Color straight up (unit direction y = +1)
}

// DefaultBackground returns the white-to-sky-blue gradient
func DefaultBackground() Background {
	return Background{
		Horizon: core.NewVec3(1.0, 1.0, 1.0),
		Zenith:  core.NewVec3(0.5, 0.7, 1.0),
	}
}

// Evaluate returns the gradient color for the ray's direction
func (b Background) Evaluate(r core.Ray) core.Vec3 {
	unitDirection := r.Direction.Normalize()

	// Map y from [-1,1] to [0,1]
	a := 0.5 * (unitDirection.Y + 1.0)
	return b.Horizon.Lerp(b.Zenith, a)
}
