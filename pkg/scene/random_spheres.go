package scene

import (
	"math/rand"

	"github.com/df07/go-scanline-raytracer/pkg/core"
	"github.com/df07/go-scanline-raytracer/pkg/geometry"
	"github.com/df07/go-scanline-raytracer/pkg/material"
	"github.com/df07/go-scanline-raytracer/pkg/renderer"
)

// randomSpheresCamera frames the sphere field from a low angle with a shallow depth of field
func randomSpheresCamera() renderer.CameraConfig {
	config := renderer.DefaultCameraConfig()
	config.AspectRatio = 16.0 / 9.0
	config.ImageWidth = 400
	config.SamplesPerPixel = 100
	config.MaxDepth = 50
	config.VFov = 20
	config.LookFrom = core.NewVec3(13, 2, 3)
	config.LookAt = core.NewVec3(0, 0, 0)
	config.DefocusAngle = 0.6
	config.FocusDistance = 10.0
	return config
}

func randomColor(random *rand.Rand, lo, hi float64) core.Vec3 {
	r := func() float64 { return lo + (hi-lo)*random.Float64() }
	return core.NewVec3(r(), r(), r())
}

// addSphereField scatters small spheres over a 22x22 grid. Diffuse spheres
// get a vertical motion of up to half a unit when bouncing is set.
func addSphereField(world *geometry.HittableList, random *rand.Rand, bouncing bool) {
	clearing := core.NewVec3(4, 0.2, 0)

	for a := -11; a < 11; a++ {
		for b := -11; b < 11; b++ {
			chooseMat := random.Float64()
			center := core.NewVec3(float64(a)+0.9*random.Float64(), 0.2, float64(b)+0.9*random.Float64())
			if center.Subtract(clearing).Length() <= 0.9 {
				continue
			}

			switch {
			case chooseMat < 0.8:
				albedo := randomColor(random, 0, 1).MultiplyVec(randomColor(random, 0, 1))
				mat := material.NewLambertian(albedo)
				if bouncing {
					center1 := center.Add(core.NewVec3(0, 0.5*random.Float64(), 0))
					world.Add(geometry.NewMovingSphere(center, center1, 0.2, mat))
				} else {
					world.Add(geometry.NewSphere(center, 0.2, mat))
				}
			case chooseMat < 0.95:
				albedo := randomColor(random, 0.5, 1)
				fuzz := 0.5 * random.Float64()
				world.Add(geometry.NewSphere(center, 0.2, material.NewMetal(albedo, fuzz)))
			default:
				world.Add(geometry.NewSphere(center, 0.2, material.NewDielectric(1.5)))
			}
		}
	}

	world.Add(geometry.NewSphere(core.NewVec3(0, 1, 0), 1.0, material.NewDielectric(1.5)))
	world.Add(geometry.NewSphere(core.NewVec3(-4, 1, 0), 1.0, material.NewLambertian(core.NewVec3(0.4, 0.2, 0.1))))
	world.Add(geometry.NewSphere(core.NewVec3(4, 1, 0), 1.0, material.NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0.0)))
}

// NewRandomSpheresScene creates the random sphere field on a gray ground sphere.
// The same seed always produces the same layout.
func NewRandomSpheresScene(seed int64) *Scene {
	random := rand.New(rand.NewSource(seed))
	world := geometry.NewHittableList(
		geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))),
	)
	addSphereField(world, random, false)

	return &Scene{
		Name:         "random-spheres",
		World:        world,
		CameraConfig: randomSpheresCamera(),
	}
}

// NewBouncingSpheresScene is the random sphere field with moving diffuse
// spheres over a checkered ground, showing motion blur
func NewBouncingSpheresScene(seed int64) *Scene {
	random := rand.New(rand.NewSource(seed))
	checker := material.NewChecker(0.32, core.NewVec3(0.2, 0.3, 0.1), core.NewVec3(0.9, 0.9, 0.9))
	world := geometry.NewHittableList(
		geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, material.NewTexturedLambertian(checker)),
	)
	addSphereField(world, random, true)

	return &Scene{
		Name:         "bouncing-spheres",
		World:        world,
		CameraConfig: randomSpheresCamera(),
	}
}
