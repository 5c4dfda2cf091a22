package scene

import (
	"errors"
	"fmt"
	"sort"

	"github.com/df07/go-scanline-raytracer/pkg/core"
	"github.com/df07/go-scanline-raytracer/pkg/geometry"
	"github.com/df07/go-scanline-raytracer/pkg/material"
	"github.com/df07/go-scanline-raytracer/pkg/renderer"
)

var ErrUnknownScene = errors.New("scene: unknown scene")

// Scene is a world together with the camera that frames it
type Scene struct {
	Name         string
	World        *geometry.HittableList
	CameraConfig renderer.CameraConfig
}

// Info describes a built-in scene
type Info struct {
	Name        string
	Description string
}

// builder creates a scene. Scenes with random layouts derive it from seed.
type builder func(seed int64) *Scene

type entry struct {
	info  Info
	build builder
}

var builtins = map[string]entry{}

func register(name, description string, build builder) {
	builtins[name] = entry{info: Info{Name: name, Description: description}, build: build}
}

func init() {
	register("empty", "no objects, only the sky gradient", func(int64) *Scene { return NewEmptyScene() })
	register("three-spheres", "glass, diffuse and metal spheres on a ground quad", func(int64) *Scene { return NewThreeSpheresScene() })
	register("random-spheres", "a field of small random spheres around three large ones", NewRandomSpheresScene)
	register("bouncing-spheres", "random spheres with motion blur over a checkered ground", NewBouncingSpheresScene)
	register("sphere-grid", "a grid of colored metal spheres on a plane", func(int64) *Scene { return NewSphereGridScene() })
	register("absorber", "the camera enclosed in a fully absorbing sphere", func(int64) *Scene { return NewAbsorberScene() })
}

// List returns every built-in scene sorted by name
func List() []Info {
	infos := make([]Info, 0, len(builtins))
	for _, e := range builtins {
		infos = append(infos, e.info)
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].Name < infos[j].Name })
	return infos
}

// Names returns the sorted names of the built-in scenes
func Names() []string {
	names := make([]string, 0, len(builtins))
	for _, info := range List() {
		names = append(names, info.Name)
	}
	return names
}

// New builds the named scene
func New(name string, seed int64) (*Scene, error) {
	e, ok := builtins[name]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownScene, name)
	}
	return e.build(seed), nil
}

// NewGroundQuad creates a large horizontal quad centered at the given point with its normal pointing up
func NewGroundQuad(center core.Vec3, size float64, mat core.Material) *geometry.Quad {
	corner := core.NewVec3(center.X-size/2, center.Y, center.Z-size/2)
	// (0,0,size) x (size,0,0) = (0,size²,0), so the normal points up
	u := core.NewVec3(0, 0, size)
	v := core.NewVec3(size, 0, 0)
	return geometry.NewQuad(corner, u, v, mat)
}

// NewEmptyScene creates a scene with no objects
func NewEmptyScene() *Scene {
	return &Scene{
		Name:         "empty",
		World:        geometry.NewHittableList(),
		CameraConfig: renderer.DefaultCameraConfig(),
	}
}

// NewAbsorberScene surrounds the camera with a sphere that absorbs every ray, rendering black
func NewAbsorberScene() *Scene {
	config := renderer.DefaultCameraConfig()
	return &Scene{
		Name:         "absorber",
		World:        geometry.NewHittableList(geometry.NewSphere(config.LookFrom, 100, material.NewAbsorber())),
		CameraConfig: config,
	}
}
