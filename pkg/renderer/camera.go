package renderer

import (
	"math"

	"github.com/df07/go-scanline-raytracer/pkg/core"
)

// maxImageDimension bounds the image width and derived height
const maxImageDimension = 1 << 15

// CameraConfig contains the user-facing camera parameters
type CameraConfig struct {
	AspectRatio     float64 // Nominal width / height
	ImageWidth      int     // Image width in pixels
	SamplesPerPixel int     // Number of rays per pixel
	MaxDepth        int     // Maximum ray bounce depth

	VFov     float64   // Vertical field of view in degrees
	LookFrom core.Vec3 // Camera position
	LookAt   core.Vec3 // Point the camera looks at
	VUp      core.Vec3 // Camera-relative up direction

	DefocusAngle  float64 // Aperture cone angle in degrees, <= 0 for a pinhole camera
	FocusDistance float64 // Distance from LookFrom to the plane of perfect focus
}

// DefaultCameraConfig returns the default camera parameters
func DefaultCameraConfig() CameraConfig {
	return CameraConfig{
		AspectRatio:     1.0,
		ImageWidth:      100,
		SamplesPerPixel: 10,
		MaxDepth:        10,
		VFov:            90,
		LookFrom:        core.NewVec3(0, 0, 0),
		LookAt:          core.NewVec3(0, 0, -1),
		VUp:             core.NewVec3(0, 1, 0),
		DefocusAngle:    0,
		FocusDistance:   10,
	}
}

// Clamp returns a copy of the config with every field forced into its valid
// range. Invalid values are never rejected.
func (c CameraConfig) Clamp() CameraConfig {
	defaults := DefaultCameraConfig()

	if !(c.AspectRatio > 0) || math.IsInf(c.AspectRatio, 0) {
		c.AspectRatio = defaults.AspectRatio
	}
	c.ImageWidth = min(max(c.ImageWidth, 1), maxImageDimension)
	c.SamplesPerPixel = max(c.SamplesPerPixel, 1)
	c.MaxDepth = max(c.MaxDepth, 0)

	if !(c.VFov > 0) {
		c.VFov = defaults.VFov
	}
	c.VFov = math.Min(c.VFov, 179)

	if !(c.FocusDistance > 0) || math.IsInf(c.FocusDistance, 0) {
		c.FocusDistance = defaults.FocusDistance
	}
	if math.IsNaN(c.DefocusAngle) {
		c.DefocusAngle = 0
	}
	c.DefocusAngle = math.Min(c.DefocusAngle, 179)

	return c
}

// ImageHeight returns the image height implied by width and aspect ratio
func (c CameraConfig) ImageHeight() int {
	c = c.Clamp()
	height := math.Round(float64(c.ImageWidth) / c.AspectRatio)
	return int(math.Min(math.Max(height, 1), maxImageDimension))
}

// Camera holds the viewport state derived from a CameraConfig. It is
// computed once and read concurrently by every worker.
type Camera struct {
	config CameraConfig

	imageHeight       int
	pixelSamplesScale float64   // 1 / SamplesPerPixel
	center            core.Vec3 // Camera center
	pixel00Loc        core.Vec3 // Location of pixel (0, 0)
	pixelDeltaU       core.Vec3 // Offset to the pixel to the right
	pixelDeltaV       core.Vec3 // Offset to the pixel below
	u, v, w           core.Vec3 // Camera frame basis vectors
	defocusDiskU      core.Vec3 // Defocus disk horizontal radius
	defocusDiskV      core.Vec3 // Defocus disk vertical radius
}

// NewCamera derives the viewport geometry from the given config
func NewCamera(config CameraConfig) *Camera {
	config = config.Clamp()
	c := &Camera{config: config}

	c.imageHeight = config.ImageHeight()
	c.pixelSamplesScale = 1.0 / float64(config.SamplesPerPixel)
	c.center = config.LookFrom

	// Viewport dimensions use the realized aspect ratio, not the nominal one
	theta := core.DegreesToRadians(config.VFov)
	h := math.Tan(theta / 2)
	viewportHeight := 2 * h * config.FocusDistance
	viewportWidth := viewportHeight * (float64(config.ImageWidth) / float64(c.imageHeight))

	// The camera looks along -w
	c.w = config.LookFrom.Subtract(config.LookAt).Normalize()
	c.u = config.VUp.Cross(c.w).Normalize()
	c.v = c.w.Cross(c.u)

	// Viewport edges; V points down so row indices grow downward
	viewportU := c.u.Multiply(viewportWidth)
	viewportV := c.v.Negate().Multiply(viewportHeight)

	c.pixelDeltaU = viewportU.Divide(float64(config.ImageWidth))
	c.pixelDeltaV = viewportV.Divide(float64(c.imageHeight))

	viewportUpperLeft := c.center.
		Subtract(c.w.Multiply(config.FocusDistance)).
		Subtract(viewportU.Multiply(0.5)).
		Subtract(viewportV.Multiply(0.5))
	c.pixel00Loc = viewportUpperLeft.Add(c.pixelDeltaU.Add(c.pixelDeltaV).Multiply(0.5))

	defocusRadius := config.FocusDistance * math.Tan(core.DegreesToRadians(config.DefocusAngle/2))
	c.defocusDiskU = c.u.Multiply(defocusRadius)
	c.defocusDiskV = c.v.Multiply(defocusRadius)

	return c
}

// GetRay returns a randomly jittered ray through pixel (i, j), where i is the
// column and j the row counted from the top. Safe for concurrent use as long
// as each goroutine passes its own sampler.
func (c *Camera) GetRay(i, j int, sampler core.Sampler) core.Ray {
	offset := core.SampleSquare(sampler)
	pixelSample := c.pixel00Loc.
		Add(c.pixelDeltaU.Multiply(float64(i) + offset.X)).
		Add(c.pixelDeltaV.Multiply(float64(j) + offset.Y))

	rayOrigin := c.center
	if c.DefocusEnabled() {
		rayOrigin = c.defocusDiskSample(sampler)
	}
	rayDirection := pixelSample.Subtract(rayOrigin)
	rayTime := sampler.Get1D()

	return core.NewRayAtTime(rayOrigin, rayDirection, rayTime)
}

// defocusDiskSample returns a random point on the camera's defocus disk
func (c *Camera) defocusDiskSample(sampler core.Sampler) core.Vec3 {
	p := core.RandomInUnitDisk(sampler)
	return c.center.Add(c.defocusDiskU.Multiply(p.X)).Add(c.defocusDiskV.Multiply(p.Y))
}

// DefocusEnabled reports whether rays originate on a lens disk instead of the center
func (c *Camera) DefocusEnabled() bool {
	return c.config.DefocusAngle > 0
}

// Config returns the clamped configuration the camera was built from
func (c *Camera) Config() CameraConfig { return c.config }

// ImageWidth returns the image width in pixels
func (c *Camera) ImageWidth() int { return c.config.ImageWidth }

// ImageHeight returns the derived image height in pixels
func (c *Camera) ImageHeight() int { return c.imageHeight }

// SamplesPerPixel returns the number of jittered rays traced per pixel
func (c *Camera) SamplesPerPixel() int { return c.config.SamplesPerPixel }

// MaxDepth returns the bounce budget passed to the integrator
func (c *Camera) MaxDepth() int { return c.config.MaxDepth }

// PixelSamplesScale is the weight of a single sample in the pixel average
func (c *Camera) PixelSamplesScale() float64 { return c.pixelSamplesScale }

// Center returns the camera position, the origin of pinhole rays
func (c *Camera) Center() core.Vec3 { return c.center }

// Pixel00Loc returns the world-space center of the top-left pixel
func (c *Camera) Pixel00Loc() core.Vec3 { return c.pixel00Loc }

// Basis returns the camera frame: u points right, v up, and the camera looks along -w
func (c *Camera) Basis() (u, v, w core.Vec3) { return c.u, c.v, c.w }

// PixelDeltas returns the world-space offsets between horizontally and vertically adjacent pixels
func (c *Camera) PixelDeltas() (du, dv core.Vec3) { return c.pixelDeltaU, c.pixelDeltaV }

// DefocusDisk returns the horizontal and vertical radius vectors of the lens disk
func (c *Camera) DefocusDisk() (du, dv core.Vec3) {
	return c.defocusDiskU, c.defocusDiskV
}
