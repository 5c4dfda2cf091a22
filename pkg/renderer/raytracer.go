package renderer

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/df07/go-scanline-raytracer/pkg/core"
	"github.com/df07/go-scanline-raytracer/pkg/integrator"
	"github.com/df07/go-scanline-raytracer/pkg/log"
)

// DefaultProgressInterval is how often remaining scanlines are logged
const DefaultProgressInterval = time.Second

// Raytracer renders a world through a camera into a framebuffer
type Raytracer struct {
	world            core.Hittable
	camera           *Camera
	integrator       integrator.Integrator
	logger           log.Logger
	seed             int64
	progressInterval time.Duration
}

// NewRaytracer creates a raytracer with a path tracing integrator
func NewRaytracer(world core.Hittable, config CameraConfig) *Raytracer {
	return &Raytracer{
		world:            world,
		camera:           NewCamera(config),
		integrator:       integrator.NewPathTracingIntegrator(),
		logger:           log.New("renderer"),
		progressInterval: DefaultProgressInterval,
	}
}

// SetIntegrator replaces the light transport estimator
func (rt *Raytracer) SetIntegrator(integratorInst integrator.Integrator) {
	rt.integrator = integratorInst
}

func (rt *Raytracer) SetLogger(logger log.Logger) {
	rt.logger = logger
}

// SetSeed fixes the base seed of the per-worker samplers; worker t uses
// seed+t. A zero seed picks a time based one at render time.
func (rt *Raytracer) SetSeed(seed int64) {
	rt.seed = seed
}

// SetProgressInterval sets how often progress is logged; <= 0 disables it
func (rt *Raytracer) SetProgressInterval(interval time.Duration) {
	rt.progressInterval = interval
}

// SetCameraConfig rebuilds the camera from a new config
func (rt *Raytracer) SetCameraConfig(config CameraConfig) {
	rt.camera = NewCamera(config)
}

func (rt *Raytracer) Camera() *Camera {
	return rt.camera
}

// Render traces the whole image using numWorkers goroutines (<= 0 means one
// per CPU) and returns the finished framebuffer. No framebuffer is returned
// when the render is cancelled or a worker fails.
func (rt *Raytracer) Render(ctx context.Context, numWorkers int) (*Framebuffer, RenderStats, error) {
	if rt.world == nil {
		return nil, RenderStats{}, ErrNoWorld
	}

	width, height := rt.camera.ImageWidth(), rt.camera.ImageHeight()
	seed := rt.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	stats := RenderStats{
		Width:           width,
		Height:          height,
		SamplesPerPixel: rt.camera.SamplesPerPixel(),
		MaxDepth:        rt.camera.MaxDepth(),
		Seed:            seed,
	}

	rowRenderer := NewRowRenderer(rt.camera, rt.world, rt.integrator)
	pool := NewWorkerPool(rowRenderer, height, numWorkers, seed, rt.logger)
	fb := NewFramebuffer(width, height)
	progress := newProgressTracker(height)

	rt.logger.Noticef("rendering %dx%d image at %d spp (max depth %d) with %d workers",
		width, height, stats.SamplesPerPixel, stats.MaxDepth, pool.NumWorkers())

	done := make(chan struct{})
	reporterDone := make(chan struct{})
	go func() {
		defer close(reporterDone)
		progress.watch(done, rt.progressInterval, rt.logger)
	}()

	start := time.Now()
	workerStats, err := pool.Run(ctx, fb, progress)
	stats.Duration = time.Since(start)
	stats.Workers = workerStats

	close(done)
	<-reporterDone

	if err != nil {
		rt.logger.Warningf("render aborted after %s: %v", stats.Duration, err)
		return nil, stats, err
	}

	rt.logger.Noticef("rendered %d samples in %s", stats.TotalSamples(), stats.Duration)
	return fb, stats, nil
}

// RenderTo renders the image and writes it to w as a P3 PPM. Nothing is
// written unless the render completes.
func (rt *Raytracer) RenderTo(ctx context.Context, w io.Writer, numWorkers int) (RenderStats, error) {
	fb, stats, err := rt.Render(ctx, numWorkers)
	if err != nil {
		return stats, err
	}
	if err := fb.WritePPM(w); err != nil {
		return stats, fmt.Errorf("renderer: writing image: %w", err)
	}
	return stats, nil
}
