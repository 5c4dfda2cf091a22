package renderer

import (
	"context"

	"github.com/df07/go-scanline-raytracer/pkg/core"
	"github.com/df07/go-scanline-raytracer/pkg/integrator"
)

// RowRenderer renders whole scanlines of the image with an integrator
type RowRenderer struct {
	camera     *Camera
	world      core.Hittable
	integrator integrator.Integrator
}

// NewRowRenderer creates a row renderer for the given camera, world and integrator
func NewRowRenderer(camera *Camera, world core.Hittable, integratorInst integrator.Integrator) *RowRenderer {
	return &RowRenderer{
		camera:     camera,
		world:      world,
		integrator: integratorInst,
	}
}

// RenderRows renders the rows of the given range into out, which holds only
// those rows: pixel (i, j) lands at index (j-rows.Start)*width + i. The
// context is checked before each row; on cancellation the rows finished so
// far are reported along with the context error.
func (rr *RowRenderer) RenderRows(ctx context.Context, rows RowRange, out []core.Vec3, sampler core.Sampler, progress *progressTracker) (WorkerStats, error) {
	stats := WorkerStats{Rows: rows}
	width := rr.camera.ImageWidth()
	samplesPerPixel := rr.camera.SamplesPerPixel()

	for j := rows.Start; j < rows.End; j++ {
		if err := ctx.Err(); err != nil {
			return stats, err
		}

		offset := (j - rows.Start) * width
		for i := 0; i < width; i++ {
			out[offset+i] = rr.samplePixel(i, j, samplesPerPixel, sampler)
		}

		stats.Rendered++
		stats.Samples += int64(width * samplesPerPixel)
		if progress != nil {
			progress.rowDone()
		}
	}

	return stats, nil
}

// samplePixel averages samplesPerPixel jittered estimates for pixel (i, j)
func (rr *RowRenderer) samplePixel(i, j, samplesPerPixel int, sampler core.Sampler) core.Vec3 {
	maxDepth := rr.camera.MaxDepth()
	colorAccum := core.Vec3{}

	for sample := 0; sample < samplesPerPixel; sample++ {
		ray := rr.camera.GetRay(i, j, sampler)
		colorAccum = colorAccum.Add(rr.integrator.RayColor(ray, maxDepth, rr.world, sampler))
	}

	return colorAccum.Multiply(rr.camera.PixelSamplesScale())
}
