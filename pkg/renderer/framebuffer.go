package renderer

import (
	"io"

	"github.com/df07/go-scanline-raytracer/pkg/core"
	"github.com/df07/go-scanline-raytracer/pkg/ppm"
)

// Framebuffer holds linear pixel colors in row-major order, row 0 at the top
type Framebuffer struct {
	Width  int
	Height int
	Pixels []core.Vec3
}

// NewFramebuffer allocates a black framebuffer
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{
		Width:  width,
		Height: height,
		Pixels: make([]core.Vec3, width*height),
	}
}

// At returns the color of the pixel in column i, row j
func (fb *Framebuffer) At(i, j int) core.Vec3 {
	return fb.Pixels[j*fb.Width+i]
}

// Rows returns the pixels of the given rows as a sub-slice. Its capacity ends
// at the range so appends can never spill into a neighbouring worker's rows.
func (fb *Framebuffer) Rows(r RowRange) []core.Vec3 {
	start, end := r.Start*fb.Width, r.End*fb.Width
	return fb.Pixels[start:end:end]
}

// WritePPM serializes the framebuffer as a P3 image
func (fb *Framebuffer) WritePPM(w io.Writer) error {
	return ppm.Encode(w, fb.Width, fb.Height, fb.Pixels)
}
