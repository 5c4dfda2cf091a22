// Package ppm writes framebuffers as plain-text PPM (P3) images.
package ppm

import (
	"bufio"
	"fmt"
	"io"
	"math"

	"github.com/df07/go-scanline-raytracer/pkg/core"
)

// MaxValue is the largest channel value written to the stream
const MaxValue = 255

var intensity = core.NewInterval(0.000, 0.999)

// LinearToGamma converts a linear channel value to gamma 2 space.
// Non-positive and NaN inputs map to 0.
func LinearToGamma(linear float64) float64 {
	if linear > 0 {
		return math.Sqrt(linear)
	}
	return 0
}

// Quantize tone-maps a linear color to integer channels in [0, 255]
func Quantize(color core.Vec3) (r, g, b int) {
	channel := func(c float64) int {
		return int(256 * intensity.Clamp(LinearToGamma(c)))
	}
	return channel(color.X), channel(color.Y), channel(color.Z)
}

// WriteHeader writes the three P3 header lines
func WriteHeader(w io.Writer, width, height int) error {
	_, err := fmt.Fprintf(w, "P3\n%d %d\n%d\n", width, height, MaxValue)
	return err
}

// WriteColor writes one pixel as an "r g b" line
func WriteColor(w io.Writer, color core.Vec3) error {
	r, g, b := Quantize(color)
	_, err := fmt.Fprintf(w, "%d %d %d\n", r, g, b)
	return err
}

// Encode writes a complete P3 image. Pixels are row-major and must number
// exactly width*height.
func Encode(w io.Writer, width, height int, pixels []core.Vec3) error {
	if width < 1 || height < 1 {
		return fmt.Errorf("ppm: invalid dimensions %dx%d", width, height)
	}
	if len(pixels) != width*height {
		return fmt.Errorf("ppm: have %d pixels, want %d for %dx%d", len(pixels), width*height, width, height)
	}

	bw := bufio.NewWriter(w)
	if err := WriteHeader(bw, width, height); err != nil {
		return fmt.Errorf("ppm: writing header: %w", err)
	}
	for i, pixel := range pixels {
		if err := WriteColor(bw, pixel); err != nil {
			return fmt.Errorf("ppm: writing pixel %d: %w", i, err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("ppm: flushing output: %w", err)
	}
	return nil
}
