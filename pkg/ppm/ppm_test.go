package ppm

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/df07/go-scanline-raytracer/pkg/core"
)

func TestQuantize(t *testing.T) {
	tests := []struct {
		name    string
		color   core.Vec3
		r, g, b int
	}{
		{"black", core.NewVec3(0, 0, 0), 0, 0, 0},
		{"white", core.NewVec3(1, 1, 1), 255, 255, 255},
		{"overexposed clamps", core.NewVec3(10, 4, 1.5), 255, 255, 255},
		{"negative clamps", core.NewVec3(-1, -0.5, 0), 0, 0, 0},
		{"gamma quarter is half", core.NewVec3(0.25, 0.25, 0.25), 128, 128, 128},
		{"nan is black", core.NewVec3(math.NaN(), 0, 0), 0, 0, 0},
		{"inf clamps", core.NewVec3(math.Inf(1), 0, 0), 255, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b := Quantize(tt.color)
			if r != tt.r || g != tt.g || b != tt.b {
				t.Errorf("Expected (%d %d %d), got (%d %d %d)", tt.r, tt.g, tt.b, r, g, b)
			}
		})
	}
}

func TestEncode_Format(t *testing.T) {
	pixels := []core.Vec3{
		core.NewVec3(0, 0, 0), core.NewVec3(1, 1, 1),
		core.NewVec3(1, 0, 0), core.NewVec3(0, 0, 1),
	}

	var buf bytes.Buffer
	if err := Encode(&buf, 2, 2, pixels); err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	expected := "P3\n2 2\n255\n0 0 0\n255 255 255\n255 0 0\n0 0 255\n"
	if buf.String() != expected {
		t.Errorf("Expected\n%q\ngot\n%q", expected, buf.String())
	}
}

func TestEncode_LineCount(t *testing.T) {
	width, height := 7, 3
	pixels := make([]core.Vec3, width*height)

	var buf bytes.Buffer
	if err := Encode(&buf, width, height, pixels); err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != 3+width*height {
		t.Errorf("Expected %d lines, got %d", 3+width*height, len(lines))
	}
}

func TestEncode_RejectsMismatchedPixels(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		pixels        int
	}{
		{"too few pixels", 2, 2, 3},
		{"too many pixels", 2, 2, 5},
		{"zero width", 0, 2, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := Encode(&buf, tt.width, tt.height, make([]core.Vec3, tt.pixels)); err == nil {
				t.Error("Expected error")
			}
			if buf.Len() != 0 {
				t.Errorf("Expected no output on error, got %q", buf.String())
			}
		})
	}
}

type failingWriter struct{}

var errWrite = errors.New("disk full")

func (failingWriter) Write(p []byte) (int, error) { return 0, errWrite }

func TestEncode_PropagatesWriteErrors(t *testing.T) {
	err := Encode(failingWriter{}, 1, 1, []core.Vec3{{}})
	if !errors.Is(err, errWrite) {
		t.Errorf("Expected wrapped write error, got %v", err)
	}
}
