package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/df07/go-scanline-raytracer/pkg/core"
	"github.com/df07/go-scanline-raytracer/pkg/log"
	"github.com/df07/go-scanline-raytracer/pkg/renderer"
)

// mockFlags implements flagSource for testing; only keys present are set
type mockFlags struct {
	values map[string]string
}

func (m mockFlags) IsSet(name string) bool {
	_, ok := m.values[name]
	return ok
}

func (m mockFlags) Int(name string) int {
	v, _ := strconv.Atoi(m.values[name])
	return v
}

func (m mockFlags) Float64(name string) float64 {
	v, _ := strconv.ParseFloat(m.values[name], 64)
	return v
}

func (m mockFlags) String(name string) string {
	return m.values[name]
}

func TestParseVec3(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expected    core.Vec3
		expectError bool
	}{
		{"integers", "1,2,3", core.NewVec3(1, 2, 3), false},
		{"floats with spaces", " -0.5, 1e2 ,3.25", core.NewVec3(-0.5, 100, 3.25), false},
		{"too few components", "1,2", core.Vec3{}, true},
		{"too many components", "1,2,3,4", core.Vec3{}, true},
		{"not a number", "1,x,3", core.Vec3{}, true},
		{"empty", "", core.Vec3{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseVec3(tt.input)
			if tt.expectError {
				if err == nil {
					t.Errorf("Expected error for %q, got %v", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error for %q: %v", tt.input, err)
			}
			if got != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestFormatVec3_RoundTrips(t *testing.T) {
	v := core.NewVec3(13, -2.5, 0.125)
	got, err := parseVec3(formatVec3(v))
	if err != nil || got != v {
		t.Errorf("Expected %v, got %v (err %v)", v, got, err)
	}
}

func TestApplyCameraFlags_OnlyExplicitFlagsOverride(t *testing.T) {
	base := renderer.DefaultCameraConfig()
	base.ImageWidth = 400
	base.VFov = 20
	base.LookFrom = core.NewVec3(13, 2, 3)

	flags := mockFlags{values: map[string]string{
		"spp":     "7",
		"look-at": "1,1,1",
	}}

	config, err := applyCameraFlags(flags, base)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if config.ImageWidth != 400 || config.VFov != 20 || config.LookFrom != core.NewVec3(13, 2, 3) {
		t.Errorf("Expected scene values to be kept, got %+v", config)
	}
	if config.SamplesPerPixel != 7 {
		t.Errorf("Expected 7 samples per pixel, got %d", config.SamplesPerPixel)
	}
	if config.LookAt != core.NewVec3(1, 1, 1) {
		t.Errorf("Expected look-at (1, 1, 1), got %v", config.LookAt)
	}
}

func TestApplyCameraFlags_ClampsAndRejects(t *testing.T) {
	config, err := applyCameraFlags(mockFlags{values: map[string]string{"width": "0"}}, renderer.DefaultCameraConfig())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if config.ImageWidth != 1 {
		t.Errorf("Expected width clamped to 1, got %d", config.ImageWidth)
	}

	_, err = applyCameraFlags(mockFlags{values: map[string]string{"vup": "0,1"}}, renderer.DefaultCameraConfig())
	if err == nil || !strings.Contains(err.Error(), "--vup") {
		t.Errorf("Expected an invalid --vup error, got %v", err)
	}
}

func TestWriteImage_File(t *testing.T) {
	fb := renderer.NewFramebuffer(2, 1)
	fb.Pixels[0] = core.NewVec3(1, 1, 1)
	path := filepath.Join(t.TempDir(), "out.ppm")

	if err := writeImage(path, fb); err != nil {
		t.Fatalf("writeImage failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Reading output failed: %v", err)
	}
	if expected := "P3\n2 1\n255\n255 255 255\n0 0 0\n"; string(data) != expected {
		t.Errorf("Expected %q, got %q", expected, string(data))
	}
}

func TestWriteStatsTable(t *testing.T) {
	stats := renderer.RenderStats{
		Width:    4,
		Height:   2,
		Duration: time.Second,
		Workers: []renderer.WorkerStats{
			{Worker: 0, Rows: renderer.RowRange{Start: 0, End: 1}, Rendered: 1, Samples: 40},
			{Worker: 1, Rows: renderer.RowRange{Start: 1, End: 2}, Rendered: 1, Samples: 40},
		},
	}

	var buf bytes.Buffer
	writeStatsTable(&buf, stats)
	out := buf.String()

	for _, want := range []string{"Worker", "[0, 1)", "[1, 2)", "50.0 %", "80 samples/s", "4x2"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected table to contain %q, got\n%s", want, out)
		}
	}
}

func TestOutputName(t *testing.T) {
	if outputName("-") != "stdout" || outputName("") != "stdout" || outputName("a.ppm") != "a.ppm" {
		t.Error("Unexpected output names")
	}
}

func TestApp_RenderWritesImage(t *testing.T) {
	out := filepath.Join(t.TempDir(), "empty.ppm")
	args := []string{"scanline", "render",
		"--scene", "empty", "--width", "4", "--aspect", "2", "--spp", "1",
		"--workers", "2", "--seed", "3", "--progress", "0", "--out", out}

	if err := newApp().Run(args); err != nil {
		t.Fatalf("render failed: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("Reading output failed: %v", err)
	}
	lines := strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
	if len(lines) != 3+4*2 {
		t.Fatalf("Expected %d lines, got %d", 3+4*2, len(lines))
	}
	if header := strings.Join(lines[:3], "\n"); header != "P3\n4 2\n255" {
		t.Errorf("Unexpected header %q", header)
	}
}

func TestApp_GlobalVerbosityFlags(t *testing.T) {
	defer log.SetLevel(log.Notice)

	for _, flag := range []string{"-v", "-vv"} {
		t.Run(flag, func(t *testing.T) {
			if err := newApp().Run([]string{"scanline", flag, "scenes"}); err != nil {
				t.Errorf("scenes with %s failed: %v", flag, err)
			}
		})
	}
}

func TestApp_Scenes(t *testing.T) {
	if err := newApp().Run([]string{"scanline", "scenes"}); err != nil {
		t.Errorf("scenes failed: %v", err)
	}
}

func TestApp_UnknownSceneFails(t *testing.T) {
	out := filepath.Join(t.TempDir(), "missing.ppm")
	err := newApp().Run([]string{"scanline", "render", "--scene", "no-such-scene", "--out", out})
	if err == nil {
		t.Fatal("Expected an error for an unknown scene")
	}
	if _, statErr := os.Stat(out); !os.IsNotExist(statErr) {
		t.Errorf("Expected no output file, got stat error %v", statErr)
	}
}
