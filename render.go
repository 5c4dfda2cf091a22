package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"time"

	"github.com/df07/go-scanline-raytracer/pkg/core"
	"github.com/df07/go-scanline-raytracer/pkg/log"
	"github.com/df07/go-scanline-raytracer/pkg/renderer"
	"github.com/df07/go-scanline-raytracer/pkg/scene"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

var logger = log.New("scanline")

func setupLogging(ctx *cli.Context) {
	if ctx.GlobalBool("v") {
		log.SetLevel(log.Info)
	}

	if ctx.GlobalBool("vv") {
		log.SetLevel(log.Debug)
	}
}

func renderFlags() []cli.Flag {
	defaults := renderer.DefaultCameraConfig()
	return []cli.Flag{
		cli.StringFlag{
			Name:  "scene, s",
			Value: "three-spheres",
			Usage: "built-in scene to render (see the scenes command)",
		},
		cli.IntFlag{
			Name:  "width",
			Value: defaults.ImageWidth,
			Usage: "image width in pixels",
		},
		cli.Float64Flag{
			Name:  "aspect",
			Value: defaults.AspectRatio,
			Usage: "image aspect ratio (width / height)",
		},
		cli.IntFlag{
			Name:  "spp",
			Value: defaults.SamplesPerPixel,
			Usage: "samples per pixel",
		},
		cli.IntFlag{
			Name:  "depth",
			Value: defaults.MaxDepth,
			Usage: "maximum number of ray bounces",
		},
		cli.Float64Flag{
			Name:  "vfov",
			Value: defaults.VFov,
			Usage: "vertical field of view in degrees",
		},
		cli.StringFlag{
			Name:  "look-from",
			Value: formatVec3(defaults.LookFrom),
			Usage: "camera position as x,y,z",
		},
		cli.StringFlag{
			Name:  "look-at",
			Value: formatVec3(defaults.LookAt),
			Usage: "point the camera looks at as x,y,z",
		},
		cli.StringFlag{
			Name:  "vup",
			Value: formatVec3(defaults.VUp),
			Usage: "camera up direction as x,y,z",
		},
		cli.Float64Flag{
			Name:  "defocus-angle",
			Value: defaults.DefocusAngle,
			Usage: "aperture cone angle in degrees; 0 disables depth of field",
		},
		cli.Float64Flag{
			Name:  "focus-dist",
			Value: defaults.FocusDistance,
			Usage: "distance to the plane of perfect focus",
		},
		cli.IntFlag{
			Name:  "workers, w",
			Value: 0,
			Usage: "number of render workers; 0 uses one per CPU",
		},
		cli.Int64Flag{
			Name:  "seed",
			Value: 0,
			Usage: "random seed for sampling and scene layout; 0 picks a time based sampling seed",
		},
		cli.DurationFlag{
			Name:  "progress",
			Value: renderer.DefaultProgressInterval,
			Usage: "interval between progress reports; 0 disables them",
		},
		cli.StringFlag{
			Name:  "out, o",
			Value: "-",
			Usage: "output PPM file; - writes to stdout",
		},
	}
}

// flagSource is the part of *cli.Context used to read camera overrides
type flagSource interface {
	IsSet(name string) bool
	Int(name string) int
	Float64(name string) float64
	String(name string) string
}

// applyCameraFlags overrides the fields of base whose flags were given explicitly
func applyCameraFlags(flags flagSource, base renderer.CameraConfig) (renderer.CameraConfig, error) {
	config := base

	if flags.IsSet("width") {
		config.ImageWidth = flags.Int("width")
	}
	if flags.IsSet("aspect") {
		config.AspectRatio = flags.Float64("aspect")
	}
	if flags.IsSet("spp") {
		config.SamplesPerPixel = flags.Int("spp")
	}
	if flags.IsSet("depth") {
		config.MaxDepth = flags.Int("depth")
	}
	if flags.IsSet("vfov") {
		config.VFov = flags.Float64("vfov")
	}
	if flags.IsSet("defocus-angle") {
		config.DefocusAngle = flags.Float64("defocus-angle")
	}
	if flags.IsSet("focus-dist") {
		config.FocusDistance = flags.Float64("focus-dist")
	}

	vectors := []struct {
		name  string
		field *core.Vec3
	}{
		{"look-from", &config.LookFrom},
		{"look-at", &config.LookAt},
		{"vup", &config.VUp},
	}
	for _, v := range vectors {
		if !flags.IsSet(v.name) {
			continue
		}
		parsed, err := parseVec3(flags.String(v.name))
		if err != nil {
			return config, fmt.Errorf("invalid --%s: %w", v.name, err)
		}
		*v.field = parsed
	}

	return config.Clamp(), nil
}

// parseVec3 parses a vector written as "x,y,z"
func parseVec3(text string) (core.Vec3, error) {
	parts := strings.Split(text, ",")
	if len(parts) != 3 {
		return core.Vec3{}, fmt.Errorf("expected x,y,z, got %q", text)
	}

	var components [3]float64
	for i, part := range parts {
		value, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return core.Vec3{}, fmt.Errorf("component %d of %q: %w", i, text, err)
		}
		components[i] = value
	}
	return core.NewVec3(components[0], components[1], components[2]), nil
}

func formatVec3(v core.Vec3) string {
	return fmt.Sprintf("%g,%g,%g", v.X, v.Y, v.Z)
}

// Render a built-in scene and write it as a PPM image.
func renderScene(ctx *cli.Context) error {
	setupLogging(ctx)

	sc, err := scene.New(ctx.String("scene"), ctx.Int64("seed"))
	if err != nil {
		return fmt.Errorf("%w (available: %s)", err, strings.Join(scene.Names(), ", "))
	}

	config, err := applyCameraFlags(ctx, sc.CameraConfig)
	if err != nil {
		return err
	}

	rt := renderer.NewRaytracer(sc.World, config)
	rt.SetSeed(ctx.Int64("seed"))
	rt.SetProgressInterval(ctx.Duration("progress"))

	runCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	logger.Noticef("rendering scene %q with %d objects", sc.Name, sc.World.Len())
	fb, stats, err := rt.Render(runCtx, ctx.Int("workers"))
	if err != nil {
		return err
	}

	out := ctx.String("out")
	start := time.Now()
	if err := writeImage(out, fb); err != nil {
		return err
	}
	logger.Infof("wrote image to %s in %s", outputName(out), time.Since(start))

	displayRenderStats(stats)
	return nil
}

func outputName(path string) string {
	if path == "" || path == "-" {
		return "stdout"
	}
	return path
}

// writeImage writes fb to path, or to stdout for "" and "-". The file is
// only created once the render has succeeded.
func writeImage(path string, fb *renderer.Framebuffer) error {
	if path == "" || path == "-" {
		return fb.WritePPM(os.Stdout)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	if err := fb.WritePPM(f); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return f.Close()
}

func displayRenderStats(stats renderer.RenderStats) {
	var buf bytes.Buffer
	writeStatsTable(&buf, stats)
	logger.Noticef("render statistics\n%s", buf.String())
}

func writeStatsTable(w io.Writer, stats renderer.RenderStats) {
	table := tablewriter.NewWriter(w)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Worker", "Rows", "% of frame", "Samples", "Render time"})
	for _, stat := range stats.Workers {
		table.Append([]string{
			fmt.Sprintf("%d", stat.Worker),
			fmt.Sprintf("[%d, %d)", stat.Rows.Start, stat.Rows.End),
			fmt.Sprintf("%02.1f %%", 100*float64(stat.Rows.Len())/float64(max(stats.Height, 1))),
			fmt.Sprintf("%d", stat.Samples),
			stat.Duration.String(),
		})
	}
	table.SetFooter([]string{
		"TOTAL",
		fmt.Sprintf("%dx%d", stats.Width, stats.Height),
		fmt.Sprintf("%.0f samples/s", stats.SamplesPerSecond()),
		fmt.Sprintf("%d", stats.TotalSamples()),
		stats.Duration.String(),
	})
	table.Render()
}

// List the built-in scenes.
func listScenes(ctx *cli.Context) error {
	setupLogging(ctx)

	table := tablewriter.NewWriter(os.Stdout)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Scene", "Description"})
	for _, info := range scene.List() {
		table.Append([]string{info.Name, info.Description})
	}
	table.Render()
	return nil
}
