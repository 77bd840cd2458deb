package cmd

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"

	"github.com/spectra-render/spectra/pkg/core"
	"github.com/spectra-render/spectra/pkg/loaders"
	"github.com/spectra-render/spectra/pkg/material"
	"github.com/spectra-render/spectra/pkg/ppm"
	"github.com/spectra-render/spectra/pkg/renderer"
	"github.com/spectra-render/spectra/pkg/scene"
)

// RenderFrame renders a single frame of the selected scene and writes it to
// the output file (PPM or PNG, by extension).
func RenderFrame(ctx *cli.Context) error {
	setupLogging(ctx)

	width := ctx.Int("width")
	height := ctx.Int("height")
	if width <= 0 || height <= 0 {
		return fmt.Errorf("image dimensions must be positive, got %dx%d", width, height)
	}

	config := renderer.Config{
		Width:        width,
		Height:       height,
		RaysPerPixel: ctx.Int("rays-per-pixel"),
		MaxDepth:     ctx.Int("max-depth"),
		NumWorkers:   ctx.Int("workers"),
		Seed:         int64(ctx.Int("seed")),
	}
	if config.RaysPerPixel <= 0 {
		return fmt.Errorf("rays per pixel must be positive, got %d", config.RaysPerPixel)
	}
	if config.MaxDepth <= 0 {
		return fmt.Errorf("max depth must be positive, got %d", config.MaxDepth)
	}

	var texture material.ColorSource
	if path := ctx.String("texture"); path != "" {
		img, err := loaders.LoadImage(path)
		if err != nil {
			return err
		}
		logger.Infof("loaded texture %s (%dx%d)", path, img.Width, img.Height)
		texture = material.NewImageTexture(img.Width, img.Height, img.Pixels)
	}

	aspectRatio := float64(width) / float64(height)
	sc, err := scene.Build(ctx.String("scene"), aspectRatio, config.Seed, texture)
	if err != nil {
		return err
	}
	logger.Noticef("rendering scene %q with %d objects", sc.Name, len(sc.Objects))

	camera := renderer.NewCamera(sc.Camera)
	pixels, stats := renderer.New(sc.Objects, camera, config).Render()

	out := ctx.String("out")
	if err := writeImage(out, width, height, pixels); err != nil {
		return err
	}

	displayRenderStats(stats)
	logger.Noticef("image written to %s", out)
	return nil
}

// writeImage encodes the pixel buffer by output extension: .png gets the PNG
// encoder, everything else the plain-text PPM sink.
func writeImage(filename string, width, height int, pixels []core.Vec3) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	if filepath.Ext(filename) == ".png" {
		return png.Encode(file, toImage(width, height, pixels))
	}
	return ppm.Encode(file, width, height, pixels)
}

func toImage(width, height int, pixels []core.Vec3) image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := pixels[y*width+x].Clamp(0, 1).Multiply(255.0)
			offset := img.PixOffset(x, y)
			img.Pix[offset+0] = uint8(c.X + 0.5)
			img.Pix[offset+1] = uint8(c.Y + 0.5)
			img.Pix[offset+2] = uint8(c.Z + 0.5)
			img.Pix[offset+3] = 255
		}
	}
	return img
}

func displayRenderStats(stats renderer.Stats) {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Resolution", "Workers", "Rays/pixel", "Max depth", "Primary rays", "Render time"})
	table.Append([]string{
		fmt.Sprintf("%dx%d", stats.Width, stats.Height),
		fmt.Sprintf("%d", stats.Workers),
		fmt.Sprintf("%d", stats.RaysPerPixel),
		fmt.Sprintf("%d", stats.MaxDepth),
		fmt.Sprintf("%d", stats.PrimaryRays),
		fmt.Sprintf("%s", stats.Elapsed),
	})
	table.Render()
	logger.Noticef("render statistics\n%s", buf.String())
}
