package cmd

import (
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spectra-render/spectra/pkg/core"
)

func testPixels() []core.Vec3 {
	return []core.Vec3{
		core.NewVec3(1, 0, 0), core.NewVec3(0, 1, 0),
		core.NewVec3(0, 0, 1), core.NewVec3(1, 1, 1),
	}
}

func TestWriteImage_PPMByDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "frame.ppm")
	if err := writeImage(path, 2, 2, testPixels()); err != nil {
		t.Fatalf("writeImage failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(data), "P3\n2 2\n255\n") {
		t.Errorf("Expected a P3 header, got %q", string(data[:12]))
	}
}

func TestWriteImage_PNGByExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "frame.png")
	if err := writeImage(path, 2, 2, testPixels()); err != nil {
		t.Fatalf("writeImage failed: %v", err)
	}

	file, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer file.Close()

	img, err := png.Decode(file)
	if err != nil {
		t.Fatalf("Output is not a valid PNG: %v", err)
	}
	if img.Bounds().Dx() != 2 || img.Bounds().Dy() != 2 {
		t.Errorf("Expected a 2x2 image, got %v", img.Bounds())
	}

	r, g, b, _ := img.At(0, 0).RGBA()
	if r>>8 != 255 || g>>8 != 0 || b>>8 != 0 {
		t.Errorf("Expected red top-left pixel, got (%d,%d,%d)", r>>8, g>>8, b>>8)
	}
}

func TestWriteImage_BadPath(t *testing.T) {
	if err := writeImage(filepath.Join(t.TempDir(), "missing", "frame.ppm"), 2, 2, testPixels()); err == nil {
		t.Error("Expected error for an uncreatable output file")
	}
}
