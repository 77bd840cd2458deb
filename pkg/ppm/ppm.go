// Package ppm serializes pixel buffers as plain-text P3 PPM images.
package ppm

import (
	"bufio"
	"fmt"
	"io"
	"math"

	"github.com/spectra-render/spectra/pkg/core"
)

// Encode writes the pixel buffer as a P3 image: a 2-line header, the
// max-value line, then one "r g b" triple per pixel in row-major order
// starting from the top row.
func Encode(w io.Writer, width, height int, pixels []core.Vec3) error {
	if len(pixels) != width*height {
		return fmt.Errorf("ppm: pixel buffer has %d entries, want %d for %dx%d", len(pixels), width*height, width, height)
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "P3")
	fmt.Fprintf(bw, "%d %d\n", width, height)
	fmt.Fprintln(bw, "255")

	for _, color := range pixels {
		fmt.Fprintf(bw, "%d %d %d\n", channel(color.X), channel(color.Y), channel(color.Z))
	}

	return bw.Flush()
}

// channel rounds a [0,1] color channel to the nearest 8-bit value
func channel(v float64) int {
	n := int(math.Round(v * 255.0))
	if n < 0 {
		return 0
	}
	if n > 255 {
		return 255
	}
	return n
}
