package renderer

import (
	"fmt"
	"math/rand"
	"runtime"
	"sort"
	"sync"
	"time"

	"github.com/spectra-render/spectra/pkg/core"
	"github.com/spectra-render/spectra/pkg/integrator"
	"github.com/spectra-render/spectra/pkg/log"
)

var logger = log.New("renderer")

// Config holds the externally sourced render parameters
type Config struct {
	Width        int   // Image width in pixels, > 0
	Height       int   // Image height in pixels, > 0
	RaysPerPixel int   // Samples per pixel, > 0
	MaxDepth     int   // Maximum recursion depth per ray, > 0
	NumWorkers   int   // Worker count; 0 or less means runtime.NumCPU()
	Seed         int64 // Base seed for the per-row random streams
}

// Renderer drives the concurrent tiled render: it partitions the image into
// per-row work units, distributes them to a fixed worker pool, and
// reassembles the completed rows in order.
type Renderer struct {
	camera     *Camera
	world      *core.BVH
	integrator *integrator.PathTracer
	config     Config
}

// rowResult pairs a finished row of pixels with its row index so rows can be
// reassembled regardless of completion order
type rowResult struct {
	y      int
	pixels []core.Vec3
}

// New creates a renderer for the given shapes and camera, building the BVH
// up front. Invalid dimensions or sampling parameters are fatal
// configuration errors.
func New(shapes []core.Shape, camera *Camera, config Config) *Renderer {
	if config.Width <= 0 || config.Height <= 0 {
		panic(fmt.Sprintf("renderer: image dimensions must be positive, got %dx%d", config.Width, config.Height))
	}
	if config.RaysPerPixel <= 0 {
		panic(fmt.Sprintf("renderer: rays per pixel must be positive, got %d", config.RaysPerPixel))
	}
	if config.MaxDepth <= 0 {
		panic(fmt.Sprintf("renderer: max depth must be positive, got %d", config.MaxDepth))
	}
	if config.NumWorkers <= 0 {
		config.NumWorkers = runtime.NumCPU()
	}

	return &Renderer{
		camera:     camera,
		world:      core.NewBVH(shapes),
		integrator: integrator.NewPathTracer(config.MaxDepth),
		config:     config,
	}
}

// Render produces the final pixel buffer in row-major order, top row first.
// Row sampling is seeded per row index, so the buffer is independent of
// worker count and scheduling order for a fixed config seed.
func (r *Renderer) Render() ([]core.Vec3, Stats) {
	start := time.Now()
	height := r.config.Height

	logger.Infof("rendering %dx%d, %d rays/pixel, depth %d, %d workers",
		r.config.Width, height, r.config.RaysPerPixel, r.config.MaxDepth, r.config.NumWorkers)

	rows := make(chan int, height)
	results := make(chan rowResult, height)

	var wg sync.WaitGroup
	for i := 0; i < r.config.NumWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for y := range rows {
				random := rand.New(rand.NewSource(r.config.Seed + int64(y)))
				results <- rowResult{y: y, pixels: r.renderRow(y, random)}
			}
		}()
	}

	// Seed all row indices up front, then drain exactly height results
	for y := 0; y < height; y++ {
		rows <- y
	}
	close(rows)

	collected := make([]rowResult, 0, height)
	for len(collected) < height {
		collected = append(collected, <-results)
	}
	wg.Wait()

	// Restore deterministic row order before final assembly
	sort.Slice(collected, func(i, j int) bool {
		return collected[i].y < collected[j].y
	})

	pixels := make([]core.Vec3, 0, r.config.Width*height)
	for _, row := range collected {
		pixels = append(pixels, row.pixels...)
	}

	stats := Stats{
		Width:        r.config.Width,
		Height:       height,
		Workers:      r.config.NumWorkers,
		RaysPerPixel: r.config.RaysPerPixel,
		MaxDepth:     r.config.MaxDepth,
		PrimaryRays:  int64(r.config.Width) * int64(height) * int64(r.config.RaysPerPixel),
		Elapsed:      time.Since(start),
	}

	logger.Infof("render finished in %v (%.1f rows/sec)", stats.Elapsed, stats.RowsPerSecond())
	return pixels, stats
}

// renderRow samples every pixel in row y. Row 0 is the top of the image.
func (r *Renderer) renderRow(y int, random *rand.Rand) []core.Vec3 {
	width := r.config.Width
	xTotal := float64(width - 1)
	yTotal := float64(r.config.Height - 1)
	samples := float64(r.config.RaysPerPixel)

	row := make([]core.Vec3, width)
	for x := 0; x < width; x++ {
		var color core.Vec3
		for sample := 0; sample < r.config.RaysPerPixel; sample++ {
			u := (float64(x) + random.Float64()) / xTotal
			v := (float64(r.config.Height-1-y) + random.Float64()) / yTotal
			ray := r.camera.GetRay(u, v, random)
			color = color.Add(r.integrator.RayColor(ray, r.world, random, r.config.MaxDepth))
		}
		row[x] = color.Multiply(1.0 / samples).GammaCorrect(2.0)
	}
	return row
}
