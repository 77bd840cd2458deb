package renderer

import "time"

// Stats summarizes a completed render
type Stats struct {
	Width        int
	Height       int
	Workers      int
	RaysPerPixel int
	MaxDepth     int
	PrimaryRays  int64 // Camera rays cast (pixels * rays per pixel)
	Elapsed      time.Duration
}

// RowsPerSecond returns the render throughput in image rows per second
func (s Stats) RowsPerSecond() float64 {
	if s.Elapsed <= 0 {
		return 0
	}
	return float64(s.Height) / s.Elapsed.Seconds()
}
