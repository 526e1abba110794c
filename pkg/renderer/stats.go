package renderer

import "time"

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	Width         int           // Image width in pixels
	Height        int           // Image height in pixels
	PrimaryRays   int           // Camera rays traced, one per pixel
	Workers       int           // Worker goroutines used
	Elapsed       time.Duration // Wall-clock render time
	RaysPerSecond float64       // Primary ray throughput
}

// NewRenderStats summarizes a completed render
func NewRenderStats(width, height, workers int, elapsed time.Duration) RenderStats {
	stats := RenderStats{
		Width:       width,
		Height:      height,
		PrimaryRays: width * height,
		Workers:     workers,
		Elapsed:     elapsed,
	}

	if secs := elapsed.Seconds(); secs > 0 {
		stats.RaysPerSecond = float64(stats.PrimaryRays) / secs
	}

	return stats
}
