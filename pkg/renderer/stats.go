package renderer

import "time"

// WorkerStats describes the work done by a single worker
type WorkerStats struct {
	Worker   int           // Worker index
	Rows     RowRange      // Rows assigned to the worker
	Rendered int           // Rows completed before the worker stopped
	Samples  int64         // Camera rays traced
	Duration time.Duration // Wall time spent rendering
}

// RenderStats contains statistics about a whole render
type RenderStats struct {
	Width           int
	Height          int
	SamplesPerPixel int
	MaxDepth        int
	Seed            int64
	Workers         []WorkerStats
	Duration        time.Duration
}

// TotalSamples returns the number of camera rays traced by all workers
func (s RenderStats) TotalSamples() int64 {
	var total int64
	for _, w := range s.Workers {
		total += w.Samples
	}
	return total
}

// TotalRows returns the number of rows completed by all workers
func (s RenderStats) TotalRows() int {
	total := 0
	for _, w := range s.Workers {
		total += w.Rendered
	}
	return total
}

// SamplesPerSecond returns the camera ray throughput of the render
func (s RenderStats) SamplesPerSecond() float64 {
	if s.Duration <= 0 {
		return 0
	}
	return float64(s.TotalSamples()) / s.Duration.Seconds()
}
