package renderer

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/df07/go-scanline-raytracer/pkg/core"
	"github.com/df07/go-scanline-raytracer/pkg/log"
)

// WorkerPool runs one goroutine per row range. Each worker owns its range of
// the framebuffer and its own sampler, so nothing is shared for writing.
type WorkerPool struct {
	rowRenderer *RowRenderer
	ranges      []RowRange
	seed        int64
	logger      log.Logger
}

// resolveWorkers maps a requested worker count to the number actually used:
// non-positive means one per CPU, and there are never more workers than rows.
func resolveWorkers(requested, height int) int {
	if requested <= 0 {
		requested = runtime.NumCPU()
	}
	return min(requested, max(height, 1))
}

// NewWorkerPool creates a pool that splits height rows across numWorkers workers
func NewWorkerPool(rowRenderer *RowRenderer, height, numWorkers int, seed int64, logger log.Logger) *WorkerPool {
	return &WorkerPool{
		rowRenderer: rowRenderer,
		ranges:      PartitionRows(height, resolveWorkers(numWorkers, height)),
		seed:        seed,
		logger:      logger,
	}
}

// NumWorkers returns the number of workers in the pool
func (wp *WorkerPool) NumWorkers() int {
	return len(wp.ranges)
}

// workerResult is the slot each worker fills before exiting
type workerResult struct {
	stats WorkerStats
	err   error
}

// Run renders every range into fb and blocks until all workers have exited.
// A worker panic cancels the remaining workers and is returned as a
// *WorkerError; cancellation of ctx is returned as ErrInterrupted.
func (wp *WorkerPool) Run(ctx context.Context, fb *Framebuffer, progress *progressTracker) ([]WorkerStats, error) {
	workerCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	results := make([]workerResult, len(wp.ranges))
	var wg sync.WaitGroup
	for id, rows := range wp.ranges {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[id] = wp.runWorker(workerCtx, cancel, id, rows, fb.Rows(rows), progress)
		}()
	}
	wg.Wait()

	stats := make([]WorkerStats, len(results))
	var workerErr *WorkerError
	var interrupted error
	for id, result := range results {
		stats[id] = result.stats
		var failed *WorkerError
		switch {
		case result.err == nil:
		case errors.As(result.err, &failed):
			if workerErr == nil {
				workerErr = failed
			}
		case interrupted == nil:
			interrupted = result.err
		}
	}

	if workerErr != nil {
		return stats, workerErr
	}
	if interrupted != nil {
		return stats, fmt.Errorf("%w: %w", ErrInterrupted, interrupted)
	}
	return stats, nil
}

func (wp *WorkerPool) runWorker(ctx context.Context, cancel context.CancelFunc, id int, rows RowRange, out []core.Vec3, progress *progressTracker) (result workerResult) {
	start := time.Now()
	result.stats = WorkerStats{Worker: id, Rows: rows}

	defer func() {
		result.stats.Duration = time.Since(start)
		if r := recover(); r != nil {
			cancel()
			result.err = &WorkerError{Worker: id, Rows: rows, Cause: r}
			wp.logger.Errorf("worker %d: recovered from panic: %v", id, r)
		}
	}()

	wp.logger.Debugf("worker %d: rendering rows [%d, %d)", id, rows.Start, rows.End)
	sampler := core.NewSeededSampler(wp.seed + int64(id))

	stats, err := wp.rowRenderer.RenderRows(ctx, rows, out, sampler, progress)
	stats.Worker = id
	result.stats, result.err = stats, err

	wp.logger.Debugf("worker %d: finished %d of %d rows in %s", id, stats.Rendered, rows.Len(), time.Since(start))
	return result
}
