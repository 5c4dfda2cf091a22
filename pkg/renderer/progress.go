package renderer

import (
	"sync/atomic"
	"time"

	"github.com/df07/go-scanline-raytracer/pkg/log"
)

// progressTracker counts rows left to render. Workers decrement it once per
// row; a reporter goroutine reads it on a timer.
type progressTracker struct {
	total     int
	remaining atomic.Int64
}

func newProgressTracker(totalRows int) *progressTracker {
	p := &progressTracker{total: totalRows}
	p.remaining.Store(int64(totalRows))
	return p
}

func (p *progressTracker) rowDone() {
	p.remaining.Add(-1)
}

func (p *progressTracker) Remaining() int {
	return int(p.remaining.Load())
}

// watch logs the remaining row count every interval until done is closed.
// A non-positive interval disables reporting.
func (p *progressTracker) watch(done <-chan struct{}, interval time.Duration, logger log.Logger) {
	if interval <= 0 {
		<-done
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			logger.Infof("scanlines remaining: %d of %d", p.Remaining(), p.total)
		}
	}
}
