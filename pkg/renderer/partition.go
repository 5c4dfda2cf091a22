package renderer

// RowRange is a half-open range of image rows [Start, End)
type RowRange struct {
	Start int
	End   int
}

// Len returns the number of rows in the range
func (r RowRange) Len() int {
	return r.End - r.Start
}

// PartitionRows splits height rows into contiguous ranges, one per worker.
// Every worker gets height/workers rows and the last worker also takes the
// remainder. The worker count is clamped to [1, height] so no range is empty.
func PartitionRows(height, workers int) []RowRange {
	if height < 1 {
		return nil
	}
	workers = min(max(workers, 1), height)

	rowsPerWorker := height / workers
	ranges := make([]RowRange, workers)
	for t := range ranges {
		start := t * rowsPerWorker
		end := start + rowsPerWorker
		if t == workers-1 {
			end = height
		}
		ranges[t] = RowRange{Start: start, End: end}
	}
	return ranges
}
