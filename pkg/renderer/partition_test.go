package renderer

import (
	"fmt"
	"testing"
)

func TestPartitionRows_CoversEveryRowOnce(t *testing.T) {
	for _, workers := range []int{1, 2, 3, 7} {
		for _, height := range []int{10, 100, 101} {
			t.Run(fmt.Sprintf("workers=%d/height=%d", workers, height), func(t *testing.T) {
				ranges := PartitionRows(height, workers)
				if len(ranges) != workers {
					t.Fatalf("Expected %d ranges, got %d", workers, len(ranges))
				}

				seen := make([]int, height)
				next := 0
				for _, r := range ranges {
					if r.Start != next {
						t.Errorf("Expected range to start at %d, got %d", next, r.Start)
					}
					if r.Len() <= 0 {
						t.Errorf("Expected non-empty range, got %+v", r)
					}
					for row := r.Start; row < r.End; row++ {
						seen[row]++
					}
					next = r.End
				}

				for row, count := range seen {
					if count != 1 {
						t.Errorf("Row %d covered %d times", row, count)
					}
				}
			})
		}
	}
}

func TestPartitionRows_LastWorkerTakesRemainder(t *testing.T) {
	ranges := PartitionRows(101, 7)

	for _, r := range ranges[:6] {
		if r.Len() != 14 {
			t.Errorf("Expected 14 rows, got %d in %+v", r.Len(), r)
		}
	}
	if last := ranges[6]; last != (RowRange{Start: 84, End: 101}) {
		t.Errorf("Expected last range [84, 101), got %+v", last)
	}
}

func TestPartitionRows_ClampsWorkers(t *testing.T) {
	tests := []struct {
		name     string
		height   int
		workers  int
		expected int
	}{
		{"more workers than rows", 3, 8, 3},
		{"zero workers", 10, 0, 1},
		{"negative workers", 10, -4, 1},
		{"empty image", 0, 4, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := len(PartitionRows(tt.height, tt.workers)); got != tt.expected {
				t.Errorf("Expected %d ranges, got %d", tt.expected, got)
			}
		})
	}
}

func TestResolveWorkers(t *testing.T) {
	if got := resolveWorkers(0, 1); got != 1 {
		t.Errorf("Expected one worker for a single row, got %d", got)
	}
	if got := resolveWorkers(-1, 1<<15); got < 1 {
		t.Errorf("Expected at least one worker, got %d", got)
	}
	if got := resolveWorkers(4, 100); got != 4 {
		t.Errorf("Expected 4 workers, got %d", got)
	}
}
