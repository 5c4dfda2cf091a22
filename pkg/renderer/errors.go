package renderer

import (
	"errors"
	"fmt"
)

var (
	ErrNoWorld     = errors.New("renderer: no world defined")
	ErrInterrupted = errors.New("renderer: interrupted while rendering")
)

// WorkerError reports a panic raised by a collaborator while a worker was
// rendering its rows. The whole render fails when any worker fails.
type WorkerError struct {
	Worker int
	Rows   RowRange
	Cause  any
}

func (e *WorkerError) Error() string {
	return fmt.Sprintf("renderer: worker %d failed on rows [%d, %d): %v", e.Worker, e.Rows.Start, e.Rows.End, e.Cause)
}

// Unwrap exposes the panic value when it was an error
func (e *WorkerError) Unwrap() error {
	if err, ok := e.Cause.(error); ok {
		return err
	}
	return nil
}
