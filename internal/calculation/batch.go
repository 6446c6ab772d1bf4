package calculation

import (
	"context"
	"fmt"
)

// DefaultBatchSize is the number of work items processed between progress reports.
const DefaultBatchSize = 100

// ProgressFunc receives the stage name and completed/total work items after each batch.
type ProgressFunc func(stage string, done, total int)

// BatchRunner executes work items synchronously in fixed-size chunks. The
// context is consulted only between chunks; a chunk always runs to completion.
type BatchRunner struct {
	Stage    string
	Size     int
	Progress ProgressFunc
	Logger   Logger
}

// Run invokes step for every index in [0, total). The first error aborts the run.
func (b BatchRunner) Run(ctx context.Context, total int, step func(i int) error) error {
	size := b.Size
	if size <= 0 {
		size = DefaultBatchSize
	}
	logger := WithPrefix(b.Logger, b.Stage)

	for start := 0; start < total; start += size {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("%s stopped after %d of %d: %w", b.Stage, start, total, err)
		}
		end := min(start+size, total)
		for i := start; i < end; i++ {
			if err := step(i); err != nil {
				return fmt.Errorf("%s item %d: %w", b.Stage, i, err)
			}
		}
		logger.Debugf("%d/%d complete", end, total)
		if b.Progress != nil {
			b.Progress(b.Stage, end, total)
		}
	}
	return nil
}
