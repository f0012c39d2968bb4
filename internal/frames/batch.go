package frames

import (
	"context"
	"log/slog"
	"sync"
)

// transformJob is a unit of work for the batch pool.
type transformJob struct {
	index int
	state State
}

// transformResult is the output of a single state transform.
type transformResult struct {
	index int
	state State
	err   error
}

// BatchTransformer transforms slices of state vectors to a common target
// frame across a fixed pool of goroutines. Every transform is a pure
// function of its inputs, so the pool needs no coordination beyond the
// channels.
type BatchTransformer struct {
	workers int
	logger  *slog.Logger
}

// NewBatchTransformer creates a pool with the given number of workers.
func NewBatchTransformer(workers int, logger *slog.Logger) *BatchTransformer {
	if workers < 1 {
		workers = 1
	}
	return &BatchTransformer{
		workers: workers,
		logger:  logger,
	}
}

// TransformBatch transforms all states into the target frame. Results keep
// the input order. Failed transforms are logged and skipped; the counts of
// successes and failures are returned alongside the surviving states.
func (bt *BatchTransformer) TransformBatch(ctx context.Context, states []State, target Frame, opts ...Option) ([]State, int, int) {
	if len(states) == 0 {
		return nil, 0, 0
	}

	jobs := make(chan transformJob, bt.workers*2)
	results := make(chan transformResult, bt.workers*2)

	var wg sync.WaitGroup
	for i := 0; i < bt.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for job := range jobs {
				out, err := Transform(job.state, target, opts...)
				select {
				case results <- transformResult{index: job.index, state: out, err: err}:
				case <-ctx.Done():
					return
				}
			}
		}()
	}

	go func() {
		defer close(jobs)
		for i, s := range states {
			select {
			case jobs <- transformJob{index: i, state: s}:
			case <-ctx.Done():
				return
			}
		}
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	out := make([]State, len(states))
	ok := make([]bool, len(states))
	var successCount, errorCount int
	for result := range results {
		if result.err != nil {
			errorCount++
			bt.logger.Warn("state transform failed",
				"index", result.index,
				"error", result.err,
			)
			continue
		}
		successCount++
		out[result.index] = result.state
		ok[result.index] = true
	}

	kept := make([]State, 0, successCount)
	for i, s := range out {
		if ok[i] {
			kept = append(kept, s)
		}
	}
	return kept, successCount, errorCount
}
