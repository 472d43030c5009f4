package overlay

import (
	"context"

	"github.com/gogpu/overlay/internal/parallel"
)

// Job is one selection request: an overlay of A and B, or of A alone when B
// is nil.
type Job struct {
	Operation     OverlayType
	A, B          Geometry
	Intersections RingSet
}

// Select runs the selection described by the job.
func (j Job) Select(opts ...Option) SelectionMap {
	if j.B == nil {
		return SelectRingsSingle(j.Operation, j.A, j.Intersections, opts...)
	}
	return SelectRings(j.Operation, j.A, j.B, j.Intersections, opts...)
}

// SelectBatch runs every job on a pool of workers and returns the results in
// job order. Jobs share no state, so each runs independently. If workers is
// 0 or negative, GOMAXPROCS is used.
//
// Jobs not yet started when ctx is canceled are skipped and ctx.Err() is
// returned. Classifiers and observers passed in opts are called
// concurrently.
func SelectBatch(ctx context.Context, jobs []Job, workers int, opts ...Option) ([]SelectionMap, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(jobs) == 0 {
		return nil, nil
	}

	pool := parallel.NewWorkerPool(min(workers, len(jobs)))
	defer pool.Close()

	results := make([]SelectionMap, len(jobs))
	tasks := make([]func(), len(jobs))
	for i := range jobs {
		tasks[i] = func() {
			if ctx.Err() != nil {
				return
			}
			results[i] = jobs[i].Select(opts...)
		}
	}
	pool.ExecuteAll(tasks)

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}
