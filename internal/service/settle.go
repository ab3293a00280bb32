package service

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// outcome is the settled result of one task
type outcome[T any] struct {
	Value T
	Err   error
}

// settleAll runs every task concurrently (at most limit at a time) and waits for all of them.
// A failing task never cancels the others; outcomes are returned in task order.
func settleAll[T any](ctx context.Context, limit int, tasks []func(context.Context) (T, error)) []outcome[T] {
	outcomes := make([]outcome[T], len(tasks))
	if len(tasks) == 0 {
		return outcomes
	}

	var g errgroup.Group
	if limit > 0 {
		g.SetLimit(limit)
	}

	for i, task := range tasks {
		g.Go(func() error {
			v, err := task(ctx)
			outcomes[i] = outcome[T]{Value: v, Err: err}
			return nil
		})
	}
	_ = g.Wait()

	return outcomes
}

// successes filters settled outcomes down to the values of tasks that succeeded
func successes[T any](outcomes []outcome[T]) []T {
	out := make([]T, 0, len(outcomes))
	for _, o := range outcomes {
		if o.Err == nil {
			out = append(out, o.Value)
		}
	}
	return out
}
