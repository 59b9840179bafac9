package dynamo

import (
	"context"
	"sync"
)

// RunAll runs every runner on its own goroutine and returns the results in
// input order. Runners must not share mutable state.
func RunAll(ctx context.Context, runners []Runner) ([]*Result, error) {
	results := make([]*Result, len(runners))
	errs := make([]error, len(runners))

	var wg sync.WaitGroup
	for i, r := range runners {
		wg.Add(1)
		go func(idx int, r Runner) {
			defer wg.Done()
			results[idx], errs[idx] = r.Run(ctx)
		}(i, r)
	}

	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return results, nil
}

// RunEach runs the runners one after another, stopping at the first error.
func RunEach(ctx context.Context, runners []Runner) ([]*Result, error) {
	results := make([]*Result, 0, len(runners))
	for _, r := range runners {
		res, err := r.Run(ctx)
		if err != nil {
			return results, err
		}
		results = append(results, res)
	}
	return results, nil
}
