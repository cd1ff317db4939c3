package fit

import (
	"context"
	"fmt"
	"sync"

	"github.com/arloliu/linfit/errs"
)

// FitEach fits independent sample sets in parallel.
//
// Results are returned in input order. At most Config.Concurrency fits run at
// once (see WithConcurrency). The first failing set aborts the batch and its
// error is returned wrapped with the set index. Cancelling ctx stops handing
// out new sets and returns ctx.Err(); a cancel that arrives after every set
// was handed out does not discard the completed results.
//
// Example:
//
//	results, err := fit.FitEach(ctx, runs, fit.WithConcurrency(4))
//	if err != nil {
//	    return err
//	}
//	for i, res := range results {
//	    fmt.Printf("run %d: %s\n", i, res.Formula())
//	}
func FitEach(ctx context.Context, sets []Samples, opts ...Option) ([]*Result, error) {
	if len(sets) == 0 {
		return nil, fmt.Errorf("%w: no sample sets provided", errs.ErrInvalidInput)
	}

	cfg, err := newConfig(opts...)
	if err != nil {
		return nil, err
	}

	return fitEach(ctx, sets, cfg, fitSamples)
}

func fitEach(ctx context.Context, sets []Samples, cfg *Config, fitFn func(Samples, *Config) (*Result, error)) ([]*Result, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		results  = make([]*Result, len(sets))
		jobs     = make(chan int)
		wg       sync.WaitGroup
		once     sync.Once
		firstErr error
	)

	workers := min(cfg.Concurrency, len(sets))
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				res, err := fitFn(sets[i], cfg)
				if err != nil {
					once.Do(func() {
						firstErr = fmt.Errorf("sample set %d: %w", i, err)
						cancel()
					})

					continue
				}
				results[i] = res
			}
		}()
	}

	cut := false
dispatch:
	for i := range sets {
		if ctx.Err() != nil {
			cut = true
			break
		}
		select {
		case <-ctx.Done():
			cut = true
			break dispatch
		case jobs <- i:
		}
	}
	close(jobs)
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	if cut {
		return nil, ctx.Err()
	}

	return results, nil
}
