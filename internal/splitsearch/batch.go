package splitsearch

import (
	"context"
	"fmt"

	"github.com/bnema/stonesplit/internal/domain"
	"golang.org/x/sync/errgroup"
)

// ComputeResults computes every pile on a bounded worker pool and returns
// the results in input order. Piles are expected to be validated already; an
// invalid pile or an invariant violation aborts the whole batch.
func (e *Engine) ComputeResults(ctx context.Context, piles []domain.PileSpec) ([]domain.SplitResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	results := make([]domain.SplitResult, len(piles))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.opts.Workers)

	for i, pile := range piles {
		if gctx.Err() != nil {
			break
		}

		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			result, err := e.ComputeResult(pile)
			if err != nil {
				return fmt.Errorf("compute pile %d: %w", i+1, err)
			}
			results[i] = result
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return results, nil
}
