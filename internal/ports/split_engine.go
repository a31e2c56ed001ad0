package ports

import (
	"context"

	"github.com/bnema/stonesplit/internal/domain"
)

type SplitEngine interface {
	ComputeResults(ctx context.Context, piles []domain.PileSpec) ([]domain.SplitResult, error)
}
