package splitsearch

import (
	"context"
	"testing"

	"github.com/bnema/stonesplit/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustPile(t *testing.T, size int64, divisors ...int64) domain.PileSpec {
	t.Helper()

	pile, err := domain.NewPileSpec(size, divisors)
	require.NoError(t, err)
	return pile
}

func TestComputeResultsPreservesInputOrder(t *testing.T) {
	t.Parallel()

	engine := newEngine(t, WithWorkers(4))

	piles := make([]domain.PileSpec, 0, 64)
	for i := int64(1); i <= 64; i++ {
		piles = append(piles, mustPile(t, i*6, 2, 3, 4))
	}

	results, err := engine.ComputeResults(context.Background(), piles)
	require.NoError(t, err)
	require.Len(t, results, len(piles))

	for i, result := range results {
		want, err := engine.ComputeResult(piles[i])
		require.NoError(t, err)
		assert.Equal(t, want, result, "pile %d", i)
	}
}

func TestComputeResultsMixesModes(t *testing.T) {
	t.Parallel()

	results, err := newEngine(t).ComputeResults(context.Background(), []domain.PileSpec{
		mustPile(t, 6, 2, 3),
		mustPile(t, 1<<40, 2, 3),
		mustPile(t, 12, 2, 3, 4),
	})
	require.NoError(t, err)
	require.Len(t, results, 3)

	assert.Equal(t, uint64(4), results[0].MaxSplits)
	assert.Equal(t, domain.ModeExact, results[0].Mode)
	assert.Equal(t, uint64(39), results[1].MaxSplits)
	assert.Equal(t, domain.ModeApproximate, results[1].Mode)
	assert.Equal(t, uint64(10), results[2].MaxSplits)
}

func TestComputeResultsEmptyBatch(t *testing.T) {
	t.Parallel()

	results, err := newEngine(t).ComputeResults(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestComputeResultsCancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newEngine(t).ComputeResults(ctx, []domain.PileSpec{mustPile(t, 6, 2, 3)})
	require.ErrorIs(t, err, context.Canceled)
}

func TestComputeResultsPropagatesInvalidPile(t *testing.T) {
	t.Parallel()

	_, err := newEngine(t).ComputeResults(context.Background(), []domain.PileSpec{
		mustPile(t, 6, 2, 3),
		{},
	})
	require.ErrorIs(t, err, domain.ErrInvalidPileSpec)
	assert.ErrorContains(t, err, "compute pile 2")
}
