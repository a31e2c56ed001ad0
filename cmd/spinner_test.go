package cmd

import (
	"errors"
	"testing"
	"time"

	"github.com/bnema/stonesplit/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBatchSpinnerModelShowsSourceWhileRunning(t *testing.T) {
	m := newBatchSpinnerModel("Input/input.txt", nil)

	assert.Contains(t, m.View(), "Computing max splits for Input/input.txt...")
}

func TestBatchSpinnerModelSummarisesFinishedBatch(t *testing.T) {
	started := time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC)
	pile, err := domain.NewPileSpec(6, []int64{2, 3})
	require.NoError(t, err)

	report := domain.BatchReport{
		Source:     "piles.txt",
		Results:    []domain.SplitResult{{Pile: pile, MaxSplits: 4, Mode: domain.ModeExact}, {Pile: pile, MaxSplits: 1, Mode: domain.ModeApproximate}},
		Rejections: []domain.Rejection{{Line: 3, Raw: "x", Reason: "malformed record"}},
		StartedAt:  started,
		FinishedAt: started.Add(1500 * time.Millisecond),
	}

	updated, cmd := newBatchSpinnerModel("piles.txt", nil).Update(batchDoneMsg{report: report})
	require.NotNil(t, cmd)

	m, ok := updated.(batchSpinnerModel)
	require.True(t, ok)
	assert.True(t, m.done)
	assert.Equal(t, "Computed 2 piles from piles.txt, 1 rejected, 1 approximate in 1.5s\n", m.View())
}

func TestBatchSpinnerModelHidesSummaryOnError(t *testing.T) {
	updated, _ := newBatchSpinnerModel("piles.txt", nil).Update(batchDoneMsg{err: errors.New("boom")})

	m, ok := updated.(batchSpinnerModel)
	require.True(t, ok)
	assert.Empty(t, m.View())
	assert.EqualError(t, m.err, "boom")
}

func TestBatchSummaryWithoutTiming(t *testing.T) {
	assert.Equal(t, "Computed 0 piles from in.txt", batchSummary(domain.BatchReport{Source: "in.txt"}))
}
