package splitsearch

import (
	"testing"

	"github.com/bnema/stonesplit/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEngine(t *testing.T, opts ...Option) *Engine {
	t.Helper()

	engine, err := New(opts...)
	require.NoError(t, err)
	return engine
}

func TestComputeMaxSplitsScenarios(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		size      int64
		divisors  []int64
		rule      DivisorRule
		want      uint64
	}{
		{name: "six by two and three", size: 6, divisors: []int64{2, 3}, rule: RuleImplicit, want: 4},
		{name: "six by two and three without singleton", size: 6, divisors: []int64{2, 3}, rule: RuleExclude, want: 1},
		{name: "twelve multi level", size: 12, divisors: []int64{2, 3, 4}, rule: RuleImplicit, want: 10},
		{name: "twelve multi level without singleton", size: 12, divisors: []int64{2, 3, 4}, rule: RuleExclude, want: 4},
		{name: "listed one ignored without singleton", size: 6, divisors: []int64{1}, rule: RuleExclude, want: 0},
		{name: "listed one with singleton", size: 6, divisors: []int64{1}, rule: RuleImplicit, want: 1},
		{name: "prime pile only splits to singletons", size: 7, divisors: []int64{2, 3}, rule: RuleImplicit, want: 1},
		{name: "divisor equal to pile is not a split", size: 4, divisors: []int64{4}, rule: RuleExclude, want: 0},
		{name: "divisor larger than pile", size: 4, divisors: []int64{8}, rule: RuleExclude, want: 0},
		{name: "unsorted duplicate divisors", size: 12, divisors: []int64{4, 3, 2, 4}, rule: RuleImplicit, want: 10},
		{name: "chain of powers", size: 16, divisors: []int64{2, 4, 8}, rule: RuleExclude, want: 7},
		{name: "listed rule with one listed", size: 6, divisors: []int64{1, 2, 3}, rule: RuleListed, want: 4},
		{name: "listed rule without one", size: 6, divisors: []int64{2, 3}, rule: RuleListed, want: 1},
		{name: "listed rule one listed last", size: 12, divisors: []int64{4, 3, 2, 1}, rule: RuleListed, want: 10},
		{name: "listed rule only one", size: 6, divisors: []int64{1}, rule: RuleListed, want: 1},
		{name: "listed rule prime pile", size: 7, divisors: []int64{2, 3}, rule: RuleListed, want: 0},
		{name: "exclude rule ignores listed one", size: 6, divisors: []int64{1, 2, 3}, rule: RuleExclude, want: 1},
		{name: "implicit rule with listed one", size: 6, divisors: []int64{1, 2, 3}, rule: RuleImplicit, want: 4},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			engine := newEngine(t, WithDivisorRule(tc.rule))

			got, err := engine.ComputeMaxSplits(tc.size, tc.divisors)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestComputeMaxSplitsBaseCases(t *testing.T) {
	t.Parallel()

	for _, rule := range []DivisorRule{RuleImplicit, RuleListed, RuleExclude} {
		engine := newEngine(t, WithDivisorRule(rule))

		for _, n := range []int64{-3, 0, 1} {
			got, err := engine.ComputeMaxSplits(n, []int64{1, 2, 3})
			require.NoError(t, err)
			assert.Zero(t, got, "size %d rule %s", n, rule)
		}

		for _, n := range []int64{2, 6, 97, 1 << 20} {
			got, err := engine.ComputeMaxSplits(n, nil)
			require.NoError(t, err)
			assert.Zero(t, got, "empty divisors size %d rule %s", n, rule)
		}
	}
}

func TestComputeMaxSplitsDeterministic(t *testing.T) {
	t.Parallel()

	engine := newEngine(t)
	first, err := engine.ComputeMaxSplits(720720, []int64{2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13})
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		got, err := engine.ComputeMaxSplits(720720, []int64{2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13})
		require.NoError(t, err)
		assert.Equal(t, first, got)
	}
}

func TestComputeMaxSplitsMemoTransparency(t *testing.T) {
	t.Parallel()

	divisors := []int64{2, 3, 4, 6, 8, 12, 16, 24}
	for _, rule := range []DivisorRule{RuleImplicit, RuleListed, RuleExclude} {
		memoized := newEngine(t, WithDivisorRule(rule))
		plain := newEngine(t, WithDivisorRule(rule), WithoutMemo())

		for n := int64(1); n <= 96; n++ {
			want, err := plain.ComputeMaxSplits(n, divisors)
			require.NoError(t, err)
			got, err := memoized.ComputeMaxSplits(n, divisors)
			require.NoError(t, err)
			assert.Equal(t, want, got, "size %d rule %s", n, rule)
		}
	}
}

func TestComputeMaxSplitsMonotonicInDivisorSet(t *testing.T) {
	t.Parallel()

	full := []int64{2, 3, 4, 6}
	for _, rule := range []DivisorRule{RuleImplicit, RuleListed, RuleExclude} {
		engine := newEngine(t, WithDivisorRule(rule))

		for mask := 0; mask < 1<<len(full); mask++ {
			var subset []int64
			for i, d := range full {
				if mask&(1<<i) != 0 {
					subset = append(subset, d)
				}
			}

			for n := int64(1); n <= 72; n++ {
				small, err := engine.ComputeMaxSplits(n, subset)
				require.NoError(t, err)
				large, err := engine.ComputeMaxSplits(n, full)
				require.NoError(t, err)
				assert.LessOrEqual(t, small, large, "size %d subset %v rule %s", n, subset, rule)
			}
		}
	}
}

func TestComputeMaxSplitsSaturatesAtCeiling(t *testing.T) {
	t.Parallel()

	size := int64(1) << 40
	pile, err := domain.NewPileSpec(size, []int64{2})
	require.NoError(t, err)

	legacy := newEngine(t, WithExactnessThreshold(1<<62), WithSplitCeiling(LegacySplitCeiling))
	result, err := legacy.ComputeResult(pile)
	require.NoError(t, err)
	assert.Equal(t, domain.ModeExact, result.Mode)
	assert.Equal(t, LegacySplitCeiling, result.MaxSplits)
	assert.True(t, result.Saturated)
	assert.False(t, result.IsExact())

	wide := newEngine(t, WithExactnessThreshold(1<<62))
	result, err = wide.ComputeResult(pile)
	require.NoError(t, err)
	assert.Equal(t, uint64(1)+uint64(1)<<39, result.MaxSplits)
	assert.False(t, result.Saturated)
}

func TestComputeResultExactBelowThreshold(t *testing.T) {
	t.Parallel()

	pile, err := domain.NewPileSpec(6, []int64{2, 3})
	require.NoError(t, err)

	result, err := newEngine(t).ComputeResult(pile)
	require.NoError(t, err)
	assert.Equal(t, domain.SplitResult{Pile: pile, MaxSplits: 4, Mode: domain.ModeExact}, result)
}

func TestComputeResultRejectsUnvalidatedPile(t *testing.T) {
	t.Parallel()

	_, err := newEngine(t).ComputeResult(domain.PileSpec{})
	require.ErrorIs(t, err, domain.ErrInvalidPileSpec)
}

func TestSearchReportsInvariantViolation(t *testing.T) {
	t.Parallel()

	s := &search{divisors: []int64{2, 3}, singleton: countsSingleton(RuleImplicit, []int64{2, 3}), ceiling: 0, memo: map[int64]uint64{}}
	_, err := s.maxSplits(6)
	require.ErrorIs(t, err, ErrInvariantViolation)
}

func TestNewRejectsBadOptions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		opt  Option
		want error
	}{
		{name: "zero threshold", opt: WithExactnessThreshold(0), want: ErrBadThreshold},
		{name: "negative threshold", opt: WithExactnessThreshold(-1), want: ErrBadThreshold},
		{name: "zero iteration cap", opt: WithIterationCap(0), want: ErrBadIterationCap},
		{name: "zero ceiling", opt: WithSplitCeiling(0), want: ErrBadCeiling},
		{name: "zero workers", opt: WithWorkers(0), want: ErrBadWorkers},
		{name: "unknown divisor rule", opt: WithDivisorRule("sometimes"), want: ErrBadDivisorRule},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			engine, err := New(tc.opt)
			assert.Nil(t, engine)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestNormalizeDivisors(t *testing.T) {
	assert.Equal(t, []int64{1, 2, 5}, normalizeDivisors([]int64{5, 0, 2, -7, 1, 5, 2}))
	assert.Empty(t, normalizeDivisors(nil))
}

func TestParseDivisorRule(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw     string
		want    DivisorRule
		wantErr bool
	}{
		{raw: "implicit", want: RuleImplicit},
		{raw: " Listed ", want: RuleListed},
		{raw: "EXCLUDE", want: RuleExclude},
		{raw: "", wantErr: true},
		{raw: "always", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := ParseDivisorRule(tt.raw)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrBadDivisorRule)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWithSingletonDivisorMapsToRule(t *testing.T) {
	t.Parallel()

	assert.Equal(t, RuleImplicit, newEngine(t, WithSingletonDivisor(true)).Options().DivisorRule)
	assert.Equal(t, RuleExclude, newEngine(t, WithSingletonDivisor(false)).Options().DivisorRule)
}
