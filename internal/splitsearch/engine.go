package splitsearch

import (
	"fmt"
	"slices"

	"github.com/bnema/stonesplit/internal/domain"
)

// Engine runs the maximum-split search. Build it with New.
type Engine struct {
	opts Options
}

func New(opts ...Option) (*Engine, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.validate(); err != nil {
		return nil, err
	}

	return &Engine{opts: o}, nil
}

func (e *Engine) Options() Options {
	return e.opts
}

// ComputeMaxSplits runs the exact search for pileSize under divisors. It does
// not apply the exactness threshold; ComputeResult does.
func (e *Engine) ComputeMaxSplits(pileSize int64, divisors []int64) (uint64, error) {
	candidates := normalizeDivisors(divisors)
	if pileSize <= 1 || len(candidates) == 0 {
		return 0, nil
	}

	s := &search{
		divisors:  candidates,
		singleton: countsSingleton(e.opts.DivisorRule, candidates),
		ceiling:   e.opts.SplitCeiling,
	}
	if e.opts.Memoize {
		s.memo = make(map[int64]uint64, len(candidates)+1)
	}

	return s.maxSplits(pileSize)
}

// ComputeResult computes the tagged result for one pile, switching to the
// greedy fallback above the exactness threshold.
func (e *Engine) ComputeResult(pile domain.PileSpec) (domain.SplitResult, error) {
	if _, err := domain.NewPileSpec(pile.InitialSize(), pile.Divisors()); err != nil {
		return domain.SplitResult{}, err
	}

	size := pile.InitialSize()
	if size > e.opts.ExactnessThreshold {
		return domain.SplitResult{
			Pile:      pile,
			MaxSplits: e.ApproximateMaxSplits(size, pile.Divisors()),
			Mode:      domain.ModeApproximate,
		}, nil
	}

	count, err := e.ComputeMaxSplits(size, pile.Divisors())
	if err != nil {
		return domain.SplitResult{}, fmt.Errorf("search pile %d: %w", size, err)
	}

	return domain.SplitResult{
		Pile:      pile,
		MaxSplits: count,
		Mode:      domain.ModeExact,
		Saturated: count == e.opts.SplitCeiling,
	}, nil
}

// search holds the state of one top-level computation. The memo is keyed by
// size alone, so a search must never outlive its divisor set.
type search struct {
	divisors  []int64
	singleton bool
	ceiling   uint64
	memo      map[int64]uint64
}

func (s *search) maxSplits(n int64) (uint64, error) {
	if n <= 1 {
		return 0, nil
	}
	if s.memo != nil {
		if cached, ok := s.memo[n]; ok {
			return cached, nil
		}
	}

	var best uint64
	if s.singleton {
		// n piles of one: a single split, nothing left to split below it.
		best = 1
	}

	for _, x := range s.divisors {
		if x >= n {
			break
		}
		if x <= 1 || n%x != 0 {
			continue
		}

		child, err := s.maxSplits(x)
		if err != nil {
			return 0, err
		}

		if total := splitTotal(uint64(n/x), child, s.ceiling); total > best {
			best = total
		}
	}

	if best > s.ceiling {
		return 0, fmt.Errorf("%w: size %d resolved to %d above ceiling %d", ErrInvariantViolation, n, best, s.ceiling)
	}

	if s.memo != nil {
		if _, ok := s.memo[n]; ok {
			return 0, fmt.Errorf("%w: size %d resolved twice", ErrInvariantViolation, n)
		}
		s.memo[n] = best
	}

	return best, nil
}

// countsSingleton reports whether x = 1 is a candidate under rule for the
// normalized divisor set.
func countsSingleton(rule DivisorRule, divisors []int64) bool {
	switch rule {
	case RuleImplicit:
		return true
	case RuleListed:
		return len(divisors) > 0 && divisors[0] == 1
	default:
		return false
	}
}

// normalizeDivisors returns the positive divisors sorted ascending without
// duplicates.
func normalizeDivisors(divisors []int64) []int64 {
	out := make([]int64, 0, len(divisors))
	for _, d := range divisors {
		if d > 0 {
			out = append(out, d)
		}
	}
	slices.Sort(out)
	return slices.Compact(out)
}
