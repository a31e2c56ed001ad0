package splitsearch

import (
	"fmt"
	"math"
	"runtime"
	"strings"
)

const (
	// DefaultExactnessThreshold is the largest pile size searched exactly.
	DefaultExactnessThreshold int64 = 1_000_000_000

	// DefaultIterationCap bounds the greedy fallback.
	DefaultIterationCap = 50

	// DefaultSplitCeiling is the saturation ceiling for split counts.
	DefaultSplitCeiling uint64 = math.MaxUint64

	// LegacySplitCeiling is the 32-bit ceiling older reports were clamped to.
	LegacySplitCeiling uint64 = math.MaxInt32
)

// DivisorRule decides when splitting into piles of size 1 counts.
type DivisorRule string

const (
	// RuleImplicit treats x = 1 as a candidate for every n > 1.
	RuleImplicit DivisorRule = "implicit"

	// RuleListed treats x = 1 as a candidate only when 1 is in the divisor set.
	RuleListed DivisorRule = "listed"

	// RuleExclude never treats x = 1 as a candidate.
	RuleExclude DivisorRule = "exclude"
)

// ParseDivisorRule accepts "implicit", "listed" or "exclude", case-insensitively.
func ParseDivisorRule(raw string) (DivisorRule, error) {
	rule := DivisorRule(strings.ToLower(strings.TrimSpace(raw)))
	if !rule.valid() {
		return "", fmt.Errorf("%w: %q", ErrBadDivisorRule, raw)
	}
	return rule, nil
}

func (r DivisorRule) valid() bool {
	switch r {
	case RuleImplicit, RuleListed, RuleExclude:
		return true
	default:
		return false
	}
}

// Options configures an Engine.
//
// ExactnessThreshold    – piles strictly larger than this use the fallback.
// IterationCap          – maximum number of greedy fallback steps.
// DivisorRule           – when x = 1 counts as a split (see package doc).
// SplitCeiling          – saturation ceiling for counts.
// Workers               – goroutines used by ComputeResults.
// Memoize               – cache sub-results per call; off only for testing.
type Options struct {
	ExactnessThreshold int64
	IterationCap       int
	DivisorRule        DivisorRule
	SplitCeiling       uint64
	Workers            int
	Memoize            bool
}

// Option represents a functional option for configuring an Engine.
type Option func(*Options)

func WithExactnessThreshold(threshold int64) Option {
	return func(o *Options) {
		o.ExactnessThreshold = threshold
	}
}

func WithIterationCap(limit int) Option {
	return func(o *Options) {
		o.IterationCap = limit
	}
}

func WithDivisorRule(rule DivisorRule) Option {
	return func(o *Options) {
		o.DivisorRule = rule
	}
}

// WithSingletonDivisor is shorthand for RuleImplicit (true) or RuleExclude
// (false).
func WithSingletonDivisor(allow bool) Option {
	if allow {
		return WithDivisorRule(RuleImplicit)
	}
	return WithDivisorRule(RuleExclude)
}

func WithSplitCeiling(ceiling uint64) Option {
	return func(o *Options) {
		o.SplitCeiling = ceiling
	}
}

func WithWorkers(n int) Option {
	return func(o *Options) {
		o.Workers = n
	}
}

// WithoutMemo disables memoization. Results are unchanged; only the running
// time grows.
func WithoutMemo() Option {
	return func(o *Options) {
		o.Memoize = false
	}
}

// DefaultOptions returns the defaults:
//   - ExactnessThreshold:    DefaultExactnessThreshold.
//   - IterationCap:          DefaultIterationCap.
//   - DivisorRule:           RuleImplicit.
//   - SplitCeiling:          DefaultSplitCeiling.
//   - Workers:               runtime.GOMAXPROCS(0).
//   - Memoize:               true.
func DefaultOptions() Options {
	return Options{
		ExactnessThreshold: DefaultExactnessThreshold,
		IterationCap:       DefaultIterationCap,
		DivisorRule:        RuleImplicit,
		SplitCeiling:       DefaultSplitCeiling,
		Workers:            runtime.GOMAXPROCS(0),
		Memoize:            true,
	}
}

func (o Options) validate() error {
	if o.ExactnessThreshold <= 0 {
		return ErrBadThreshold
	}
	if !o.DivisorRule.valid() {
		return ErrBadDivisorRule
	}
	if o.IterationCap <= 0 {
		return ErrBadIterationCap
	}
	if o.SplitCeiling == 0 {
		return ErrBadCeiling
	}
	if o.Workers <= 0 {
		return ErrBadWorkers
	}

	return nil
}
