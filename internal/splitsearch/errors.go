package splitsearch

import "errors"

// Sentinel errors returned by the split search engine.
var (
	// ErrBadThreshold indicates a non-positive exactness threshold.
	ErrBadThreshold = errors.New("splitsearch: exactness threshold must be positive")

	// ErrBadIterationCap indicates a non-positive fallback iteration cap.
	ErrBadIterationCap = errors.New("splitsearch: iteration cap must be positive")

	// ErrBadCeiling indicates a zero split ceiling.
	ErrBadCeiling = errors.New("splitsearch: split ceiling must be positive")

	// ErrBadDivisorRule indicates an unknown divisor rule.
	ErrBadDivisorRule = errors.New("splitsearch: divisor rule must be implicit, listed or exclude")

	// ErrBadWorkers indicates a non-positive worker count.
	ErrBadWorkers = errors.New("splitsearch: worker count must be positive")

	// ErrInvariantViolation indicates a defect in the engine itself, such as a
	// memo entry outside the representable range. It is never recovered.
	ErrInvariantViolation = errors.New("splitsearch: engine invariant violated")
)
