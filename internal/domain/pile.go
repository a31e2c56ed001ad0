package domain

import (
	"fmt"
	"slices"
)

// PileSpec is a validated pile: its initial size and the divisors it may be split by.
// The zero value is not valid; build one with NewPileSpec.
type PileSpec struct {
	initialSize int64
	divisors    []int64
}

func NewPileSpec(initialSize int64, divisors []int64) (PileSpec, error) {
	if initialSize <= 0 {
		return PileSpec{}, fmt.Errorf("%w: initial size must be positive, got %d", ErrInvalidPileSpec, initialSize)
	}
	if len(divisors) == 0 {
		return PileSpec{}, fmt.Errorf("%w: divisor set is empty", ErrInvalidPileSpec)
	}

	seen := make(map[int64]struct{}, len(divisors))
	for _, d := range divisors {
		if d <= 0 {
			return PileSpec{}, fmt.Errorf("%w: divisors must be positive, got %d", ErrInvalidPileSpec, d)
		}
		if _, ok := seen[d]; ok {
			return PileSpec{}, fmt.Errorf("%w: duplicate divisor %d", ErrInvalidPileSpec, d)
		}
		seen[d] = struct{}{}
	}

	return PileSpec{
		initialSize: initialSize,
		divisors:    slices.Clone(divisors),
	}, nil
}

func (p PileSpec) InitialSize() int64 {
	return p.initialSize
}

// Divisors returns a copy of the divisor set in input order.
func (p PileSpec) Divisors() []int64 {
	return slices.Clone(p.divisors)
}

func (p PileSpec) IsZero() bool {
	return p.initialSize == 0 && len(p.divisors) == 0
}

func (p PileSpec) String() string {
	return fmt.Sprintf("%d %v", p.initialSize, p.divisors)
}
