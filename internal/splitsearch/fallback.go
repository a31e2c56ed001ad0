package splitsearch

// ApproximateMaxSplits is the greedy fallback for piles above the exactness
// threshold. It fixes the smallest divisor x > 1 that divides pileSize and
// counts how many times the running size can be divided by x while x still
// divides it and stays below it, up to IterationCap steps. The count is a
// lower-bound heuristic; it never searches other divisor choices.
func (e *Engine) ApproximateMaxSplits(pileSize int64, divisors []int64) uint64 {
	x := smallestProperDivisor(pileSize, normalizeDivisors(divisors))
	if x == 0 {
		return 0
	}

	var count uint64
	size := pileSize
	for i := 0; i < e.opts.IterationCap; i++ {
		if x >= size || size%x != 0 {
			break
		}
		size /= x
		count++
	}

	return count
}

// smallestProperDivisor expects sorted input and returns 0 when no divisor
// greater than 1 splits n.
func smallestProperDivisor(n int64, sorted []int64) int64 {
	for _, x := range sorted {
		if x >= n {
			return 0
		}
		if x > 1 && n%x == 0 {
			return x
		}
	}
	return 0
}
