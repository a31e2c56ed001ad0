package splitsearch

import "math/bits"

// saturatingMul returns a*b, or ceiling when the product exceeds it. The
// second result reports whether clamping happened.
func saturatingMul(a, b, ceiling uint64) (uint64, bool) {
	hi, lo := bits.Mul64(a, b)
	if hi != 0 || lo > ceiling {
		return ceiling, true
	}
	return lo, false
}

func saturatingAdd(a, b, ceiling uint64) (uint64, bool) {
	sum, carry := bits.Add64(a, b, 0)
	if carry != 0 || sum > ceiling {
		return ceiling, true
	}
	return sum, false
}

// splitTotal is 1 + piles*childSplits under saturation.
func splitTotal(piles, childSplits, ceiling uint64) uint64 {
	product, _ := saturatingMul(piles, childSplits, ceiling)
	total, _ := saturatingAdd(1, product, ceiling)
	return total
}
