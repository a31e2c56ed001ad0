// Package splitsearch computes the maximum number of split operations for a
// pile of indivisible units under a fixed set of allowed divisors.
//
// A pile of size n may be split by a divisor x when x < n and n mod x = 0.
// The split yields n/x piles of size x and counts once, no matter how many
// child piles it produces. Every child is then split on its own, so a choice
// of x contributes
//
//	total(x) = 1 + (n/x) * maxSplits(x)
//
// and the engine returns the maximum over all valid x (0 when none exists or
// n ≤ 1).
//
// Divisor-validity rule (Options.DivisorRule):
//
//   - RuleImplicit (default): splitting into n singleton piles (x = 1) is a
//     candidate for every n > 1, whether or not 1 is listed. It contributes
//     exactly one split.
//   - RuleListed: x = 1 is a candidate only when 1 is in the divisor set.
//     This is the legacy behaviour: 6 [2,3] gives 1, 6 [1,2,3] gives 4.
//   - RuleExclude: x ≤ 1 is never a candidate, even when 1 is listed.
//
// Every rule returns 0 for an empty divisor set.
//
// Complexity:
//
//	– Every child size is a member of the divisor set, so the memoized search
//	  visits at most |D|+1 distinct sizes and does O(|D|²) work per pile.
//	– Recursion depth is bounded by |D|+1 because sizes strictly decrease.
//	– Without memoization (WithoutMemo) the search is exponential in |D|.
//
// Saturation:
//
// Split counts compound multiplicatively. All arithmetic on counts is
// saturating: a product or sum that would exceed the configured ceiling
// (math.MaxUint64 unless WithSplitCeiling lowers it) is clamped to the
// ceiling. A result equal to the ceiling means "at least this many" and is
// reported with SplitResult.Saturated set.
//
// Exactness boundary:
//
// Piles larger than the exactness threshold (DefaultExactnessThreshold unless
// WithExactnessThreshold says otherwise) are not searched. ComputeResult
// hands them to the greedy fallback, ApproximateMaxSplits, which always
// divides by the smallest usable divisor greater than 1, for at most
// IterationCap steps. That value is a lower-bound heuristic, not an estimate
// of the optimum, and is tagged domain.ModeApproximate.
//
// Concurrency:
//
// Engine is immutable after New and safe for concurrent use. Each top-level
// call owns its memo table. ComputeResults spreads a batch over a bounded
// worker pool and keeps results in input order.
//
// Errors (sentinel):
//
//	– ErrBadThreshold, ErrBadIterationCap, ErrBadCeiling, ErrBadWorkers,
//	  ErrBadDivisorRule from New.
//	– ErrInvariantViolation when the search detects an internal defect.
//	– domain.ErrInvalidPileSpec when ComputeResult receives an unvalidated pile.
package splitsearch
