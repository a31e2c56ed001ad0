package domain

import (
	"strconv"
	"strings"
	"time"
)

// PileRecord is one input record. Exactly one of Pile and Err is set.
type PileRecord struct {
	Line int
	Raw  string
	Pile PileSpec
	Err  error
}

type Rejection struct {
	Line   int
	Raw    string
	Reason string
}

type BatchReport struct {
	Source     string
	Results    []SplitResult
	Rejections []Rejection
	StartedAt  time.Time
	FinishedAt time.Time
}

// FinalResult concatenates every MaxSplits in input order.
func (r BatchReport) FinalResult() string {
	var b strings.Builder
	for _, result := range r.Results {
		b.WriteString(strconv.FormatUint(result.MaxSplits, 10))
	}
	return b.String()
}

func (r BatchReport) ApproximateCount() int {
	count := 0
	for _, result := range r.Results {
		if result.Mode == ModeApproximate {
			count++
		}
	}
	return count
}

func (r BatchReport) SaturatedCount() int {
	count := 0
	for _, result := range r.Results {
		if result.Saturated {
			count++
		}
	}
	return count
}
