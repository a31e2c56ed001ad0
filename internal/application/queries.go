package application

import "github.com/bnema/stonesplit/internal/domain"

type CheckResult struct {
	Source     string
	Valid      []domain.PileSpec
	Rejections []domain.Rejection
}

func (r CheckResult) OK() bool {
	return len(r.Rejections) == 0
}
