package domain

import "errors"

var (
	ErrInvalidPileSpec = errors.New("invalid pile spec")
	ErrMalformedRecord = errors.New("malformed record")
	ErrReportNotFound  = errors.New("report not found")
)
