package types

import (
	"context"

	"joblabel-engine/internal/domain"
)

type Result struct {
	Source  string
	Records []domain.RawRecord
}

type Fetcher interface {
	Name() string
	Fetch(ctx context.Context) (Result, error)
}
