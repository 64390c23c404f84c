package repository

import (
	"context"

	"WebHub/internal/domain/models"
)

//go:generate mockgen -package=usecase_test -destination=../../usecase/mock_repository_test.go -source=interfaces.go

// Journal appends lookup events to a backend.
type Journal interface {
	Append(ctx context.Context, e *models.LookupEvent) error
	Close() error
}

// JournalReader is implemented by journals that can list what they stored.
type JournalReader interface {
	Recent(ctx context.Context, n int) ([]models.LookupEvent, error)
}

// Metrics records lookup, upstream and journal outcomes.
type Metrics interface {
	RecordLookup(outcome string)
	RecordUpstream(api string, seconds float64, err error)
	RecordJournalWrite(backend string, err error)
}
