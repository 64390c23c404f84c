package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"WebHub/internal/domain/models"
	drepo "WebHub/internal/domain/repository"
	"WebHub/pkg/logger"
)

// JournalRecorder writes lookup events to the configured journal backend.
// A nil journal (backend "none") turns Record into a no-op.
type JournalRecorder struct {
	journal drepo.Journal
	metrics drepo.Metrics
	log     *logger.Logger
	backend string
	timeout time.Duration
}

// NewJournalRecorder creates a new JournalRecorder instance.
func NewJournalRecorder(
	journal drepo.Journal,
	metrics drepo.Metrics,
	log *logger.Logger,
	backend string,
	timeout time.Duration,
) *JournalRecorder {
	if log == nil {
		log = logger.NewNop()
	}
	if timeout <= 0 {
		timeout = 2 * time.Second
	}
	return &JournalRecorder{
		journal: journal,
		metrics: metrics,
		log:     log,
		backend: backend,
		timeout: timeout,
	}
}

// Backend names the journal backend in use.
func (r *JournalRecorder) Backend() string { return r.backend }

// Record appends e. The write outlives the caller's cancellation but not the
// recorder's timeout. Failures are logged and counted, then returned.
func (r *JournalRecorder) Record(ctx context.Context, e *models.LookupEvent) error {
	if r == nil || r.journal == nil {
		return nil
	}
	if e == nil {
		return fmt.Errorf("lookup event is nil")
	}

	wctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), r.timeout)
	defer cancel()

	err := r.journal.Append(wctx, e)
	if r.metrics != nil {
		r.metrics.RecordJournalWrite(r.backend, err)
	}
	if err != nil {
		r.log.Error("journal write failed",
			logger.String("backend", r.backend),
			logger.String("outcome", e.Outcome),
			logger.Error(err),
		)
		return fmt.Errorf("journal %s: %w", r.backend, err)
	}
	return nil
}

// Recent lists the newest n events when the backend supports reads.
func (r *JournalRecorder) Recent(ctx context.Context, n int) ([]models.LookupEvent, error) {
	if r == nil || r.journal == nil {
		return nil, models.ErrJournalNotReadable
	}
	reader, ok := r.journal.(drepo.JournalReader)
	if !ok {
		return nil, models.ErrJournalNotReadable
	}
	events, err := reader.Recent(ctx, n)
	if err != nil {
		return nil, fmt.Errorf("recent lookups: %w", err)
	}
	return events, nil
}

// Close closes the underlying journal if available.
func (r *JournalRecorder) Close() error {
	if r == nil || r.journal == nil {
		return nil
	}
	if err := r.journal.Close(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
