package di

import (
	"errors"

	"WebHub/internal/usecase"
	applogger "WebHub/pkg/logger"
)

// Quote is the stock pipeline without the HTTP server.
type Quote struct {
	Lookup  *usecase.StockLookup
	Journal *usecase.JournalRecorder
	Infra   *Infra
	Logger  *applogger.Logger
}

// Close flushes the log collector, then closes the journal and its connections.
func (q *Quote) Close() error {
	q.Logger.RemoveCollector()
	errs := []error{q.Journal.Close()}
	for _, c := range q.Infra.Closers() {
		errs = append(errs, c.Close())
	}
	return errors.Join(errs...)
}
