package usecase

import (
	"context"
	"errors"
	"runtime/debug"
	"time"

	"WebHub/internal/domain/models"
	drepo "WebHub/internal/domain/repository"
	"WebHub/pkg/logger"
)

// Messages shown on the stock page.
const (
	MsgSymbolNotFound = "No matching symbol found. Please try again."
	MsgNoData         = "No data available for the given stock symbol."
	MsgUnexpected     = "An error occurred while fetching stock data. Please try again."
)

// StockLookup runs resolve, fetch and format for one query and always returns a
// renderable view-model. Errors never escape; they become the view-model's Error.
type StockLookup struct {
	resolver *SymbolResolver
	fetcher  *QuoteFetcher
	journal  *JournalRecorder
	metrics  drepo.Metrics
	log      *logger.Logger
	now      func() time.Time
}

func NewStockLookup(
	resolver *SymbolResolver,
	fetcher *QuoteFetcher,
	journal *JournalRecorder,
	metrics drepo.Metrics,
	log *logger.Logger,
) *StockLookup {
	if log == nil {
		log = logger.NewNop()
	}
	return &StockLookup{
		resolver: resolver,
		fetcher:  fetcher,
		journal:  journal,
		metrics:  metrics,
		log:      log,
		now:      time.Now,
	}
}

// Lookup resolves query and returns the formatted quote or one of three error
// views. Only the unexpected-failure view drops the echoed StockName.
func (s *StockLookup) Lookup(ctx context.Context, query string) (vm models.StockViewModel) {
	start := s.now()
	ev := &models.LookupEvent{Query: query, Outcome: models.OutcomeUnexpected, At: start.UTC()}

	defer func() {
		if rec := recover(); rec != nil {
			s.log.Error("stock lookup panicked",
				logger.String("query", query),
				logger.Any("panic", rec),
				logger.String("stack", string(debug.Stack())),
			)
			vm = failure(MsgUnexpected, "")
			ev.Outcome = models.OutcomeUnexpected
		}
		ev.LatencyMS = s.now().Sub(start).Milliseconds()
		if s.metrics != nil {
			s.metrics.RecordLookup(ev.Outcome)
		}
		_ = s.journal.Record(ctx, ev)
	}()

	sym, err := s.resolver.Resolve(ctx, query)
	if err != nil {
		if errors.Is(err, models.ErrSymbolNotFound) {
			ev.Outcome = models.OutcomeNotFound
			return failure(MsgSymbolNotFound, query)
		}
		ev.Outcome = outcomeOf(err)
		s.log.Error("symbol search failed", logger.String("query", query), logger.Error(err))
		return failure(MsgUnexpected, "")
	}
	ev.Symbol, ev.Region = sym.Symbol, sym.Region

	data, err := s.fetcher.Fetch(ctx, sym)
	if err != nil {
		var ue *models.UpstreamError
		switch {
		case errors.Is(err, models.ErrNoQuoteData):
			ev.Outcome = models.OutcomeNoData
			return failure(MsgNoData, query)
		case errors.As(err, &ue):
			ev.Outcome = models.OutcomeUpstream
			s.log.Warn("quote fetch failed",
				logger.String("symbol", sym.Symbol),
				logger.String("api", ue.API),
				logger.Int("status", ue.Status),
				logger.Error(err),
			)
			return failure(MsgNoData, query)
		default:
			ev.Outcome = models.OutcomeUnexpected
			s.log.Error("quote payload unusable", logger.String("symbol", sym.Symbol), logger.Error(err))
			return failure(MsgUnexpected, "")
		}
	}

	vm = FormatQuote(sym.Symbol, data.Quote, data.History)
	vm.StockName = query

	ev.Outcome = models.OutcomeSuccess
	ev.Price = data.Quote.Price
	ev.Currency = data.Quote.CurrencyCode
	return vm
}

func failure(msg, stockName string) models.StockViewModel {
	return models.StockViewModel{Error: msg, StockName: stockName}
}

func outcomeOf(err error) string {
	var ue *models.UpstreamError
	if errors.As(err, &ue) {
		return models.OutcomeUpstream
	}
	return models.OutcomeUnexpected
}
