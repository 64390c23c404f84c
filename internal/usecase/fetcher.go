package usecase

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"WebHub/internal/domain/models"
	domsvc "WebHub/internal/domain/service"
	"WebHub/pkg/logger"
	"WebHub/pkg/util"
)

// Chart window requested for the price history.
const (
	HistoryInterval = "1mo"
	HistoryRange    = "1y"
)

// QuoteData is the joined result of the quote and chart calls.
type QuoteData struct {
	Quote   models.QuoteSnapshot
	History []models.HistoricalPoint
}

// QuoteFetcher loads the quote snapshot and price history for a symbol in parallel.
type QuoteFetcher struct {
	market domsvc.MarketData
	log    *logger.Logger
}

func NewQuoteFetcher(market domsvc.MarketData, log *logger.Logger) *QuoteFetcher {
	if log == nil {
		log = logger.NewNop()
	}
	return &QuoteFetcher{market: market, log: log}
}

// Fetch runs both calls and waits for both. Either failing fails the whole fetch
// and cancels the other. An empty quote list is models.ErrNoQuoteData.
func (f *QuoteFetcher) Fetch(ctx context.Context, sym models.ResolvedSymbol) (QuoteData, error) {
	var (
		quotes []models.QuoteSnapshot
		series models.ChartSeries
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		q, err := f.market.Quotes(gctx, sym)
		if err != nil {
			return fmt.Errorf("quotes %s: %w", sym.Symbol, err)
		}
		quotes = q
		return nil
	})
	g.Go(func() error {
		s, err := f.market.Chart(gctx, sym, HistoryInterval, HistoryRange)
		if err != nil {
			return fmt.Errorf("chart %s: %w", sym.Symbol, err)
		}
		series = s
		return nil
	})
	if err := g.Wait(); err != nil {
		return QuoteData{}, err
	}

	if len(quotes) == 0 {
		return QuoteData{}, models.ErrNoQuoteData
	}
	return QuoteData{Quote: quotes[0], History: f.zip(sym, series)}, nil
}

// zip pairs timestamps and closes by index, in upstream order. Unequal lengths are
// truncated to the shorter array.
func (f *QuoteFetcher) zip(sym models.ResolvedSymbol, s models.ChartSeries) []models.HistoricalPoint {
	n := len(s.Timestamps)
	if len(s.Closes) != n {
		f.log.Warn("chart arrays differ in length, truncating",
			logger.String("symbol", sym.Symbol),
			logger.Int("timestamps", len(s.Timestamps)),
			logger.Int("closes", len(s.Closes)),
		)
		n = min(n, len(s.Closes))
	}

	points := make([]models.HistoricalPoint, 0, n)
	for i := 0; i < n; i++ {
		points = append(points, models.HistoricalPoint{
			Date:  util.FromUnix(s.Timestamps[i]),
			Close: s.Closes[i],
		})
	}
	return points
}
