package usecase_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"WebHub/internal/domain/models"
	"WebHub/internal/usecase"
	"WebHub/pkg/logger"
)

var aapl = models.ResolvedSymbol{Symbol: "AAPL", Region: "US"}

func TestFetcherJoinsQuoteAndChart(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	market := NewMockMarketData(ctrl)
	market.EXPECT().Quotes(gomock.Any(), aapl).Return([]models.QuoteSnapshot{
		{Price: 150.5, CurrencyCode: "USD"},
		{Price: 1, CurrencyCode: "EUR"},
	}, nil)
	market.EXPECT().Chart(gomock.Any(), aapl, "1mo", "1y").Return(models.ChartSeries{
		Timestamps: []int64{1700000000, 1702592000},
		Closes:     []*float64{f64(148), nil},
	}, nil)

	got, err := usecase.NewQuoteFetcher(market, nil).Fetch(context.Background(), aapl)
	require.NoError(t, err)
	require.Equal(t, 150.5, got.Quote.Price)
	require.Len(t, got.History, 2)
	require.Equal(t, int64(1700000000), got.History[0].Date.Unix())
	require.Equal(t, 148.0, *got.History[0].Close)
	require.Nil(t, got.History[1].Close)
}

func TestFetcherEmptyQuotes(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	market := NewMockMarketData(ctrl)
	market.EXPECT().Quotes(gomock.Any(), aapl).Return(nil, nil)
	market.EXPECT().Chart(gomock.Any(), aapl, "1mo", "1y").Return(models.ChartSeries{}, nil)

	_, err := usecase.NewQuoteFetcher(market, nil).Fetch(context.Background(), aapl)
	require.ErrorIs(t, err, models.ErrNoQuoteData)
}

func TestFetcherFailureCancelsSibling(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	market := NewMockMarketData(ctrl)
	quotesErr := &models.UpstreamError{API: "quotes", Status: 502, Err: errors.New("bad gateway")}
	market.EXPECT().Quotes(gomock.Any(), aapl).Return(nil, quotesErr)
	market.EXPECT().Chart(gomock.Any(), aapl, "1mo", "1y").
		DoAndReturn(func(ctx context.Context, _ models.ResolvedSymbol, _, _ string) (models.ChartSeries, error) {
			<-ctx.Done()
			return models.ChartSeries{}, ctx.Err()
		})

	_, err := usecase.NewQuoteFetcher(market, nil).Fetch(context.Background(), aapl)

	var ue *models.UpstreamError
	require.ErrorAs(t, err, &ue)
	require.Equal(t, "quotes", ue.API)
}

func TestFetcherChartFailureFailsJoin(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	market := NewMockMarketData(ctrl)
	market.EXPECT().Quotes(gomock.Any(), aapl).Return([]models.QuoteSnapshot{{Price: 1}}, nil).AnyTimes()
	market.EXPECT().Chart(gomock.Any(), aapl, "1mo", "1y").Return(models.ChartSeries{}, errors.New("charts: no result for AAPL"))

	_, err := usecase.NewQuoteFetcher(market, nil).Fetch(context.Background(), aapl)
	require.ErrorContains(t, err, "no result")
}

func TestFetcherTruncatesUnevenSeries(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	ctrl := gomock.NewController(t)
	market := NewMockMarketData(ctrl)
	market.EXPECT().Quotes(gomock.Any(), aapl).Return([]models.QuoteSnapshot{{Price: 1}}, nil)
	market.EXPECT().Chart(gomock.Any(), aapl, "1mo", "1y").Return(models.ChartSeries{
		Timestamps: []int64{1, 2, 3},
		Closes:     []*float64{f64(10), f64(20)},
	}, nil)

	got, err := usecase.NewQuoteFetcher(market, logger.NewWriter(&buf)).Fetch(context.Background(), aapl)
	require.NoError(t, err)
	require.Len(t, got.History, 2)
	require.Contains(t, buf.String(), "truncating")
}
