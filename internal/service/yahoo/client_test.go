package yahoo

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"WebHub/internal/domain/models"
	"WebHub/pkg/metrics"
)

func newTestClient(t *testing.T, h http.HandlerFunc) (*Client, *metrics.Recorder) {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	rec := metrics.NewWithRegistry(prometheus.NewRegistry())
	return New("k-123", WithBaseURL(srv.URL), WithMetrics(rec)), rec
}

func TestSearchSymbols(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/auto-complete", r.URL.Path)
		require.Equal(t, "apple", r.URL.Query().Get("q"))
		require.Equal(t, "US", r.URL.Query().Get("region"))
		require.Equal(t, "k-123", r.Header.Get("X-RapidAPI-Key"))
		require.Equal(t, defaultHost, r.Header.Get("X-RapidAPI-Host"))
		_, _ = w.Write([]byte(`{"quotes":[{"symbol":"AAPL","region":"US"},{"symbol":"APLE"}]}`))
	})

	got, err := c.SearchSymbols(context.Background(), "apple", "US")
	require.NoError(t, err)
	require.Equal(t, []models.ResolvedSymbol{{Symbol: "AAPL", Region: "US"}, {Symbol: "APLE"}}, got)
}

func TestSearchSymbolsNoQuotes(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"count":0}`))
	})

	got, err := c.SearchSymbols(context.Background(), "zzzz", "US")
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestQuotes(t *testing.T) {
	c, rec := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/market/v2/get-quotes", r.URL.Path)
		require.Equal(t, "AAPL", r.URL.Query().Get("symbols"))
		require.Equal(t, "US", r.URL.Query().Get("region"))
		_, _ = w.Write([]byte(`{"quoteResponse":{"result":[{"symbol":"AAPL","currency":"USD",
			"regularMarketPrice":150.5,"regularMarketChange":-2.3,"regularMarketChangePercent":-1.5}]}}`))
	})

	got, err := c.Quotes(context.Background(), models.ResolvedSymbol{Symbol: "AAPL", Region: "US"})
	require.NoError(t, err)
	require.Equal(t, []models.QuoteSnapshot{{Price: 150.5, CurrencyCode: "USD", ChangeAbsolute: -2.3, ChangePercent: -1.5}}, got)
	require.Equal(t, 1.0, testutil.ToFloat64(rec.UpstreamRequests().WithLabelValues("quotes", "ok")))
}

func TestQuotesEmptyResult(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"quoteResponse":{"result":[]}}`))
	})

	got, err := c.Quotes(context.Background(), models.ResolvedSymbol{Symbol: "XYZ", Region: "US"})
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestQuotesMissingPrice(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"quoteResponse":{"result":[{"symbol":"AAPL","currency":"USD"}]}}`))
	})

	_, err := c.Quotes(context.Background(), models.ResolvedSymbol{Symbol: "AAPL", Region: "US"})
	require.ErrorContains(t, err, "missing market fields")

	var ue *models.UpstreamError
	require.False(t, errors.As(err, &ue))
}

func TestQuotesSkipsIncompleteLaterEntries(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"quoteResponse":{"result":[{"symbol":"AAPL","currency":"USD",
			"regularMarketPrice":150.5,"regularMarketChange":-2.3,"regularMarketChangePercent":-1.5},
			{"symbol":"X"}]}}`))
	})

	got, err := c.Quotes(context.Background(), models.ResolvedSymbol{Symbol: "AAPL", Region: "US"})
	require.NoError(t, err)
	require.Equal(t, []models.QuoteSnapshot{{Price: 150.5, CurrencyCode: "USD", ChangeAbsolute: -2.3, ChangePercent: -1.5}}, got)
}

func TestQuotesUpstreamStatus(t *testing.T) {
	c, rec := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "too many", http.StatusTooManyRequests)
	})

	_, err := c.Quotes(context.Background(), models.ResolvedSymbol{Symbol: "AAPL", Region: "US"})

	var ue *models.UpstreamError
	require.True(t, errors.As(err, &ue))
	require.Equal(t, "quotes", ue.API)
	require.Equal(t, http.StatusTooManyRequests, ue.Status)
	require.Equal(t, 1.0, testutil.ToFloat64(rec.UpstreamRequests().WithLabelValues("quotes", "error")))
}

func TestChart(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		require.Equal(t, "/market/get-charts", r.URL.Path)
		require.Equal(t, "AAPL", q.Get("symbol"))
		require.Equal(t, "1mo", q.Get("interval"))
		require.Equal(t, "1y", q.Get("range"))
		require.Equal(t, "US", q.Get("region"))
		_, _ = w.Write([]byte(`{"chart":{"result":[{"timestamp":[1699920000,1702512000],
			"indicators":{"quote":[{"close":[148.1,null]}]}}],"error":null}}`))
	})

	got, err := c.Chart(context.Background(), models.ResolvedSymbol{Symbol: "AAPL", Region: "US"}, "1mo", "1y")
	require.NoError(t, err)
	require.Equal(t, []int64{1699920000, 1702512000}, got.Timestamps)
	require.Len(t, got.Closes, 2)
	require.InDelta(t, 148.1, *got.Closes[0], 1e-9)
	require.Nil(t, got.Closes[1])
}

func TestChartNoResult(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"chart":{"result":[]}}`))
	})

	_, err := c.Chart(context.Background(), models.ResolvedSymbol{Symbol: "AAPL", Region: "US"}, "1mo", "1y")
	require.ErrorContains(t, err, "no result")
}

func TestChartUpstreamError(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"chart":{"result":null,"error":{"code":"Not Found","description":"No data found"}}}`))
	})

	_, err := c.Chart(context.Background(), models.ResolvedSymbol{Symbol: "AAPL", Region: "US"}, "1mo", "1y")
	require.ErrorContains(t, err, "No data found")
}

func TestChartMalformedResult(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{name: "empty result", body: `{"chart":{"result":[{}]}}`, want: "no timestamps"},
		{name: "no quote indicators", body: `{"chart":{"result":[{"timestamp":[1699920000],"indicators":{"quote":[]}}]}}`, want: "no close prices"},
		{name: "no close series", body: `{"chart":{"result":[{"timestamp":[1699920000],"indicators":{"quote":[{}]}}]}}`, want: "no close prices"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(tt.body))
			})

			_, err := c.Chart(context.Background(), models.ResolvedSymbol{Symbol: "AAPL", Region: "US"}, "1mo", "1y")
			require.ErrorContains(t, err, tt.want)

			var ue *models.UpstreamError
			require.False(t, errors.As(err, &ue))
		})
	}
}

func TestChartEmptyArraysAreValid(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"chart":{"result":[{"timestamp":[],"indicators":{"quote":[{}]}}]}}`))
	})

	got, err := c.Chart(context.Background(), models.ResolvedSymbol{Symbol: "AAPL", Region: "US"}, "1mo", "1y")
	require.NoError(t, err)
	require.Empty(t, got.Timestamps)
}
