package yahoo

import (
	"context"
	"fmt"
	"strings"

	"WebHub/internal/domain/models"
	domrepo "WebHub/internal/domain/repository"
	domsvc "WebHub/internal/domain/service"
	"WebHub/internal/service/upstream"
	xhttp "WebHub/pkg/http"
)

const (
	defaultBaseURL = "https://apidojo-yahoo-finance-v1.p.rapidapi.com"
	defaultHost    = "apidojo-yahoo-finance-v1.p.rapidapi.com"
)

// Client talks to the Yahoo Finance API published on RapidAPI.
type Client struct {
	baseURL string
	host    string
	key     string
	http    *xhttp.Client
	metrics domrepo.Metrics
	base    *upstream.Base
}

// Option configures Client.
type Option func(*Client)

// WithBaseURL overrides the API base URL.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = strings.TrimRight(u, "/") }
}

// WithHost overrides the X-RapidAPI-Host header.
func WithHost(h string) Option {
	return func(c *Client) { c.host = h }
}

// WithHTTPClient sets the transport client.
func WithHTTPClient(hc *xhttp.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithMetrics records per-endpoint latency and results.
func WithMetrics(m domrepo.Metrics) Option {
	return func(c *Client) { c.metrics = m }
}

// New creates a client authenticated with the RapidAPI key. An empty key is
// accepted; the upstream rejects the calls.
func New(key string, opts ...Option) *Client {
	c := &Client{baseURL: defaultBaseURL, host: defaultHost, key: key}
	for _, opt := range opts {
		opt(c)
	}
	c.base = upstream.NewBase(c.http, c.metrics, map[string]string{
		"X-RapidAPI-Key":  c.key,
		"X-RapidAPI-Host": c.host,
	})
	return c
}

type autoCompleteResponse struct {
	Quotes []struct {
		Symbol string `json:"symbol"`
		Region string `json:"region"`
	} `json:"quotes"`
}

// SearchSymbols calls /auto-complete and returns the candidates in upstream order.
func (c *Client) SearchSymbols(ctx context.Context, query, region string) ([]models.ResolvedSymbol, error) {
	var resp autoCompleteResponse
	err := c.base.GetJSON(ctx, "autocomplete", c.baseURL+"/auto-complete", map[string][]string{
		"q":      {query},
		"region": {region},
	}, &resp)
	if err != nil {
		return nil, err
	}

	out := make([]models.ResolvedSymbol, 0, len(resp.Quotes))
	for _, q := range resp.Quotes {
		out = append(out, models.ResolvedSymbol{Symbol: q.Symbol, Region: q.Region})
	}
	return out, nil
}

type quotesResponse struct {
	QuoteResponse struct {
		Result []struct {
			Symbol                     string   `json:"symbol"`
			Currency                   string   `json:"currency"`
			RegularMarketPrice         *float64 `json:"regularMarketPrice"`
			RegularMarketChange        *float64 `json:"regularMarketChange"`
			RegularMarketChangePercent *float64 `json:"regularMarketChangePercent"`
		} `json:"result"`
	} `json:"quoteResponse"`
}

// Quotes calls /market/v2/get-quotes. Only the first quote is read by callers, so
// only the first must carry price and change; later incomplete entries are skipped.
func (c *Client) Quotes(ctx context.Context, sym models.ResolvedSymbol) ([]models.QuoteSnapshot, error) {
	var resp quotesResponse
	err := c.base.GetJSON(ctx, "quotes", c.baseURL+"/market/v2/get-quotes", map[string][]string{
		"region":  {sym.Region},
		"symbols": {sym.Symbol},
	}, &resp)
	if err != nil {
		return nil, err
	}

	out := make([]models.QuoteSnapshot, 0, len(resp.QuoteResponse.Result))
	for i, r := range resp.QuoteResponse.Result {
		if r.RegularMarketPrice == nil || r.RegularMarketChange == nil || r.RegularMarketChangePercent == nil {
			if i == 0 {
				return nil, fmt.Errorf("quotes: first result for %s: missing market fields", sym.Symbol)
			}
			continue
		}
		out = append(out, models.QuoteSnapshot{
			Price:          *r.RegularMarketPrice,
			CurrencyCode:   r.Currency,
			ChangeAbsolute: *r.RegularMarketChange,
			ChangePercent:  *r.RegularMarketChangePercent,
		})
	}
	return out, nil
}

type chartResponse struct {
	Chart struct {
		Result []struct {
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Close []*float64 `json:"close"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

// Chart calls /market/get-charts and returns the first result's timestamps and closes.
// A result without a timestamp array or close series is a malformed payload; present
// but unequal arrays are returned as is.
func (c *Client) Chart(ctx context.Context, sym models.ResolvedSymbol, interval, rng string) (models.ChartSeries, error) {
	var resp chartResponse
	err := c.base.GetJSON(ctx, "charts", c.baseURL+"/market/get-charts", map[string][]string{
		"symbol":   {sym.Symbol},
		"interval": {interval},
		"range":    {rng},
		"region":   {sym.Region},
	}, &resp)
	if err != nil {
		return models.ChartSeries{}, err
	}
	if resp.Chart.Error != nil {
		return models.ChartSeries{}, fmt.Errorf("charts: %s: %s", resp.Chart.Error.Code, resp.Chart.Error.Description)
	}
	if len(resp.Chart.Result) == 0 {
		return models.ChartSeries{}, fmt.Errorf("charts: no result for %s", sym.Symbol)
	}

	r := resp.Chart.Result[0]
	if r.Timestamp == nil {
		return models.ChartSeries{}, fmt.Errorf("charts: no timestamps for %s", sym.Symbol)
	}
	if len(r.Indicators.Quote) == 0 || (r.Indicators.Quote[0].Close == nil && len(r.Timestamp) > 0) {
		return models.ChartSeries{}, fmt.Errorf("charts: no close prices for %s", sym.Symbol)
	}
	return models.ChartSeries{Timestamps: r.Timestamp, Closes: r.Indicators.Quote[0].Close}, nil
}

var (
	_ domsvc.SymbolSearcher = (*Client)(nil)
	_ domsvc.MarketData     = (*Client)(nil)
)
