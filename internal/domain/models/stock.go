package models

import "time"

// ResolvedSymbol is the best match returned by symbol search.
type ResolvedSymbol struct {
	Symbol string
	Region string
}

// QuoteSnapshot is the current quote for a resolved symbol.
type QuoteSnapshot struct {
	Price          float64
	CurrencyCode   string
	ChangeAbsolute float64
	ChangePercent  float64
}

// HistoricalPoint is one close of the monthly one-year chart. Close is nil when
// the upstream reported no value for that period.
type HistoricalPoint struct {
	Date  time.Time `json:"date"`
	Close *float64  `json:"close"`
}

// StockViewModel is everything the stock page renders.
// Either Error is set and the quote fields are empty, or the reverse.
type StockViewModel struct {
	Symbol         string            `json:"symbol,omitempty"`
	Price          string            `json:"price,omitempty"`
	Change         string            `json:"change,omitempty"`
	ChangePercent  string            `json:"changePercent,omitempty"`
	CurrencySymbol string            `json:"currencySymbol,omitempty"`
	StockName      string            `json:"stockName,omitempty"`
	Error          string            `json:"error,omitempty"`
	HistoricalData []HistoricalPoint `json:"historicalData"`
}

// Failed reports whether the view-model carries an error.
func (v StockViewModel) Failed() bool { return v.Error != "" }

// ChartSeries is the raw chart payload: parallel timestamp (epoch seconds) and close arrays.
type ChartSeries struct {
	Timestamps []int64
	Closes     []*float64
}
