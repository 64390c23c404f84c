package usecase

import (
	"math"
	"math/big"

	"github.com/shopspring/decimal"

	"WebHub/internal/domain/models"
)

var currencySymbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
}

// CurrencySymbol maps USD, EUR and GBP to their signs; any other code is returned as is.
func CurrencySymbol(code string) string {
	if s, ok := currencySymbols[code]; ok {
		return s
	}
	return code
}

// FormatPrice renders "<symbol><price to 2dp>".
func FormatPrice(symbol string, price float64) string {
	return symbol + fixed2(price)
}

// FormatChange renders "+<symbol><change>" or "-<symbol><|change|>".
func FormatChange(symbol string, change float64) string {
	if change >= 0 {
		return "+" + symbol + fixed2(change)
	}
	return "-" + symbol + fixed2(-change)
}

// FormatChangePercent renders "+x.xx%" for non-negative values. Negative values keep
// the number's own minus sign.
func FormatChangePercent(pct float64) string {
	if pct >= 0 {
		return "+" + fixed2(pct) + "%"
	}
	return fixed2(pct) + "%"
}

// FormatQuote builds the success view-model. It has no side effects and the
// history slice is copied, not shared.
func FormatQuote(symbol string, q models.QuoteSnapshot, history []models.HistoricalPoint) models.StockViewModel {
	cs := CurrencySymbol(q.CurrencyCode)

	hist := make([]models.HistoricalPoint, len(history))
	copy(hist, history)

	return models.StockViewModel{
		Symbol:         symbol,
		Price:          FormatPrice(cs, q.Price),
		Change:         FormatChange(cs, q.ChangeAbsolute),
		ChangePercent:  FormatChangePercent(q.ChangePercent),
		CurrencySymbol: cs,
		HistoricalData: hist,
	}
}

// fixed2 renders v with two decimals. Rounding works on the exact binary value
// and breaks exact ties away from zero, so 150.125 gives "150.13" while 1.005
// (stored as 1.00499...) gives "1.00". The sign is applied to the rounded
// magnitude: -0.001 gives "-0.00" and -0 gives "0.00".
func fixed2(v float64) string {
	exact := new(big.Float).SetFloat64(math.Abs(v)).Text('f', 40)
	s := decimal.RequireFromString(exact).StringFixed(2)
	if v < 0 {
		return "-" + s
	}
	return s
}
