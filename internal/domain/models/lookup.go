package models

import "time"

// Lookup outcomes, also used as metric labels.
const (
	OutcomeSuccess    = "success"
	OutcomeNotFound   = "not_found"
	OutcomeNoData     = "no_data"
	OutcomeUpstream   = "upstream_error"
	OutcomeUnexpected = "unexpected"
)

// LookupEvent is the journal record of one stock lookup.
type LookupEvent struct {
	Query     string    `json:"query"`
	Symbol    string    `json:"symbol,omitempty"`
	Region    string    `json:"region,omitempty"`
	Outcome   string    `json:"outcome"`
	Price     float64   `json:"price,omitempty"`
	Currency  string    `json:"currency,omitempty"`
	LatencyMS int64     `json:"latency_ms"`
	At        time.Time `json:"at"`
}
