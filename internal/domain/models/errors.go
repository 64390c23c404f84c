package models

import (
	"errors"
	"fmt"
)

var (
	// ErrSymbolNotFound is returned when symbol search yields no candidates.
	ErrSymbolNotFound = errors.New("no matching symbol")
	// ErrNoQuoteData is returned when the quote list for a resolved symbol is empty.
	ErrNoQuoteData = errors.New("no quote data")
)

// UpstreamError is a transport failure or non-2xx answer from a third-party API.
type UpstreamError struct {
	API    string
	Status int // 0 when no response was received
	Err    error
}

func (e *UpstreamError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("upstream %s: status %d: %v", e.API, e.Status, e.Err)
	}
	return fmt.Sprintf("upstream %s: %v", e.API, e.Err)
}

func (e *UpstreamError) Unwrap() error { return e.Err }

// ErrJournalNotReadable is returned when the configured journal backend cannot list events.
var ErrJournalNotReadable = errors.New("journal backend does not support reads")

// ErrCityNotFound is returned when geocoding yields no place for a city.
var ErrCityNotFound = errors.New("city not found")
