package upstream

import (
	"context"
	"errors"
	"fmt"
	"time"

	"WebHub/internal/domain/models"
	domrepo "WebHub/internal/domain/repository"
	xhttp "WebHub/pkg/http"
)

// Base centralizes GET+JSON calls to a third-party API: shared headers, latency
// metrics and error classification.
type Base struct {
	client  *xhttp.Client
	metrics domrepo.Metrics
	headers map[string]string
}

// NewBase builds a Base. A nil client gets a default one; nil metrics are ignored.
func NewBase(client *xhttp.Client, metrics domrepo.Metrics, headers map[string]string) *Base {
	if client == nil {
		client = xhttp.NewClient()
	}
	return &Base{client: client, metrics: metrics, headers: headers}
}

// GetJSON issues GET url?query and decodes the body into dest. api names the
// endpoint in metrics and errors.
func (b *Base) GetJSON(ctx context.Context, api, url string, query map[string][]string, dest interface{}) error {
	start := time.Now()
	err := b.client.SendAndParse(ctx, &xhttp.RequestOptions{
		Method:      xhttp.MethodGet,
		URL:         url,
		Headers:     b.headers,
		QueryParams: query,
	}, dest)
	if b.metrics != nil {
		b.metrics.RecordUpstream(api, time.Since(start).Seconds(), err)
	}
	if err != nil {
		return Classify(api, err)
	}
	return nil
}

// Classify turns transport and status failures into *models.UpstreamError.
// Anything else (decode errors) is wrapped as-is.
func Classify(api string, err error) error {
	var se *xhttp.StatusError
	if errors.As(err, &se) {
		return &models.UpstreamError{API: api, Status: se.Code, Err: err}
	}
	var te *xhttp.TransportError
	if errors.As(err, &te) {
		return &models.UpstreamError{API: api, Err: err}
	}
	return fmt.Errorf("%s: %w", api, err)
}
