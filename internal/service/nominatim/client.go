package nominatim

import (
	"context"
	"strings"

	"WebHub/internal/domain/models"
	domrepo "WebHub/internal/domain/repository"
	domsvc "WebHub/internal/domain/service"
	"WebHub/internal/service/upstream"
	xhttp "WebHub/pkg/http"
)

// Client geocodes place names with OpenStreetMap Nominatim. Nominatim's usage
// policy requires an identifying User-Agent, set on the xhttp.Client.
type Client struct {
	baseURL string
	base    *upstream.Base
}

// New creates a geocoder for baseURL.
func New(baseURL string, hc *xhttp.Client, m domrepo.Metrics) *Client {
	if baseURL == "" {
		baseURL = "https://nominatim.openstreetmap.org"
	}
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), base: upstream.NewBase(hc, m, nil)}
}

type place struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

// Search returns matches for query in relevance order.
func (c *Client) Search(ctx context.Context, query string) ([]models.Coordinates, error) {
	var places []place
	err := c.base.GetJSON(ctx, "nominatim", c.baseURL+"/search", map[string][]string{
		"format": {"json"},
		"q":      {query},
	}, &places)
	if err != nil {
		return nil, err
	}

	out := make([]models.Coordinates, 0, len(places))
	for _, p := range places {
		out = append(out, models.Coordinates{Lat: p.Lat, Lon: p.Lon})
	}
	return out, nil
}

var _ domsvc.Geocoder = (*Client)(nil)
