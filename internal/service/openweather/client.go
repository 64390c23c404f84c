package openweather

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

// Config holds OpenWeatherMap settings.
type Config struct {
	Key     string
	BaseURL string
	Units   string
	IconURL string
}

// Client fetches current weather from OpenWeatherMap.
type Client struct {
	cfg  Config
	base *upstream.Base
}

// New creates a weather client.
func New(cfg Config, hc *xhttp.Client, m domrepo.Metrics) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.openweathermap.org/data/2.5"
	}
	if cfg.Units == "" {
		cfg.Units = "metric"
	}
	if cfg.IconURL == "" {
		cfg.IconURL = "http://openweathermap.org/img/wn"
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	cfg.IconURL = strings.TrimRight(cfg.IconURL, "/")
	return &Client{cfg: cfg, base: upstream.NewBase(hc, m, nil)}
}

type weatherResponse struct {
	Main struct {
		Temp float64 `json:"temp"`
	} `json:"main"`
	Weather []struct {
		Description string `json:"description"`
		Icon        string `json:"icon"`
	} `json:"weather"`
}

// Current returns temperature, description and icon for city. City and
// coordinates are left for the caller.
func (c *Client) Current(ctx context.Context, city string) (models.Weather, error) {
	var resp weatherResponse
	err := c.base.GetJSON(ctx, "openweathermap", c.cfg.BaseURL+"/weather", map[string][]string{
		"q":     {city},
		"appid": {c.cfg.Key},
		"units": {c.cfg.Units},
	}, &resp)
	if err != nil {
		return models.Weather{}, err
	}
	if len(resp.Weather) == 0 {
		return models.Weather{}, fmt.Errorf("openweathermap: no conditions for %q", city)
	}

	w := resp.Weather[0]
	return models.Weather{
		Temp:        resp.Main.Temp,
		Description: w.Description,
		IconURL:     fmt.Sprintf("%s/%s@2x.png", c.cfg.IconURL, w.Icon),
	}, nil
}

var _ domsvc.WeatherProvider = (*Client)(nil)
