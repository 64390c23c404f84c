package wikipedia

import (
	"context"
	"errors"

	"WebHub/internal/domain/models"
	domrepo "WebHub/internal/domain/repository"
	domsvc "WebHub/internal/domain/service"
	"WebHub/internal/service/upstream"
	xhttp "WebHub/pkg/http"
)

// Client pulls random articles from the MediaWiki action API.
type Client struct {
	apiURL string
	base   *upstream.Base
}

func New(apiURL string, hc *xhttp.Client, m domrepo.Metrics) *Client {
	if apiURL == "" {
		apiURL = "https://en.wikipedia.org/w/api.php"
	}
	return &Client{apiURL: apiURL, base: upstream.NewBase(hc, m, nil)}
}

type queryResponse struct {
	Query struct {
		Pages map[string]struct {
			Title   string `json:"title"`
			FullURL string `json:"fullurl"`
			Extract string `json:"extract"`
		} `json:"pages"`
	} `json:"query"`
}

// RandomArticle asks for one random main-namespace page with its intro as plain text.
func (c *Client) RandomArticle(ctx context.Context) (models.Article, error) {
	var resp queryResponse
	err := c.base.GetJSON(ctx, "wikipedia", c.apiURL, map[string][]string{
		"action":       {"query"},
		"generator":    {"random"},
		"grnnamespace": {"0"},
		"prop":         {"info|extracts"},
		"inprop":       {"url"},
		"exintro":      {"true"},
		"explaintext":  {"true"},
		"format":       {"json"},
	}, &resp)
	if err != nil {
		return models.Article{}, err
	}

	// generator=random yields a single page keyed by page id.
	for _, p := range resp.Query.Pages {
		return models.Article{Title: p.Title, URL: p.FullURL, Description: p.Extract}, nil
	}
	return models.Article{}, errors.New("wikipedia: no pages")
}

var _ domsvc.ArticleProvider = (*Client)(nil)
