package spoonacular

import (
	"context"
	"errors"
	"strings"

	"WebHub/internal/domain/models"
	domrepo "WebHub/internal/domain/repository"
	domsvc "WebHub/internal/domain/service"
	"WebHub/internal/service/upstream"
	xhttp "WebHub/pkg/http"
)

// Client fetches recipes from Spoonacular.
type Client struct {
	key     string
	baseURL string
	base    *upstream.Base
}

func New(key, baseURL string, hc *xhttp.Client, m domrepo.Metrics) *Client {
	if baseURL == "" {
		baseURL = "https://api.spoonacular.com"
	}
	return &Client{key: key, baseURL: strings.TrimRight(baseURL, "/"), base: upstream.NewBase(hc, m, nil)}
}

type randomResponse struct {
	Recipes []struct {
		Title               string `json:"title"`
		Image               string `json:"image"`
		Instructions        string `json:"instructions"`
		ExtendedIngredients []struct {
			Original string `json:"original"`
		} `json:"extendedIngredients"`
	} `json:"recipes"`
}

// RandomRecipe returns the single recipe of /recipes/random.
func (c *Client) RandomRecipe(ctx context.Context) (models.Recipe, error) {
	var resp randomResponse
	err := c.base.GetJSON(ctx, "spoonacular", c.baseURL+"/recipes/random", map[string][]string{
		"apiKey": {c.key},
	}, &resp)
	if err != nil {
		return models.Recipe{}, err
	}
	if len(resp.Recipes) == 0 {
		return models.Recipe{}, errors.New("spoonacular: empty recipes")
	}

	r := resp.Recipes[0]
	ingredients := make([]string, 0, len(r.ExtendedIngredients))
	for _, ing := range r.ExtendedIngredients {
		ingredients = append(ingredients, ing.Original)
	}
	return models.Recipe{
		Title:        r.Title,
		Image:        r.Image,
		Instructions: r.Instructions,
		Ingredients:  ingredients,
	}, nil
}

var _ domsvc.RecipeProvider = (*Client)(nil)
