package service

import (
	"context"

	"WebHub/internal/domain/models"
)

//go:generate mockgen -package=usecase_test -destination=../../usecase/mock_upstream_test.go -source=upstream.go

// SymbolSearcher looks up ticker candidates for free text. Region on a result may be empty.
type SymbolSearcher interface {
	SearchSymbols(ctx context.Context, query, region string) ([]models.ResolvedSymbol, error)
}

// MarketData serves quotes and price history for a resolved symbol.
type MarketData interface {
	Quotes(ctx context.Context, sym models.ResolvedSymbol) ([]models.QuoteSnapshot, error)
	Chart(ctx context.Context, sym models.ResolvedSymbol, interval, rng string) (models.ChartSeries, error)
}

// WeatherProvider returns current conditions for a city.
type WeatherProvider interface {
	Current(ctx context.Context, city string) (models.Weather, error)
}

// Geocoder resolves a place name to coordinates, best match first.
type Geocoder interface {
	Search(ctx context.Context, query string) ([]models.Coordinates, error)
}

// RecipeProvider returns a random recipe.
type RecipeProvider interface {
	RandomRecipe(ctx context.Context) (models.Recipe, error)
}

// ArticleProvider returns a random encyclopedia article.
type ArticleProvider interface {
	RandomArticle(ctx context.Context) (models.Article, error)
}
