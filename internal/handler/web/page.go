package web

import "WebHub/internal/domain/models"

// PageData is what every template receives. CurrentPath drives navigation
// highlighting; at most one of the payload fields is set.
type PageData struct {
	CurrentPath string
	Stock       *models.StockViewModel
	Weather     *models.Weather
	Recipe      *models.Recipe
	Article     *models.Article
}
