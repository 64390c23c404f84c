package models

// Weather is the view of the weather page.
type Weather struct {
	City        string  `json:"city"`
	Temp        float64 `json:"temp"`
	Description string  `json:"description"`
	IconURL     string  `json:"iconURL"`
	Lat         string  `json:"lat"`
	Lon         string  `json:"lon"`
}

// Coordinates is a geocoding hit. Nominatim reports lat/lon as strings.
type Coordinates struct {
	Lat string
	Lon string
}

// Recipe is the view of the food page.
type Recipe struct {
	Title        string   `json:"title"`
	Image        string   `json:"image"`
	Instructions string   `json:"instructions"`
	Ingredients  []string `json:"ingredients"`
}

// Article is the view of the Wikipedia page.
type Article struct {
	Title       string `json:"title"`
	URL         string `json:"url"`
	Description string `json:"description"`
}
