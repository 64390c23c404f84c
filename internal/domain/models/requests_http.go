package models

// Requests for the web and API endpoints. Bound from form or JSON bodies.

type StockRequest struct {
	StockName string `form:"stockName" json:"stockName"`
}

type WeatherRequest struct {
	CityName string `form:"cityName" json:"cityName" validate:"required"`
}

type RecentLookupsRequest struct {
	N int `query:"n" json:"n" default:"20" validate:"gte=1,lte=500"`
}
