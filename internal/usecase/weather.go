package usecase

import (
	"context"
	"fmt"

	"WebHub/internal/domain/models"
	domsvc "WebHub/internal/domain/service"
)

// WeatherLookup combines current conditions with the city's map coordinates.
type WeatherLookup struct {
	weather domsvc.WeatherProvider
	geo     domsvc.Geocoder
}

func NewWeatherLookup(weather domsvc.WeatherProvider, geo domsvc.Geocoder) *WeatherLookup {
	return &WeatherLookup{weather: weather, geo: geo}
}

// Lookup fetches weather first, then geocodes. No geocoding match is models.ErrCityNotFound.
func (w *WeatherLookup) Lookup(ctx context.Context, city string) (models.Weather, error) {
	cur, err := w.weather.Current(ctx, city)
	if err != nil {
		return models.Weather{}, fmt.Errorf("weather %q: %w", city, err)
	}

	places, err := w.geo.Search(ctx, city)
	if err != nil {
		return models.Weather{}, fmt.Errorf("geocode %q: %w", city, err)
	}
	if len(places) == 0 {
		return models.Weather{}, models.ErrCityNotFound
	}

	cur.City = city
	cur.Lat, cur.Lon = places[0].Lat, places[0].Lon
	return cur, nil
}
