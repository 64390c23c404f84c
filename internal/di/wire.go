//go:build wireinject
// +build wireinject

package di

import (
	"WebHub/pkg/config"
	"WebHub/pkg/server"

	"github.com/google/wire"
)

var upstreamSet = wire.NewSet(
	ProvideHTTPClient,
	ProvideYahooClient,
	ProvideOpenWeatherClient,
	ProvideNominatimClient,
	ProvideSpoonacularClient,
	ProvideWikipediaClient,
)

var lookupSet = wire.NewSet(
	ProvideInfra,
	ProvideLogger,
	ProvideMetrics,
	ProvideJournal,
	ProvideJournalRecorder,
	ProvideStockLookup,
)

// InitializeApp wires up all dependencies and returns the application.
// Wire will generate the implementation of this function.
func InitializeApp(cfg *config.Config) (*server.App, error) {
	wire.Build(
		upstreamSet,
		lookupSet,

		// Use cases
		ProvideWeatherLookup,

		// HTTP
		ProvideRenderer,
		ProvidePagesHandler,
		ProvideAPIHandler,
		ProvideHTTPServer,

		// Application server
		ProvideApp,
	)
	return &server.App{}, nil
}

// InitializeQuote wires the stock pipeline alone for one-shot lookups.
func InitializeQuote(cfg *config.Config) (*Quote, error) {
	wire.Build(
		ProvideHTTPClient,
		ProvideYahooClient,
		lookupSet,
		wire.Struct(new(Quote), "*"),
	)
	return &Quote{}, nil
}
