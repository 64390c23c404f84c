package di

import (
	"context"
	"fmt"
	"io"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"WebHub/internal/domain/repository"
	"WebHub/internal/handler/api"
	webhandler "WebHub/internal/handler/web"
	internalrepo "WebHub/internal/repository"
	"WebHub/internal/service/nominatim"
	"WebHub/internal/service/openweather"
	"WebHub/internal/service/spoonacular"
	"WebHub/internal/service/wikipedia"
	"WebHub/internal/service/yahoo"
	"WebHub/internal/usecase"
	pkgch "WebHub/pkg/clickhouse"
	"WebHub/pkg/config"
	xhttp "WebHub/pkg/http"
	pkgkafka "WebHub/pkg/kafka"
	applogger "WebHub/pkg/logger"
	"WebHub/pkg/metrics"
	pkgredis "WebHub/pkg/redis"
	"WebHub/pkg/server"
	"WebHub/web"
)

// Infra holds the connections opened for the configured journal backend.
// At most one field is set.
type Infra struct {
	Producer   *pkgkafka.Producer
	ClickHouse *pkgch.Client
	Redis      *goredis.Client
}

// Closers lists what the App must close itself. The producer and the Redis
// client are owned by their journals.
func (i *Infra) Closers() []io.Closer {
	if i.ClickHouse != nil {
		return []io.Closer{i.ClickHouse}
	}
	return nil
}

// HealthChecks returns /healthz checks for the connected backend.
func (i *Infra) HealthChecks() []xhttp.ServerOption {
	var opts []xhttp.ServerOption
	if i.ClickHouse != nil {
		opts = append(opts, xhttp.WithHealthCheck("clickhouse", i.ClickHouse.Health))
	}
	if i.Redis != nil {
		opts = append(opts, xhttp.WithHealthCheck("redis", func(ctx context.Context) error {
			return i.Redis.Ping(ctx).Err()
		}))
	}
	return opts
}

// ProvideInfra connects to the journal backend named in the config.
func ProvideInfra(cfg *config.Config) (*Infra, error) {
	infra := &Infra{}
	switch cfg.Journal.Backend {
	case config.JournalKafka:
		p, err := ProvideKafkaProducer(cfg)
		if err != nil {
			return nil, err
		}
		infra.Producer = p
	case config.JournalClickHouse:
		c, err := ProvideClickHouseClient(cfg)
		if err != nil {
			return nil, err
		}
		infra.ClickHouse = c
	case config.JournalRedis:
		c, err := pkgredis.NewClient(
			pkgredis.WithAddr(cfg.Redis.Addr),
			pkgredis.WithPassword(cfg.Redis.Password),
			pkgredis.WithDB(cfg.Redis.DB),
		)
		if err != nil {
			return nil, fmt.Errorf("redis client: %w", err)
		}
		infra.Redis = c
	}
	return infra, nil
}

// ProvideClickHouseClient creates a ClickHouse client and the journal table.
func ProvideClickHouseClient(cfg *config.Config) (*pkgch.Client, error) {
	client, err := pkgch.NewClient(
		pkgch.WithHost(cfg.ClickHouse.Host),
		pkgch.WithPort(cfg.ClickHouse.Port),
		pkgch.WithDatabase(cfg.ClickHouse.Database),
		pkgch.WithCredentials(cfg.ClickHouse.User, cfg.ClickHouse.Password),
		pkgch.WithHTTP(cfg.ClickHouse.UseHTTP),
		pkgch.WithAsyncInsert(cfg.ClickHouse.AsyncInsert, cfg.ClickHouse.WaitForAsync),
		pkgch.WithTimeouts(cfg.ClickHouse.DialTimeout, cfg.ClickHouse.ReadTimeout, cfg.ClickHouse.WriteTimeout),
		pkgch.WithMaxExecutionTime(cfg.ClickHouse.MaxExecutionTime),
	)
	if err != nil {
		return nil, fmt.Errorf("clickhouse client: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := client.InitSchema(ctx, internalrepo.LookupSchema(cfg.ClickHouse.Database, cfg.ClickHouse.Table)); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("clickhouse schema: %w", err)
	}

	return client, nil
}

// ProvideKafkaProducer creates a Kafka producer.
func ProvideKafkaProducer(cfg *config.Config) (*pkgkafka.Producer, error) {
	producer, err := pkgkafka.NewProducer(
		pkgkafka.WithBrokers(cfg.Kafka.Brokers),
		pkgkafka.WithCompression(cfg.Kafka.Compression),
		pkgkafka.WithRequiredAcks(cfg.Kafka.RequiredAcks),
		pkgkafka.WithBatchSize(cfg.Kafka.Producer.BatchSize),
		pkgkafka.WithBatchBytes(cfg.Kafka.Producer.BatchBytes),
		pkgkafka.WithBatchTimeout(cfg.Kafka.Producer.Linger),
		pkgkafka.WithTimeouts(cfg.Kafka.Producer.WriteTimeout, cfg.Kafka.Producer.ReadTimeout),
		pkgkafka.WithMaxAttempts(cfg.Kafka.Producer.MaxAttempts),
		pkgkafka.WithAsync(cfg.Kafka.Producer.Async),
		pkgkafka.WithAutoCreateTopics(cfg.Environment != "production"),
		pkgkafka.WithHashByKey(true),
	)
	if err != nil {
		return nil, fmt.Errorf("kafka producer: %w", err)
	}

	return producer, nil
}

// ProvideLogger creates the app logger. With a Kafka producer available,
// repeated errors are aggregated and shipped to the errors topic.
func ProvideLogger(cfg *config.Config, infra *Infra) (*applogger.Logger, error) {
	l, err := applogger.New(&applogger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	if infra.Producer != nil && cfg.Kafka.ErrorsTopic != "" {
		l.AddCollector(&applogger.CollectionConfig{
			Topic:     cfg.Kafka.ErrorsTopic,
			Publisher: infra.Producer,
		})
	}
	return l, nil
}

// ProvideMetrics creates a Prometheus metrics recorder.
func ProvideMetrics() repository.Metrics {
	return metrics.New()
}

// ProvideHTTPClient creates the outbound client shared by all upstream APIs.
func ProvideHTTPClient(cfg *config.Config) *xhttp.Client {
	return xhttp.NewClient(
		xhttp.WithTimeout(cfg.Upstream.Timeout),
		xhttp.WithUserAgent(cfg.Upstream.UserAgent),
	)
}

func ProvideYahooClient(cfg *config.Config, hc *xhttp.Client, m repository.Metrics) *yahoo.Client {
	return yahoo.New(cfg.Upstream.RapidAPI.Key,
		yahoo.WithBaseURL(cfg.Upstream.RapidAPI.BaseURL),
		yahoo.WithHost(cfg.Upstream.RapidAPI.Host),
		yahoo.WithHTTPClient(hc),
		yahoo.WithMetrics(m),
	)
}

func ProvideOpenWeatherClient(cfg *config.Config, hc *xhttp.Client, m repository.Metrics) *openweather.Client {
	return openweather.New(openweather.Config{
		Key:     cfg.Upstream.OpenWeatherMap.Key,
		BaseURL: cfg.Upstream.OpenWeatherMap.BaseURL,
		Units:   cfg.Upstream.OpenWeatherMap.Units,
		IconURL: cfg.Upstream.OpenWeatherMap.IconURL,
	}, hc, m)
}

func ProvideNominatimClient(cfg *config.Config, hc *xhttp.Client, m repository.Metrics) *nominatim.Client {
	return nominatim.New(cfg.Upstream.Nominatim.BaseURL, hc, m)
}

func ProvideSpoonacularClient(cfg *config.Config, hc *xhttp.Client, m repository.Metrics) *spoonacular.Client {
	return spoonacular.New(cfg.Upstream.Spoonacular.Key, cfg.Upstream.Spoonacular.BaseURL, hc, m)
}

func ProvideWikipediaClient(cfg *config.Config, hc *xhttp.Client, m repository.Metrics) *wikipedia.Client {
	return wikipedia.New(cfg.Upstream.Wikipedia.BaseURL, hc, m)
}

// ProvideJournal builds the journal for the configured backend; nil for "none".
func ProvideJournal(cfg *config.Config, infra *Infra) repository.Journal {
	switch {
	case infra.Producer != nil:
		return internalrepo.NewKafkaJournal(infra.Producer, cfg.Kafka.Topic)
	case infra.ClickHouse != nil:
		return internalrepo.NewClickHouseJournal(infra.ClickHouse.DB(), cfg.ClickHouse.Database+"."+cfg.ClickHouse.Table)
	case infra.Redis != nil:
		return internalrepo.NewRedisJournal(infra.Redis, cfg.Redis.Key, cfg.Redis.MaxLen)
	}
	return nil
}

// ProvideJournalRecorder creates the lookup journal use case.
func ProvideJournalRecorder(
	journal repository.Journal,
	m repository.Metrics,
	l *applogger.Logger,
	cfg *config.Config,
) *usecase.JournalRecorder {
	return usecase.NewJournalRecorder(journal, m, l.With("journal"), cfg.Journal.Backend, cfg.Journal.Timeout)
}

// ProvideStockLookup assembles resolver, fetcher and formatter behind one call.
func ProvideStockLookup(
	yc *yahoo.Client,
	journal *usecase.JournalRecorder,
	m repository.Metrics,
	l *applogger.Logger,
	cfg *config.Config,
) *usecase.StockLookup {
	return usecase.NewStockLookup(
		usecase.NewSymbolResolver(yc, cfg.Upstream.RapidAPI.Region),
		usecase.NewQuoteFetcher(yc, l.With("fetcher")),
		journal,
		m,
		l.With("stock"),
	)
}

func ProvideWeatherLookup(w *openweather.Client, g *nominatim.Client) *usecase.WeatherLookup {
	return usecase.NewWeatherLookup(w, g)
}

// ProvideRenderer parses the embedded page templates.
func ProvideRenderer() (*webhandler.Renderer, error) {
	return webhandler.NewRenderer(web.Templates, "templates")
}

func ProvidePagesHandler(
	l *applogger.Logger,
	stocks *usecase.StockLookup,
	weather *usecase.WeatherLookup,
	recipes *spoonacular.Client,
	articles *wikipedia.Client,
) *webhandler.PagesHandler {
	return webhandler.NewPagesHandler(l.With("pages"), stocks, weather, recipes, articles)
}

func ProvideAPIHandler(l *applogger.Logger, stocks *usecase.StockLookup, journal *usecase.JournalRecorder) *api.StockHandler {
	return api.NewStockHandler(l.With("api"), stocks, journal)
}

// ProvideHTTPServer creates the Echo server with pages, API, static assets and
// backend health checks.
func ProvideHTTPServer(
	cfg *config.Config,
	l *applogger.Logger,
	r *webhandler.Renderer,
	pages *webhandler.PagesHandler,
	apiHandler *api.StockHandler,
	infra *Infra,
) *xhttp.Server {
	metricsPath := ""
	if cfg.Metrics.Enabled {
		metricsPath = cfg.Metrics.Path
	}
	opts := []xhttp.ServerOption{
		xhttp.WithPort(cfg.Server.Port),
		xhttp.WithTimeouts(cfg.Server.ReadTimeout, cfg.Server.WriteTimeout, cfg.Server.ShutdownTimeout),
		xhttp.WithCORS(cfg.Server.CORS),
		xhttp.WithRenderer(r),
		xhttp.WithStatic("/", cfg.Server.StaticDir),
		xhttp.WithMetricsPath(metricsPath),
		xhttp.WithLogger(l),
	}
	return xhttp.NewServer([]xhttp.Handler{pages, apiHandler}, append(opts, infra.HealthChecks()...)...)
}

// ProvideApp creates the application server.
func ProvideApp(
	cfg *config.Config,
	l *applogger.Logger,
	srv *xhttp.Server,
	journal *usecase.JournalRecorder,
	infra *Infra,
) *server.App {
	return server.New(cfg, l, srv, journal, infra.Closers())
}
