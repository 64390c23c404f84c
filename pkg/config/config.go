package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/creasty/defaults"
	"gopkg.in/yaml.v3"
)

// Journal backends.
const (
	JournalNone       = "none"
	JournalKafka      = "kafka"
	JournalClickHouse = "clickhouse"
	JournalRedis      = "redis"
)

type Config struct {
	Environment string `yaml:"environment" default:"development"`
	Server      struct {
		Port            int           `yaml:"port" default:"3000"`
		ReadTimeout     time.Duration `yaml:"read_timeout" default:"10s"`
		WriteTimeout    time.Duration `yaml:"write_timeout" default:"30s"`
		ShutdownTimeout time.Duration `yaml:"shutdown_timeout" default:"10s"`
		StaticDir       string        `yaml:"static_dir" default:"web/assets"`
		CORS            bool          `yaml:"cors" default:"true"`
	} `yaml:"server"`
	Log struct {
		Level  string `yaml:"level" default:"info"`
		Format string `yaml:"format" default:"console"`
		Output string `yaml:"output" default:"stdout"`
	} `yaml:"log"`
	Metrics struct {
		Enabled bool   `yaml:"enabled" default:"true"`
		Path    string `yaml:"path" default:"/metrics"`
	} `yaml:"metrics"`
	Upstream struct {
		Timeout   time.Duration `yaml:"timeout" default:"15s"`
		UserAgent string        `yaml:"user_agent" default:"webhub/1.0"`
		RapidAPI  struct {
			Key     string `yaml:"key"`
			Host    string `yaml:"host" default:"apidojo-yahoo-finance-v1.p.rapidapi.com"`
			BaseURL string `yaml:"base_url" default:"https://apidojo-yahoo-finance-v1.p.rapidapi.com"`
			Region  string `yaml:"region" default:"US"`
		} `yaml:"rapidapi"`
		OpenWeatherMap struct {
			Key     string `yaml:"key"`
			BaseURL string `yaml:"base_url" default:"https://api.openweathermap.org/data/2.5"`
			Units   string `yaml:"units" default:"metric"`
			IconURL string `yaml:"icon_url" default:"http://openweathermap.org/img/wn"`
		} `yaml:"openweathermap"`
		Nominatim struct {
			BaseURL string `yaml:"base_url" default:"https://nominatim.openstreetmap.org"`
		} `yaml:"nominatim"`
		Spoonacular struct {
			Key     string `yaml:"key"`
			BaseURL string `yaml:"base_url" default:"https://api.spoonacular.com"`
		} `yaml:"spoonacular"`
		Wikipedia struct {
			BaseURL string `yaml:"base_url" default:"https://en.wikipedia.org/w/api.php"`
		} `yaml:"wikipedia"`
	} `yaml:"upstream"`
	Journal struct {
		Backend string        `yaml:"backend" default:"none"`
		Timeout time.Duration `yaml:"timeout" default:"2s"`
	} `yaml:"journal"`
	Kafka struct {
		Brokers      []string `yaml:"brokers"`
		Topic        string   `yaml:"topic" default:"webhub.lookups"`
		ErrorsTopic  string   `yaml:"errors_topic" default:"webhub.errors"`
		RequiredAcks int      `yaml:"required_acks" default:"-1"`
		Compression  string   `yaml:"compression" default:"gzip"`
		Producer     struct {
			MaxAttempts  int           `yaml:"max_attempts" default:"3"`
			Linger       time.Duration `yaml:"linger" default:"100ms"`
			BatchBytes   int           `yaml:"batch_bytes" default:"1048576"`
			BatchSize    int           `yaml:"batch_size" default:"100"`
			WriteTimeout time.Duration `yaml:"write_timeout" default:"10s"`
			ReadTimeout  time.Duration `yaml:"read_timeout" default:"10s"`
			Async        bool          `yaml:"async"`
		} `yaml:"producer"`
	} `yaml:"kafka"`
	ClickHouse struct {
		Host             string        `yaml:"host" default:"localhost"`
		Port             int           `yaml:"port" default:"9000"`
		Database         string        `yaml:"database" default:"webhub"`
		Table            string        `yaml:"table" default:"stock_lookups"`
		User             string        `yaml:"user" default:"default"`
		Password         string        `yaml:"password"`
		UseHTTP          bool          `yaml:"use_http"`
		AsyncInsert      bool          `yaml:"async_insert" default:"true"`
		WaitForAsync     bool          `yaml:"wait_for_async_insert"`
		DialTimeout      time.Duration `yaml:"dial_timeout" default:"5s"`
		ReadTimeout      time.Duration `yaml:"read_timeout" default:"10s"`
		WriteTimeout     time.Duration `yaml:"write_timeout" default:"10s"`
		MaxExecutionTime time.Duration `yaml:"max_execution_time" default:"30s"`
	} `yaml:"clickhouse"`
	Redis struct {
		Addr     string `yaml:"addr" default:"localhost:6379"`
		Password string `yaml:"password"`
		DB       int    `yaml:"db"`
		Key      string `yaml:"key" default:"webhub:lookups"`
		MaxLen   int    `yaml:"max_len" default:"500"`
	} `yaml:"redis"`
}

// Load reads and parses a YAML configuration file. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	c, err := read(path)
	if err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return c, nil
}

func read(path string) (*Config, error) {
	var c Config
	// Defaults first so that explicit false/zero values in the file survive.
	if err := defaults.Set(&c); err != nil {
		return nil, fmt.Errorf("config defaults: %w", err)
	}

	b, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(b) > 0 {
		if err := yaml.Unmarshal(b, &c); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}
	return &c, nil
}

// LoadWithEnv loads .env, then config from YAML, then overrides with environment variables.
func LoadWithEnv(path string) (*Config, error) {
	if err := LoadDotEnv(); err != nil {
		return nil, err
	}

	c, err := read(path)
	if err != nil {
		return nil, err
	}

	if v := os.Getenv("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid PORT %q: %w", v, err)
		}
		c.Server.Port = port
	}
	if v := os.Getenv("RAPIDAPI_KEY"); v != "" {
		c.Upstream.RapidAPI.Key = v
	}
	if v := os.Getenv("OPENWEATHERMAP_KEY"); v != "" {
		c.Upstream.OpenWeatherMap.Key = v
	}
	if v := os.Getenv("SPOONACULAR_KEY"); v != "" {
		c.Upstream.Spoonacular.Key = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv("JOURNAL_BACKEND"); v != "" {
		c.Journal.Backend = v
	}
	if v := os.Getenv("KAFKA_BROKERS"); v != "" {
		c.Kafka.Brokers = strings.Split(v, ",")
	}
	if v := os.Getenv("KAFKA_TOPIC"); v != "" {
		c.Kafka.Topic = v
	}

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return c, nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Environment == "" {
		return fmt.Errorf("environment is required")
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535, got %d", c.Server.Port)
	}
	switch c.Log.Format {
	case "json", "console":
	default:
		return fmt.Errorf("log.format must be 'json' or 'console', got '%s'", c.Log.Format)
	}
	switch c.Journal.Backend {
	case JournalNone:
	case JournalKafka:
		if len(c.Kafka.Brokers) == 0 {
			return fmt.Errorf("kafka.brokers cannot be empty when journal.backend is kafka")
		}
		if c.Kafka.Topic == "" {
			return fmt.Errorf("kafka.topic is required when journal.backend is kafka")
		}
	case JournalClickHouse:
		if c.ClickHouse.Host == "" {
			return fmt.Errorf("clickhouse.host is required when journal.backend is clickhouse")
		}
	case JournalRedis:
		if c.Redis.Addr == "" {
			return fmt.Errorf("redis.addr is required when journal.backend is redis")
		}
	default:
		return fmt.Errorf("journal.backend must be one of none, kafka, clickhouse, redis, got '%s'", c.Journal.Backend)
	}
	return nil
}
