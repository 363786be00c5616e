package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig
	Redis     RedisConfig
	Countries CountriesConfig
	Cache     CacheConfig
	Session   SessionConfig
	Search    SearchConfig
	Log       LogConfig
	Worker    WorkerConfig
}

type ServerConfig struct {
	Host string
	Port int
	Env  string
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// CountriesConfig - параметры клиента REST Countries API
type CountriesConfig struct {
	BaseURL        string
	RequestTimeout int
	MaxRetries     int
}

type CacheConfig struct {
	CatalogTTL time.Duration
	DetailTTL  time.Duration
}

// SessionConfig - параметры сессии и cookie-маркера
type SessionConfig struct {
	CookieName     string
	AuthCookieName string
	TTL            time.Duration
	AuthCookieTTL  time.Duration
}

type SearchConfig struct {
	DebounceDelay time.Duration
}

type LogConfig struct {
	Level string
}

type WorkerConfig struct {
	Enabled         bool
	RefreshInterval time.Duration
}

func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Host: viper.GetString("API_HOST"),
			Port: viper.GetInt("API_PORT"),
			Env:  viper.GetString("API_ENV"),
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetInt("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		Countries: CountriesConfig{
			BaseURL:        viper.GetString("COUNTRIES_API_BASE_URL"),
			RequestTimeout: viper.GetInt("COUNTRIES_API_TIMEOUT"),
			MaxRetries:     viper.GetInt("COUNTRIES_API_MAX_RETRIES"),
		},
		Cache: CacheConfig{
			CatalogTTL: time.Duration(viper.GetInt("CATALOG_CACHE_TTL")) * time.Second,
			DetailTTL:  time.Duration(viper.GetInt("DETAIL_CACHE_TTL")) * time.Second,
		},
		Session: SessionConfig{
			CookieName:     viper.GetString("SESSION_COOKIE_NAME"),
			AuthCookieName: viper.GetString("AUTH_COOKIE_NAME"),
			TTL:            time.Duration(viper.GetInt("SESSION_TTL")) * time.Second,
			AuthCookieTTL:  time.Duration(viper.GetInt("AUTH_COOKIE_TTL")) * time.Second,
		},
		Search: SearchConfig{
			DebounceDelay: time.Duration(viper.GetInt("SEARCH_DEBOUNCE_MS")) * time.Millisecond,
		},
		Log: LogConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
		Worker: WorkerConfig{
			Enabled:         viper.GetBool("WORKER_ENABLED"),
			RefreshInterval: time.Duration(viper.GetInt("WORKER_REFRESH_INTERVAL")) * time.Second,
		},
	}

	// Set default values if not provided
	if cfg.Countries.BaseURL == "" {
		cfg.Countries.BaseURL = "https://restcountries.com/v3.1"
	}
	if cfg.Countries.RequestTimeout == 0 {
		cfg.Countries.RequestTimeout = 15
	}
	if cfg.Countries.MaxRetries == 0 {
		cfg.Countries.MaxRetries = 3
	}
	if cfg.Cache.CatalogTTL == 0 {
		cfg.Cache.CatalogTTL = time.Hour
	}
	if cfg.Cache.DetailTTL == 0 {
		cfg.Cache.DetailTTL = time.Hour
	}
	if cfg.Session.CookieName == "" {
		cfg.Session.CookieName = "explorer_session"
	}
	if cfg.Session.AuthCookieName == "" {
		cfg.Session.AuthCookieName = "auth_session"
	}
	if cfg.Session.TTL == 0 {
		cfg.Session.TTL = 24 * time.Hour
	}
	if cfg.Session.AuthCookieTTL == 0 {
		// Короткоживущий маркер: производная проекция флага из блоба
		cfg.Session.AuthCookieTTL = time.Hour
	}
	if cfg.Search.DebounceDelay == 0 {
		cfg.Search.DebounceDelay = 300 * time.Millisecond
	}
	if cfg.Worker.RefreshInterval == 0 {
		cfg.Worker.RefreshInterval = 6 * time.Hour
	}

	return cfg, nil
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}
