package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

// Переменные окружения с секретами, перекрывают значения из config.toml
const (
	EnvDBPassword     = "SMC_DB_PASSWORD"
	EnvRedisPassword  = "SMC_REDIS_PASSWORD"
	EnvMarketplaceURL = "SMC_MARKETPLACE_URL"
)

var (
	ErrInvalidServer      = errors.New("config: invalid server section")
	ErrInvalidDatabase    = errors.New("config: invalid database section")
	ErrInvalidLogs        = errors.New("config: invalid logs section")
	ErrInvalidMetrics     = errors.New("config: invalid metrics section")
	ErrInvalidMarketplace = errors.New("config: invalid marketplace section")
	ErrInvalidCache       = errors.New("config: invalid cache section")
	ErrInvalidEngine      = errors.New("config: invalid engine section")
)

type Config struct {
	Server      ServerConfig      `toml:"server"`
	Database    DatabaseConfig    `toml:"database"`
	Logs        LogsConfig        `toml:"logs"`
	Metrics     MetricsConfig     `toml:"metrics"`
	Marketplace MarketplaceConfig `toml:"marketplace"`
	Cache       CacheConfig       `toml:"cache"`
	Engine      EngineConfig      `toml:"engine"`
}

// Таймауты сервера в секундах
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
}

// DSN строка подключения для lib/pq
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"` // пусто = только stdout
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// MarketplaceConfig клиент маркетплейса и его circuit breaker
type MarketplaceConfig struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"` // секунды

	BreakerMaxRequests      uint32 `toml:"breaker_max_requests"`
	BreakerInterval         int    `toml:"breaker_interval"` // секунды
	BreakerTimeout          int    `toml:"breaker_timeout"`  // секунды
	BreakerFailureThreshold uint32 `toml:"breaker_failure_threshold"`
}

// CacheConfig кэш ответов маркетплейса в Redis
type CacheConfig struct {
	Enabled        bool   `toml:"enabled"`
	Addr           string `toml:"addr"`
	Password       string `toml:"password"`
	DB             int    `toml:"db"`
	TTL            int    `toml:"ttl"` // секунды
	KeyPrefix      string `toml:"key_prefix"`
	DisableOnError bool   `toml:"disable_on_error"`
}

type EngineConfig struct {
	DefaultDatesDays int `toml:"default_dates_days"`
}

// Load читает конфигурацию из TOML файла, подгружает .env и применяет
// переопределения секретов из окружения
func Load(path string) (*Config, error) {
	// .env необязателен
	_ = godotenv.Load()

	cfg := defaults()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func defaults() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    10,
			IdleTimeout:     60,
			ShutdownTimeout: 15,
		},
		Database: DatabaseConfig{
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Logs: LogsConfig{Level: "info"},
		Metrics: MetricsConfig{
			Path:        "/metrics",
			ServiceName: "smc-scheduling-service",
		},
		Marketplace: MarketplaceConfig{
			Timeout:                 5,
			BreakerMaxRequests:      1,
			BreakerInterval:         60,
			BreakerTimeout:          30,
			BreakerFailureThreshold: 5,
		},
		Cache: CacheConfig{
			TTL:       60,
			KeyPrefix: "smc:scheduling:",
		},
		Engine: EngineConfig{DefaultDatesDays: 30},
	}
}

func (c *Config) applyEnv() {
	if v, ok := os.LookupEnv(EnvDBPassword); ok {
		c.Database.Password = v
	}
	if v, ok := os.LookupEnv(EnvRedisPassword); ok {
		c.Cache.Password = v
	}
	if v, ok := os.LookupEnv(EnvMarketplaceURL); ok && v != "" {
		c.Marketplace.URL = v
	}
}

// Validate проверяет обязательные поля и диапазоны
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: http_port %d", ErrInvalidServer, c.Server.HTTPPort)
	}
	if c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("%w: shutdown_timeout must be positive", ErrInvalidServer)
	}

	if c.Database.Host == "" || c.Database.DBName == "" || c.Database.User == "" {
		return fmt.Errorf("%w: host, user and dbname are required", ErrInvalidDatabase)
	}
	if c.Database.MaxIdleConns > c.Database.MaxOpenConns {
		return fmt.Errorf("%w: max_idle_conns exceeds max_open_conns", ErrInvalidDatabase)
	}

	switch strings.ToLower(c.Logs.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: unknown level %q", ErrInvalidLogs, c.Logs.Level)
	}

	if c.Metrics.Enabled && !strings.HasPrefix(c.Metrics.Path, "/") {
		return fmt.Errorf("%w: path must start with /", ErrInvalidMetrics)
	}

	if !strings.HasPrefix(c.Marketplace.URL, "http://") && !strings.HasPrefix(c.Marketplace.URL, "https://") {
		return fmt.Errorf("%w: url %q", ErrInvalidMarketplace, c.Marketplace.URL)
	}
	if c.Marketplace.Timeout <= 0 || c.Marketplace.BreakerFailureThreshold == 0 {
		return fmt.Errorf("%w: timeout and breaker_failure_threshold must be positive", ErrInvalidMarketplace)
	}

	if c.Cache.Enabled && (c.Cache.Addr == "" || c.Cache.TTL <= 0) {
		return fmt.Errorf("%w: addr and ttl are required when enabled", ErrInvalidCache)
	}

	if c.Engine.DefaultDatesDays <= 0 || c.Engine.DefaultDatesDays > domain.MaxAvailableDatesDays {
		return fmt.Errorf("%w: default_dates_days must be in 1..%d", ErrInvalidEngine, domain.MaxAvailableDatesDays)
	}

	return nil
}
