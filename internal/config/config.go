package config

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/BurntSushi/toml"
	"github.com/creasty/defaults"
	"github.com/robfig/cron/v3"

	"github.com/m04kA/DogPlanner-PricingService/internal/domain"
)

var (
	// ErrReadConfig ошибка чтения файла конфигурации
	ErrReadConfig = errors.New("config: failed to read file")

	// ErrParseConfig ошибка разбора TOML
	ErrParseConfig = errors.New("config: failed to parse toml")

	// ErrInvalidConfig конфигурация содержит недопустимые значения
	ErrInvalidConfig = errors.New("config: invalid configuration")
)

// Config конфигурация сервиса
type Config struct {
	Server       ServerConfig       `toml:"server"`
	Database     DatabaseConfig     `toml:"database"`
	Redis        RedisConfig        `toml:"redis"`
	Logs         LogsConfig         `toml:"logs"`
	Metrics      MetricsConfig      `toml:"metrics"`
	RateLimit    RateLimitConfig    `toml:"rate_limit"`
	DogRegistry  IntegrationConfig  `toml:"dog_registry"`
	OrgService   IntegrationConfig  `toml:"org_service"`
	Pricing      PricingConfig      `toml:"pricing"`
	Cancellation CancellationConfig `toml:"cancellation"`
	Reports      ReportsConfig      `toml:"reports"`
}

// ServerConfig настройки HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port" default:"8080"`
	HealthPort      int `toml:"health_port"`
	ReadTimeout     int `toml:"read_timeout" default:"15"`
	WriteTimeout    int `toml:"write_timeout" default:"15"`
	IdleTimeout     int `toml:"idle_timeout" default:"60"`
	ShutdownTimeout int `toml:"shutdown_timeout" default:"10"`
}

// DatabaseConfig настройки подключения к Postgres
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port" default:"5432"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode" default:"disable"`
	MaxOpenConns    int    `toml:"max_open_conns" default:"25"`
	MaxIdleConns    int    `toml:"max_idle_conns" default:"5"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime" default:"300"` // секунды
}

// DSN возвращает строку подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// RedisConfig настройки Redis для кэша отчётов
type RedisConfig struct {
	Enabled  bool   `toml:"enabled"`
	Address  string `toml:"address"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

// LogsConfig настройки логирования
type LogsConfig struct {
	Level string `toml:"level" default:"info"`
	File  string `toml:"file"` // пусто = консоль
}

// MetricsConfig настройки Prometheus
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path" default:"/metrics"`
	ServiceName string `toml:"service_name" default:"dogplanner-pricing"`
}

// RateLimitConfig ограничение запросов на клиента
type RateLimitConfig struct {
	Enabled           bool    `toml:"enabled"`
	RequestsPerSecond float64 `toml:"requests_per_second" default:"20"`
	Burst             int     `toml:"burst" default:"40"`
}

// IntegrationConfig настройки HTTP клиента внешнего сервиса
type IntegrationConfig struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout" default:"5"` // секунды
}

// PricingConfig дефолтные тарифные таблицы
type PricingConfig struct {
	TierBaseRates   map[string]float64 `toml:"tier_base_rates"`
	SizeMultipliers map[string]float64 `toml:"size_multipliers"`
	DateMultipliers map[string]float64 `toml:"date_multipliers"`
	VATRatePct      *float64           `toml:"vat_rate_pct"`
	VATIncluded     *bool              `toml:"vat_included"`
}

// CancellationConfig дефолтная политика отмены
type CancellationConfig struct {
	Description string                   `toml:"description"`
	Tiers       []CancellationTierConfig `toml:"tiers"`
}

// CancellationTierConfig ступень политики отмены
type CancellationTierConfig struct {
	MinDaysBefore int     `toml:"min_days_before"`
	FeeRate       float64 `toml:"fee_rate"`
}

// ReportsConfig настройки отчётов
type ReportsConfig struct {
	CacheTTLSeconds int    `toml:"cache_ttl_seconds" default:"300"`
	WarmupSchedule  string `toml:"warmup_schedule" default:"0 2 * * *"` // cron, пусто = выключено
}

// Load читает конфигурацию из TOML файла.
// Плейсхолдеры ${ENV_VAR} подставляются из окружения до разбора.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrReadConfig, path, err)
	}

	return Parse(os.ExpandEnv(string(data)))
}

// Parse разбирает TOML, применяет значения по умолчанию и валидирует результат
func Parse(data string) (*Config, error) {
	var cfg Config
	if err := defaults.Set(&cfg); err != nil {
		return nil, fmt.Errorf("%w: defaults: %v", ErrParseConfig, err)
	}
	if _, err := toml.Decode(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParseConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate проверяет значения конфигурации
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port must be in 1..65535", ErrInvalidConfig)
	}
	if c.Server.HealthPort < 0 || c.Server.HealthPort > 65535 {
		return fmt.Errorf("%w: server.health_port must be in 0..65535", ErrInvalidConfig)
	}
	if c.Server.HealthPort != 0 && c.Server.HealthPort == c.Server.HTTPPort {
		return fmt.Errorf("%w: server.health_port must differ from http_port", ErrInvalidConfig)
	}
	if c.Redis.Enabled && c.Redis.Address == "" {
		return fmt.Errorf("%w: redis.address is required when redis is enabled", ErrInvalidConfig)
	}
	if c.RateLimit.RequestsPerSecond < 0 || c.RateLimit.Burst < 0 {
		return fmt.Errorf("%w: rate_limit values must not be negative", ErrInvalidConfig)
	}
	if c.Reports.WarmupSchedule != "" {
		if _, err := cron.ParseStandard(c.Reports.WarmupSchedule); err != nil {
			return fmt.Errorf("%w: reports.warmup_schedule: %v", ErrInvalidConfig, err)
		}
	}
	if c.Reports.CacheTTLSeconds < 0 {
		return fmt.Errorf("%w: reports.cache_ttl_seconds must not be negative", ErrInvalidConfig)
	}

	if err := c.PricingPolicy().Validate(); err != nil {
		return fmt.Errorf("%w: pricing: %v", ErrInvalidConfig, err)
	}
	if err := c.CancellationPolicy().Validate(); err != nil {
		return fmt.Errorf("%w: cancellation: %v", ErrInvalidConfig, err)
	}

	return nil
}

// PricingPolicy собирает дефолтную тарифную политику.
// Значения из конфигурации перекрывают встроенные таблицы по ключам.
func (c *Config) PricingPolicy() *domain.PricingPolicy {
	policy := domain.DefaultPricingPolicy()

	for k, v := range c.Pricing.TierBaseRates {
		policy.TierBaseRates[domain.ServiceTier(k)] = v
	}
	for k, v := range c.Pricing.SizeMultipliers {
		policy.SizeMultipliers[domain.SizeBand(k)] = v
	}
	for k, v := range c.Pricing.DateMultipliers {
		policy.DateMultipliers[domain.DateCategory(k)] = v
	}
	if c.Pricing.VATRatePct != nil {
		policy.VATRatePct = *c.Pricing.VATRatePct
	}
	if c.Pricing.VATIncluded != nil {
		policy.VATIncluded = *c.Pricing.VATIncluded
	}

	return policy
}

// CancellationPolicy собирает дефолтную политику отмены.
// Если ступени не заданы, используется стандартная политика.
func (c *Config) CancellationPolicy() *domain.CancellationPolicy {
	if len(c.Cancellation.Tiers) == 0 {
		policy := domain.DefaultCancellationPolicy()
		if c.Cancellation.Description != "" {
			policy.Description = c.Cancellation.Description
		}
		return policy
	}

	tiers := make([]domain.CancellationTier, 0, len(c.Cancellation.Tiers))
	for _, t := range c.Cancellation.Tiers {
		tiers = append(tiers, domain.CancellationTier{MinDaysBefore: t.MinDaysBefore, FeeRate: t.FeeRate})
	}
	sort.SliceStable(tiers, func(i, j int) bool { return tiers[i].MinDaysBefore > tiers[j].MinDaysBefore })

	return &domain.CancellationPolicy{Tiers: tiers, Description: c.Cancellation.Description}
}
