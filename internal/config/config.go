package config

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/m04kA/SMC-CalendarBooking/internal/domain"
)

// Storage drivers
const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
)

var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config конфигурация сервиса
type Config struct {
	App       AppConfig       `toml:"app"`
	Server    ServerConfig    `toml:"server"`
	Logs      LogsConfig      `toml:"logs"`
	Metrics   MetricsConfig   `toml:"metrics"`
	Booking   BookingConfig   `toml:"booking"`
	Storage   StorageConfig   `toml:"storage"`
	Database  DatabaseConfig  `toml:"database"`
	RateLimit RateLimitConfig `toml:"rate_limit"`
}

type AppConfig struct {
	Name    string `toml:"name"`
	Version string `toml:"version"`
}

type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // секунды
	WriteTimeout    int `toml:"write_timeout"`    // секунды
	IdleTimeout     int `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int `toml:"shutdown_timeout"` // секунды
}

type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"` // пусто - только stdout
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

type BookingConfig struct {
	SlotDurationMinutes   int `toml:"slot_duration_minutes"`
	MaxAdvanceBookingDays int `toml:"max_advance_booking_days"`
}

// Policy возвращает параметры бронирования для ядра
func (b BookingConfig) Policy() domain.BookingPolicy {
	return domain.BookingPolicy{
		SlotDurationMinutes:   b.SlotDurationMinutes,
		MaxAdvanceBookingDays: b.MaxAdvanceBookingDays,
	}
}

type StorageConfig struct {
	Driver string `toml:"driver"` // memory | postgres
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

// DSN возвращает строку подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

type RateLimitConfig struct {
	Enabled           bool    `toml:"enabled"`
	RequestsPerSecond float64 `toml:"requests_per_second"`
	Burst             int     `toml:"burst"`
}

// Default возвращает конфигурацию по умолчанию
func Default() *Config {
	return &Config{
		App: AppConfig{
			Name:    "Calendar Booking System",
			Version: "1.0.0",
		},
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    10,
			IdleTimeout:     60,
			ShutdownTimeout: 15,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Enabled:     true,
			Path:        "/metrics",
			ServiceName: "calendar-booking",
		},
		Booking: BookingConfig{
			SlotDurationMinutes:   domain.DefaultSlotDurationMinutes,
			MaxAdvanceBookingDays: domain.DefaultMaxAdvanceBookingDays,
		},
		Storage: StorageConfig{
			Driver: StorageMemory,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		RateLimit: RateLimitConfig{
			Enabled:           true,
			RequestsPerSecond: 5,
			Burst:             10,
		},
	}
}

// Load читает конфигурацию из TOML файла поверх значений по умолчанию
func Load(path string) (*Config, error) {
	cfg := Default()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate проверяет согласованность конфигурации
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port must be in 1..65535, got %d", ErrInvalidConfig, c.Server.HTTPPort)
	}

	if c.Booking.SlotDurationMinutes < domain.MinSlotDurationMinutes ||
		c.Booking.SlotDurationMinutes > domain.MaxSlotDurationMinutes {
		return fmt.Errorf("%w: booking.slot_duration_minutes must be in %d..%d, got %d",
			ErrInvalidConfig, domain.MinSlotDurationMinutes, domain.MaxSlotDurationMinutes, c.Booking.SlotDurationMinutes)
	}

	// Иначе калькулятор предложит слоты не в начале часа, которые нельзя забронировать
	if c.Booking.SlotDurationMinutes%domain.SlotDurationStepMinutes != 0 {
		return fmt.Errorf("%w: booking.slot_duration_minutes must be a multiple of %d, got %d",
			ErrInvalidConfig, domain.SlotDurationStepMinutes, c.Booking.SlotDurationMinutes)
	}

	if c.Booking.MaxAdvanceBookingDays < domain.MinAdvanceBookingDays ||
		c.Booking.MaxAdvanceBookingDays > domain.MaxAdvanceBookingDaysCap {
		return fmt.Errorf("%w: booking.max_advance_booking_days must be in %d..%d, got %d",
			ErrInvalidConfig, domain.MinAdvanceBookingDays, domain.MaxAdvanceBookingDaysCap, c.Booking.MaxAdvanceBookingDays)
	}

	switch c.Storage.Driver {
	case StorageMemory:
	case StoragePostgres:
		if c.Database.Host == "" || c.Database.DBName == "" {
			return fmt.Errorf("%w: database.host and database.dbname are required for postgres storage", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: storage.driver must be %q or %q, got %q",
			ErrInvalidConfig, StorageMemory, StoragePostgres, c.Storage.Driver)
	}

	if c.Metrics.Enabled && c.Metrics.Path == "" {
		return fmt.Errorf("%w: metrics.path is required when metrics are enabled", ErrInvalidConfig)
	}

	if c.RateLimit.Enabled && (c.RateLimit.RequestsPerSecond <= 0 || c.RateLimit.Burst <= 0) {
		return fmt.Errorf("%w: rate_limit.requests_per_second and rate_limit.burst must be positive", ErrInvalidConfig)
	}

	return nil
}
