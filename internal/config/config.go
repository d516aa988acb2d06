package config

import (
	"fmt"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/m04kA/PZA-SlotService/internal/domain"
	"github.com/m04kA/PZA-SlotService/pkg/types"
)

// Config конфигурация сервиса
type Config struct {
	Server    ServerConfig    `toml:"server"`
	Database  DatabaseConfig  `toml:"database"`
	Logs      LogsConfig      `toml:"logs"`
	Metrics   MetricsConfig   `toml:"metrics"`
	Redis     RedisConfig     `toml:"redis"`
	RateLimit RateLimitConfig `toml:"rate_limit"`
	Auth      AuthConfig      `toml:"auth"`
	Schedule  ScheduleConfig  `toml:"schedule"`
}

// ServerConfig настройки HTTP сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig настройки подключения к PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// DSN возвращает строку подключения к PostgreSQL
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки Prometheus-метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	ServiceName string `toml:"service_name"`
	Path        string `toml:"path"`
}

// RedisConfig настройки Redis (кеш промокодов и rate limiter)
type RedisConfig struct {
	Enabled  bool   `toml:"enabled"`
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
	CacheTTL int    `toml:"cache_ttl"` // TTL кеша промокодов в секундах
}

// RateLimitConfig настройки ограничения запросов
type RateLimitConfig struct {
	Enabled       bool   `toml:"enabled"`
	Requests      int    `toml:"requests"`
	WindowSeconds int    `toml:"window_seconds"`
	KeyPrefix     string `toml:"key_prefix"`
}

// AuthConfig настройки доступа к административным ручкам
type AuthConfig struct {
	AdminToken string `toml:"admin_token"`
}

// ScheduleConfig недельное расписание пиццерии и параметры слотов
type ScheduleConfig struct {
	SlotDurationMinutes int `toml:"slot_duration_minutes"`
	CapacityPerSlot     int `toml:"capacity_per_slot"`

	Monday    DayConfig `toml:"monday"`
	Tuesday   DayConfig `toml:"tuesday"`
	Wednesday DayConfig `toml:"wednesday"`
	Thursday  DayConfig `toml:"thursday"`
	Friday    DayConfig `toml:"friday"`
	Saturday  DayConfig `toml:"saturday"`
	Sunday    DayConfig `toml:"sunday"`

	Exceptions []ExceptionConfig `toml:"exceptions"`
}

// DayConfig расписание одного дня недели
type DayConfig struct {
	Closed bool   `toml:"closed"`
	Open   string `toml:"open"`
	Close  string `toml:"close"`
}

// ExceptionConfig расписание-исключение на конкретную дату
type ExceptionConfig struct {
	Date   string `toml:"date"` // YYYY-MM-DD
	Closed bool   `toml:"closed"`
	Open   string `toml:"open"`
	Close  string `toml:"close"`
}

// Load читает и валидирует конфигурацию из TOML файла
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	applyDefaults(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Server.HTTPPort == 0 {
		cfg.Server.HTTPPort = 8080
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = 10
	}
	if cfg.Database.MaxOpenConns == 0 {
		cfg.Database.MaxOpenConns = 10
	}
	if cfg.Metrics.Path == "" {
		cfg.Metrics.Path = "/metrics"
	}
	if cfg.Redis.CacheTTL == 0 {
		cfg.Redis.CacheTTL = 300
	}
	if cfg.Schedule.SlotDurationMinutes == 0 {
		cfg.Schedule.SlotDurationMinutes = domain.DefaultSlotDurationMinutes
	}
	if cfg.Schedule.CapacityPerSlot == 0 {
		cfg.Schedule.CapacityPerSlot = domain.DefaultCapacityPerSlot
	}
}

func validate(cfg *Config) error {
	if cfg.Schedule.SlotDurationMinutes < domain.MinSlotDurationMinutes ||
		cfg.Schedule.SlotDurationMinutes > domain.MaxSlotDurationMinutes {
		return fmt.Errorf("config: slot_duration_minutes must be between %d and %d",
			domain.MinSlotDurationMinutes, domain.MaxSlotDurationMinutes)
	}
	if cfg.Schedule.CapacityPerSlot < domain.MinCapacityPerSlot ||
		cfg.Schedule.CapacityPerSlot > domain.MaxCapacityPerSlot {
		return fmt.Errorf("config: capacity_per_slot must be between %d and %d",
			domain.MinCapacityPerSlot, domain.MaxCapacityPerSlot)
	}
	return nil
}

// ToDomainSchedule конвертирует конфигурацию расписания в доменную модель
func (s *ScheduleConfig) ToDomainSchedule() (*domain.Schedule, error) {
	week := domain.WeekSchedule{}

	days := []struct {
		cfg DayConfig
		dst *domain.DaySchedule
	}{
		{s.Monday, &week.Monday},
		{s.Tuesday, &week.Tuesday},
		{s.Wednesday, &week.Wednesday},
		{s.Thursday, &week.Thursday},
		{s.Friday, &week.Friday},
		{s.Saturday, &week.Saturday},
		{s.Sunday, &week.Sunday},
	}

	for _, day := range days {
		converted, err := day.cfg.toDomainDay()
		if err != nil {
			return nil, err
		}
		*day.dst = converted
	}

	exceptions := make(map[string]domain.DaySchedule, len(s.Exceptions))
	for _, exc := range s.Exceptions {
		if _, err := time.Parse(domain.DateFormat, exc.Date); err != nil {
			return nil, fmt.Errorf("config: invalid exception date %q: %w", exc.Date, err)
		}
		converted, err := DayConfig{Closed: exc.Closed, Open: exc.Open, Close: exc.Close}.toDomainDay()
		if err != nil {
			return nil, fmt.Errorf("config: exception %s: %w", exc.Date, err)
		}
		exceptions[exc.Date] = converted
	}

	return &domain.Schedule{
		Week:                week,
		Exceptions:          exceptions,
		SlotDurationMinutes: s.SlotDurationMinutes,
		CapacityPerSlot:     s.CapacityPerSlot,
	}, nil
}

func (d DayConfig) toDomainDay() (domain.DaySchedule, error) {
	if d.Closed {
		return domain.DaySchedule{IsOpen: false}, nil
	}

	open, err := types.NewTimeStringFromString(d.Open)
	if err != nil {
		return domain.DaySchedule{}, fmt.Errorf("config: invalid open time %q: %w", d.Open, err)
	}

	closeTime, err := types.NewTimeStringFromString(d.Close)
	if err != nil {
		return domain.DaySchedule{}, fmt.Errorf("config: invalid close time %q: %w", d.Close, err)
	}

	if !open.IsBefore(closeTime) {
		return domain.DaySchedule{}, fmt.Errorf("config: open time %s must be before close time %s", open, closeTime)
	}

	return domain.DaySchedule{IsOpen: true, OpenTime: open, CloseTime: closeTime}, nil
}
