package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/Sudeepktiwari/qa-agentlytics-sub006/internal/domain"
	"github.com/Sudeepktiwari/qa-agentlytics-sub006/pkg/types"
)

var (
	// ErrInvalidConfig возвращается, если конфигурация не проходит проверку
	ErrInvalidConfig = errors.New("config: invalid configuration")
)

const (
	StorageDriverPostgres = "postgres"
	StorageDriverMongo    = "mongo"

	EnvProduction = "production"
)

// Config корневая конфигурация сервиса (config.toml)
type Config struct {
	App           AppConfig           `toml:"app"`
	Server        ServerConfig        `toml:"server"`
	Storage       StorageConfig       `toml:"storage"`
	Database      DatabaseConfig      `toml:"database"`
	Mongo         MongoConfig         `toml:"mongo"`
	Redis         RedisConfig         `toml:"redis"`
	Notifications NotificationsConfig `toml:"notifications"`
	Calendar      CalendarConfig      `toml:"calendar"`
	Logs          LogsConfig          `toml:"logs"`
	Metrics       MetricsConfig       `toml:"metrics"`
}

type AppConfig struct {
	Env            string `toml:"env"`
	DefaultAdminID string `toml:"default_admin_id"`
}

// IsProduction в production реальные тексты внутренних ошибок не отдаются клиенту
func (a AppConfig) IsProduction() bool {
	return strings.EqualFold(a.Env, EnvProduction)
}

type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

type StorageConfig struct {
	Driver string `toml:"driver"`
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
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// DSN строка подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// URL строка подключения для golang-migrate
func (d DatabaseConfig) URL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode)
}

type MongoConfig struct {
	URI            string `toml:"uri"`
	Database       string `toml:"database"`
	Collection     string `toml:"collection"`
	ConnectTimeout int    `toml:"connect_timeout"`
	QueryTimeout   int    `toml:"query_timeout"`
}

type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

type NotificationsConfig struct {
	Enabled           bool   `toml:"enabled"`
	Queue             string `toml:"queue"`
	MaxRetry          int    `toml:"max_retry"`
	WorkerConcurrency int    `toml:"worker_concurrency"`
	WorkerMetricsPort int    `toml:"worker_metrics_port"`
	SendGridAPIKey    string `toml:"sendgrid_api_key"`
	FromEmail         string `toml:"from_email"`
	FromName          string `toml:"from_name"`
}

// CalendarConfig значения календаря по умолчанию для процесса
// Пустые поля заменяются встроенными значениями
type CalendarConfig struct {
	BusinessHoursStart string `toml:"business_hours_start"`
	BusinessHoursEnd   string `toml:"business_hours_end"`
	Timezone           string `toml:"timezone"`
	WorkingDays        []int  `toml:"working_days"`
	SlotDuration       int    `toml:"slot_duration"`
	BufferTime         int    `toml:"buffer_time"`
	AdvanceBookingDays *int   `toml:"advance_booking_days"`
	MaxBookingDays     int    `toml:"max_booking_days"`
}

// ToDomain накладывает заданные поля на встроенные значения календаря
func (c CalendarConfig) ToDomain() domain.CalendarConfig {
	cfg := domain.DefaultCalendarConfig()
	if c.BusinessHoursStart != "" {
		cfg.BusinessHours.Start = normalizeTime(c.BusinessHoursStart)
	}
	if c.BusinessHoursEnd != "" {
		cfg.BusinessHours.End = normalizeTime(c.BusinessHoursEnd)
	}
	if c.Timezone != "" {
		cfg.BusinessHours.Timezone = c.Timezone
	}
	if len(c.WorkingDays) > 0 {
		cfg.WorkingDays = append([]int(nil), c.WorkingDays...)
	}
	if c.SlotDuration > 0 {
		cfg.SlotDuration = c.SlotDuration
	}
	if c.BufferTime > 0 {
		cfg.BufferTime = c.BufferTime
	}
	if c.AdvanceBookingDays != nil {
		cfg.AdvanceBookingDays = *c.AdvanceBookingDays
	}
	if c.MaxBookingDays > 0 {
		cfg.MaxBookingDays = c.MaxBookingDays
	}
	return cfg
}

// normalizeTime "9:00" -> "09:00"; некорректное значение отловит CalendarConfig.Validate
func normalizeTime(s string) types.TimeString {
	if ts, err := types.NewTimeStringFromString(s); err == nil {
		return ts
	}
	return types.TimeString(s)
}

type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// Load читает .env (если есть) и config.toml, применяет значения по умолчанию и секреты из окружения
func Load(path string) (*Config, error) {
	// .env опционален, ошибки отсутствия файла игнорируем
	_ = godotenv.Load()

	cfg := defaults()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Parse разбирает конфигурацию из строки (используется в тестах и утилитах)
func Parse(data string) (*Config, error) {
	cfg := defaults()
	if _, err := toml.Decode(data, cfg); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate проверяет обязательные поля
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port must be between 1 and 65535", ErrInvalidConfig)
	}

	switch c.Storage.Driver {
	case StorageDriverPostgres:
		if c.Database.Host == "" || c.Database.DBName == "" {
			return fmt.Errorf("%w: database.host and database.dbname are required for postgres storage", ErrInvalidConfig)
		}
	case StorageDriverMongo:
		if c.Mongo.URI == "" || c.Mongo.Database == "" {
			return fmt.Errorf("%w: mongo.uri and mongo.database are required for mongo storage", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: storage.driver must be %q or %q, got %q",
			ErrInvalidConfig, StorageDriverPostgres, StorageDriverMongo, c.Storage.Driver)
	}

	if c.Notifications.Enabled && c.Redis.Addr == "" {
		return fmt.Errorf("%w: redis.addr is required when notifications are enabled", ErrInvalidConfig)
	}

	return nil
}

func defaults() *Config {
	return &Config{
		App: AppConfig{
			Env:            "development",
			DefaultAdminID: "default",
		},
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    10,
			IdleTimeout:     60,
			ShutdownTimeout: 15,
		},
		Storage: StorageConfig{Driver: StorageDriverPostgres},
		Database: DatabaseConfig{
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Mongo: MongoConfig{
			Collection:     "bookings",
			ConnectTimeout: 10,
			QueryTimeout:   5,
		},
		Notifications: NotificationsConfig{
			Queue:             "notifications",
			MaxRetry:          5,
			WorkerConcurrency: 5,
			WorkerMetricsPort: 9091,
			FromName:          "Bookings",
		},
		Logs: LogsConfig{Level: "info"},
		Metrics: MetricsConfig{
			Path:        "/metrics",
			ServiceName: "booking-service",
		},
	}
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("DATABASE_PASSWORD"); v != "" {
		cfg.Database.Password = v
	}
	if v := os.Getenv("MONGO_URI"); v != "" {
		cfg.Mongo.URI = v
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		cfg.Redis.Password = v
	}
	if v := os.Getenv("SENDGRID_API_KEY"); v != "" {
		cfg.Notifications.SendGridAPIKey = v
	}
}
