package config

import (
	"fmt"
	"log"
	"time"
	_ "time/tzdata"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/shopspring/decimal"
)

// Config holds every setting the service reads from the environment.
type Config struct {
	AppEnv      string `envconfig:"APP_ENV" default:"development"`
	Port        string `envconfig:"PORT" default:"8083"`
	LogLevel    string `envconfig:"APP_LOG_LEVEL" default:"info"`
	LogDir      string `envconfig:"APP_LOG_DIR"`
	Timezone    string `envconfig:"APP_TIMEZONE" default:"Asia/Colombo"`
	Currency    string `envconfig:"CURRENCY_LABEL" default:"LKR"`
	RoomCharge  string `envconfig:"DEFAULT_ROOM_CHARGE" default:"500"`
	UpcomingMax int    `envconfig:"UPCOMING_LIMIT" default:"10"`

	DBDriver   string `envconfig:"DB_DRIVER" default:"postgres"`
	DBHost     string `envconfig:"DB_HOST" default:"localhost"`
	DBPort     int    `envconfig:"DB_PORT" default:"5432"`
	DBUser     string `envconfig:"DB_USER" default:"frontdesk"`
	DBPassword string `envconfig:"DB_PASSWORD"`
	DBName     string `envconfig:"DB_NAME" default:"frontdesk"`
	DBSSLMode  string `envconfig:"DB_SSLMODE" default:"disable"`
	SQLitePath string `envconfig:"SQLITE_PATH" default:"frontdesk.db"`

	// Empty RedisAddr disables the report cache.
	RedisAddr     string        `envconfig:"REDIS_ADDR"`
	RedisUser     string        `envconfig:"REDIS_USER"`
	RedisPassword string        `envconfig:"REDIS_PASSWORD"`
	RedisDB       int           `envconfig:"REDIS_DB" default:"0"`
	ReportTTL     time.Duration `envconfig:"REPORT_CACHE_TTL" default:"10m"`

	StatusRefreshSchedule string `envconfig:"STATUS_REFRESH_SCHEDULE" default:"5 0 * * *"`
}

// DatabaseDSN returns the postgres connection string.
func (c *Config) DatabaseDSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d sslmode=%s",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort, c.DBSSLMode)
}

// Location resolves the configured timezone.
func (c *Config) Location() (*time.Location, error) {
	return time.LoadLocation(c.Timezone)
}

// DefaultRoomCharge is the fallback charge used when a booking has no agreed amount.
func (c *Config) DefaultRoomCharge() decimal.Decimal {
	d, err := decimal.NewFromString(c.RoomCharge)
	if err != nil {
		return decimal.Zero
	}
	return d
}

func (c *Config) Validate() error {
	if c.DBDriver != "postgres" && c.DBDriver != "sqlite" {
		return fmt.Errorf("DB_DRIVER must be postgres or sqlite, got %q", c.DBDriver)
	}
	if _, err := c.Location(); err != nil {
		return fmt.Errorf("APP_TIMEZONE: %w", err)
	}
	charge, err := decimal.NewFromString(c.RoomCharge)
	if err != nil || !charge.IsPositive() {
		return fmt.Errorf("DEFAULT_ROOM_CHARGE must be a positive amount, got %q", c.RoomCharge)
	}
	if c.UpcomingMax <= 0 {
		return fmt.Errorf("UPCOMING_LIMIT must be > 0")
	}
	return nil
}

// Load reads .env (if present) and the environment into a validated Config.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: no .env file loaded, using process environment: %v", err)
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
