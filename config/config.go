package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	JWTSecret         string `mapstructure:"JWT_SECRET"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`
	CORSOrigins       string `mapstructure:"CORS_ORIGINS"` // comma separated, "*" for any

	// Storage. DATABASE_DRIVER is "mongo" or "memory".
	DatabaseDriver string `mapstructure:"DATABASE_DRIVER"`
	DatabaseURL    string `mapstructure:"DATABASE_URL"`
	DatabaseName   string `mapstructure:"DATABASE_NAME"`

	// Redis configuration.
	RedisEnabled   bool          `mapstructure:"REDIS_ENABLED"`
	RedisAddr      string        `mapstructure:"REDIS_ADDR"`
	RedisPassword  string        `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB   int           `mapstructure:"REDIS_CACHE_DB"`
	RedisQueueDB   int           `mapstructure:"REDIS_QUEUE_DB"`
	DoctorCacheTTL time.Duration `mapstructure:"DOCTOR_CACHE_TTL"`

	// Booking rules.
	AppointmentDurationMinutes int    `mapstructure:"APPOINTMENT_DURATION_MINUTES"`
	BookingLeadTimeMinutes     int    `mapstructure:"BOOKING_LEAD_TIME_MINUTES"`
	Timezone                   string `mapstructure:"TIMEZONE"`

	WorkerConcurrency int `mapstructure:"WORKER_CONCURRENCY"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_PORT", "8080")
	v.SetDefault("ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	v.SetDefault("CORS_ORIGINS", "*")
	v.SetDefault("DATABASE_DRIVER", "mongo")
	v.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	v.SetDefault("DATABASE_NAME", "healthhive")
	v.SetDefault("REDIS_ENABLED", true)
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_CACHE_DB", 0)
	v.SetDefault("REDIS_QUEUE_DB", 1)
	v.SetDefault("DOCTOR_CACHE_TTL", "5m")
	v.SetDefault("APPOINTMENT_DURATION_MINUTES", 30)
	v.SetDefault("BOOKING_LEAD_TIME_MINUTES", 30)
	v.SetDefault("TIMEZONE", "UTC")
	v.SetDefault("WORKER_CONCURRENCY", 5)
}

// Load reads .env (if present), an optional config.yaml and the environment into a Config.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	v := viper.New()
	// Look for a config file named "config.yaml" in the current and "config" directory.
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects settings the booking rules cannot run with.
func (c Config) Validate() error {
	if c.AppointmentDurationMinutes <= 0 {
		return fmt.Errorf("APPOINTMENT_DURATION_MINUTES must be positive, got %d", c.AppointmentDurationMinutes)
	}
	if c.BookingLeadTimeMinutes < 0 {
		return fmt.Errorf("BOOKING_LEAD_TIME_MINUTES must not be negative, got %d", c.BookingLeadTimeMinutes)
	}
	if _, err := time.LoadLocation(c.Timezone); err != nil {
		return fmt.Errorf("invalid TIMEZONE %q: %w", c.Timezone, err)
	}
	switch c.DatabaseDriver {
	case "mongo", "memory":
	default:
		return fmt.Errorf("unknown DATABASE_DRIVER %q", c.DatabaseDriver)
	}
	return nil
}

func (c Config) IsProduction() bool {
	return c.Env == "production"
}

// Location returns the clinic timezone; Validate guarantees it loads.
func (c Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func (c Config) SlotDuration() time.Duration {
	return time.Duration(c.AppointmentDurationMinutes) * time.Minute
}

func (c Config) LeadTime() time.Duration {
	return time.Duration(c.BookingLeadTimeMinutes) * time.Minute
}

// AllowedOrigins splits CORS_ORIGINS.
func (c Config) AllowedOrigins() []string {
	var origins []string
	for _, o := range strings.Split(c.CORSOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}
