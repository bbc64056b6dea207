package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

var (
	ErrMissingEnvironmentVariables = errors.New("missing required environment variables")
	ErrInvalidConfig               = errors.New("invalid configuration")
)

// Contact store backends.
const (
	ContactBackendStatic   = "static"
	ContactBackendRedis    = "redis"
	ContactBackendPostgres = "postgres"
)

// Config holds application configuration loaded from files and environment variables.
type Config struct {
	Env              string    `mapstructure:"env"` // current application environment (local, dev, production)
	TelegramAPIToken string    `mapstructure:"-"`   // Telegram API token loaded from environment
	Questions        Questions `mapstructure:"questions"`
	Exam             Exam      `mapstructure:"exam"`
	School           School    `mapstructure:"school"`
	Contact          Contact   `mapstructure:"contact"`
	DB               DB        `mapstructure:"database"`
	Redis            Redis     `mapstructure:"redis"`
	Storage          Storage   `mapstructure:"storage"`
	HTTP             HTTP      `mapstructure:"http"`
}

// Questions describes where the question pool is read from.
type Questions struct {
	Source       string        `mapstructure:"source"`        // file path or http(s) URL of the JSON pool
	FetchTimeout time.Duration `mapstructure:"fetch_timeout"` // timeout for the startup fetch
	ImageDir     string        `mapstructure:"image_dir"`     // base directory of relative image paths
}

// Exam holds attempt sizing and scoring parameters.
type Exam struct {
	Size      int `mapstructure:"size"`       // questions per attempt
	PassScore int `mapstructure:"pass_score"` // minimal score to pass, not rescaled for short pools
}

// School holds display data for the results header.
type School struct {
	Name string `mapstructure:"name"`
}

// Contact configures the read-only store of the contact phone.
type Contact struct {
	Backend      string `mapstructure:"backend"`       // static, redis or postgres
	Key          string `mapstructure:"key"`           // key of the phone value in the store
	DefaultPhone string `mapstructure:"default_phone"` // shown when the store has nothing
}

// DB contains database-related configuration parameters.
type DB struct {
	URL             string        `mapstructure:"-"`                 // database connection string loaded from environment
	MaxConnections  int           `mapstructure:"max_connections"`   // maximum number of open connections in the pool
	MaxConnLifetime time.Duration `mapstructure:"max_conn_lifetime"` // maximum lifetime of a single connection
}

// Redis contains the redis connection URL.
type Redis struct {
	URL string `mapstructure:"-"`
}

// Storage configures in-memory attempt retention.
type Storage struct {
	IdleTTL       time.Duration `mapstructure:"idle_ttl"`       // attempts untouched for longer are dropped
	SweepSchedule string        `mapstructure:"sweep_schedule"` // cron schedule of the sweep job
}

// HTTP configures the browser-facing API.
type HTTP struct {
	Addr           string   `mapstructure:"addr"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// DSN returns the database connection string if it is configured.
func (db DB) DSN() (string, error) {
	if db.URL == "" {
		return "", ErrMissingEnvironmentVariables
	}
	return db.URL, nil
}

// Bot validates the settings only the Telegram binary needs.
func (c *Config) Bot() error {
	if c.TelegramAPIToken == "" {
		return fmt.Errorf("%w: TELEGRAM_API_TOKEN", ErrMissingEnvironmentVariables)
	}
	return nil
}

// Load reads configuration from config files and environment variables.
func Load() (*Config, error) {
	// A missing .env is fine: production passes real environment variables.
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")

	setDefaults(v)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_")) // map nested keys to ENV style names
	v.AutomaticEnv()

	_ = v.BindEnv("telegram_api_token", "TELEGRAM_API_TOKEN")
	_ = v.BindEnv("database_url", "DATABASE_URL")
	_ = v.BindEnv("redis_url", "REDIS_URL")
	_ = v.BindEnv("env", "APP_ENV")
	_ = v.BindEnv("questions.source", "QUESTIONS_SOURCE")
	_ = v.BindEnv("contact.backend", "CONTACT_BACKEND")
	_ = v.BindEnv("http.addr", "HTTP_ADDR")

	if err := v.ReadInConfig(); err != nil {
		var fileLookupErr viper.ConfigFileNotFoundError
		if !errors.As(err, &fileLookupErr) {
			return nil, fmt.Errorf("error loading config file: %w", err)
		}
	}

	return fromViper(v)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("env", "local")
	v.SetDefault("questions.source", "assets/data/questions.json")
	v.SetDefault("questions.fetch_timeout", "15s")
	v.SetDefault("questions.image_dir", "assets/data")
	v.SetDefault("exam.size", 30)
	v.SetDefault("exam.pass_score", 24)
	v.SetDefault("school.name", "Hammoud Driving School")
	v.SetDefault("contact.backend", ContactBackendStatic)
	v.SetDefault("contact.key", "quiz_phone")
	v.SetDefault("contact.default_phone", "01/310341 - 03/884472")
	v.SetDefault("database.max_connections", 5)
	v.SetDefault("database.max_conn_lifetime", "30m")
	v.SetDefault("storage.idle_ttl", "6h")
	v.SetDefault("storage.sweep_schedule", "*/15 * * * *")
	v.SetDefault("http.addr", ":8080")
	v.SetDefault("http.allowed_origins", []string{"*"})
}

func fromViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	// Sensitive values never come from the config file.
	cfg.TelegramAPIToken = v.GetString("telegram_api_token")
	cfg.DB.URL = v.GetString("database_url")
	cfg.Redis.URL = v.GetString("redis_url")

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	if strings.TrimSpace(c.Questions.Source) == "" {
		return fmt.Errorf("%w: questions.source is empty", ErrInvalidConfig)
	}
	if c.Exam.Size < 1 {
		return fmt.Errorf("%w: exam.size must be positive, got %d", ErrInvalidConfig, c.Exam.Size)
	}
	if c.Exam.PassScore < 0 {
		return fmt.Errorf("%w: exam.pass_score must not be negative, got %d", ErrInvalidConfig, c.Exam.PassScore)
	}

	switch c.Contact.Backend {
	case ContactBackendStatic:
	case ContactBackendRedis:
		if c.Redis.URL == "" {
			return fmt.Errorf("%w: REDIS_URL", ErrMissingEnvironmentVariables)
		}
	case ContactBackendPostgres:
		if c.DB.URL == "" {
			return fmt.Errorf("%w: DATABASE_URL", ErrMissingEnvironmentVariables)
		}
	default:
		return fmt.Errorf("%w: unknown contact.backend %q", ErrInvalidConfig, c.Contact.Backend)
	}

	return nil
}
