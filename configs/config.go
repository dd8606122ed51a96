package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

var ErrInvalidConfig = errors.New("invalid configuration")

type DatabaseConfig struct {
	Driver     string `yaml:"driver"` // postgres | sqlite
	Host       string `yaml:"host"`
	User       string `yaml:"user"`
	Password   string `yaml:"password"`
	Name       string `yaml:"name"`
	Port       string `yaml:"port"`
	SQLitePath string `yaml:"sqlite_path"`
	Seed       bool   `yaml:"seed"`
}

type AppConfig struct {
	Env            string         `yaml:"env"`
	Port           string         `yaml:"port"`
	Database       DatabaseConfig `yaml:"database"`
	CORSOrigins    []string       `yaml:"cors_origins"`
	BuyerCookieTTL int            `yaml:"buyer_cookie_ttl_days"`
	TracingEnabled bool           `yaml:"tracing_enabled"`
}

func (c AppConfig) IsDevelopment() bool {
	return c.Env == "development"
}

func (c AppConfig) BuyerTTL() time.Duration {
	return time.Duration(c.BuyerCookieTTL) * 24 * time.Hour
}

// DSN builds the postgres connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		d.Host, d.User, d.Password, d.Name, d.Port,
	)
}

func Default() AppConfig {
	return AppConfig{
		Env:  "development",
		Port: "8080",
		Database: DatabaseConfig{
			Driver:     "postgres",
			Host:       "localhost",
			User:       "test",
			Password:   "test",
			Name:       "test",
			Port:       "5432",
			SQLitePath: "store.db",
			Seed:       true,
		},
		CORSOrigins:    []string{"http://localhost:3000"},
		BuyerCookieTTL: 30,
	}
}

// Load reads defaults, then the YAML file named by CONFIG_FILE (if any),
// then environment overrides.
func Load() (AppConfig, error) {
	cfg := Default()

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	applyEnv(&cfg)

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func applyEnv(cfg *AppConfig) {
	cfg.Env = getEnvOrDefault("APP_ENV", cfg.Env)
	cfg.Port = getEnvOrDefault("PORT", cfg.Port)

	cfg.Database.Driver = getEnvOrDefault("DB_DRIVER", cfg.Database.Driver)
	cfg.Database.Host = getEnvOrDefault("POSTGRES_HOST", cfg.Database.Host)
	cfg.Database.User = getEnvOrDefault("POSTGRES_USER", cfg.Database.User)
	cfg.Database.Password = getEnvOrDefault("POSTGRES_PASSWORD", cfg.Database.Password)
	cfg.Database.Name = getEnvOrDefault("POSTGRES_DB", cfg.Database.Name)
	cfg.Database.Port = getEnvOrDefault("DB_PORT", cfg.Database.Port)
	cfg.Database.SQLitePath = getEnvOrDefault("SQLITE_PATH", cfg.Database.SQLitePath)
	cfg.Database.Seed = getBoolEnvOrDefault("SEED_CATALOG", cfg.Database.Seed)

	if origins, exists := os.LookupEnv("CORS_ORIGINS"); exists {
		cfg.CORSOrigins = nil
		for _, o := range strings.Split(origins, ",") {
			if o = strings.TrimSpace(o); o != "" {
				cfg.CORSOrigins = append(cfg.CORSOrigins, o)
			}
		}
	}

	if value, exists := os.LookupEnv("BUYER_COOKIE_TTL_DAYS"); exists {
		if days, err := strconv.Atoi(value); err == nil {
			cfg.BuyerCookieTTL = days
		} else {
			cfg.BuyerCookieTTL = -1
		}
	}

	cfg.TracingEnabled = getBoolEnvOrDefault("TRACING_ENABLED", cfg.TracingEnabled)
}

func (c AppConfig) Validate() error {
	switch c.Database.Driver {
	case "postgres", "sqlite":
	default:
		return fmt.Errorf("%w: unsupported database driver %q", ErrInvalidConfig, c.Database.Driver)
	}
	if c.BuyerCookieTTL <= 0 {
		return fmt.Errorf("%w: buyer cookie ttl must be a positive number of days", ErrInvalidConfig)
	}
	if c.Port == "" {
		return fmt.Errorf("%w: port is required", ErrInvalidConfig)
	}
	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getBoolEnvOrDefault(key string, defaultValue bool) bool {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}
