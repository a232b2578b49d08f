package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Logger   LoggerConfig
	GRPC     GRPCConfig
	Journal  JournalConfig
	Database DatabaseConfig
}

type LoggerConfig struct {
	Env string
}

type GRPCConfig struct {
	Port int
}

type JournalConfig struct {
	Enabled       bool
	Smoke         bool
	Buffer        int
	BatchSize     int
	FlushInterval time.Duration
	BatchTimeout  time.Duration
}

type DatabaseConfig struct {
	Host     string
	Name     string
	User     string
	Password string
	Port     int
	SSLMode  string
}

// Load reads .env files (if any) and then the process environment.
func Load(files ...string) (*Config, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	cfg := &Config{
		Logger: LoggerConfig{
			Env: getEnv("LOGGER_ENV", "development"),
		},
		GRPC: GRPCConfig{
			Port: getEnvInt("GRPC_PORT", 50051),
		},
		Journal: JournalConfig{
			Enabled:       getEnvBool("JOURNAL_ENABLED", false),
			Smoke:         getEnvBool("JOURNAL_SMOKE", false),
			Buffer:        getEnvInt("JOURNAL_BUFFER", 1024),
			BatchSize:     getEnvInt("JOURNAL_BATCH_SIZE", 64),
			FlushInterval: getEnvDuration("JOURNAL_FLUSH_INTERVAL", time.Second),
			BatchTimeout:  getEnvDuration("JOURNAL_BATCH_TIMEOUT", 5*time.Second),
		},
		Database: DatabaseConfig{
			Host:     getEnv("POSTGRES_HOST", "localhost"),
			Name:     getEnv("POSTGRES_DB", "task_list"),
			User:     getEnv("POSTGRES_USER", "task_list"),
			Password: getEnv("POSTGRES_PASSWORD", "task_list"),
			Port:     getEnvInt("POSTGRES_PORT", 5432),
			SSLMode:  getEnv("POSTGRES_SSLMODE", "disable"),
		},
	}

	if cfg.GRPC.Port <= 0 || cfg.GRPC.Port > 65535 {
		return nil, fmt.Errorf("invalid GRPC_PORT %d", cfg.GRPC.Port)
	}
	return cfg, nil
}

func (c *Config) GetDSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.Database.User, c.Database.Password),
		Host:     fmt.Sprintf("%s:%d", c.Database.Host, c.Database.Port),
		Path:     "/" + c.Database.Name,
		RawQuery: url.Values{"sslmode": []string{c.Database.SSLMode}}.Encode(),
	}
	return u.String()
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
