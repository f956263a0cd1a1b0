package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the tool configuration. Command-line flags override it.
type Config struct {
	LogLevel      string `validate:"oneof=debug info warn warning error"`
	LogFormat     string `validate:"oneof=text json"`
	Environment   string `validate:"oneof=dev prod test"`
	Workers       int    `validate:"min=1,max=256"`
	QueueSize     int    `validate:"min=1"`
	PoolCacheSize int    `validate:"min=1"`
	Seed          int64
	Pretty        bool
	Lang          string `validate:"required,bcp47_language_tag"`
	MetricsFile   string
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:    getEnv(EnvLogLevel, DefaultLogLevel),
		LogFormat:   getEnv(EnvLogFormat, DefaultLogFormat),
		Environment: getEnv(EnvEnvironment, DefaultEnvironment),
		Lang:        getEnv(EnvLang, DefaultLang),
		MetricsFile: getEnv(EnvMetricsFile, ""),
	}

	var err error
	if cfg.Workers, err = getEnvAsInt(EnvWorkers, DefaultWorkers); err != nil {
		return nil, err
	}
	if cfg.QueueSize, err = getEnvAsInt(EnvQueueSize, DefaultQueueSize); err != nil {
		return nil, err
	}
	if cfg.PoolCacheSize, err = getEnvAsInt(EnvPoolCacheSize, DefaultPoolCacheSize); err != nil {
		return nil, err
	}
	if cfg.Seed, err = getEnvAsInt64(EnvSeed, 0); err != nil {
		return nil, err
	}
	if cfg.Pretty, err = getEnvAsBool(EnvPretty, false); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) (int, error) {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf(ErrFmtInvalidInt, key, value, err)
	}
	return n, nil
}

func getEnvAsInt64(key string, defaultValue int64) (int64, error) {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return defaultValue, nil
	}
	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf(ErrFmtInvalidInt, key, value, err)
	}
	return n, nil
}

func getEnvAsBool(key string, defaultValue bool) (bool, error) {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return defaultValue, nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf(ErrFmtInvalidBool, key, value, err)
	}
	return b, nil
}
