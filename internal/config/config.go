package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sadopc/studycycle/internal/store"
)

// AppConfig holds all configuration for the application.
type AppConfig struct {
	DBPath      string
	LogLevel    string
	LogFile     string // empty means logs are discarded; the TUI owns stdout
	Environment string
}

// Load reads configuration from environment variables and a .env file, if present.
// Values already in the environment win over the file.
func Load() (*AppConfig, error) {
	_ = godotenv.Load()
	return fromEnv()
}

// LoadFile is Load with an explicit .env path. A missing file is an error.
func LoadFile(path string) (*AppConfig, error) {
	if err := godotenv.Load(path); err != nil {
		return nil, fmt.Errorf("load env file %s: %w", path, err)
	}
	return fromEnv()
}

func fromEnv() (*AppConfig, error) {
	cfg := &AppConfig{}

	cfg.DBPath = os.Getenv("STUDYCYCLE_DB_PATH")
	if cfg.DBPath == "" {
		path, err := store.DefaultDBPath()
		if err != nil {
			return nil, fmt.Errorf("resolve default db path: %w", err)
		}
		cfg.DBPath = path
	}

	cfg.LogLevel = strings.ToLower(os.Getenv("STUDYCYCLE_LOG_LEVEL"))
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}

	cfg.LogFile = os.Getenv("STUDYCYCLE_LOG_FILE")

	cfg.Environment = strings.ToLower(os.Getenv("STUDYCYCLE_ENV"))
	if cfg.Environment == "" {
		cfg.Environment = "development"
	}

	return cfg, nil
}
