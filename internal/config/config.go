package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gamelens/internal/gamesdb"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// The database name and port are fixed by the backend deployment; only the
// host and credentials come from the environment.
const (
	DatabaseName = "gamesdb"
	DatabasePort = 3306
)

// AppConfig holds the complete application configuration.
type AppConfig struct {
	DB     gamesdb.Config
	LogDir string
}

// Load loads the configuration from .env files and environment variables.
func Load() (*AppConfig, error) {
	// 1. Try to load from the executable's directory (highest priority for MCP servers)
	exePath, err := os.Executable()
	exeDir := ""
	if err == nil {
		exeDir = filepath.Dir(exePath)
		envPath := filepath.Join(exeDir, ".env")
		if err := godotenv.Load(envPath); err == nil {
			log.Debug().Str("path", envPath).Msg("Loaded configuration from binary directory")
		}
	}

	// 2. Fallback to current working directory (useful for development/go run)
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found in working directory, relying on environment variables or binary-relative .env")
	}

	host := os.Getenv("DB_URL")
	if host == "" {
		return nil, fmt.Errorf("DB_URL is not set")
	}

	logDir := os.Getenv("LOGS_FOLDER")
	if logDir == "" {
		if exeDir != "" {
			logDir = filepath.Join(exeDir, "logs")
		} else {
			logDir = "logs"
		}
	}

	cfg := &AppConfig{
		DB: gamesdb.Config{
			Host:     host,
			Port:     DatabasePort,
			Username: os.Getenv("DB_USERNAME"),
			Password: os.Getenv("DB_PASSWORD"),
			Database: DatabaseName,
		},
		LogDir: logDir,
	}

	return cfg, nil
}
