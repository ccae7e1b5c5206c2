package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"go.uber.org/zap/zapcore"

	"github.com/ngmaloney/pressure-trend/internal/models"
)

// Config holds the process settings read from the environment
type Config struct {
	AppEnv   string
	LogLevel zapcore.Level
	LogFile  string // empty disables logging

	// DefaultUnit is preselected in the unit menu and used by one-shot mode
	DefaultUnit models.Unit
}

// Load reads an optional .env file from the working directory, then the environment.
func Load() (Config, error) {
	// A missing .env is normal; real environment variables still apply.
	_ = godotenv.Load()
	return LoadFromEnv()
}

// LoadFromEnv builds a Config from environment variables, applying defaults for unset values.
func LoadFromEnv() (Config, error) {
	appEnv := strings.TrimSpace(os.Getenv("APP_ENV"))
	if appEnv == "" {
		appEnv = "dev"
	}
	switch appEnv {
	case "dev", "prod":
	default:
		return Config{}, fmt.Errorf("invalid APP_ENV %q (allowed: dev, prod)", appEnv)
	}

	logLevelStr := strings.TrimSpace(os.Getenv("LOG_LEVEL"))
	if logLevelStr == "" {
		logLevelStr = "info"
	}
	level, err := parseLogLevel(logLevelStr)
	if err != nil {
		return Config{}, err
	}

	unit := models.UnitInHg
	if s := strings.TrimSpace(os.Getenv("PRESSURE_UNIT")); s != "" {
		unit, err = models.ParseUnit(s)
		if err != nil {
			return Config{}, fmt.Errorf("invalid PRESSURE_UNIT: %w", err)
		}
	}

	return Config{
		AppEnv:      appEnv,
		LogLevel:    level,
		LogFile:     strings.TrimSpace(os.Getenv("LOG_FILE")),
		DefaultUnit: unit,
	}, nil
}

func parseLogLevel(s string) (zapcore.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return zapcore.DebugLevel, nil
	case "info":
		return zapcore.InfoLevel, nil
	case "warn", "warning":
		return zapcore.WarnLevel, nil
	case "error":
		return zapcore.ErrorLevel, nil
	default:
		return zapcore.InfoLevel, fmt.Errorf("invalid LOG_LEVEL %q (allowed: debug, info, warn, error)", s)
	}
}
