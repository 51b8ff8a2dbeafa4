package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/mailajoket/stats-api/internal/platform/logging"
)

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

// Config stores runtime configuration for the service.
type Config struct {
	AppEnv              string
	HTTPAddr            string
	ReadTimeout         time.Duration
	WriteTimeout        time.Duration
	WorkbookPath        string
	SelectedTeamName    string
	FormWindow          int
	CORSAllowedOrigins  []string
	InternalReloadToken string
	LogLevel            logging.Level
}

func Load() (Config, error) {
	// A missing .env file is fine, env vars win either way.
	_ = godotenv.Load()

	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	readTimeoutSec, err := getEnvAsInt("APP_READ_TIMEOUT", 15)
	if err != nil {
		return Config{}, fmt.Errorf("parse APP_READ_TIMEOUT: %w", err)
	}
	if readTimeoutSec <= 0 {
		return Config{}, fmt.Errorf("APP_READ_TIMEOUT must be > 0")
	}

	writeTimeoutSec, err := getEnvAsInt("APP_WRITE_TIMEOUT", 30)
	if err != nil {
		return Config{}, fmt.Errorf("parse APP_WRITE_TIMEOUT: %w", err)
	}
	if writeTimeoutSec <= 0 {
		return Config{}, fmt.Errorf("APP_WRITE_TIMEOUT must be > 0")
	}

	workbookPath := strings.TrimSpace(getEnv("WORKBOOK_PATH", ""))
	if workbookPath == "" {
		return Config{}, fmt.Errorf("WORKBOOK_PATH is required")
	}

	formWindow, err := getEnvAsInt("FORM_WINDOW", 5)
	if err != nil {
		return Config{}, fmt.Errorf("parse FORM_WINDOW: %w", err)
	}
	if formWindow <= 0 {
		return Config{}, fmt.Errorf("FORM_WINDOW must be > 0")
	}

	cfg := Config{
		AppEnv:              appEnv,
		HTTPAddr:            getEnv("APP_HTTP_ADDR", ":8080"),
		ReadTimeout:         time.Duration(readTimeoutSec) * time.Second,
		WriteTimeout:        time.Duration(writeTimeoutSec) * time.Second,
		WorkbookPath:        workbookPath,
		SelectedTeamName:    strings.TrimSpace(getEnv("SELECTED_TEAM_NAME", "Mailajoket")),
		FormWindow:          formWindow,
		CORSAllowedOrigins:  splitCSV(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		InternalReloadToken: strings.TrimSpace(getEnv("INTERNAL_RELOAD_TOKEN", "")),
		LogLevel:            logging.ParseLevel(getEnv("APP_LOG_LEVEL", "info")),
	}

	return cfg, nil
}

func parseAppEnv(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case EnvDev, EnvStage, EnvProd:
		return value, nil
	default:
		return "", fmt.Errorf("invalid APP_ENV %q: valid values are %s, %s, %s", v, EnvDev, EnvStage, EnvProd)
	}
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}

func getEnvAsInt(key string, fallback int) (int, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	out, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}

	return out, nil
}

func splitCSV(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item == "" {
			continue
		}
		out = append(out, item)
	}

	return out
}
