package config

import (
	"os"
	"strconv"
	"strings"
)

// loadEnvVars overrides config with environment variables
func loadEnvVars(cfg *AppConfig) {
	// Server config
	if host := os.Getenv("GRABCTL_HOST"); host != "" {
		cfg.Server.Host = host
	}
	if port := os.Getenv("GRABCTL_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			cfg.Server.Port = p
		}
	}
	if allowedOrigins := os.Getenv("GRABCTL_ALLOWED_ORIGINS"); allowedOrigins != "" {
		cfg.Server.AllowedOrigins = strings.Split(allowedOrigins, ",")
	}
	if allowedHeaders := os.Getenv("GRABCTL_ALLOWED_HEADERS"); allowedHeaders != "" {
		cfg.Server.AllowedHeaders = strings.Split(allowedHeaders, ",")
	}
	if enableSwagger := os.Getenv("GRABCTL_ENABLE_SWAGGER"); enableSwagger != "" {
		if b, err := strconv.ParseBool(enableSwagger); err == nil {
			cfg.Server.EnableSwagger = b
		}
	}

	// Downloads config
	if dir := os.Getenv("GRABCTL_DOWNLOAD_DIR"); dir != "" {
		cfg.Downloads.Dir = dir
	}
	if tmpl := os.Getenv("GRABCTL_OUTPUT_TEMPLATE"); tmpl != "" {
		cfg.Downloads.OutputTemplate = tmpl
	}
	if format := os.Getenv("GRABCTL_AUDIO_FORMAT"); format != "" {
		cfg.Downloads.AudioFormat = format
	}
	if quality := os.Getenv("GRABCTL_AUDIO_QUALITY"); quality != "" {
		cfg.Downloads.AudioQuality = quality
	}
	if autoCreate := os.Getenv("GRABCTL_AUTO_CREATE_DIRS"); autoCreate != "" {
		if b, err := strconv.ParseBool(autoCreate); err == nil {
			cfg.Downloads.AutoCreateDirs = b
		}
	}

	// Retention config
	if enabled := os.Getenv("GRABCTL_RETENTION_ENABLED"); enabled != "" {
		if b, err := strconv.ParseBool(enabled); err == nil {
			cfg.Retention.Enabled = b
		}
	}
	if interval := os.Getenv("GRABCTL_SWEEP_INTERVAL_SECONDS"); interval != "" {
		if i, err := strconv.Atoi(interval); err == nil {
			cfg.Retention.SweepIntervalSeconds = i
		}
	}
	if maxAge := os.Getenv("GRABCTL_MAX_FILE_AGE_SECONDS"); maxAge != "" {
		if a, err := strconv.Atoi(maxAge); err == nil {
			cfg.Retention.MaxFileAgeSeconds = a
		}
	}
}
