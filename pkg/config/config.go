package config

import (
	"log"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"
)

// AppConfig represents the configuration for grabctl
type AppConfig struct {
	Server    ServerConfig    `yaml:"server"`
	Downloads DownloadsConfig `yaml:"downloads"`
	Retention RetentionConfig `yaml:"retention"`
	Version   string          `yaml:"-"`
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	// Server host to bind to
	Host string `yaml:"host"`

	// Server port to bind to
	Port int `yaml:"port"`

	// Allowed origins for CORS (e.g., "http://localhost:3000")
	AllowedOrigins []string `yaml:"allowed_origins"`

	// Allowed headers for CORS (e.g., "Accept", "Content-Type")
	AllowedHeaders []string `yaml:"allowed_headers"`

	// Enable Swagger UI for API documentation
	EnableSwagger bool `yaml:"enable_swagger"`
}

// DownloadsConfig contains download job configuration
type DownloadsConfig struct {
	// Directory completed downloads are written to
	Dir string `yaml:"dir"`

	// yt-dlp output template, relative to Dir
	OutputTemplate string `yaml:"output_template"`

	// Audio codec for audio-mode downloads
	AudioFormat string `yaml:"audio_format"`

	// Audio bitrate for audio-mode downloads
	AudioQuality string `yaml:"audio_quality"`

	// Automatically create the download directory if it doesn't exist
	AutoCreateDirs bool `yaml:"auto_create_dirs"`
}

// RetentionConfig contains file-expiry sweeper configuration
type RetentionConfig struct {
	// Enable the background retention sweeper
	Enabled bool `yaml:"enabled"`

	// Seconds between sweeps
	SweepIntervalSeconds int `yaml:"sweep_interval_seconds"`

	// Files strictly older than this many seconds are deleted
	MaxFileAgeSeconds int `yaml:"max_file_age_seconds"`
}

// LoadConfig loads configuration with the following precedence:
// 1. Hardcoded defaults
// 2. Config file
// 3. Environment variables
func LoadConfig(configPath string) (AppConfig, error) {
	// 1. Start with defaults
	cfg := AppConfig{
		Server: ServerConfig{
			Host:           "0.0.0.0",
			Port:           8080,
			AllowedOrigins: []string{"*"}, // Default to allow all origins
			AllowedHeaders: []string{"*"}, // Default to allow all headers
			EnableSwagger:  false,
		},
		Downloads: DownloadsConfig{
			Dir:            "downloads",
			OutputTemplate: "%(title)s.%(ext)s",
			AudioFormat:    "mp3",
			AudioQuality:   "192K",
			AutoCreateDirs: true,
		},
		Retention: RetentionConfig{
			Enabled:              true,
			SweepIntervalSeconds: 300, // Sweep every 5 minutes
			MaxFileAgeSeconds:    300, // Delete files older than 5 minutes
		},
	}

	// 2. Load from config file
	if err := loadConfigFile(&cfg, configPath); err != nil {
		return cfg, err
	}

	// 3. Override with environment variables
	loadEnvVars(&cfg)

	return cfg, nil
}

// loadConfigFile attempts to load config from file with fallback locations
func loadConfigFile(cfg *AppConfig, configPath string) error {
	var configLocations []string

	// If specific config path provided, use only that
	if configPath != "" {
		configLocations = []string{configPath}
	} else {
		// Default config file locations (in order of precedence)
		configLocations = getDefaultConfigLocations()
	}

	for _, path := range configLocations {
		if data, err := os.ReadFile(path); err == nil {
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return err
			}
			log.Printf("Read config at %s", path)
			return nil
		}
	}

	return nil
}

// getDefaultConfigLocations returns platform-specific config file locations
func getDefaultConfigLocations() []string {
	var locations []string
	// Use ./grabctl.yaml and ./config.yaml as the default config file
	locations = append(locations, "grabctl.yaml")
	locations = append(locations, "config.yaml")

	homeDir, _ := os.UserHomeDir()

	switch runtime.GOOS {
	case "windows":
		if appData := os.Getenv("APPDATA"); appData != "" {
			locations = append(locations, filepath.Join(appData, "grabctl", "config.yaml"))
		} else if homeDir != "" {
			locations = append(locations, filepath.Join(homeDir, "grabctl", "config.yaml"))
		}
		locations = append(locations, filepath.Join(os.Getenv("PROGRAMDATA"), "grabctl", "config.yaml"))

	case "darwin":
		if homeDir != "" {
			locations = append(locations, filepath.Join(homeDir, "Library", "Application Support", "grabctl", "config.yaml"))
		}
		locations = append(locations, "/Library/Application Support/grabctl/config.yaml")

	default:
		// Linux/Unix: Use ~/.config/grabctl/config.yaml, fallback to /etc/grabctl/config.yaml
		if homeDir != "" {
			locations = append(locations, filepath.Join(homeDir, ".config", "grabctl", "config.yaml"))
		}
		locations = append(locations, "/etc/grabctl/config.yaml")
	}

	return locations
}
