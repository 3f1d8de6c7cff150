// Package config provides configuration management for the floatinput application.
// It handles environment variables, the optional .env file, form definition files
// and default values.
package config

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// UI color constants for the form chrome (ANSI color codes)
const (
	// MainColorForeground is the primary text color
	MainColorForeground = "205"
	// MainColorBackground is the primary background color
	MainColorBackground = "16"
	// MainColorBackgroundMute is a muted background color
	MainColorBackgroundMute = "241"
)

// Default configuration values
const (
	// Default directory name for storing application data
	defaultVaultDir = ".floatinput"
	// Default log file name inside the vault
	defaultLogFile = "floatinput.log"
	// Default theme name
	defaultTheme = "standard"
	// Default minimum log level
	defaultLogLevel = "INFO"
)

var (
	// ErrParsingEnv is returned when environment variables cannot be parsed into Env
	ErrParsingEnv = errors.New("config: failed to parse environment variables")
)

// Env is the process configuration read from the environment.
type Env struct {
	// VaultPath is the directory holding the log file
	VaultPath string `env:"FLOATINPUT_VAULT"`
	// LogPath overrides the log file location
	LogPath string `env:"FLOATINPUT_LOG_PATH"`
	// LogLevel is the minimum level written to the log
	LogLevel string `env:"FLOATINPUT_LOG_LEVEL" envDefault:"INFO"`
	// FormPath points at a YAML form definition; empty uses DefaultForm
	FormPath string `env:"FLOATINPUT_FORM"`
	// Theme names the theme used when the form file doesn't pick one
	Theme string `env:"FLOATINPUT_THEME" envDefault:"standard"`
}

// getDefaultVaultPath returns the default path for the vault directory.
// It uses the user's home directory if available, otherwise falls back to the current directory.
func getDefaultVaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "./" + defaultVaultDir
	}
	return filepath.Join(home, defaultVaultDir)
}

// LoadEnv loads an optional .env file from the working directory, then parses
// the environment into Env and fills in defaults.
//
// Example:
//
//	cfg, err := config.LoadEnv()
//	if err != nil {
//	    log.Fatalf("Failed to load config: %v", err)
//	}
func LoadEnv() (Env, error) {
	// The .env file is optional; variables already set win over it.
	_ = godotenv.Load()

	var cfg Env
	if err := env.Parse(&cfg); err != nil {
		return Env{}, errors.Join(ErrParsingEnv, err)
	}

	if cfg.VaultPath == "" {
		cfg.VaultPath = getDefaultVaultPath()
	}
	if cfg.LogPath == "" {
		cfg.LogPath = filepath.Join(cfg.VaultPath, defaultLogFile)
	}
	if cfg.Theme == "" {
		cfg.Theme = defaultTheme
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = defaultLogLevel
	}
	return cfg, nil
}
