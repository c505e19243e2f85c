package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/knadh/koanf/parsers/toml/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

var (
	ErrConfigFileNotFound    = errors.New("could not find config file in any config path")
	ErrConfigVersionMissing  = errors.New("config file is missing version field")
	ErrConfigVersionMismatch = errors.New("config file version mismatch")
)

// CurrentVersion of the config file.
const CurrentVersion = 1

// Config represents the entire application configuration.
type Config struct {
	// Version of the config file.
	Version int    `koanf:"version"`
	Debug   Debug  `koanf:"debug"`
	Oracle  Oracle `koanf:"oracle"`
	Worker  Worker `koanf:"worker"`
}

// Debug contains debug-related configuration.
type Debug struct {
	// Log level (debug, info, warn, error).
	LogLevel string `koanf:"log_level"`
	// Directory for log files; empty disables file logging.
	LogDir string `koanf:"log_dir"`
}

// Oracle contains configuration for the backing LLM endpoint.
type Oracle struct {
	// Base URL of an OpenAI-compatible endpoint.
	BaseURL string `koanf:"base_url"`
	// API key; may be empty for local backends.
	APIKey string `koanf:"api_key"`
	// Model name to query.
	Model string `koanf:"model"`
	// Maximum concurrent outstanding calls.
	MaxConcurrent int64 `koanf:"max_concurrent"`
	// Per-call request timeout in seconds.
	RequestTimeout int `koanf:"request_timeout"`
	// Bounded retry attempts per call; zero means single attempt.
	MaxRetries uint64 `koanf:"max_retries"`
}

// Worker contains batch processing configuration.
type Worker struct {
	// Number of conversations analyzed concurrently.
	Conversations int `koanf:"conversations"`
	// Number of questions per conversation analyzed concurrently.
	Questions int `koanf:"questions"`
}

// LoadConfig loads the configuration from the first sentinel.toml found in
// the search paths. Returns the config along with the used config directory.
func LoadConfig() (*Config, string, error) {
	k := koanf.New(".")

	// Get user's home directory
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, "", fmt.Errorf("failed to get home directory: %w", err)
	}

	// List search paths
	configPaths := []string{
		".sentinel",
		homeDir + "/.sentinel/config",
		"/etc/sentinel/config",
		"config",
		".",
	}

	var usedConfigPath string

	for _, path := range configPaths {
		configPath := path + "/sentinel.toml"
		if err := k.Load(file.Provider(configPath), toml.Parser()); err == nil {
			usedConfigPath = path
			break
		}
	}

	if usedConfigPath == "" {
		return nil, "", fmt.Errorf("%w: sentinel.toml", ErrConfigFileNotFound)
	}

	var config Config
	if err := k.Unmarshal("", &config); err != nil {
		return nil, "", fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := checkConfigVersion(config.Version); err != nil {
		return nil, "", err
	}

	applyDefaults(&config)

	return &config, usedConfigPath, nil
}

// checkConfigVersion checks if the config file version is correct.
func checkConfigVersion(current int) error {
	if current == 0 {
		return fmt.Errorf("%w: sentinel.toml", ErrConfigVersionMissing)
	}

	if current != CurrentVersion {
		return fmt.Errorf("%w: sentinel.toml (got: %d, expected: %d)",
			ErrConfigVersionMismatch, current, CurrentVersion)
	}

	return nil
}

func applyDefaults(cfg *Config) {
	if cfg.Debug.LogLevel == "" {
		cfg.Debug.LogLevel = "info"
	}

	if cfg.Oracle.MaxConcurrent <= 0 {
		cfg.Oracle.MaxConcurrent = 4
	}

	if cfg.Oracle.RequestTimeout <= 0 {
		cfg.Oracle.RequestTimeout = 90
	}

	if cfg.Worker.Conversations <= 0 {
		cfg.Worker.Conversations = 4
	}

	if cfg.Worker.Questions <= 0 {
		cfg.Worker.Questions = 1
	}
}
