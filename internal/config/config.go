package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	SessionStoreFile     = "file"
	SessionStorePostgres = "postgres"
	SessionStoreRedis    = "redis"

	DefaultSearchDebounce = 300 * time.Millisecond
	DefaultLogsDir        = "logs"

	// Environment variables that override the config file
	EnvAPIURL       = "HELPDESK_API_URL"
	EnvDatabaseURL  = "HELPDESK_DATABASE_URL"
	EnvSessionStore = "HELPDESK_SESSION_STORE"
	EnvRedisAddr    = "HELPDESK_REDIS_ADDR"
)

// Config represents the client configuration
type Config struct {
	APIBaseURL     string        `yaml:"apiBaseURL" validate:"required,url"`
	SessionStore   string        `yaml:"sessionStore,omitempty" validate:"omitempty,oneof=file postgres redis"`
	SessionPath    string        `yaml:"sessionPath,omitempty"`
	DatabaseURL    string        `yaml:"databaseURL,omitempty" validate:"required_if=SessionStore postgres"`
	RedisAddr      string        `yaml:"redisAddr,omitempty" validate:"required_if=SessionStore redis"`
	SessionTTL     time.Duration `yaml:"sessionTTL,omitempty"` // redis only; zero keeps sessions until logout
	SearchDebounce time.Duration `yaml:"searchDebounce,omitempty"`
	RequestTimeout time.Duration `yaml:"requestTimeout,omitempty"` // zero means no timeout
	LogsDir        string        `yaml:"logsDir,omitempty"`
}

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// LoadWithEnv loads and validates the configuration for an environment.
// For example, env="test" looks for "helpdesk_config.test.yaml". A .env file in
// the current directory is loaded first so its variables can override the file.
func LoadWithEnv(env string) (*Config, error) {
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			return nil, fmt.Errorf("failed to load .env file: %w", err)
		}
	}

	configPath, err := findConfigFile(env)
	if err != nil {
		return nil, fmt.Errorf("failed to find config file: %w", err)
	}

	cfg, err := LoadFromPath(configPath)
	if err != nil {
		return nil, err
	}

	if cfg.SessionPath == "" {
		cfg.SessionPath, err = defaultSessionPath(env)
		if err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

// LoadFromPath loads and validates the configuration from a specific path
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	applyEnvOverrides(&cfg)
	applyDefaults(&cfg)

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate validates the configuration struct and duration settings
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	if cfg.SearchDebounce < 0 {
		return fmt.Errorf("invalid searchDebounce %s: must not be negative", cfg.SearchDebounce)
	}
	if cfg.SessionTTL < 0 {
		return fmt.Errorf("invalid sessionTTL %s: must not be negative", cfg.SessionTTL)
	}
	if cfg.RequestTimeout < 0 {
		return fmt.Errorf("invalid requestTimeout %s: must not be negative", cfg.RequestTimeout)
	}

	return nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv(EnvAPIURL); v != "" {
		cfg.APIBaseURL = v
	}
	if v := os.Getenv(EnvDatabaseURL); v != "" {
		cfg.DatabaseURL = v
	}
	if v := os.Getenv(EnvRedisAddr); v != "" {
		cfg.RedisAddr = v
	}
	if v := os.Getenv(EnvSessionStore); v != "" {
		cfg.SessionStore = v
	}
}

func applyDefaults(cfg *Config) {
	if cfg.SessionStore == "" {
		cfg.SessionStore = SessionStoreFile
	}
	if cfg.SearchDebounce == 0 {
		cfg.SearchDebounce = DefaultSearchDebounce
	}
	if cfg.LogsDir == "" {
		cfg.LogsDir = DefaultLogsDir
	}
}

// defaultSessionPath places the session file under ~/.helpdesk, one per environment
func defaultSessionPath(env string) (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	name := "session.json"
	if env != "" {
		name = "session." + env + ".json"
	}
	return filepath.Join(homeDir, ".helpdesk", name), nil
}

// findConfigFile searches for the config file in current directory and home directory
func findConfigFile(env string) (string, error) {
	configFileName := "helpdesk_config.yaml"
	if env != "" {
		configFileName = "helpdesk_config." + env + ".yaml"
	}

	// Check current directory
	if _, err := os.Stat(configFileName); err == nil {
		return configFileName, nil
	}

	// Check home directory
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	homeConfigPath := filepath.Join(homeDir, configFileName)
	if _, err := os.Stat(homeConfigPath); err == nil {
		return homeConfigPath, nil
	}

	return "", fmt.Errorf("config file %s not found in current directory or home directory", configFileName)
}
