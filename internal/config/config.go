package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	IDSequential = "sequential"
	IDRandom     = "random"

	DefaultStorageKey = "tasks"
	DefaultLogLevel   = "warn"
)

type Config struct {
	// StorePath overrides the key-value store file. Empty means the default
	// location next to config.json.
	StorePath  string `json:"store_path"`
	StorageKey string `json:"storage_key"`
	IDStrategy string `json:"id_strategy"`
	LogLevel   string `json:"log_level"`
	LogPath    string `json:"log_path"`
}

func Load(path string) (*Config, error) {
	// #nosec G304 -- path is controlled by the app config location
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	Normalize(&cfg)
	return &cfg, nil
}

func Save(path string, cfg *Config) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return err
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	return os.WriteFile(path, data, 0o600)
}

func Default() *Config {
	return &Config{
		StorageKey: DefaultStorageKey,
		IDStrategy: IDSequential,
		LogLevel:   DefaultLogLevel,
	}
}

func LoadOrCreate(path string) (*Config, error) {
	// #nosec G304 -- path is controlled by the app config location
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg := Default()
			if err := Save(path, cfg); err != nil {
				return nil, err
			}
			return cfg, nil
		}
		return nil, err
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	Normalize(&cfg)
	if err := Save(path, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Normalize trims paths and replaces empty or unknown values with defaults.
func Normalize(cfg *Config) {
	cfg.StorePath = strings.TrimSpace(cfg.StorePath)
	cfg.LogPath = strings.TrimSpace(cfg.LogPath)
	if strings.TrimSpace(cfg.StorageKey) == "" {
		cfg.StorageKey = DefaultStorageKey
	}
	switch strings.ToLower(strings.TrimSpace(cfg.IDStrategy)) {
	case IDRandom:
		cfg.IDStrategy = IDRandom
	default:
		cfg.IDStrategy = IDSequential
	}
	if strings.TrimSpace(cfg.LogLevel) == "" {
		cfg.LogLevel = DefaultLogLevel
	}
}
