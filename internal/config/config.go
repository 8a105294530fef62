package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// RemoteModelConfig holds configuration for an HTTP inference endpoint.
type RemoteModelConfig struct {
	URL         string `yaml:"url"`
	APIKeyEnv   string `yaml:"api_key_env"`
	TimeoutSecs int    `yaml:"timeout_secs"`
	MaxRetries  *int   `yaml:"max_retries,omitempty"`
}

const defaultRetries = 3

// Retries returns the configured retry budget; an omitted max_retries means the default and 0
// disables retries.
func (r RemoteModelConfig) Retries() int {
	if r.MaxRetries == nil {
		return defaultRetries
	}
	return *r.MaxRetries
}

// ModelConfig selects and configures the price regressor.
type ModelConfig struct {
	Type   string             `yaml:"type"`
	Path   string             `yaml:"path"`
	Remote *RemoteModelConfig `yaml:"remote,omitempty"`
}

// DatasetConfig points at the historical sales CSV shown on the overview page.
type DatasetConfig struct {
	Path          string `yaml:"path"`
	TargetColumn  string `yaml:"target_column"`
	HeadRows      int    `yaml:"head_rows"`
	HistogramBins int    `yaml:"histogram_bins"`
}

// ImportanceConfig configures the feature importance page.
type ImportanceConfig struct {
	Mode string `yaml:"mode"`
	Seed int64  `yaml:"seed"`
	TopN int    `yaml:"top_n"`
}

// LoggingConfig configures the log level and destination.
type LoggingConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// AppConfig is the root application configuration structure.
type AppConfig struct {
	Model      ModelConfig      `yaml:"model"`
	Dataset    DatasetConfig    `yaml:"dataset"`
	Importance ImportanceConfig `yaml:"importance"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// Load reads a config from a specified path. If the file does not exist, returns defaults.
func Load(path string) (*AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			cfg := defaultConfig()
			return cfg, nil
		}
		return nil, err
	}
	// An omitted seed keeps the default; an explicit 0 asks for a fresh ranking every run.
	cfg := AppConfig{Importance: ImportanceConfig{Seed: defaultSeed}}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	applyConfigDefaults(&cfg)
	return &cfg, nil
}

// LoadDefault tries ./config.yaml first, then ~/.config/houseprice/config.yaml.
// If neither exists, it writes defaults to ~/.config/houseprice/config.yaml and returns them.
func LoadDefault() (*AppConfig, string, error) {
	cwdPath := "config.yaml"
	if _, err := os.Stat(cwdPath); err == nil {
		cfg, err := Load(cwdPath)
		return cfg, cwdPath, err
	}
	userPath, err := defaultUserConfigPath()
	if err != nil {
		return nil, "", err
	}
	if _, err := os.Stat(userPath); err == nil {
		cfg, err := Load(userPath)
		return cfg, userPath, err
	}
	cfg := defaultConfig()
	if err := Save(userPath, cfg); err != nil {
		return nil, "", err
	}
	return cfg, userPath, nil
}

// Save writes the config to the given path, creating directories as needed.
func Save(path string, cfg *AppConfig) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func defaultUserConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "houseprice", "config.yaml"), nil
}

const defaultSeed = 42

func defaultConfig() *AppConfig {
	cfg := &AppConfig{
		Model:      ModelConfig{Type: "forest", Path: "house_price_model.gob"},
		Dataset:    DatasetConfig{Path: "train.csv", TargetColumn: "SalePrice", HeadRows: 5, HistogramBins: 30},
		Importance: ImportanceConfig{Mode: "auto", Seed: defaultSeed, TopN: 10},
		Logging:    LoggingConfig{Level: "info", File: "houseprice.log"},
	}
	return cfg
}

func applyConfigDefaults(cfg *AppConfig) {
	if cfg.Model.Type == "" {
		cfg.Model.Type = "forest"
	}
	if cfg.Model.Path == "" {
		switch cfg.Model.Type {
		case "linear":
			cfg.Model.Path = "house_price_model.yaml"
		case "forest":
			cfg.Model.Path = "house_price_model.gob"
		}
	}
	if cfg.Model.Type == "remote" && cfg.Model.Remote != nil && cfg.Model.Remote.TimeoutSecs == 0 {
		cfg.Model.Remote.TimeoutSecs = 10
	}
	if cfg.Dataset.Path == "" {
		cfg.Dataset.Path = "train.csv"
	}
	if cfg.Dataset.TargetColumn == "" {
		cfg.Dataset.TargetColumn = "SalePrice"
	}
	if cfg.Dataset.HeadRows == 0 {
		cfg.Dataset.HeadRows = 5
	}
	if cfg.Dataset.HistogramBins == 0 {
		cfg.Dataset.HistogramBins = 30
	}
	if cfg.Importance.Mode == "" {
		cfg.Importance.Mode = "auto"
	}
	if cfg.Importance.TopN == 0 {
		cfg.Importance.TopN = 10
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.File == "" {
		cfg.Logging.File = "houseprice.log"
	}
}
