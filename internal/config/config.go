package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config is the complete module configuration.
type Config struct {
	Logging LoggingConfig `yaml:"logging" envconfig:"LOGGING"`
	Paths   PathsConfig   `yaml:"paths" envconfig:"PATHS"`
}

// LoggingConfig controls slog output.
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL" validate:"oneof=debug info warn error"`
	Format   string `yaml:"format" envconfig:"FORMAT" validate:"oneof=json text"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH"`
}

// PathsConfig holds the file system locations the pipeline touches.
type PathsConfig struct {
	// DataDir is where callers keep source archives.
	DataDir string `yaml:"data_dir" envconfig:"DATA_DIR" validate:"required"`

	// StagingDir is the root the zip ingestor extracts archives into.
	StagingDir string `yaml:"staging_dir" envconfig:"STAGING_DIR" validate:"required"`

	LogsDir string `yaml:"logs_dir" envconfig:"LOGS_DIR"`
}

var validate = validator.New()

// Load builds the configuration from environment variables (prefix
// TABPREP) and, if present, a tabprep.yaml file in the working
// directory. Environment values take precedence over file values, and
// both over the built-in defaults.
func Load() (*Config, error) {
	return LoadFrom(configFilePath())
}

// LoadFrom is Load with an explicit config file path. A missing file is
// not an error; defaults and environment still apply.
func LoadFrom(configFile string) (*Config, error) {
	var cfg Config
	if err := envconfig.Process("TABPREP", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	if _, err := os.Stat(configFile); err == nil {
		fileCfg, err := loadFromFile(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
		cfg = merge(*fileCfg, cfg)
	}

	cfg.applyDefaults()

	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}

func loadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// merge fills fields the environment left empty from the file config.
func merge(fileCfg, envCfg Config) Config {
	if envCfg.Logging.Level == "" {
		envCfg.Logging.Level = fileCfg.Logging.Level
	}
	if envCfg.Logging.Format == "" {
		envCfg.Logging.Format = fileCfg.Logging.Format
	}
	if envCfg.Logging.FilePath == "" {
		envCfg.Logging.FilePath = fileCfg.Logging.FilePath
	}
	if envCfg.Paths.DataDir == "" {
		envCfg.Paths.DataDir = fileCfg.Paths.DataDir
	}
	if envCfg.Paths.StagingDir == "" {
		envCfg.Paths.StagingDir = fileCfg.Paths.StagingDir
	}
	if envCfg.Paths.LogsDir == "" {
		envCfg.Paths.LogsDir = fileCfg.Paths.LogsDir
	}
	return envCfg
}

func (c *Config) applyDefaults() {
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "json"
	}
	if c.Logging.FilePath == "" {
		c.Logging.FilePath = "logs/tabprep.log"
	}
	if c.Paths.DataDir == "" {
		c.Paths.DataDir = "data"
	}
	if c.Paths.StagingDir == "" {
		c.Paths.StagingDir = "extracted_data"
	}
	if c.Paths.LogsDir == "" {
		c.Paths.LogsDir = "logs"
	}
}

func configFilePath() string {
	wd, err := os.Getwd()
	if err != nil {
		return "tabprep.yaml"
	}
	return filepath.Join(wd, "tabprep.yaml")
}
