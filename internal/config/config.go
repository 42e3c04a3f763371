package config

import (
	"fmt"
	"os"

	"github.com/harrison/filecounter/internal/fileutil"
	"github.com/harrison/filecounter/internal/logger"
	"gopkg.in/yaml.v3"
)

// DefaultExtensions are the common image and video extensions counted when no
// configuration file overrides them.
var DefaultExtensions = []string{
	"jpg", "jpeg", "png", "gif", "bmp", // images
	"mp4", "avi", "mkv", "mov", "wmv", // video
}

// Config represents filecounter configuration options. It is built once at
// startup and treated as read-only afterwards.
type Config struct {
	// DefaultExtensions are always counted, before any --extensions values
	DefaultExtensions []string `yaml:"default_extensions"`

	// Recursive is the traversal mode when --recursive is not given
	Recursive bool `yaml:"recursive"`

	// LogLevel sets the diagnostic verbosity (trace, debug, info, warn, error)
	LogLevel string `yaml:"log_level"`
}

// DefaultConfig returns a Config with the built-in values
func DefaultConfig() *Config {
	exts := make([]string, len(DefaultExtensions))
	copy(exts, DefaultExtensions)

	return &Config{
		DefaultExtensions: exts,
		Recursive:         false,
		LogLevel:          "warn",
	}
}

// LoadConfig loads configuration from the specified YAML file, merging the
// keys present in the file over the defaults.
// Unlike the implicit defaults, an explicitly named file must exist.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var yamlCfg Config
	if err := yaml.Unmarshal(data, &yamlCfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// A raw map tells explicit zero values ("recursive: false",
	// "default_extensions: []") apart from absent keys.
	var rawMap map[string]interface{}
	if err := yaml.Unmarshal(data, &rawMap); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if _, exists := rawMap["default_extensions"]; exists {
		cfg.DefaultExtensions = yamlCfg.DefaultExtensions
		if cfg.DefaultExtensions == nil {
			cfg.DefaultExtensions = []string{}
		}
	}
	if _, exists := rawMap["recursive"]; exists {
		cfg.Recursive = yamlCfg.Recursive
	}
	if yamlCfg.LogLevel != "" {
		cfg.LogLevel = yamlCfg.LogLevel
	}

	return cfg, nil
}

// Validate validates the configuration values
func (c *Config) Validate() error {
	if !logger.IsValidLevel(c.LogLevel) {
		return fmt.Errorf("invalid log_level %q, must be one of: trace, debug, info, warn, error", c.LogLevel)
	}

	for i, ext := range c.DefaultExtensions {
		// "." normalizes to nothing and would never match.
		if fileutil.NormalizeExtension(ext) == "" {
			return fmt.Errorf("default_extensions[%d] must not be empty", i)
		}
	}

	return nil
}
