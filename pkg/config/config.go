// Package config provides configuration management for the deployfs
// toolkit. It loads and validates YAML settings for the copy exclusion
// policy, the access-deny marker, the network filesystem probe, and
// logging, with sensible defaults for everything left unset.
package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/glorpus-work/deployfs/pkg/errors"
	"github.com/glorpus-work/deployfs/pkg/fsops"
	"github.com/glorpus-work/deployfs/pkg/probe"
)

const (
	// AppName is the name of the application used in paths.
	AppName = "deployfs"

	configFileName = "config.yaml"
)

// Config represents the application configuration.
type Config struct {
	Settings Settings `yaml:"settings"`
}

// Settings represents general application settings.
type Settings struct {
	// Copy policy.
	ExcludedExtensions []string `yaml:"excluded_extensions,omitempty"`
	MarkerName         string   `yaml:"marker_name,omitempty"`
	MarkerContent      string   `yaml:"marker_content,omitempty"`

	// Probe settings.
	NetworkFSTypes []string `yaml:"network_fs_types,omitempty"`

	// Staging directory for bundle extraction. Empty means the system
	// temp directory.
	StagingDir string `yaml:"staging_dir,omitempty"`

	// Logging.
	LogLevel string `yaml:"log_level,omitempty"`
}

// DefaultConfig returns a configuration with default values.
func DefaultConfig() *Config {
	policy := fsops.DefaultPolicy()
	return &Config{
		Settings: Settings{
			ExcludedExtensions: policy.ExcludedExtensions,
			MarkerName:         policy.MarkerName,
			MarkerContent:      policy.MarkerContent,
			NetworkFSTypes:     probe.DefaultNetworkFSTypes,
			LogLevel:           "info",
		},
	}
}

// LoadConfig loads the configuration from path. A missing file yields the
// defaults.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, errors.ErrEmptyConfigPath
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrInvalidConfigPath, err.Error())
	}

	file, err := os.Open(absPath)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, errors.Wrapf(err, "failed to open config file: %s", path)
	}
	defer func() { _ = file.Close() }()

	return LoadConfigFromReader(file)
}

// LoadConfigFromReader loads the configuration from an io.Reader.
func LoadConfigFromReader(reader io.Reader) (*Config, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read config data")
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, errors.Wrap(errors.ErrConfigParse, err.Error())
	}

	config.applyDefaults()

	if err := config.Validate(); err != nil {
		return nil, errors.Wrap(errors.ErrConfigValidation, err.Error())
	}

	return &config, nil
}

// SaveConfig writes the configuration to path, creating parent
// directories as needed.
func (c *Config) SaveConfig(path string) error {
	if path == "" {
		return errors.ErrEmptyConfigPath
	}

	if err := os.MkdirAll(filepath.Dir(path), fsops.DirModeDefault); err != nil {
		return errors.Wrap(errors.ErrConfigDirectory, err.Error())
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return errors.Wrap(errors.ErrConfigEncode, err.Error())
	}

	return os.WriteFile(path, data, fsops.FileModeDefault)
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	switch c.Settings.LogLevel {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("invalid log level: %s", c.Settings.LogLevel)
	}

	for _, ext := range c.Settings.ExcludedExtensions {
		if ext == "" || ext[0] != '.' {
			return fmt.Errorf("excluded extension %q must start with a dot", ext)
		}
	}
	return nil
}

func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.Settings.ExcludedExtensions == nil {
		c.Settings.ExcludedExtensions = defaults.Settings.ExcludedExtensions
	}
	if c.Settings.MarkerName == "" {
		c.Settings.MarkerName = defaults.Settings.MarkerName
	}
	if c.Settings.MarkerContent == "" {
		c.Settings.MarkerContent = defaults.Settings.MarkerContent
	}
	if c.Settings.NetworkFSTypes == nil {
		c.Settings.NetworkFSTypes = defaults.Settings.NetworkFSTypes
	}
	if c.Settings.LogLevel == "" {
		c.Settings.LogLevel = defaults.Settings.LogLevel
	}
}

// Policy builds the fsops policy from the configured settings.
func (c *Config) Policy() fsops.Policy {
	return fsops.Policy{
		ExcludedExtensions: c.Settings.ExcludedExtensions,
		MarkerName:         c.Settings.MarkerName,
		MarkerContent:      c.Settings.MarkerContent,
	}
}

// GetDefaultConfigPath returns the default config file location under the
// user's configuration directory.
func GetDefaultConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", errors.Wrap(err, "failed to get user config directory")
	}
	return filepath.Join(configDir, AppName, configFileName), nil
}
