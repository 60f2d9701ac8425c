// Package cli implements the deployfs command line interface.
package cli

import (
	"fmt"

	"github.com/fatih/color"

	"github.com/glorpus-work/deployfs/internal/logger"
	"github.com/glorpus-work/deployfs/pkg/config"
	"github.com/glorpus-work/deployfs/pkg/fsops"
)

// These variables will be set by the main package.
var (
	ConfigPath *string
	Verbose    *bool
	NoColor    *bool
)

// loadConfig loads the configuration honoring the global CLI flags.
func loadConfig() (*config.Config, error) {
	path := ""
	if ConfigPath != nil {
		path = *ConfigPath
	}
	if path == "" {
		defaultPath, err := config.GetDefaultConfigPath()
		if err != nil {
			return nil, fmt.Errorf("failed to get default config path: %w", err)
		}
		path = defaultPath
	}

	cfg, err := config.LoadConfig(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if NoColor != nil && *NoColor {
		color.NoColor = true
	}

	level := cfg.Settings.LogLevel
	if Verbose != nil && *Verbose {
		level = "debug"
	}
	logger.InitLogger(level, logger.FormatText)

	return cfg, nil
}

// newToolkit builds the filesystem toolkit from the configured policy.
func newToolkit(cfg *config.Config) *fsops.Ops {
	return fsops.New(cfg.Policy(), permAdvisor{})
}

// permAdvisor renders remediation advice for fatal copy failures.
type permAdvisor struct{}

func (permAdvisor) PermissionAdvice(root string) string {
	return fmt.Sprintf("check that the web server user owns %s and can write to it, e.g. chown -R and chmod -R u+w", root)
}

var (
	successColor = color.New(color.FgGreen)
	warnColor    = color.New(color.FgYellow)
)
