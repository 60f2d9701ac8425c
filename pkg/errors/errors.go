// Package errors defines the shared error values and wrapping helpers
// used across the deployfs toolkit.
package errors

import "fmt"

// Common error types.
var (
	// Config errors.
	ErrEmptyConfigPath   = fmt.Errorf("config file path cannot be empty")
	ErrInvalidConfigPath = fmt.Errorf("invalid config file path")
	ErrConfigParse       = fmt.Errorf("failed to parse config")
	ErrConfigValidation  = fmt.Errorf("invalid configuration")
	ErrConfigEncode      = fmt.Errorf("failed to encode config")
	ErrConfigDirectory   = fmt.Errorf("failed to create config directory")

	// Deployment errors.
	ErrNameEmpty       = fmt.Errorf("deployment name cannot be empty")
	ErrTargetDirEmpty  = fmt.Errorf("target directory cannot be empty")
	ErrSourceMissing   = fmt.Errorf("deployment needs a source directory or a bundle")
	ErrSourceAmbiguous = fmt.Errorf("source directory and bundle are mutually exclusive")
	ErrInvalidVersion  = fmt.Errorf("invalid version")
	ErrVersionTooOld   = fmt.Errorf("version is older than the required minimum")
	ErrBundleExtract   = fmt.Errorf("failed to extract bundle")
	ErrNoTreeOps       = fmt.Errorf("deployer has no tree operations configured")
	ErrNoExtractor     = fmt.Errorf("deployer has no bundle extractor configured")

	// Hook errors.
	ErrHookScript    = fmt.Errorf("hook script error")
	ErrHookExecution = fmt.Errorf("error executing hook")
)

// Wrap wraps an error with additional context.
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", msg, err)
}

// Wrapf wraps an error with additional formatted context.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}
