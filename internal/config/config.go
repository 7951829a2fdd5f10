// Package config loads and validates mdfences CLI configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/robworks/go-mdfences/internal/fileutil"
	"github.com/robworks/go-mdfences/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
)

// Limits on config values.
const (
	MaxExtensionLength = 20
	MaxWorkers         = 64
)

// Config holds all configuration for the mdfences CLI.
type Config struct {
	Input   InputConfig   `yaml:"input"`
	Output  OutputConfig  `yaml:"output"`
	Preview PreviewConfig `yaml:"preview"`
	Workers int           `yaml:"workers"` // 0 = derive from CPU count
}

// InputConfig defines input discovery options.
type InputConfig struct {
	DefaultDir string   `yaml:"defaultDir"` // Default input directory (empty = must specify)
	Extensions []string `yaml:"extensions"` // Markdown extensions (default: .md, .markdown)
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Default output directory (empty = stdout for single files)
}

// PreviewConfig defines HTML preview rendering options.
type PreviewConfig struct {
	Enabled bool   `yaml:"enabled"`
	Title   string `yaml:"title"` // <title> of the preview page (default: "Preview")
}

// DefaultConfig returns the neutral configuration: transform in place
// semantics, standard markdown extensions, preview off.
func DefaultConfig() *Config {
	return &Config{
		Input: InputConfig{
			Extensions: []string{".md", ".markdown"},
		},
	}
}

// Validate checks extension shapes and the worker bound.
// Called automatically by Load, but available for consumers who construct
// Config manually.
func (c *Config) Validate() error {
	for i, ext := range c.Input.Extensions {
		if !strings.HasPrefix(ext, ".") {
			return fmt.Errorf("input.extensions[%d]: %q must start with a dot", i, ext)
		}
		if len(ext) > MaxExtensionLength {
			return fmt.Errorf("input.extensions[%d]: %q exceeds %d chars", i, ext, MaxExtensionLength)
		}
		if strings.ContainsAny(ext, "/\\\x00") {
			return fmt.Errorf("input.extensions[%d]: %q contains a path separator", i, ext)
		}
	}
	if c.Workers < 0 || c.Workers > MaxWorkers {
		return fmt.Errorf("workers: must be between 0 and %d, got %d", MaxWorkers, c.Workers)
	}
	return nil
}

// Load reads configuration from a file path or config name.
// If nameOrPath contains a path separator, it is treated as a file path.
// Otherwise it is treated as a config name and searched in standard
// locations. Returns an error if the file is not found (no silent fallback).
func Load(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}
	if len(cfg.Input.Extensions) == 0 {
		cfg.Input.Extensions = DefaultConfig().Input.Extensions
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, then the user config dir
// under mdfences/.
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		localPath := name + ext
		if fileutil.FileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, "mdfences", name+ext)
			if fileutil.FileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}
