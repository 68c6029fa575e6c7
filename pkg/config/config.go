// Package config loads optional engine settings from a strut.yaml file.
//
// Configuration is a convenience for hosts and the inspector CLI; library
// callers can always construct engine.Options directly.
package config

import (
	stderrors "errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/go-strut/strut/pkg/engine"
	"github.com/go-strut/strut/pkg/errors"
)

// FileName is the configuration file looked up by LoadOptional.
const FileName = "strut.yaml"

// Config represents the optional strut.yaml configuration. Zero values
// defer to the engine defaults.
type Config struct {
	Scrollbar ScrollbarConfig `yaml:"scrollbar"`
	Text      TextConfig      `yaml:"text"`
	Table     TableConfig     `yaml:"table"`
}

// ScrollbarConfig contains scrollbar settings.
type ScrollbarConfig struct {
	// Size is the reserved scrollbar thickness in layout units.
	Size float64 `yaml:"size,omitempty"`
}

// TextConfig contains text measurement settings.
type TextConfig struct {
	// FontSize is the base text size in layout units.
	FontSize float64 `yaml:"font_size,omitempty"`
}

// TableConfig contains table sizing settings.
type TableConfig struct {
	// RowHeight is the fallback row height when no cell reports one.
	RowHeight float64 `yaml:"row_height,omitempty"`
}

// Load reads and validates a configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap("config.Load", errors.KindConfig,
			fmt.Errorf("failed to read %s: %w", path, err))
	}
	return parse(path, data)
}

// LoadOptional reads strut.yaml from dir if present. A missing file is
// not an error and yields the zero configuration.
func LoadOptional(dir string) (*Config, error) {
	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if stderrors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, errors.Wrap("config.LoadOptional", errors.KindConfig,
			fmt.Errorf("failed to read %s: %w", path, err))
	}
	return parse(path, data)
}

func parse(path string, data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrap("config.Load", errors.KindConfig,
			fmt.Errorf("failed to parse %s: %w", path, err))
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the configuration for out-of-range values.
func (c *Config) Validate() error {
	if c.Scrollbar.Size < 0 {
		return errors.New("config.Validate", errors.KindConfig,
			"scrollbar.size must not be negative, got %g", c.Scrollbar.Size)
	}
	if c.Text.FontSize < 0 {
		return errors.New("config.Validate", errors.KindConfig,
			"text.font_size must not be negative, got %g", c.Text.FontSize)
	}
	if c.Table.RowHeight < 0 {
		return errors.New("config.Validate", errors.KindConfig,
			"table.row_height must not be negative, got %g", c.Table.RowHeight)
	}
	return nil
}

// EngineOptions converts the configuration into engine options. Zero
// values stay zero so the engine applies its own defaults.
func (c *Config) EngineOptions() engine.Options {
	return engine.Options{
		ScrollbarSize: c.Scrollbar.Size,
		FontSize:      c.Text.FontSize,
		RowHeight:     c.Table.RowHeight,
	}
}
