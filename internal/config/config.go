// Package config loads the chrome configuration from YAML or TOML and
// watches it for changes.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/example/paintchrome/internal/hsv"
	"github.com/example/paintchrome/internal/palette"
)

// ErrUnsupportedFormat is returned for config files that are neither
// YAML nor TOML.
var ErrUnsupportedFormat = errors.New("unsupported config format")

// Format is a config file encoding.
type Format int

const (
	FormatYAML Format = iota
	FormatTOML
)

// FormatFor picks the format from a file extension.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yml", ".yaml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return 0, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
}

type Config struct {
	// PixelScale overrides the monitor's device scale factor when > 0.
	PixelScale float64                  `yaml:"pixel_scale" toml:"pixel_scale"`
	Color      ColorConfig              `yaml:"color" toml:"color"`
	Scrollbar  ScrollbarConfig          `yaml:"scrollbar" toml:"scrollbar"`
	Document   DocumentConfig           `yaml:"document" toml:"document"`
	Palettes   map[string]PaletteConfig `yaml:"palettes" toml:"palettes"`
}

type ColorConfig struct {
	Hue        int    `yaml:"hue" toml:"hue"`
	Saturation int    `yaml:"saturation" toml:"saturation"`
	Value      int    `yaml:"value" toml:"value"`
	Mode       string `yaml:"mode" toml:"mode"`
}

type ScrollbarConfig struct {
	BlockIncrement float64 `yaml:"block_increment" toml:"block_increment"`
	UnitIncrement  float64 `yaml:"unit_increment" toml:"unit_increment"`
}

// DocumentConfig is the size of the scrollable drawing area.
type DocumentConfig struct {
	Width  int `yaml:"width" toml:"width"`
	Height int `yaml:"height" toml:"height"`
}

// PaletteConfig overrides a palette's default size and initial
// visibility. Zero sizes keep the default.
type PaletteConfig struct {
	Width  int  `yaml:"width" toml:"width"`
	Height int  `yaml:"height" toml:"height"`
	Hidden bool `yaml:"hidden" toml:"hidden"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Color:     ColorConfig{Hue: 0, Saturation: 0, Value: 0, Mode: hsv.ModeColor.String()},
		Scrollbar: ScrollbarConfig{BlockIncrement: 64, UnitIncrement: 16},
		Document:  DocumentConfig{Width: 2048, Height: 1536},
		Palettes:  map[string]PaletteConfig{},
	}
}

// Load reads path. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	format, err := FormatFor(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	cfg, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes data over the defaults and validates the result.
func Parse(data []byte, format Format) (*Config, error) {
	cfg := Default()
	var err error
	switch format {
	case FormatTOML:
		err = toml.Unmarshal(data, cfg)
	default:
		err = yaml.Unmarshal(data, cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("decoding: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects values no widget can work with.
func (c *Config) Validate() error {
	var errs []error
	if c.PixelScale < 0 {
		errs = append(errs, fmt.Errorf("pixel_scale must not be negative, got %v", c.PixelScale))
	}
	if c.Scrollbar.BlockIncrement < 0 || c.Scrollbar.UnitIncrement < 0 {
		errs = append(errs, errors.New("scrollbar increments must not be negative"))
	}
	if c.Document.Width < 0 || c.Document.Height < 0 {
		errs = append(errs, errors.New("document size must not be negative"))
	}
	for name, p := range c.Palettes {
		if !knownPalette(name) {
			errs = append(errs, fmt.Errorf("unknown palette %q", name))
		}
		if p.Width < 0 || p.Height < 0 {
			errs = append(errs, fmt.Errorf("palette %q: size must not be negative", name))
		}
	}
	return errors.Join(errs...)
}

func knownPalette(name string) bool {
	for _, n := range palette.Names {
		if n == name {
			return true
		}
	}
	return false
}

// InitialColor returns the configured starting color.
func (c *Config) InitialColor() hsv.Color {
	return hsv.New(c.Color.Hue, c.Color.Saturation, c.Color.Value)
}

// Mode returns the configured starting color mode.
func (c *Config) Mode() hsv.Mode {
	return hsv.ParseMode(c.Color.Mode)
}

// PaletteSpecs merges the palette overrides into the default specs.
func (c *Config) PaletteSpecs() []palette.Spec {
	specs := palette.DefaultSpecs()
	for i, s := range specs {
		p, ok := c.Palettes[s.Name]
		if !ok {
			continue
		}
		if p.Width > 0 {
			specs[i].Width = p.Width
		}
		if p.Height > 0 {
			specs[i].Height = p.Height
		}
		specs[i].Hidden = p.Hidden
	}
	return specs
}
