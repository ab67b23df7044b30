package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Line describes one transit line the service tracks: the pattern-id prefix
// that selects its upstream records and the name shown on displays.
type Line struct {
	Code        string `yaml:"code" validate:"required"`
	Prefix      string `yaml:"prefix" validate:"required"`
	DisplayName string `yaml:"displayName"`
}

// LinesConfig holds the ordered list of tracked lines. Order matters: it is
// the order heartbeat coverage is guaranteed in for the display sink.
type LinesConfig struct {
	Lines []Line `yaml:"lines" validate:"required,min=1,dive"`
}

// LoadLines reads and validates the lines file. A missing file falls back to
// the built-in Grenoble tram A-E definition.
func LoadLines(path string) (*LinesConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultLines(), nil
		}
		return nil, fmt.Errorf("reading lines config %s: %w", path, err)
	}

	var cfg LinesConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing lines config %s: %w", path, err)
	}

	v := validator.New()
	if err := v.Struct(cfg); err != nil {
		return nil, fmt.Errorf("validating lines config %s: %w", path, err)
	}

	for i := range cfg.Lines {
		if cfg.Lines[i].DisplayName == "" {
			cfg.Lines[i].DisplayName = cfg.Lines[i].Code
		}
	}

	return &cfg, nil
}

// DefaultLines returns the five Grenoble tram lines
func DefaultLines() *LinesConfig {
	codes := []string{"A", "B", "C", "D", "E"}
	cfg := &LinesConfig{Lines: make([]Line, 0, len(codes))}
	for _, code := range codes {
		cfg.Lines = append(cfg.Lines, Line{
			Code:        code,
			Prefix:      "SEM:" + code + ":",
			DisplayName: "Tram " + code,
		})
	}
	return cfg
}

// Prefixes returns the pattern-id allow-list in configured order
func (c *LinesConfig) Prefixes() []string {
	prefixes := make([]string, 0, len(c.Lines))
	for _, line := range c.Lines {
		prefixes = append(prefixes, line.Prefix)
	}
	return prefixes
}

// DisplayName resolves a line code to its display name, falling back to the
// code itself for lines that match a prefix but are not in the list.
func (c *LinesConfig) DisplayName(code string) string {
	for _, line := range c.Lines {
		if line.Code == code {
			return line.DisplayName
		}
	}
	return code
}
