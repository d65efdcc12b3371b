// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config holds the report settings and loads them from YAML.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ChrisFewtrell/GitLogTransformer/internal/tsv"
)

// Config holds report configuration.
type Config struct {
	// Output settings
	Separator    string `yaml:"separator"`
	OutputSuffix string `yaml:"output_suffix"`

	// Date rendering, as Go time layouts
	DateLayout  string `yaml:"date_layout"`
	MonthLayout string `yaml:"month_layout"`

	// Keep the separator after the last column of every row
	TrailingSeparator bool `yaml:"trailing_separator"`
}

// Default returns default configuration.
func Default() *Config {
	return &Config{
		Separator:         "\t",
		OutputSuffix:      ".tsv",
		DateLayout:        "2006-01-02",
		MonthLayout:       "2006-01",
		TrailingSeparator: true,
	}
}

// Load reads a YAML file on top of the defaults. Keys that are not set keep
// their default value; unknown keys are an error.
func Load(path string) (*Config, error) {
	f, err := os.Open(path) //nolint:gosec // G304: path comes from the command line
	if err != nil {
		return nil, fmt.Errorf("opening config: %w", err)
	}
	defer func() { _ = f.Close() }()

	cfg, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("loading config %s: %w", path, err)
	}
	return cfg, nil
}

// Decode parses YAML from r on top of the defaults.
func Decode(r io.Reader) (*Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects settings that would produce an unreadable report.
func (c *Config) Validate() error {
	if c.Separator == "" {
		return errors.New("separator must not be empty")
	}
	if c.OutputSuffix == "" {
		return errors.New("output_suffix must not be empty")
	}
	if c.DateLayout == "" || c.MonthLayout == "" {
		return errors.New("date_layout and month_layout must not be empty")
	}
	return nil
}

// Formatter builds the row formatter these settings describe.
func (c *Config) Formatter() *tsv.Formatter {
	return &tsv.Formatter{
		Separator:         c.Separator,
		DateLayout:        c.DateLayout,
		MonthLayout:       c.MonthLayout,
		TrailingSeparator: c.TrailingSeparator,
	}
}
