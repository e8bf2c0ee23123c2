// Package config holds the explicit, range-validated playback configuration.
//
// The knobs the front-end exposes as sliders (disk count, step delay) are a
// small named record here instead of a loosely-typed options bag, so every
// consumer gets the same validation.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"github.com/aretw0/hanoi/pkg/domain"
)

// Playable bounds. The core accepts 1..domain.MaxDisks; the product's UI
// range is narrower.
const (
	MinDiskCount = 3
	MaxDiskCount = domain.MaxDisks

	MinStepDelayMs = 100
	MaxStepDelayMs = 2000
)

// Config is the playback configuration record.
type Config struct {
	DiskCount   int `yaml:"disk_count" json:"disk_count" mapstructure:"disk_count"`
	StepDelayMs int `yaml:"step_delay_ms" json:"step_delay_ms" mapstructure:"step_delay_ms"`

	// Peg role labels ("A".."C" or "0".."2").
	Source    string `yaml:"source" json:"source" mapstructure:"source"`
	Auxiliary string `yaml:"auxiliary" json:"auxiliary" mapstructure:"auxiliary"`
	Target    string `yaml:"target" json:"target" mapstructure:"target"`
}

// Default returns the configuration used when no file or flags are given.
func Default() Config {
	return Config{
		DiskCount:   5,
		StepDelayMs: 500,
		Source:      "A",
		Auxiliary:   "B",
		Target:      "C",
	}
}

// Validate checks every field against its accepted range.
func (c Config) Validate() error {
	if c.DiskCount < MinDiskCount || c.DiskCount > MaxDiskCount {
		return fmt.Errorf("%w: disk_count %d outside [%d,%d]", domain.ErrInvalidConfiguration, c.DiskCount, MinDiskCount, MaxDiskCount)
	}
	if c.StepDelayMs < MinStepDelayMs || c.StepDelayMs > MaxStepDelayMs {
		return fmt.Errorf("%w: step_delay_ms %d outside [%d,%d]", domain.ErrInvalidConfiguration, c.StepDelayMs, MinStepDelayMs, MaxStepDelayMs)
	}
	_, _, _, err := c.Pegs()
	return err
}

// Pegs resolves the configured labels into solver peg roles.
func (c Config) Pegs() (from, aux, to domain.Peg, err error) {
	if from, err = domain.ParsePeg(c.Source); err != nil {
		return
	}
	if aux, err = domain.ParsePeg(c.Auxiliary); err != nil {
		return
	}
	if to, err = domain.ParsePeg(c.Target); err != nil {
		return
	}
	err = domain.ValidateRoles(from, aux, to)
	return
}

// StepDelay returns the configured interval as a duration.
func (c Config) StepDelay() time.Duration {
	return time.Duration(c.StepDelayMs) * time.Millisecond
}

// Load reads a configuration file (YAML or JSON). A missing file is not an
// error: it yields the defaults, matching "no config" for a fresh checkout.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := Default()
	if strings.ToLower(filepath.Ext(path)) == ".json" {
		if err := json.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	} else {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// FromMap decodes a loose options bag (e.g. request payloads or embedding
// hosts) onto the defaults, then validates.
func FromMap(m map[string]any) (Config, error) {
	cfg := Default()
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:      &cfg,
		ErrorUnused: true,
	})
	if err != nil {
		return Config{}, err
	}
	if err := dec.Decode(m); err != nil {
		return Config{}, fmt.Errorf("%w: %v", domain.ErrInvalidConfiguration, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
