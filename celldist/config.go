// SPDX-License-Identifier: MIT

package celldist

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned when a configuration value is out of range
// or the document cannot be decoded.
var ErrInvalidConfig = errors.New("celldist: invalid config")

// Config is the serializable form of the pipeline options.
//
//	min_presence: 2
//	min_measurements_per_cell: 5
//	weighted: true
//	workers: 8
type Config struct {
	MinPresence            int  `yaml:"min_presence"`
	MinMeasurementsPerCell int  `yaml:"min_measurements_per_cell"`
	Weighted               bool `yaml:"weighted"`
	Workers                int  `yaml:"workers"`
}

// DefaultConfig returns the documented defaults.
func DefaultConfig() Config {
	return Config{
		MinPresence:            DefaultMinPresence,
		MinMeasurementsPerCell: DefaultMinMeasurementsPerCell,
		Weighted:               DefaultWeighted,
		Workers:                DefaultWorkers,
	}
}

// ParseConfig decodes a YAML document on top of DefaultConfig. Keys absent
// from the document keep their default; unknown keys are rejected.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks every field is in range.
func (c Config) Validate() error {
	if c.MinPresence < 1 {
		return fmt.Errorf("%w: min_presence=%d, must be >= 1", ErrInvalidConfig, c.MinPresence)
	}
	if c.MinMeasurementsPerCell < 1 {
		return fmt.Errorf("%w: min_measurements_per_cell=%d, must be >= 1", ErrInvalidConfig, c.MinMeasurementsPerCell)
	}
	if c.Workers < 1 {
		return fmt.Errorf("%w: workers=%d, must be >= 1", ErrInvalidConfig, c.Workers)
	}

	return nil
}

// Options converts a validated Config into pipeline options.
// Call Validate first; out-of-range values panic in the WithX constructors.
func (c Config) Options() []Option {
	return []Option{
		WithMinPresence(c.MinPresence),
		WithMinMeasurementsPerCell(c.MinMeasurementsPerCell),
		WithWeighted(c.Weighted),
		WithWorkers(c.Workers),
	}
}
