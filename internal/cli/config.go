package cli

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/katalvlaran/sparsix/sparse"
)

// Config holds the conversion defaults loadable from a TOML file via
// --config. Command-line flags override whichever values the file sets.
//
// Example file:
//
//	format = "hyb"
//	alignment = 32
//	slots = 4
//	dense_output = false
type Config struct {
	// Format is the intermediate storage format: coo, csr, dia, ell, hyb,
	// or dense.
	Format string `toml:"format"`

	// Alignment is the stride rounding unit for DIA/ELL/HYB targets.
	Alignment int `toml:"alignment"`

	// Slots is the fixed per-row entry capacity for ELL/HYB targets.
	// Zero derives a width from the matrix (mean row occupancy, rounded up).
	Slots int `toml:"slots"`

	// DenseOutput switches the output encoding from coordinate to the
	// fully materialized array form.
	DenseOutput bool `toml:"dense_output"`
}

// defaultConfig returns the built-in defaults used when no config file is
// given.
func defaultConfig() Config {
	return Config{
		Format:    "csr",
		Alignment: sparse.DefaultAlignment,
		Slots:     0,
	}
}

// loadConfig reads a TOML config file on top of the built-in defaults.
// An empty path returns the defaults unchanged.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}

	return cfg, nil
}

// validate rejects values the conversion layer would only reject later
// with a less helpful message.
func (c Config) validate() error {
	if _, ok := routes[c.Format]; !ok {
		return fmt.Errorf("%w: %q", errUnknownFormat, c.Format)
	}
	if c.Alignment < 1 {
		return fmt.Errorf("alignment must be >= 1, got %d", c.Alignment)
	}
	if c.Slots < 0 {
		return fmt.Errorf("slots must be >= 0, got %d", c.Slots)
	}

	return nil
}
