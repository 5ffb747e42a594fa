package cudl

import (
	"bytes"
	"errors"
	"fmt"
	"maps"
	"os"
	"slices"

	"github.com/pelletier/go-toml/v2"

	"github.com/agiangrant/cudl/internal/ffi"
)

// ConfigEnv names the environment variable holding the path of the
// configuration file read by ConfigureFromEnv.
const ConfigEnv = "CUDL_CONFIG"

// Config controls where vendor libraries are looked for.
type Config struct {
	Search SearchConfig `toml:"search"`
	// Libraries maps a module name to an explicit library path that is
	// used without searching.
	Libraries map[string]string `toml:"libraries,omitempty"`
}

// SearchConfig configures the library search.
type SearchConfig struct {
	// Environment variables holding search path lists.
	PrimaryEnv   string `toml:"primary_env"`
	SecondaryEnv string `toml:"secondary_env"`
	// Standard installation prefixes, searched after the environment.
	Prefixes []string `toml:"prefixes"`
	// Library versions tried, most preferred first.
	Versions []int `toml:"versions"`
}

// DefaultConfig returns the built-in search configuration.
func DefaultConfig() Config {
	return Config{
		Search: SearchConfig{
			PrimaryEnv:   ffi.DefaultPrimaryEnv,
			SecondaryEnv: ffi.DefaultSecondaryEnv,
			Prefixes:     slices.Clone(ffi.DefaultPrefixes),
			Versions:     slices.Clone(ffi.DefaultVersions),
		},
	}
}

// LoadConfig reads a TOML configuration file. Settings absent from the
// file keep their defaults.
func LoadConfig(path string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return config, fmt.Errorf("failed to read %s: %w", path, err)
	}

	dec := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields()
	if err := dec.Decode(&config); err != nil {
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			row, col := derr.Position()
			return config, fmt.Errorf("failed to parse %s:%d:%d: %w", path, row, col, err)
		}
		return config, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	if err := config.Validate(); err != nil {
		return config, fmt.Errorf("%s: %w", path, err)
	}
	return config, nil
}

// Validate checks that c names only known modules and usable versions.
func (c Config) Validate() error {
	var errs []error
	for i, v := range c.Search.Versions {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("search.versions[%d]: version must be positive, got %d", i, v))
		}
	}
	for i, p := range c.Search.Prefixes {
		if p == "" {
			errs = append(errs, fmt.Errorf("search.prefixes[%d]: empty prefix", i))
		}
	}
	for _, name := range slices.Sorted(maps.Keys(c.Libraries)) {
		if _, ok := LookupModule(name); !ok {
			errs = append(errs, fmt.Errorf("libraries.%s: unknown module", name))
		}
	}
	return errors.Join(errs...)
}

// Marshal returns c encoded as TOML.
func (c Config) Marshal() ([]byte, error) {
	data, err := toml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}
	return data, nil
}

func (c Config) locator() *ffi.Locator {
	return &ffi.Locator{
		PrimaryEnv:   c.Search.PrimaryEnv,
		SecondaryEnv: c.Search.SecondaryEnv,
		Prefixes:     slices.Clone(c.Search.Prefixes),
		Versions:     slices.Clone(c.Search.Versions),
		Overrides:    maps.Clone(c.Libraries),
	}
}

// Configure makes c the search configuration of every module. It only
// affects modules that have not yet been loaded.
func Configure(c Config) error {
	if err := c.Validate(); err != nil {
		return err
	}
	ffi.SetDefaultLocator(c.locator())
	return nil
}

// ConfigureFromEnv applies the configuration file named by $CUDL_CONFIG.
// It does nothing when the variable is unset.
func ConfigureFromEnv() error {
	path := os.Getenv(ConfigEnv)
	if path == "" {
		return nil
	}
	config, err := LoadConfig(path)
	if err != nil {
		return err
	}
	return Configure(config)
}
