package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Output formats the CLI can emit.
const (
	FormatTable = "table"
	FormatCSV   = "csv"
	FormatICS   = "ics"
)

// Config is the top-level application configuration.
type Config struct {
	// StartYear is the first academic year to produce dates for.
	// Years before 2012 are permitted but have not been validated
	// against the institution's published calendars.
	StartYear int `yaml:"start_year" json:"start_year"`

	// EndYear is the exclusive upper bound of the academic-year range.
	// Zero means "current calendar year plus two", resolved at build time.
	EndYear int `yaml:"end_year" json:"end_year"`

	// LogLevel is the diagnostic verbosity: debug, info, warn or error.
	LogLevel string `yaml:"log_level" json:"log_level"`

	// Format selects the output serialization: table, csv or ics.
	Format string `yaml:"format" json:"format"`

	// Output is the destination path. Empty means stdout.
	Output string `yaml:"output" json:"output"`
}

// DefaultConfig returns an in-memory default configuration.
func DefaultConfig() *Config {
	return &Config{
		StartYear: 2012,
		EndYear:   0,
		LogLevel:  "info",
		Format:    FormatTable,
		Output:    "",
	}
}

// Normalize fills in missing/zero values with sensible defaults so that
// partially-filled configs still behave correctly.
func (c *Config) Normalize() {
	if c.StartYear <= 0 {
		c.StartYear = 2012
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	switch c.Format {
	case FormatTable, FormatCSV, FormatICS:
		// ok
	default:
		c.Format = FormatTable
	}
}

// Load loads configuration from the given YAML path.
//
// Behavior:
//   - If the file does not exist:
//   - create parent directory if needed
//   - write a default config with 0600 perms
//   - return the default config
//   - If the file exists:
//   - read YAML and unmarshal into Config
//   - normalize defaults
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, errors.New("config path is empty")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			// First run: create default config file.
			cfg := DefaultConfig()
			if err := Save(path, cfg); err != nil {
				// Even if save fails, return cfg with error so caller can decide.
				return cfg, err
			}
			return cfg, nil
		}
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	cfg.Normalize()

	return &cfg, nil
}

// Save writes the given configuration to the specified path.
//
// Implementation details:
//   - Ensures parent directory exists (0700).
//   - Marshals cfg to YAML.
//   - Writes atomically via a temp file + rename.
//   - Ensures final file permissions are 0600.
func Save(path string, cfg *Config) error {
	if path == "" {
		return errors.New("config path is empty")
	}
	if cfg == nil {
		return errors.New("config is nil")
	}

	cfg.Normalize()

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	// Atomic write: write to temp file in same directory then rename.
	tmp, err := os.CreateTemp(dir, ".acadcal-config-*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	// Ensure we clean up temp file on error.
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}

	// Flush and close before chmod/rename.
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	// Set permissions to 0600 on temp file before rename.
	if err := os.Chmod(tmpName, 0o600); err != nil {
		return err
	}

	// Rename over the target path.
	if err := os.Rename(tmpName, path); err != nil {
		return err
	}

	return nil
}

// Save is a convenience method on Config that delegates to the
// package-level Save function.
func (c *Config) Save(path string) error {
	return Save(path, c)
}
