package project

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// FileName is the name of the project configuration file.
const FileName = "letlang.toml"

// Config represents a letlang.toml configuration file.
type Config struct {
	// Debug enables debug logging.
	Debug bool `toml:"debug"`

	// Color enables styled output. Defaults to true when unset.
	Color *bool `toml:"color,omitempty"`

	// Parallel limits how many programs are processed at once. Zero or less
	// means no limit.
	Parallel int `toml:"parallel"`

	// Programs selects the programs to run when none are given on the
	// command line.
	Programs []string `toml:"programs,omitempty"`
}

// Default returns the configuration used when no letlang.toml is found.
func Default() *Config {
	return &Config{Parallel: 4}
}

// UseColor reports whether output should be styled.
func (c *Config) UseColor() bool {
	return c.Color == nil || *c.Color
}

// LoadConfig decodes the program selection and output settings at path on
// top of Default, so omitted keys keep their defaults.
func LoadConfig(path string) (*Config, error) {
	config := Default()
	if _, err := toml.DecodeFile(path, config); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return config, nil
}

// FindConfig returns the nearest letlang.toml at or above dir, along with
// its path. The search ends at the enclosing repository root; a nil Config
// means the caller should fall back to Default.
func FindConfig(dir string) (string, *Config, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", nil, err
	}
	for {
		path := filepath.Join(dir, FileName)
		if _, err := os.Stat(path); err == nil {
			config, err := LoadConfig(path)
			if err != nil {
				return "", nil, err
			}
			return path, config, nil
		}

		if _, err := os.Stat(filepath.Join(dir, ".git")); err == nil {
			return "", nil, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil, nil
		}
		dir = parent
	}
}
