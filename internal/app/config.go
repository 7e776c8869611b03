package app

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"

	"github.com/corey/keyscan/internal/domain/matcher"
)

// ConfigFileName is looked up in the working directory.
const ConfigFileName = ".keyscan.yaml"

// Config holds session defaults. All fields are optional in the file;
// missing fields keep their built-in defaults.
type Config struct {
	ContextSize   int  `yaml:"context_size"`
	CaseSensitive bool `yaml:"case_sensitive"`
	Verbose       bool `yaml:"verbose"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{ContextSize: matcher.DefaultContextSize}
}

// LoadConfig reads .keyscan.yaml from dir. A missing file is not an
// error: the defaults come back with found=false.
func LoadConfig(dir string) (cfg Config, found bool, err error) {
	cfg = DefaultConfig()

	data, err := os.ReadFile(filepath.Join(dir, ConfigFileName))
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, false, nil
	}
	if err != nil {
		return cfg, false, fmt.Errorf("read %s: %w", ConfigFileName, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), false, fmt.Errorf("parse %s: %w", ConfigFileName, err)
	}
	if cfg.ContextSize <= 0 {
		cfg.ContextSize = matcher.DefaultContextSize
	}
	return cfg, true, nil
}
