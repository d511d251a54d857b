package workspacecfg

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/lexcodex/spirvconf/configure"
)

// FileName is the settings file looked up in the working directory.
const FileName = ".spirvconf.yaml"

// Settings models the optional per-checkout defaults. Every field mirrors a
// CLI flag; flags given on the command line win.
type Settings struct {
	CMake     string        `yaml:"cmake,omitempty"`
	Profile   string        `yaml:"profile,omitempty"`
	Generator string        `yaml:"generator,omitempty"`
	CC        string        `yaml:"cc,omitempty"`
	CXX       string        `yaml:"cxx,omitempty"`
	Defines   []string      `yaml:"defines,omitempty"`
	Env       []string      `yaml:"env,omitempty"`
	Logging   LoggingConfig `yaml:"logging,omitempty"`
}

// LoggingConfig describes diagnostic output.
type LoggingConfig struct {
	Level  string `yaml:"level,omitempty"`
	Format string `yaml:"format,omitempty"`
}

// DefaultPath returns the settings path inside dir.
func DefaultPath(dir string) string {
	if dir == "" {
		dir = "."
	}
	return filepath.Join(dir, FileName)
}

// Load reads the settings file, returning empty settings when it is missing.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Settings{}, nil
		}
		return nil, err
	}
	var cfg Settings
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &cfg, nil
}

// Save writes the settings to disk, creating parent directories.
func Save(path string, cfg *Settings) error {
	if cfg == nil {
		return errors.New("settings missing")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Validate checks values against what a configure run will accept, so a bad
// setting is reported when written rather than on the next run.
func (s *Settings) Validate() error {
	if s.Profile != "" {
		if _, err := configure.ParseProfile(s.Profile); err != nil {
			return err
		}
	}
	for _, def := range s.Defines {
		if _, err := configure.ParseDefinition(def); err != nil {
			return err
		}
	}
	for _, kv := range s.Env {
		if name, _, ok := strings.Cut(kv, "="); !ok || name == "" {
			return fmt.Errorf("env entry %q must be KEY=VALUE", kv)
		}
	}
	if _, err := s.Logging.SlogLevel(); err != nil {
		return err
	}
	switch s.Logging.Format {
	case "", "text", "json":
	default:
		return fmt.Errorf("unknown log format %q (choose text or json)", s.Logging.Format)
	}
	return nil
}

// SlogLevel maps the configured level name; empty means info.
func (l LoggingConfig) SlogLevel() (slog.Level, error) {
	if l.Level == "" {
		return slog.LevelInfo, nil
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(l.Level)); err != nil {
		return 0, fmt.Errorf("unknown log level %q: %w", l.Level, err)
	}
	return level, nil
}
