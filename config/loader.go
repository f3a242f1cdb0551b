package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	envPrefix    = "RETROSOLVE_"
	configEnvVar = "RETROSOLVE_CONFIG_PATH"
)

// Loader loads a Config from layered sources: defaults, then an
// optional YAML file, then environment variables.
type Loader struct {
	k           *koanf.Koanf
	configPaths []string
	envPrefix   string
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithConfigPaths sets the candidate file paths searched for a YAML
// config file, in order, when RETROSOLVE_CONFIG_PATH is unset.
func WithConfigPaths(paths ...string) LoaderOption {
	return func(l *Loader) { l.configPaths = paths }
}

// NewLoader constructs a Loader with the given options applied over
// its defaults.
func NewLoader(opts ...LoaderOption) *Loader {
	l := &Loader{
		k:           koanf.New("."),
		configPaths: []string{"retrosolve.yaml", "config/retrosolve.yaml"},
		envPrefix:   envPrefix,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load runs the full three-stage load and returns a validated Config.
func (l *Loader) Load() (*Config, error) {
	if err := l.loadDefaults(); err != nil {
		return nil, fmt.Errorf("config: load defaults: %w", err)
	}
	if err := l.loadConfigFile(); err != nil {
		fmt.Fprintf(os.Stderr, "config: no config file loaded: %v\n", err)
	}
	if err := l.loadEnv(); err != nil {
		return nil, fmt.Errorf("config: load env: %w", err)
	}

	var cfg Config
	if err := l.k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (l *Loader) loadDefaults() error {
	defaults := map[string]any{
		"puzzle.name":  "ternary",
		"puzzle.disks": 3,
		"puzzle.rods":  3,
		"puzzle.rows":  3,
		"puzzle.cols":  3,

		"solver.strategy": "auto",

		"log.level":        "info",
		"log.file_path":    "retrosolve.log",
		"log.max_size_mb":  10,
		"log.max_backups":  3,
		"log.max_age_days": 7,
	}
	return l.k.Load(confmap.Provider(defaults, "."), nil)
}

func (l *Loader) loadConfigFile() error {
	if configPath := os.Getenv(configEnvVar); configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			return l.k.Load(file.Provider(configPath), yaml.Parser())
		}
	}
	for _, path := range l.configPaths {
		absPath, err := filepath.Abs(path)
		if err != nil {
			continue
		}
		if _, err := os.Stat(absPath); err == nil {
			return l.k.Load(file.Provider(absPath), yaml.Parser())
		}
	}
	return fmt.Errorf("no config file found in %v", l.configPaths)
}

func (l *Loader) loadEnv() error {
	return l.k.Load(env.Provider(l.envPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, l.envPrefix)), "_", ".")
	}), nil)
}

// Load loads a Config using default options.
func Load() (*Config, error) {
	return NewLoader().Load()
}
