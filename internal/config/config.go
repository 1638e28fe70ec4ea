// Package config loads the proctiller configuration file.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Log    Log    `yaml:"log"`
	Launch Launch `yaml:"launch"`
	Kill   Kill   `yaml:"kill"`
	UI     UI     `yaml:"ui"`
}

type Log struct {
	// Level is one of debug, info, warn, error.
	Level string `yaml:"level"`
	// Format is text or json.
	Format string `yaml:"format"`
}

// Launch holds defaults for newly created processes.
type Launch struct {
	Timeout   time.Duration `yaml:"timeout"`
	Suspended bool          `yaml:"suspended"`
	Dir       string        `yaml:"dir"`
}

type Kill struct {
	ExitCode uint32 `yaml:"exitCode"`
}

type UI struct {
	Refresh time.Duration `yaml:"refresh"`
}

func Default() *Config {
	return &Config{
		Log:  Log{Level: "info", Format: "text"},
		Kill: Kill{ExitCode: 1},
		UI:   UI{Refresh: 500 * time.Millisecond},
	}
}

// Load reads the file at path over the defaults. An empty path yields the
// defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve config path: %w", err)
	}

	f, err := os.Open(absPath)
	if err != nil {
		return nil, fmt.Errorf("open config file: %w", err)
	}
	defer f.Close()

	cfg, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", absPath, err)
	}
	return cfg, nil
}

// Decode parses a YAML document over the defaults and validates it.
// Unknown keys are rejected.
func Decode(r io.Reader) (*Config, error) {
	cfg := Default()

	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	var errs []error

	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("log.level: unsupported level %q", c.Log.Level))
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("log.format: unsupported format %q", c.Log.Format))
	}
	if c.Launch.Timeout < 0 {
		errs = append(errs, fmt.Errorf("launch.timeout: must not be negative"))
	}
	if c.UI.Refresh <= 0 {
		errs = append(errs, fmt.Errorf("ui.refresh: must be positive"))
	}

	return errors.Join(errs...)
}
