package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/dhamidi/minada/ada/parser"
)

// DefaultPath is read when no config file is given explicitly.
const DefaultPath = "minada.toml"

// Config holds the settings of the minada command
type Config struct {
	Parse  ParseConfig  `toml:"parse"`
	Check  CheckConfig  `toml:"check"`
	Log    LogConfig    `toml:"log"`
	Output OutputConfig `toml:"output"`
}

// ParseConfig selects what "minada parse" does by default
type ParseConfig struct {
	Entry  string `toml:"entry"`
	Format string `toml:"format"`
}

// CheckConfig controls which files "minada check" picks up
type CheckConfig struct {
	Extensions   []string `toml:"extensions"`
	PollInterval Duration `toml:"poll_interval"`
}

type LogConfig struct {
	Verbosity int    `toml:"verbosity"`
	File      string `toml:"file"`
}

type OutputConfig struct {
	Color bool `toml:"color"`
}

// Duration wraps time.Duration for TOML parsing
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler
func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

// MarshalText implements encoding.TextMarshaler
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Formats lists the values accepted for parse.format.
var Formats = []string{"text", "json", "tree", "none"}

func Default() *Config {
	return &Config{
		Parse: ParseConfig{
			Entry:  parser.StatementPart,
			Format: "text",
		},
		Check: CheckConfig{
			Extensions:   []string{".ada", ".mada"},
			PollInterval: Duration{time.Second},
		},
		Output: OutputConfig{
			Color: true,
		},
	}
}

// Load reads the configuration at path on top of the defaults. An empty
// path means DefaultPath, which may be absent.
func Load(path string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	if _, err := toml.Decode(string(data), cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks the configuration for unusable values
func (c *Config) Validate() error {
	if !parser.IsProduction(c.Parse.Entry) {
		return fmt.Errorf("parse.entry: unknown production %q", c.Parse.Entry)
	}
	if !ValidFormat(c.Parse.Format) {
		return fmt.Errorf("parse.format: unknown format %q", c.Parse.Format)
	}
	if c.Check.PollInterval.Duration <= 0 {
		return fmt.Errorf("check.poll_interval: must be positive, got %s", c.Check.PollInterval.Duration)
	}
	if len(c.Check.Extensions) == 0 {
		return fmt.Errorf("check.extensions: at least one extension is required")
	}
	if c.Log.Verbosity < 0 {
		return fmt.Errorf("log.verbosity: must not be negative")
	}
	return nil
}

func ValidFormat(format string) bool {
	for _, f := range Formats {
		if f == format {
			return true
		}
	}
	return false
}

// HasExtension reports whether ext is one of the checked file extensions.
func (c *CheckConfig) HasExtension(ext string) bool {
	for _, e := range c.Extensions {
		if e == ext {
			return true
		}
	}
	return false
}
