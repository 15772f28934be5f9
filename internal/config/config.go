// Package config loads the optional tessera configuration file.
//
// Configuration comes from a single YAML file passed with --config. There is
// no discovery: without the flag the defaults below apply, and command-line
// flags override whatever the file sets.
//
//	symbols:
//	  mark: "#"
//	  blank: "."
//	  consumed: "O"
//	marker: ${HOME}/markers/seamonster.txt
//	log:
//	  level: info
//	  format: text
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/tessera/bitmap"
)

// Log formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Config is the tessera command configuration.
type Config struct {
	// Symbols are the text runes for the three cell states.
	Symbols SymbolsConfig `yaml:"symbols"`

	// Marker is the path of the marker file used by roughness.
	// Empty selects the built-in sea monster.
	Marker string `yaml:"marker"`

	// Log configures diagnostic output on stderr.
	Log LogConfig `yaml:"log"`
}

// SymbolsConfig holds one-character strings.
type SymbolsConfig struct {
	Mark     string `yaml:"mark"`
	Blank    string `yaml:"blank"`
	Consumed string `yaml:"consumed"`
}

// LogConfig configures the logger.
type LogConfig struct {
	// Level is any logrus level name.
	// Default: warn
	Level string `yaml:"level"`

	// Format is "text" or "json".
	// Default: text
	Format string `yaml:"format"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	cs := bitmap.DefaultCharset()

	return &Config{
		Symbols: SymbolsConfig{
			Mark:     string(cs.Mark),
			Blank:    string(cs.Blank),
			Consumed: string(cs.Consumed),
		},
		Log: LogConfig{Level: "warn", Format: FormatText},
	}
}

// LoadFile reads path over the defaults. Unknown keys are rejected.
// ${VAR} references in Marker are expanded from the environment.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err = dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	cfg.Marker = os.ExpandEnv(cfg.Marker)

	if err = cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	var errs []error

	for _, sym := range [][2]string{
		{"symbols.mark", c.Symbols.Mark},
		{"symbols.blank", c.Symbols.Blank},
		{"symbols.consumed", c.Symbols.Consumed},
	} {
		if utf8.RuneCountInString(sym[1]) != 1 {
			errs = append(errs, fmt.Errorf("%s must be a single character, got %q", sym[0], sym[1]))
		}
	}
	if len(errs) == 0 {
		if _, err := c.Charset(); err != nil {
			errs = append(errs, err)
		}
	}

	if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("log.level: %w", err))
	}
	if c.Log.Format != FormatText && c.Log.Format != FormatJSON {
		errs = append(errs, fmt.Errorf("log.format must be %q or %q, got %q", FormatText, FormatJSON, c.Log.Format))
	}

	return errors.Join(errs...)
}

// Charset returns the symbols as a validated bitmap.Charset.
func (c *Config) Charset() (bitmap.Charset, error) {
	first := func(s string) rune {
		r, _ := utf8.DecodeRuneInString(s)
		if r == utf8.RuneError {
			return 0
		}
		return r
	}
	cs := bitmap.Charset{
		Mark:     first(c.Symbols.Mark),
		Blank:    first(c.Symbols.Blank),
		Consumed: first(c.Symbols.Consumed),
	}
	if err := cs.Validate(); err != nil {
		return bitmap.Charset{}, err
	}

	return cs, nil
}
