// Package config loads tada settings from defaults, TOML files, the
// environment and command-line flags, in that order of precedence.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
)

const (
	DefaultTheme       = "classic"
	DefaultPlaceholder = "Add a new todo"
	DefaultCharLimit   = 200
	DefaultLogLevel    = "info"
	DefaultIDSource    = "counter"

	configDirName  = "tada"
	configFileName = "config.toml"
)

// Themes lists the accepted theme names.
var Themes = []string{"classic", "neon", "mono"}

// IDSources lists the accepted id_source values: a counter from 1, or
// wall-clock milliseconds.
var IDSources = []string{"counter", "clock"}

type Config struct {
	Theme       string `toml:"theme"`
	Placeholder string `toml:"placeholder"`
	CharLimit   int    `toml:"char_limit"`
	AltScreen   bool   `toml:"alt_screen"`
	LogFile     string `toml:"log_file"`
	LogLevel    string `toml:"log_level"`
	PrintOnExit bool   `toml:"print_on_exit"`
	IDSource    string `toml:"id_source"`
}

// Overrides carries flag values. Nil fields were not set on the command line.
type Overrides struct {
	Theme       *string
	LogFile     *string
	LogLevel    *string
	AltScreen   *bool
	PrintOnExit *bool
}

// Options controls where Load looks. Zero values use the real environment.
type Options struct {
	// File is an explicit config file; it must exist when set.
	File      string
	Overrides Overrides

	Getenv        func(string) string
	UserConfigDir func() (string, error)
}

func Default() *Config {
	return &Config{
		Theme:       DefaultTheme,
		Placeholder: DefaultPlaceholder,
		CharLimit:   DefaultCharLimit,
		AltScreen:   true,
		LogLevel:    DefaultLogLevel,
		IDSource:    DefaultIDSource,
	}
}

// Load builds the effective configuration:
// 1. defaults
// 2. user config file (<user config dir>/tada/config.toml), if present
// 3. explicit config file (--config)
// 4. TADA_* environment variables
// 5. flags
func Load(opts Options) (*Config, error) {
	getenv := opts.Getenv
	if getenv == nil {
		getenv = os.Getenv
	}
	userDir := opts.UserConfigDir
	if userDir == nil {
		userDir = os.UserConfigDir
	}

	cfg := Default()

	if p := userConfigFile(userDir); p != "" {
		if err := loadFile(cfg, p); err != nil {
			return nil, fmt.Errorf("loading user config file %s: %w", p, err)
		}
	}

	if opts.File != "" {
		if err := loadFile(cfg, opts.File); err != nil {
			return nil, fmt.Errorf("loading config file %s: %w", opts.File, err)
		}
	}

	if err := loadFromEnv(cfg, getenv); err != nil {
		return nil, err
	}

	applyOverrides(cfg, opts.Overrides)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg.LogFile = expandPath(cfg.LogFile)
	return cfg, nil
}

// Validate checks values that would otherwise fail later at startup.
func (c *Config) Validate() error {
	if !oneOf(Themes, c.Theme) {
		return fmt.Errorf("invalid theme %q (want one of %s)", c.Theme, strings.Join(Themes, ", "))
	}
	if c.CharLimit <= 0 {
		return fmt.Errorf("invalid char_limit %d: must be positive", c.CharLimit)
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log_level %q: %w", c.LogLevel, err)
	}
	if !oneOf(IDSources, c.IDSource) {
		return fmt.Errorf("invalid id_source %q (want one of %s)", c.IDSource, strings.Join(IDSources, ", "))
	}
	return nil
}

func userConfigFile(userDir func() (string, error)) string {
	dir, err := userDir()
	if err != nil || dir == "" {
		return ""
	}
	p := filepath.Join(dir, configDirName, configFileName)
	if _, err := os.Stat(p); err != nil {
		return ""
	}
	return p
}

func loadFile(cfg *Config, path string) error {
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
	}
	return nil
}

func loadFromEnv(cfg *Config, getenv func(string) string) error {
	if v := getenv("TADA_THEME"); v != "" {
		cfg.Theme = strings.ToLower(strings.TrimSpace(v))
	}
	if v := getenv("TADA_LOG_FILE"); v != "" {
		cfg.LogFile = v
	}
	if v := getenv("TADA_LOG_LEVEL"); v != "" {
		cfg.LogLevel = strings.ToLower(strings.TrimSpace(v))
	}
	if v := getenv("TADA_ID_SOURCE"); v != "" {
		cfg.IDSource = strings.ToLower(strings.TrimSpace(v))
	}
	if v := getenv("TADA_ALT_SCREEN"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("TADA_ALT_SCREEN: %w", err)
		}
		cfg.AltScreen = b
	}
	return nil
}

func applyOverrides(cfg *Config, o Overrides) {
	if o.Theme != nil {
		cfg.Theme = strings.ToLower(*o.Theme)
	}
	if o.LogFile != nil {
		cfg.LogFile = *o.LogFile
	}
	if o.LogLevel != nil {
		cfg.LogLevel = strings.ToLower(*o.LogLevel)
	}
	if o.AltScreen != nil {
		cfg.AltScreen = *o.AltScreen
	}
	if o.PrintOnExit != nil {
		cfg.PrintOnExit = *o.PrintOnExit
	}
}

func oneOf(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}

func expandPath(p string) string {
	if p == "~" || strings.HasPrefix(p, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return p
		}
		return filepath.Join(home, strings.TrimPrefix(p, "~"))
	}
	return p
}
