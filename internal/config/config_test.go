package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func noEnv(string) string { return "" }

func envMap(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func noUserDir() (string, error) { return "", os.ErrNotExist }

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(Options{Getenv: noEnv, UserConfigDir: noUserDir})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Theme != DefaultTheme || cfg.Placeholder != DefaultPlaceholder ||
		cfg.CharLimit != DefaultCharLimit || !cfg.AltScreen || cfg.LogLevel != DefaultLogLevel ||
		cfg.IDSource != DefaultIDSource {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

func TestLoadPrecedence(t *testing.T) {
	dir := t.TempDir()
	userDir := filepath.Join(dir, "user")
	writeFile(t, filepath.Join(userDir, "tada", "config.toml"), `
theme = "neon"
placeholder = "What needs doing?"
char_limit = 80
log_level = "warn"
`)
	explicit := filepath.Join(dir, "explicit.toml")
	writeFile(t, explicit, `
char_limit = 120
alt_screen = false
`)

	level := "debug"
	cfg, err := Load(Options{
		File:          explicit,
		Getenv:        envMap(map[string]string{"TADA_THEME": "MONO", "TADA_LOG_LEVEL": "error"}),
		UserConfigDir: func() (string, error) { return userDir, nil },
		Overrides:     Overrides{LogLevel: &level},
	})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Placeholder != "What needs doing?" {
		t.Fatalf("user file not applied: %+v", cfg)
	}
	if cfg.CharLimit != 120 || cfg.AltScreen {
		t.Fatalf("explicit file not applied: %+v", cfg)
	}
	if cfg.Theme != "mono" {
		t.Fatalf("env not applied: theme=%q", cfg.Theme)
	}
	if cfg.LogLevel != "debug" {
		t.Fatalf("flag override not applied: level=%q", cfg.LogLevel)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	cases := []struct {
		name string
		env  map[string]string
		file string
		want string
	}{
		{name: "theme", env: map[string]string{"TADA_THEME": "pastel"}, want: "invalid theme"},
		{name: "level", env: map[string]string{"TADA_LOG_LEVEL": "loud"}, want: "invalid log_level"},
		{name: "alt screen", env: map[string]string{"TADA_ALT_SCREEN": "maybe"}, want: "TADA_ALT_SCREEN"},
		{name: "char limit", file: "char_limit = 0\n", want: "invalid char_limit"},
		{name: "id source", file: "id_source = \"uuid\"\n", want: "invalid id_source"},
		{name: "unknown key", file: "colour = \"red\"\n", want: "unknown keys"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			opts := Options{Getenv: envMap(tc.env), UserConfigDir: noUserDir}
			if tc.file != "" {
				p := filepath.Join(t.TempDir(), "c.toml")
				writeFile(t, p, tc.file)
				opts.File = p
			}
			_, err := Load(opts)
			if err == nil {
				t.Fatalf("expected error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("error %q does not mention %q", err, tc.want)
			}
		})
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(Options{
		File:          filepath.Join(t.TempDir(), "missing.toml"),
		Getenv:        noEnv,
		UserConfigDir: noUserDir,
	})
	if err == nil {
		t.Fatalf("expected error for missing --config file")
	}
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	if got := expandPath("~/tada.log"); got != filepath.Join(home, "tada.log") {
		t.Fatalf("expandPath = %q", got)
	}
	if got := expandPath("/tmp/x.log"); got != "/tmp/x.log" {
		t.Fatalf("absolute path changed: %q", got)
	}
}

func TestLoadIDSource(t *testing.T) {
	p := filepath.Join(t.TempDir(), "c.toml")
	writeFile(t, p, "id_source = \"clock\"\n")
	cfg, err := Load(Options{File: p, Getenv: noEnv, UserConfigDir: noUserDir})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.IDSource != "clock" {
		t.Fatalf("file not applied: id_source=%q", cfg.IDSource)
	}

	cfg, err = Load(Options{
		File:          p,
		Getenv:        envMap(map[string]string{"TADA_ID_SOURCE": " Counter "}),
		UserConfigDir: noUserDir,
	})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.IDSource != "counter" {
		t.Fatalf("env not applied: id_source=%q", cfg.IDSource)
	}
}
