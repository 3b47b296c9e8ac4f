package main

// Notes:
// - loadEnvConfig: we test every APIDOC_* variable and that invalid workers
//   values are ignored rather than reported.
// - applyEnvConfig: we test that set variables replace config values and
//   unset ones leave them alone.
// - Tests use t.Setenv() which prevents t.Parallel() at parent level.
// These are acceptable gaps: we test observable behavior, not implementation details.

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/alnah/go-apidoc/internal/config"
	"github.com/alnah/go-apidoc/internal/logging"
)

// ---------------------------------------------------------------------------
// TestLoadEnvConfig - Environment variable loading
// ---------------------------------------------------------------------------

func TestLoadEnvConfig(t *testing.T) {
	t.Run("all variables", func(t *testing.T) {
		t.Setenv("APIDOC_CONFIG", "site")
		t.Setenv("APIDOC_TEMPLATE_DIR", "a"+string(os.PathListSeparator)+"b")
		t.Setenv("APIDOC_THEME", "base")
		t.Setenv("APIDOC_SYSTEM_CLASS", "mylib.pkg.StrictSystem")
		t.Setenv("APIDOC_HTML_CLASS", "mylib.pkg.Writer")
		t.Setenv("APIDOC_OUTPUT_DIR", "/out")
		t.Setenv("APIDOC_WORKERS", "3")
		t.Setenv("APIDOC_LOG_LEVEL", "debug")

		cfg := loadEnvConfig()

		if cfg.ConfigPath != "site" {
			t.Errorf("ConfigPath = %q, want site", cfg.ConfigPath)
		}
		if !slices.Equal(cfg.TemplateDirs, []string{"a", "b"}) {
			t.Errorf("TemplateDirs = %v, want [a b]", cfg.TemplateDirs)
		}
		if cfg.Theme != "base" || cfg.SystemClass != "mylib.pkg.StrictSystem" || cfg.HTMLClass != "mylib.pkg.Writer" {
			t.Errorf("unexpected values: %+v", cfg)
		}
		if cfg.OutputDir != "/out" || cfg.Workers != 3 || cfg.LogLevel != "debug" {
			t.Errorf("unexpected values: %+v", cfg)
		}
	})

	t.Run("invalid workers ignored", func(t *testing.T) {
		for _, v := range []string{"abc", "-2", "0"} {
			t.Setenv("APIDOC_WORKERS", v)
			if got := loadEnvConfig().Workers; got != 0 {
				t.Errorf("APIDOC_WORKERS=%q: Workers = %d, want 0", v, got)
			}
		}
	})

	t.Run("empty template dir entries skipped", func(t *testing.T) {
		sep := string(os.PathListSeparator)
		t.Setenv("APIDOC_TEMPLATE_DIR", sep+"a"+sep)
		if got := loadEnvConfig().TemplateDirs; !slices.Equal(got, []string{"a"}) {
			t.Errorf("TemplateDirs = %v, want [a]", got)
		}
	})
}

// ---------------------------------------------------------------------------
// TestWarnUnknownEnvVars - Typo detection
// ---------------------------------------------------------------------------

func TestWarnUnknownEnvVars(t *testing.T) {
	t.Setenv("APIDOC_THEME", "base")
	t.Setenv("APIDOC_TEMPLATES_DIR", "typo")

	var buf bytes.Buffer
	warnUnknownEnvVars(logging.New(&buf, logging.DefaultLevel))

	out := buf.String()
	if !strings.Contains(out, "APIDOC_TEMPLATES_DIR") {
		t.Errorf("expected a warning for APIDOC_TEMPLATES_DIR, got %q", out)
	}
	if strings.Contains(out, "APIDOC_THEME") {
		t.Errorf("known variable should not warn: %q", out)
	}
}

// ---------------------------------------------------------------------------
// TestApplyEnvConfig - env > config file
// ---------------------------------------------------------------------------

func TestApplyEnvConfig(t *testing.T) {
	t.Parallel()

	t.Run("set values replace config", func(t *testing.T) {
		t.Parallel()

		cfg := &config.Config{
			Templates: config.TemplatesConfig{Dirs: []string{"cfg"}, Theme: "classic"},
			Classes:   config.ClassesConfig{System: "cfg.System"},
			Output:    config.OutputConfig{Dir: "cfg-out"},
			Workers:   1,
		}
		applyEnvConfig(&envConfig{
			TemplateDirs: []string{"env"},
			Theme:        "base",
			SystemClass:  "env.System",
			HTMLClass:    "env.Writer",
			OutputDir:    "env-out",
			Workers:      4,
			LogLevel:     "info",
		}, cfg)

		if !slices.Equal(cfg.Templates.Dirs, []string{"env"}) || cfg.Templates.Theme != "base" {
			t.Errorf("Templates = %+v", cfg.Templates)
		}
		if cfg.Classes.System != "env.System" || cfg.Classes.Writer != "env.Writer" {
			t.Errorf("Classes = %+v", cfg.Classes)
		}
		if cfg.Output.Dir != "env-out" || cfg.Workers != 4 || cfg.Log.Level != "info" {
			t.Errorf("unexpected config: %+v", cfg)
		}
	})

	t.Run("unset values keep config", func(t *testing.T) {
		t.Parallel()

		cfg := &config.Config{Output: config.OutputConfig{Dir: "cfg-out"}, Workers: 2}
		applyEnvConfig(&envConfig{}, cfg)
		if cfg.Output.Dir != "cfg-out" || cfg.Workers != 2 {
			t.Errorf("config changed: %+v", cfg)
		}
	})
}

// ---------------------------------------------------------------------------
// TestLoadEnvFile - dotenv loading
// ---------------------------------------------------------------------------

func TestLoadEnvFile(t *testing.T) {
	t.Run("does not override set variables", func(t *testing.T) {
		t.Setenv("APIDOC_THEME", "classic")
		t.Setenv("APIDOC_LOG_LEVEL", "")
		_ = os.Unsetenv("APIDOC_LOG_LEVEL")

		path := filepath.Join(t.TempDir(), ".env")
		if err := os.WriteFile(path, []byte("APIDOC_THEME=base\nAPIDOC_LOG_LEVEL=debug\n"), 0644); err != nil {
			t.Fatal(err)
		}
		if err := loadEnvFile(path); err != nil {
			t.Fatalf("loadEnvFile() error = %v", err)
		}
		if got := os.Getenv("APIDOC_THEME"); got != "classic" {
			t.Errorf("APIDOC_THEME = %q, want classic", got)
		}
		if got := os.Getenv("APIDOC_LOG_LEVEL"); got != "debug" {
			t.Errorf("APIDOC_LOG_LEVEL = %q, want debug", got)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		err := loadEnvFile(filepath.Join(t.TempDir(), "none.env"))
		if !errors.Is(err, ErrEnvFile) || !errors.Is(err, os.ErrNotExist) {
			t.Errorf("loadEnvFile() error = %v, want ErrEnvFile wrapping os.ErrNotExist", err)
		}
	})
}
