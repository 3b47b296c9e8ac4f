package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/alnah/go-apidoc/internal/config"
)

// ErrEnvFile indicates the --env-file could not be loaded.
var ErrEnvFile = errors.New("failed to load env file")

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath   string   // APIDOC_CONFIG: config file name or path
	TemplateDirs []string // APIDOC_TEMPLATE_DIR: override directories, list-separated
	Theme        string   // APIDOC_THEME: built-in theme
	SystemClass  string   // APIDOC_SYSTEM_CLASS: dotted system class
	HTMLClass    string   // APIDOC_HTML_CLASS: dotted writer class
	OutputDir    string   // APIDOC_OUTPUT_DIR: output directory
	Workers      int      // APIDOC_WORKERS: parallel page writers
	LogLevel     string   // APIDOC_LOG_LEVEL: debug, info, warn, error
}

// knownEnvVars lists valid APIDOC_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"APIDOC_CONFIG":       true,
	"APIDOC_TEMPLATE_DIR": true,
	"APIDOC_THEME":        true,
	"APIDOC_SYSTEM_CLASS": true,
	"APIDOC_HTML_CLASS":   true,
	"APIDOC_OUTPUT_DIR":   true,
	"APIDOC_WORKERS":      true,
	"APIDOC_LOG_LEVEL":    true,
}

// loadEnvFile loads variables from a dotenv file into the process
// environment. Variables already set are not overridden.
func loadEnvFile(path string) error {
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrEnvFile, path, err)
	}
	return nil
}

// loadEnvConfig reads configuration from environment variables.
func loadEnvConfig() *envConfig {
	cfg := &envConfig{
		ConfigPath:  os.Getenv("APIDOC_CONFIG"),
		Theme:       os.Getenv("APIDOC_THEME"),
		SystemClass: os.Getenv("APIDOC_SYSTEM_CLASS"),
		HTMLClass:   os.Getenv("APIDOC_HTML_CLASS"),
		OutputDir:   os.Getenv("APIDOC_OUTPUT_DIR"),
		LogLevel:    os.Getenv("APIDOC_LOG_LEVEL"),
	}

	for _, dir := range filepath.SplitList(os.Getenv("APIDOC_TEMPLATE_DIR")) {
		if dir != "" {
			cfg.TemplateDirs = append(cfg.TemplateDirs, dir)
		}
	}

	// Invalid values are ignored, the config file or default applies.
	if workers := os.Getenv("APIDOC_WORKERS"); workers != "" {
		if w, err := strconv.Atoi(workers); err == nil && w > 0 {
			cfg.Workers = w
		}
	}

	return cfg
}

// warnUnknownEnvVars logs warnings for unrecognized APIDOC_* variables.
// Helps catch typos like APIDOC_TEMPLATES_DIR.
func warnUnknownEnvVars(logger *slog.Logger) {
	var unknown []string
	for _, env := range os.Environ() {
		name, _, _ := strings.Cut(env, "=")
		if strings.HasPrefix(name, "APIDOC_") && !knownEnvVars[name] {
			unknown = append(unknown, name)
		}
	}
	slices.Sort(unknown)
	for _, name := range unknown {
		logger.Warn("unknown environment variable (typo?)", "name", name)
	}
}

// applyEnvConfig applies environment variable values to config.
// Set variables replace config file values, giving
// CLI flags > env vars > config file > defaults
// (CLI flags are applied later via mergeFlags).
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if len(env.TemplateDirs) > 0 {
		cfg.Templates.Dirs = env.TemplateDirs
	}
	if env.Theme != "" {
		cfg.Templates.Theme = env.Theme
	}
	if env.SystemClass != "" {
		cfg.Classes.System = env.SystemClass
	}
	if env.HTMLClass != "" {
		cfg.Classes.Writer = env.HTMLClass
	}
	if env.OutputDir != "" {
		cfg.Output.Dir = env.OutputDir
	}
	if env.Workers > 0 {
		cfg.Workers = env.Workers
	}
	if env.LogLevel != "" {
		cfg.Log.Level = env.LogLevel
	}
}
