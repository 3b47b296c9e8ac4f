package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/alnah/go-apidoc/internal/fileutil"
	"github.com/alnah/go-apidoc/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")
)

// Field length limits.
const (
	MaxPathLength      = 4096
	MaxClassNameLength = 256 // dotted names
	MaxProjectLength   = 200
	MaxPrivacyRules    = 256
	MaxTemplateDirs    = 32
	MaxWorkers         = 256
)

// Values accepted by the enumerated fields. Empty means "use the default".
var (
	MemberOrders = []string{"alphabetical", "source"}
	DocFormats   = []string{"markdown", "plaintext"}
	LogLevels    = []string{"debug", "info", "warn", "error"}
)

// Config holds the settings of a documentation run.
type Config struct {
	Templates TemplatesConfig `yaml:"templates"`
	Classes   ClassesConfig   `yaml:"classes"`
	Output    OutputConfig    `yaml:"output"`
	Project   ProjectConfig   `yaml:"project"`
	Privacy   []string        `yaml:"privacy"` // PRIVACY:PATTERN, last match wins
	Order     OrderConfig     `yaml:"order"`
	Workers   int             `yaml:"workers"` // 0 = one per CPU
	Log       LogConfig       `yaml:"log"`
}

// TemplatesConfig selects the theme and the override directories.
type TemplatesConfig struct {
	Dirs  []string `yaml:"dirs"`  // Later directories take precedence
	Theme string   `yaml:"theme"` // Built-in theme (empty = default)
}

// ClassesConfig names the pluggable components by dotted name.
type ClassesConfig struct {
	System string `yaml:"system"`
	Writer string `yaml:"writer"`
}

// OutputConfig defines the output destination.
type OutputConfig struct {
	Dir string `yaml:"dir"`
}

// ProjectConfig holds values used when the model does not provide them.
type ProjectConfig struct {
	Name      string `yaml:"name"`
	DocFormat string `yaml:"docformat"`
}

// OrderConfig selects member ordering on class and module pages.
type OrderConfig struct {
	Class  string `yaml:"class"`
	Module string `yaml:"module"`
}

// LogConfig sets the log level.
type LogConfig struct {
	Level string `yaml:"level"`
}

// Validate checks field lengths and enumerated values.
// Called by LoadConfig, but available for configs built in code.
func (c *Config) Validate() error {
	if len(c.Templates.Dirs) > MaxTemplateDirs {
		return fmt.Errorf("%w: templates.dirs: %d entries (max %d)", ErrInvalidValue, len(c.Templates.Dirs), MaxTemplateDirs)
	}
	for i, dir := range c.Templates.Dirs {
		if strings.TrimSpace(dir) == "" {
			return fmt.Errorf("%w: templates.dirs[%d]: empty path", ErrInvalidValue, i)
		}
		if err := validateFieldLength(fmt.Sprintf("templates.dirs[%d]", i), dir, MaxPathLength); err != nil {
			return err
		}
	}
	if err := validateFieldLength("templates.theme", c.Templates.Theme, MaxProjectLength); err != nil {
		return err
	}

	if err := validateFieldLength("classes.system", c.Classes.System, MaxClassNameLength); err != nil {
		return err
	}
	if err := validateFieldLength("classes.writer", c.Classes.Writer, MaxClassNameLength); err != nil {
		return err
	}

	if err := validateFieldLength("output.dir", c.Output.Dir, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("project.name", c.Project.Name, MaxProjectLength); err != nil {
		return err
	}
	if err := validateOneOf("project.docformat", c.Project.DocFormat, DocFormats); err != nil {
		return err
	}

	if len(c.Privacy) > MaxPrivacyRules {
		return fmt.Errorf("%w: privacy: %d rules (max %d)", ErrInvalidValue, len(c.Privacy), MaxPrivacyRules)
	}
	for i, rule := range c.Privacy {
		if err := validateFieldLength(fmt.Sprintf("privacy[%d]", i), rule, MaxClassNameLength); err != nil {
			return err
		}
	}

	if err := validateOneOf("order.class", c.Order.Class, MemberOrders); err != nil {
		return err
	}
	if err := validateOneOf("order.module", c.Order.Module, MemberOrders); err != nil {
		return err
	}

	if c.Workers < 0 || c.Workers > MaxWorkers {
		return fmt.Errorf("%w: workers: must be between 0 and %d, got %d", ErrInvalidValue, MaxWorkers, c.Workers)
	}
	return validateOneOf("log.level", c.Log.Level, LogLevels)
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// validateOneOf accepts an empty value or one of allowed, case-insensitively.
func validateOneOf(fieldName, value string, allowed []string) error {
	if value == "" || slices.Contains(allowed, strings.ToLower(value)) {
		return nil
	}
	return fmt.Errorf("%w: %s: %q (must be one of %s)", ErrInvalidValue, fieldName, value, strings.Join(allowed, ", "))
}

// DefaultConfig returns an empty configuration: every field falls back to
// the built-in default.
func DefaultConfig() *Config {
	return &Config{}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !fileutil.IsFilePath(nameOrPath) {
		var err error
		if configPath, err = resolveConfigPath(nameOrPath); err != nil {
			return nil, err
		}
	}

	var cfg Config
	if err := yamlutil.ReadFileStrict(configPath, &cfg); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		if errors.Is(err, yamlutil.ErrNilData) {
			return &cfg, nil
		}
		return nil, fmt.Errorf("%w: %s: %v", ErrConfigParse, configPath, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", configPath, err)
	}
	return &cfg, nil
}

// SearchPaths lists where a config name is looked up, in order:
// the current directory, then the user config directory.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2)
	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}
	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, "apidoc", name+ext))
		}
	}
	return paths
}

// resolveConfigPath returns the first existing search path for name.
func resolveConfigPath(name string) (string, error) {
	paths := SearchPaths(name)
	for _, p := range paths {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", &NotFoundError{Name: name, Tried: paths}
}

// NotFoundError reports the locations searched for a config name.
type NotFoundError struct {
	Name  string
	Tried []string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s: %q, tried %s", ErrConfigNotFound, e.Name, strings.Join(e.Tried, ", "))
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrConfigNotFound
}
