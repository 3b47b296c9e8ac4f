package main

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	apidoc "github.com/alnah/go-apidoc"
	"github.com/alnah/go-apidoc/internal/assets"
	"github.com/alnah/go-apidoc/internal/config"
	"github.com/alnah/go-apidoc/internal/hints"
	"github.com/alnah/go-apidoc/internal/logging"
)

// runBuild generates the site for one model file.
// Resolution of every configured piece (config, templates, classes) happens
// before anything is written.
func runBuild(ctx context.Context, args []string, deps *Dependencies) error {
	flags, positional, err := parseBuildFlags(args, deps.Stderr)
	if err != nil {
		return err
	}
	if len(positional) != 1 {
		return fmt.Errorf("%w: expected one model file, got %d arguments", ErrUsage, len(positional))
	}

	cfg, err := resolveConfig(flags, deps)
	if err != nil {
		return err
	}

	level, err := logging.Resolve(flags.common.verbose, flags.common.quiet, cfg.Log.Level)
	if err != nil {
		return err
	}
	logger := logging.New(deps.Stderr, level)
	warnUnknownEnvVars(logger)

	project, err := apidoc.LoadProject(positional[0])
	if err != nil {
		return err
	}
	opts, err := buildOptions(cfg, project)
	if err != nil {
		return err
	}
	lookup, err := buildLookup(cfg.Templates, logger)
	if err != nil {
		return err
	}

	outputDir := cmp.Or(cfg.Output.Dir, apidoc.DefaultOutputDir)
	componentEnv := &apidoc.Env{
		Options:     opts,
		OutputDir:   outputDir,
		ProjectName: cfg.Project.Name,
		Lookup:      lookup,
		Logger:      logger,
		Workers:     cfg.Workers,
	}
	sys, err := apidoc.LoadSystem(deps.Registry, cmp.Or(cfg.Classes.System, apidoc.DefaultSystemClass), componentEnv)
	if err != nil {
		return err
	}
	componentEnv.System = sys
	writer, err := apidoc.LoadWriter(deps.Registry, cmp.Or(cfg.Classes.Writer, apidoc.DefaultWriterClass), componentEnv)
	if err != nil {
		return err
	}

	start := deps.Now()
	logger.Debug("building", "model", positional[0], "output", outputDir, "workers", cfg.Workers)
	if err := apidoc.Build(ctx, writer, project); err != nil {
		if errors.Is(err, apidoc.ErrOutputDir) {
			return fmt.Errorf("%w%s", err, hints.ForOutputDirectory())
		}
		return err
	}

	if !flags.common.quiet {
		fmt.Fprintf(deps.Stdout, "Wrote %d pages to %s (%s)\n",
			countPages(sys, project), outputDir, deps.Now().Sub(start).Round(time.Millisecond))
	}
	return nil
}

// resolveConfig layers the config file, APIDOC_* variables and flags, in
// increasing precedence, and validates the result.
func resolveConfig(flags *buildFlags, deps *Dependencies) (*config.Config, error) {
	if flags.common.envFile != "" {
		if err := loadEnvFile(flags.common.envFile); err != nil {
			return nil, err
		}
	}
	env := loadEnvConfig()

	cfg, err := loadConfig(cmp.Or(flags.common.config, env.ConfigPath), deps.ConfigName)
	if err != nil {
		return nil, err
	}
	applyEnvConfig(env, cfg)
	mergeFlags(flags, cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadConfig loads the named config. Without a name, defaultName is looked
// up in the standard locations and silently skipped when absent.
func loadConfig(name, defaultName string) (*config.Config, error) {
	if name == "" {
		if defaultName == "" {
			return config.DefaultConfig(), nil
		}
		cfg, err := config.LoadConfig(defaultName)
		if errors.Is(err, config.ErrConfigNotFound) {
			return config.DefaultConfig(), nil
		}
		return cfg, err
	}

	cfg, err := config.LoadConfig(name)
	if err != nil {
		var nf *config.NotFoundError
		if errors.As(err, &nf) {
			return nil, fmt.Errorf("%w%s", err, hints.ForConfigNotFound(nf.Tried))
		}
		return nil, err
	}
	return cfg, nil
}

// mergeFlags overrides config values with explicitly set flags.
// Privacy rules from flags are appended so they take precedence.
func mergeFlags(flags *buildFlags, cfg *config.Config) {
	if len(flags.templates.dirs) > 0 {
		cfg.Templates.Dirs = flags.templates.dirs
	}
	if flags.templates.theme != "" {
		cfg.Templates.Theme = flags.templates.theme
	}
	if flags.classes.system != "" {
		cfg.Classes.System = flags.classes.system
	}
	if flags.classes.writer != "" {
		cfg.Classes.Writer = flags.classes.writer
	}
	if flags.output != "" {
		cfg.Output.Dir = flags.output
	}
	if flags.projectName != "" {
		cfg.Project.Name = flags.projectName
	}
	if flags.docFormat != "" {
		cfg.Project.DocFormat = flags.docFormat
	}
	cfg.Privacy = append(cfg.Privacy, flags.privacy...)
	if flags.order.class != "" {
		cfg.Order.Class = flags.order.class
	}
	if flags.order.module != "" {
		cfg.Order.Module = flags.order.module
	}
	if flags.workers != 0 {
		cfg.Workers = flags.workers
	}
}

// buildOptions converts config values into component options. The
// configured docformat wins over the one declared by the model.
func buildOptions(cfg *config.Config, project *apidoc.Project) (apidoc.Options, error) {
	opts := apidoc.DefaultOptions()

	rules, err := apidoc.ParsePrivacyRules(cfg.Privacy)
	if err != nil {
		return opts, err
	}
	opts.PrivacyRules = rules

	if opts.ClassMemberOrder, err = apidoc.ParseMemberOrder(cfg.Order.Class); err != nil {
		return opts, err
	}
	if opts.ModuleMemberOrder, err = apidoc.ParseMemberOrder(cfg.Order.Module); err != nil {
		return opts, err
	}
	if format := cmp.Or(cfg.Project.DocFormat, project.DocFormat); format != "" {
		opts.DocFormat = strings.ToLower(format)
	}
	return opts, opts.Validate()
}

// buildLookup resolves every template once: theme, override directories
// and version gate.
func buildLookup(tc config.TemplatesConfig, logger *slog.Logger) (*assets.Lookup, error) {
	theme, err := assets.LoadTheme(cmp.Or(tc.Theme, assets.DefaultThemeName))
	if err != nil {
		return nil, fmt.Errorf("%w%s", err, hints.ForUnknownTheme(assets.ThemeNames()))
	}
	r, err := assets.NewResolver(theme, tc.Dirs...)
	if err != nil {
		if errors.Is(err, assets.ErrInvalidBasePath) {
			return nil, fmt.Errorf("%w%s", err, hints.ForTemplateDir())
		}
		return nil, err
	}
	return assets.NewLookup(r, logger)
}

// countPages counts the files a build writes besides static assets.
func countPages(sys apidoc.System, p *apidoc.Project) int {
	n := 2 // index.html, nameIndex.html
	for _, o := range p.AllObjects() {
		if o.Kind.HasOwnPage() && apidoc.IsVisible(sys, o) {
			n++
		}
	}
	return n
}
