package main

import (
	"errors"
	"fmt"
	"io"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	envFile string
	quiet   bool
	verbose bool
}

// templateFlags selects the theme and override directories.
type templateFlags struct {
	dirs  []string
	theme string
}

// classFlags names the pluggable components.
type classFlags struct {
	system string
	writer string
}

// orderFlags selects member ordering.
type orderFlags struct {
	class  string
	module string
}

// buildFlags holds all flags for the build command.
type buildFlags struct {
	common      commonFlags
	templates   templateFlags
	classes     classFlags
	order       orderFlags
	output      string
	projectName string
	docFormat   string
	privacy     []string
	workers     int
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.StringVar(&f.envFile, "env-file", "", "load APIDOC_* variables from a .env file")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show debug logs")
}

// addTemplateFlags adds theme flags to a FlagSet.
func addTemplateFlags(fs *flag.FlagSet, f *templateFlags) {
	fs.StringArrayVar(&f.dirs, "template-dir", nil, "directory of template overrides (repeatable, last wins)")
	fs.StringVar(&f.theme, "theme", "", "built-in theme")
}

// addClassFlags adds component flags to a FlagSet.
func addClassFlags(fs *flag.FlagSet, f *classFlags) {
	fs.StringVar(&f.system, "system-class", "", "dotted name of the system class")
	fs.StringVar(&f.writer, "html-class", "", "dotted name of the writer class")
}

// addOrderFlags adds member order flags to a FlagSet.
func addOrderFlags(fs *flag.FlagSet, f *orderFlags) {
	fs.StringVar(&f.class, "cls-member-order", "", "class member order: alphabetical, source")
	fs.StringVar(&f.module, "mod-member-order", "", "module member order: alphabetical, source")
}

// parseBuildFlags parses build command flags and returns positional args.
// Parse errors wrap ErrUsage; -h returns flag.ErrHelp after printing usage.
func parseBuildFlags(args []string, stderr io.Writer) (*buildFlags, []string, error) {
	f := &buildFlags{}
	fs := newBuildFlagSet(f)

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			printBuildUsage(stderr)
			return nil, nil, err
		}
		return nil, nil, fmt.Errorf("%w: %v", ErrUsage, err)
	}

	return f, fs.Args(), nil
}

// newBuildFlagSet binds every build flag to f. Usage output is discarded:
// help text is printed by printBuildUsage.
func newBuildFlagSet(f *buildFlags) *flag.FlagSet {
	fs := flag.NewFlagSet("build", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVarP(&f.output, "output", "o", "", "output directory")
	fs.StringVar(&f.projectName, "project-name", "", "project name shown on pages")
	fs.StringVar(&f.docFormat, "docformat", "", "docstring format: markdown, plaintext")
	fs.StringArrayVar(&f.privacy, "privacy", nil, "PRIVACY:PATTERN rule (repeatable, last wins)")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel page writers (0 = auto)")

	addCommonFlags(fs, &f.common)
	addTemplateFlags(fs, &f.templates)
	addClassFlags(fs, &f.classes)
	addOrderFlags(fs, &f.order)
	return fs
}
