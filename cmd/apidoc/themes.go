package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	flag "github.com/spf13/pflag"

	"github.com/alnah/go-apidoc/internal/assets"
	"github.com/alnah/go-apidoc/internal/hints"
)

// runThemes lists the built-in themes and the template catalog of one of
// them, with the version each built-in template declares.
func runThemes(args []string, deps *Dependencies) error {
	fs := flag.NewFlagSet("themes", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	themeName := fs.String("theme", assets.DefaultThemeName, "theme whose templates are listed")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("%w: unexpected argument %q", ErrUsage, fs.Arg(0))
	}

	theme, err := assets.LoadTheme(*themeName)
	if err != nil {
		return fmt.Errorf("%w%s", err, hints.ForUnknownTheme(assets.ThemeNames()))
	}
	r, err := assets.NewResolver(theme)
	if err != nil {
		return err
	}
	lookup, err := assets.NewLookup(r, nil)
	if err != nil {
		return err
	}

	fmt.Fprintln(deps.Stdout, "Themes:")
	for _, name := range assets.ThemeNames() {
		t, err := assets.LoadTheme(name)
		if err != nil {
			return err
		}
		line := "  " + strings.Join(t.Chain(), " -> ")
		if name == assets.DefaultThemeName {
			line += " (default)"
		}
		fmt.Fprintln(deps.Stdout, line)
	}

	fmt.Fprintln(deps.Stdout)
	fmt.Fprintf(deps.Stdout, "Templates (%s):\n", theme.Name())
	tw := tabwriter.NewWriter(deps.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "  NAME\tVERSION\tSOURCE")
	for _, t := range lookup.Templates() {
		fmt.Fprintf(tw, "  %s\t%s\t%s\n", t.Name, versionString(t.Version), t.Location)
	}
	return tw.Flush()
}

func versionString(v int) string {
	if v == assets.NoVersion {
		return "-"
	}
	return strconv.Itoa(v)
}
