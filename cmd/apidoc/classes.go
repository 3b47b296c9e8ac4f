package main

import (
	"cmp"
	"fmt"
	"text/tabwriter"

	apidoc "github.com/alnah/go-apidoc"
)

// runClasses lists the symbols that --system-class and --html-class accept.
func runClasses(args []string, deps *Dependencies) error {
	if len(args) > 0 {
		return fmt.Errorf("%w: unexpected argument %q", ErrUsage, args[0])
	}

	tw := tabwriter.NewWriter(deps.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tTYPE\tDESCRIPTION")
	for _, e := range cmp.Or(deps.Registry, apidoc.DefaultRegistry()).Entries() {
		kind := "value"
		if e.IsClass {
			kind = "class"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", e.Name, kind, e.Doc)
	}
	return tw.Flush()
}
