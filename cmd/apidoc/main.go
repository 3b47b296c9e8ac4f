package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	flag "github.com/spf13/pflag"
	"go.uber.org/automaxprocs/maxprocs"

	apidoc "github.com/alnah/go-apidoc"
)

func main() {
	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply. The default worker count
	// follows GOMAXPROCS, so this also sizes page writers to the CPU quota.
	_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...any) {}))

	os.Exit(runMain(os.Args, DefaultDeps()))
}

// runMain dispatches to a command and maps its error to an exit code.
func runMain(args []string, deps *Dependencies) int {
	if len(args) < 2 {
		printUsage(deps.Stderr)
		return ExitUsage
	}

	var err error
	switch cmd, rest := args[1], args[2:]; cmd {
	case "build":
		ctx, stop := notifyContext(context.Background())
		err = runBuild(ctx, rest, deps)
		stop()
	case "themes":
		err = runThemes(rest, deps)
	case "classes":
		err = runClasses(rest, deps)
	case "config":
		err = runShowConfig(rest, deps)
	case "version", "--version":
		fmt.Fprintf(deps.Stdout, "apidoc %s\n", apidoc.Version)
	case "help", "-h", "--help":
		err = runHelp(rest, deps)
	default:
		fmt.Fprintf(deps.Stderr, "Unknown command: %s\n\n", cmd)
		printUsage(deps.Stderr)
		return ExitUsage
	}

	if errors.Is(err, flag.ErrHelp) {
		return ExitSuccess
	}
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
	}
	return exitCodeFor(err)
}
