package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: apidoc <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  build      Generate the HTML site for an object model")
	fmt.Fprintln(w, "  themes     List built-in themes and template versions")
	fmt.Fprintln(w, "  classes    List classes usable with --system-class and --html-class")
	fmt.Fprintln(w, "  config     Show the effective configuration for the given build flags")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'apidoc help <command>' for details on a specific command.")
}

// printBuildUsage prints usage for the build command.
func printBuildUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: apidoc build [flags] <model.yaml>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Generate the HTML site for an object model (YAML or JSON).")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output:")
	fmt.Fprintln(w, "  -o, --output <dir>            Output directory (default: apidocs)")
	fmt.Fprintln(w, "      --project-name <s>        Project name shown on pages")
	fmt.Fprintln(w, "      --docformat <s>           Docstring format: markdown, plaintext")
	fmt.Fprintln(w, "  -w, --workers <n>             Parallel page writers (0 = auto)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Templates:")
	fmt.Fprintln(w, "      --template-dir <dir>      Template overrides (repeatable, last wins)")
	fmt.Fprintln(w, "      --theme <name>            Built-in theme (see: apidoc themes)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Components:")
	fmt.Fprintln(w, "      --system-class <dotted>   System class (default: apidoc.system.System)")
	fmt.Fprintln(w, "      --html-class <dotted>     Writer class (default: apidoc.writer.TemplateWriter)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Visibility:")
	fmt.Fprintln(w, "      --privacy <LEVEL:PATTERN> PUBLIC, PRIVATE or HIDDEN for matching names")
	fmt.Fprintln(w, "                                (repeatable, last match wins; * stays in one")
	fmt.Fprintln(w, "                                dotted segment, ** crosses segments)")
	fmt.Fprintln(w, "      --cls-member-order <s>    Class members: alphabetical, source")
	fmt.Fprintln(w, "      --mod-member-order <s>    Module members: alphabetical, source")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Configuration:")
	fmt.Fprintln(w, "  -c, --config <name>           Config file name or path")
	fmt.Fprintln(w, "      --env-file <path>         Load APIDOC_* variables from a .env file")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet                   Only show errors")
	fmt.Fprintln(w, "  -v, --verbose                 Show debug logs")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  APIDOC_CONFIG, APIDOC_TEMPLATE_DIR, APIDOC_THEME, APIDOC_SYSTEM_CLASS,")
	fmt.Fprintln(w, "  APIDOC_HTML_CLASS, APIDOC_OUTPUT_DIR, APIDOC_WORKERS, APIDOC_LOG_LEVEL")
	fmt.Fprintln(w, "  Precedence: flags > environment > config file > defaults.")
}

// runHelp prints help for a specific command.
func runHelp(args []string, deps *Dependencies) error {
	if len(args) == 0 {
		printUsage(deps.Stdout)
		return nil
	}

	switch args[0] {
	case "build":
		printBuildUsage(deps.Stdout)
	case "themes":
		fmt.Fprintln(deps.Stdout, "Usage: apidoc themes [--theme <name>]")
		fmt.Fprintln(deps.Stdout)
		fmt.Fprintln(deps.Stdout, "List built-in themes and the templates of one theme with their versions.")
		fmt.Fprintln(deps.Stdout, "Override files must use these names to take effect.")
	case "classes":
		fmt.Fprintln(deps.Stdout, "Usage: apidoc classes")
		fmt.Fprintln(deps.Stdout)
		fmt.Fprintln(deps.Stdout, "List registered classes and values by dotted name.")
	case "config":
		fmt.Fprintln(deps.Stdout, "Usage: apidoc config [build flags]")
		fmt.Fprintln(deps.Stdout)
		fmt.Fprintln(deps.Stdout, "Print, as YAML, the configuration a build would use after merging the")
		fmt.Fprintln(deps.Stdout, "config file, APIDOC_* variables and flags.")
	case "version":
		fmt.Fprintln(deps.Stdout, "Usage: apidoc version")
		fmt.Fprintln(deps.Stdout)
		fmt.Fprintln(deps.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(deps.Stdout, "Usage: apidoc help [command]")
		fmt.Fprintln(deps.Stdout)
		fmt.Fprintln(deps.Stdout, "Show help for a command.")
	default:
		printUsage(deps.Stderr)
		return fmt.Errorf("%w: unknown command %q", ErrUsage, args[0])
	}
	return nil
}
