package main

import (
	"fmt"

	"github.com/alnah/go-apidoc/internal/yamlutil"
)

// runShowConfig prints the configuration a build with the same flags and
// environment would use, as YAML.
func runShowConfig(args []string, deps *Dependencies) error {
	flags, positional, err := parseBuildFlags(args, deps.Stderr)
	if err != nil {
		return err
	}
	if len(positional) > 0 {
		return fmt.Errorf("%w: unexpected argument %q", ErrUsage, positional[0])
	}

	cfg, err := resolveConfig(flags, deps)
	if err != nil {
		return err
	}
	out, err := yamlutil.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = deps.Stdout.Write(out)
	return err
}
