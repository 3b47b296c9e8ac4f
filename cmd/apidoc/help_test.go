package main

// Notes:
// - printUsage/printBuildUsage: we test that required content strings are
//   present in the output. We don't test exact formatting as that's an
//   implementation detail.
// - runHelp: we test routing to the correct help topic.
// These are acceptable gaps: we test observable behavior, not implementation details.

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	flag "github.com/spf13/pflag"

	apidoc "github.com/alnah/go-apidoc"
)

// ---------------------------------------------------------------------------
// TestPrintUsage - Main usage output
// ---------------------------------------------------------------------------

func TestPrintUsage(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	printUsage(&buf)
	output := buf.String()

	requiredStrings := []string{
		"Usage: apidoc",
		"Commands:",
		"build",
		"themes",
		"classes",
		"config",
		"version",
		"help",
	}

	for _, s := range requiredStrings {
		if !strings.Contains(output, s) {
			t.Errorf("printUsage output should contain %q", s)
		}
	}
}

// ---------------------------------------------------------------------------
// TestPrintBuildUsage - Build command usage output
// ---------------------------------------------------------------------------

func TestPrintBuildUsage(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	printBuildUsage(&buf)
	output := buf.String()

	flagGroups := []string{
		"Output:",
		"Templates:",
		"Components:",
		"Visibility:",
		"Configuration:",
		"Output Control:",
		"Environment:",
	}

	for _, group := range flagGroups {
		if !strings.Contains(output, group) {
			t.Errorf("printBuildUsage output should contain group header %q", group)
		}
	}

	for name := range knownEnvVars {
		if !strings.Contains(output, name) {
			t.Errorf("printBuildUsage output should document %s", name)
		}
	}

	if !strings.Contains(output, "flags > environment > config file > defaults") {
		t.Error("printBuildUsage output should state the precedence order")
	}
}

// ---------------------------------------------------------------------------
// TestPrintBuildUsage_DocumentsEveryFlag - Help stays in sync with the FlagSet
// ---------------------------------------------------------------------------

func TestPrintBuildUsage_DocumentsEveryFlag(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	printBuildUsage(&buf)
	output := buf.String()

	newBuildFlagSet(&buildFlags{}).VisitAll(func(f *flag.Flag) {
		want := "--" + f.Name
		if f.Shorthand != "" {
			want = "-" + f.Shorthand + ", --" + f.Name
		}
		if !strings.Contains(output, want) {
			t.Errorf("printBuildUsage output should document %q", want)
		}
	})
}

// ---------------------------------------------------------------------------
// TestHelpDefaultsMatchConstants - Verify documented defaults match actual values
// ---------------------------------------------------------------------------

func TestHelpDefaultsMatchConstants(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	printBuildUsage(&buf)
	output := buf.String()

	defaults := []struct {
		name     string
		expected string
	}{
		{"output", "default: " + apidoc.DefaultOutputDir},
		{"system-class", "default: " + apidoc.DefaultSystemClass},
		{"html-class", "default: " + apidoc.DefaultWriterClass},
	}

	for _, d := range defaults {
		if !strings.Contains(output, d.expected) {
			t.Errorf("help for --%s should document %q", d.name, d.expected)
		}
	}
}

// ---------------------------------------------------------------------------
// TestRunHelp - Help command routing
// ---------------------------------------------------------------------------

func TestRunHelp(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		args         []string
		wantErr      error
		wantInStdout []string
		wantInStderr []string
	}{
		{
			name:         "no args shows main usage",
			args:         []string{},
			wantInStdout: []string{"Usage: apidoc", "Commands:"},
		},
		{
			name:         "build shows build help",
			args:         []string{"build"},
			wantInStdout: []string{"Usage: apidoc build", "Templates:", "Components:"},
		},
		{
			name:         "themes shows themes help",
			args:         []string{"themes"},
			wantInStdout: []string{"Usage: apidoc themes"},
		},
		{
			name:         "classes shows classes help",
			args:         []string{"classes"},
			wantInStdout: []string{"Usage: apidoc classes"},
		},
		{
			name:         "config shows config help",
			args:         []string{"config"},
			wantInStdout: []string{"Usage: apidoc config"},
		},
		{
			name:         "version shows version help",
			args:         []string{"version"},
			wantInStdout: []string{"Usage: apidoc version"},
		},
		{
			name:         "help shows help help",
			args:         []string{"help"},
			wantInStdout: []string{"Usage: apidoc help"},
		},
		{
			name:         "unknown command is a usage error",
			args:         []string{"unknown"},
			wantErr:      ErrUsage,
			wantInStderr: []string{"Usage: apidoc", "Commands:"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var stdout, stderr bytes.Buffer
			deps := &Dependencies{
				Stdout: &stdout,
				Stderr: &stderr,
			}

			err := runHelp(tt.args, deps)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("runHelp() error = %v, want %v", err, tt.wantErr)
				}
			} else if err != nil {
				t.Errorf("runHelp() unexpected error = %v", err)
			}

			for _, want := range tt.wantInStdout {
				if !strings.Contains(stdout.String(), want) {
					t.Errorf("stdout should contain %q, got %q", want, stdout.String())
				}
			}
			for _, want := range tt.wantInStderr {
				if !strings.Contains(stderr.String(), want) {
					t.Errorf("stderr should contain %q, got %q", want, stderr.String())
				}
			}
		})
	}
}
