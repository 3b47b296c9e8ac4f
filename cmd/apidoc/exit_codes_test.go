package main

import (
	"errors"
	"fmt"
	"os"
	"testing"

	apidoc "github.com/alnah/go-apidoc"
	"github.com/alnah/go-apidoc/internal/assets"
	"github.com/alnah/go-apidoc/internal/config"
	"github.com/alnah/go-apidoc/internal/logging"
)

func TestExitCodeFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil", err: nil, want: ExitSuccess},
		{name: "unknown error", err: errors.New("boom"), want: ExitGeneral},
		{name: "usage", err: fmt.Errorf("%w: bad flag", ErrUsage), want: ExitUsage},
		{name: "class resolution", err: &apidoc.ClassResolutionError{Name: "a.B", Base: "system", Reason: apidoc.ReasonWrongBaseType}, want: ExitUsage},
		{name: "configuration", err: fmt.Errorf("wrapped: %w", apidoc.ErrConfiguration), want: ExitUsage},
		{name: "invalid model", err: apidoc.ErrInvalidModel, want: ExitUsage},
		{name: "template parse", err: apidoc.ErrTemplateParse, want: ExitUsage},
		{name: "config not found", err: config.ErrConfigNotFound, want: ExitUsage},
		{name: "config value", err: config.ErrInvalidValue, want: ExitUsage},
		{name: "log level", err: logging.ErrInvalidLevel, want: ExitUsage},
		{name: "unknown theme", err: assets.ErrUnknownTheme, want: ExitUsage},
		{name: "template dir", err: assets.ErrInvalidBasePath, want: ExitUsage},
		{name: "not exist", err: fmt.Errorf("reading model file: %w", os.ErrNotExist), want: ExitIO},
		{name: "permission", err: os.ErrPermission, want: ExitIO},
		{name: "output dir", err: apidoc.ErrOutputDir, want: ExitIO},
		{name: "asset read", err: assets.ErrAssetRead, want: ExitIO},
		{name: "env file", err: ErrEnvFile, want: ExitIO},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := exitCodeFor(tt.err); got != tt.want {
				t.Errorf("exitCodeFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}
