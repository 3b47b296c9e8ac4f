package main

import (
	"errors"
	"os"

	apidoc "github.com/alnah/go-apidoc"
	"github.com/alnah/go-apidoc/internal/assets"
	"github.com/alnah/go-apidoc/internal/config"
	"github.com/alnah/go-apidoc/internal/logging"
)

// ErrUsage marks invalid command lines.
var ErrUsage = errors.New("invalid usage")

// Exit codes for the apidoc CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Site written
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, class name or template
	ExitIO      = 3 // File not found, permission denied
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, ErrUsage) ||
		errors.Is(err, apidoc.ErrConfiguration) ||
		errors.Is(err, apidoc.ErrInvalidModel) ||
		errors.Is(err, apidoc.ErrTemplateParse) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidValue) ||
		errors.Is(err, logging.ErrInvalidLevel) ||
		errors.Is(err, assets.ErrUnknownTheme) ||
		errors.Is(err, assets.ErrUnknownAsset) ||
		errors.Is(err, assets.ErrInvalidAssetName) ||
		errors.Is(err, assets.ErrInvalidBasePath) ||
		errors.Is(err, assets.ErrPathTraversal) {
		return ExitUsage
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, apidoc.ErrOutputDir) ||
		errors.Is(err, assets.ErrAssetRead) ||
		errors.Is(err, ErrEnvFile) {
		return ExitIO
	}

	return ExitGeneral
}
