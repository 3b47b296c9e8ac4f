package assets

import "errors"

// Sentinel errors for asset operations.
var (
	// ErrUnknownAsset indicates the name is not part of the theme catalog.
	ErrUnknownAsset = errors.New("unknown asset name")

	// ErrAssetNotFound indicates a loader has no file for the requested name.
	// Resolvers treat it as "try the next source".
	ErrAssetNotFound = errors.New("asset not found")

	// ErrBuiltinAssetMissing indicates the built-in theme lacks a catalog asset.
	// This never happens with a valid install.
	ErrBuiltinAssetMissing = errors.New("built-in asset missing")

	// ErrUnknownTheme indicates the requested built-in theme does not exist.
	ErrUnknownTheme = errors.New("unknown theme")

	// ErrInvalidAssetName indicates the asset name contains invalid characters
	// such as path separators or traversal sequences.
	ErrInvalidAssetName = errors.New("invalid asset name")

	// ErrInvalidBasePath indicates the configured override path is not a valid directory.
	ErrInvalidBasePath = errors.New("invalid base path")

	// ErrAssetRead indicates an I/O error occurred while reading an asset file.
	ErrAssetRead = errors.New("failed to read asset")

	// ErrPathTraversal indicates an attempt to access files outside the base path.
	ErrPathTraversal = errors.New("path traversal detected")

	// ErrUnsupportedTemplate indicates a file extension that is not a template.
	ErrUnsupportedTemplate = errors.New("unsupported template file")

	// ErrMalformedVersion indicates a version marker whose value is not an integer.
	ErrMalformedVersion = errors.New("malformed template version")
)
