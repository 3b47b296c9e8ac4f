// Package assets provides the HTML templates and static files of the
// generated site.
//
// # Loader Architecture
//
// The package implements a layered loading system:
//
//	AssetLoader (interface)
//	    │
//	    ├── Theme             - built-in files from go:embed, layered on a parent theme
//	    ├── FilesystemLoader  - user override files from a directory on disk
//	    └── Resolver          - overrides first, then the theme chain
//
// Lookup sits on top of Resolver: it resolves every catalog asset once at
// start-up, runs the version gate on overrides and hands immutable templates
// to the writer for the rest of the run.
//
// # Catalog
//
// The valid asset names are the files of the base theme. Derived themes
// (classic) only ship the files they change. Override directories are flat:
//
//	{templateDir}/
//	├── header.html      # replaces the built-in header fragment
//	├── extra.css        # replaces the (empty) extra stylesheet
//	└── page.html        # replaces the whole object page template
//
// Replacement is whole-file: contents are never merged.
//
// # Versions
//
// Each built-in template carries a version marker (see VersionMarker).
// When an override is older than the built-in, or has no marker at all, a
// warning is logged. Newer overrides are accepted silently.
//
// # Security
//
// Asset names are validated to prevent path traversal attacks.
// FilesystemLoader resolves symlinks and verifies paths stay within its directory.
package assets
