package assets

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"
)

// Resolved is the effective content of one asset for this run.
type Resolved struct {
	Name     string
	Content  []byte
	Origin   Origin
	Location string // file path for overrides, theme:<name>/<file> for built-ins
}

// Resolver picks, for each catalog asset, the first source that has it.
// Override directories are searched before the built-in theme; among
// overrides, the directory given last wins.
// A Resolver is immutable after construction and safe for concurrent use.
type Resolver struct {
	overrides []*FilesystemLoader // highest priority first
	missing   []string
	theme     *Theme
	catalog   []string
	known     map[string]bool
}

// NewResolver creates a Resolver over the given theme and override directories.
// Directories are listed in increasing priority. Empty paths are skipped;
// directories that do not exist are treated as "no override" and reported
// by MissingOverrideDirs. Any other invalid path returns ErrInvalidBasePath.
func NewResolver(theme *Theme, overrideDirs ...string) (*Resolver, error) {
	if theme == nil {
		theme = DefaultTheme()
	}

	catalog, err := theme.Catalog()
	if err != nil {
		return nil, err
	}

	r := &Resolver{
		theme:   theme,
		catalog: catalog,
		known:   make(map[string]bool, len(catalog)),
	}
	for _, name := range catalog {
		r.known[name] = true
	}

	for i := len(overrideDirs) - 1; i >= 0; i-- {
		dir := overrideDirs[i]
		if dir == "" {
			continue
		}
		loader, err := NewFilesystemLoader(dir)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				r.missing = append(r.missing, dir)
				continue
			}
			return nil, err
		}
		r.overrides = append(r.overrides, loader)
	}

	return r, nil
}

// Resolve returns the effective content for a catalog asset.
// Returns ErrUnknownAsset, listing valid names, if name is not in the catalog.
// Returns ErrBuiltinAssetMissing if no source, built-in included, has the file.
func (r *Resolver) Resolve(name string) (Resolved, error) {
	if err := r.checkKnown(name); err != nil {
		return Resolved{}, err
	}

	for _, o := range r.overrides {
		content, location, err := o.Load(name)
		if err == nil {
			return Resolved{Name: name, Content: content, Origin: OriginOverride, Location: location}, nil
		}
		// Only fall through on "not found"; validation and I/O errors surface.
		if !errors.Is(err, ErrAssetNotFound) {
			return Resolved{}, err
		}
	}

	return r.Builtin(name)
}

// Builtin returns the built-in content for a catalog asset, ignoring overrides.
func (r *Resolver) Builtin(name string) (Resolved, error) {
	if err := r.checkKnown(name); err != nil {
		return Resolved{}, err
	}

	content, location, err := r.theme.Load(name)
	if err != nil {
		if errors.Is(err, ErrAssetNotFound) {
			return Resolved{}, fmt.Errorf("%w: %q in theme %q", ErrBuiltinAssetMissing, name, r.theme.Name())
		}
		return Resolved{}, err
	}

	return Resolved{Name: name, Content: content, Origin: OriginBuiltin, Location: location}, nil
}

// Catalog returns the valid asset names in sorted order.
func (r *Resolver) Catalog() []string {
	return slices.Clone(r.catalog)
}

// IsKnown reports whether name belongs to the catalog.
func (r *Resolver) IsKnown(name string) bool {
	return r.known[name]
}

// Theme returns the built-in theme backing this resolver.
func (r *Resolver) Theme() *Theme {
	return r.theme
}

// Overrides returns the override loaders, highest priority first.
func (r *Resolver) Overrides() []*FilesystemLoader {
	return slices.Clone(r.overrides)
}

// HasOverrides returns true if at least one override directory is in use.
func (r *Resolver) HasOverrides() bool {
	return len(r.overrides) > 0
}

// MissingOverrideDirs returns the override directories that did not exist.
func (r *Resolver) MissingOverrideDirs() []string {
	return slices.Clone(r.missing)
}

func (r *Resolver) checkKnown(name string) error {
	if err := ValidateAssetName(name); err != nil {
		return err
	}
	if !r.known[name] {
		return fmt.Errorf("%w: %q (valid names: %s)", ErrUnknownAsset, name, strings.Join(r.catalog, ", "))
	}
	return nil
}
