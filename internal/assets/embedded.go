package assets

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"slices"
	"strings"
)

//go:embed themes
var themes embed.FS

// Built-in theme names.
const (
	BaseThemeName    = "base"
	DefaultThemeName = "classic"
)

// themeParents maps each built-in theme to the theme it falls back to.
// The base theme is the root of every chain and defines the catalog.
var themeParents = map[string]string{
	BaseThemeName:    "",
	DefaultThemeName: BaseThemeName,
}

// Theme is a named, layered set of built-in assets.
// A theme only ships the files it changes; everything else comes from its parent.
// Implements AssetLoader interface.
type Theme struct {
	name   string
	fsys   fs.FS
	parent *Theme
}

// NewTheme creates a theme backed by fsys, falling back to parent when fsys
// lacks a file. A nil parent makes this theme the root of the chain.
func NewTheme(name string, fsys fs.FS, parent *Theme) *Theme {
	return &Theme{name: name, fsys: fsys, parent: parent}
}

// LoadTheme returns the built-in theme with the given name.
// Returns ErrUnknownTheme listing the available themes otherwise.
func LoadTheme(name string) (*Theme, error) {
	parentName, ok := themeParents[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (available: %s)", ErrUnknownTheme, name, strings.Join(ThemeNames(), ", "))
	}

	sub, err := fs.Sub(themes, path.Join("themes", name))
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrUnknownTheme, name, err)
	}

	var parent *Theme
	if parentName != "" {
		parent, err = LoadTheme(parentName)
		if err != nil {
			return nil, err
		}
	}

	return NewTheme(name, sub, parent), nil
}

// DefaultTheme returns the default built-in theme.
func DefaultTheme() *Theme {
	t, err := LoadTheme(DefaultThemeName)
	if err != nil {
		panic(fmt.Sprintf("assets: default theme: %v", err))
	}
	return t
}

// ThemeNames lists the built-in themes in sorted order.
func ThemeNames() []string {
	names := make([]string, 0, len(themeParents))
	for name := range themeParents {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Name returns the theme name.
func (t *Theme) Name() string {
	return t.name
}

// Chain returns the theme names from this theme down to the root.
func (t *Theme) Chain() []string {
	var chain []string
	for cur := t; cur != nil; cur = cur.parent {
		chain = append(chain, cur.name)
	}
	return chain
}

// Load reads an asset from this theme or the nearest parent that has it.
func (t *Theme) Load(name string) ([]byte, string, error) {
	if err := ValidateAssetName(name); err != nil {
		return nil, "", err
	}

	for cur := t; cur != nil; cur = cur.parent {
		content, err := fs.ReadFile(cur.fsys, name)
		if err == nil {
			return content, "theme:" + cur.name + "/" + name, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, "", fmt.Errorf("%w: %s: %v", ErrAssetRead, name, err)
		}
	}

	return nil, "", fmt.Errorf("%w: %q in theme %q", ErrAssetNotFound, name, t.name)
}

// Origin implements AssetLoader.
func (t *Theme) Origin() Origin {
	return OriginBuiltin
}

// Catalog lists the asset names defined by the root of the theme chain.
// Files in derived themes that the root does not define are not part of it.
func (t *Theme) Catalog() ([]string, error) {
	root := t
	for root.parent != nil {
		root = root.parent
	}

	entries, err := fs.ReadDir(root.fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("%w: listing theme %q: %v", ErrAssetRead, root.name, err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || ValidateAssetName(e.Name()) != nil {
			continue
		}
		names = append(names, e.Name())
	}
	slices.Sort(names)
	return names, nil
}

// Compile-time interface check.
var _ AssetLoader = (*Theme)(nil)
