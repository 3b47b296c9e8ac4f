package assets

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
)

// Lookup holds every catalog template resolved once for the whole run.
// It is read-only after NewLookup returns and safe for concurrent use.
type Lookup struct {
	templates map[string]*Template
	names     []string
	warnings  []*VersionWarning
}

// NewLookup resolves all catalog assets through r, parses their versions,
// and runs the version gate on every override. Each finding is logged once
// at warn level and kept for Warnings. Override files that are not part of
// the catalog, or are not templates, are ignored with a warning.
func NewLookup(r *Resolver, logger *slog.Logger) (*Lookup, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	for _, dir := range r.MissingOverrideDirs() {
		logger.Debug("template directory does not exist, using built-in templates", "dir", dir)
	}
	if err := warnStrayFiles(r, logger); err != nil {
		return nil, err
	}

	l := &Lookup{
		templates: make(map[string]*Template, len(r.catalog)),
		names:     r.Catalog(),
	}

	for _, name := range l.names {
		res, err := r.Resolve(name)
		if err != nil {
			return nil, err
		}

		t, err := NewTemplate(res)
		if err != nil && !errors.Is(err, ErrMalformedVersion) {
			return nil, err
		}

		if res.Origin == OriginOverride {
			if w, err := l.gate(r, name, res); err != nil {
				return nil, err
			} else if w != nil {
				logger.Warn(w.String(), "asset", name, "override", w.Override, "builtin", w.Builtin)
				l.warnings = append(l.warnings, w)
			}
			logger.Debug("using custom template", "asset", name, "path", res.Location)
		}

		l.templates[name] = t
	}

	return l, nil
}

func (l *Lookup) gate(r *Resolver, name string, res Resolved) (*VersionWarning, error) {
	builtin, err := r.Builtin(name)
	if err != nil {
		return nil, err
	}
	bv, err := ReadVersion(name, string(builtin.Content))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBuiltinAssetMissing, err)
	}
	return CheckVersion(name, string(res.Content), bv), nil
}

// warnStrayFiles reports override files the lookup will never use.
func warnStrayFiles(r *Resolver, logger *slog.Logger) error {
	for _, o := range r.overrides {
		files, err := o.List()
		if err != nil {
			return err
		}
		for _, f := range files {
			switch {
			case kindOf(f) == KindUnsupported:
				logger.Warn("ignoring file in template directory: not a template",
					"file", f, "dir", o.BasePath(), "extensions", strings.Join(TemplateExtensions, ", "))
			case !r.IsKnown(f):
				logger.Warn("ignoring file in template directory: invalid template filename",
					"file", f, "dir", o.BasePath(), "valid", strings.Join(r.catalog, ", "))
			}
		}
	}
	return nil
}

// Template returns the effective template for name.
// Returns ErrUnknownAsset, listing valid names, if there is none.
func (l *Lookup) Template(name string) (*Template, error) {
	t, ok := l.templates[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (valid names: %s)", ErrUnknownAsset, name, strings.Join(l.names, ", "))
	}
	return t, nil
}

// Templates returns all templates sorted by name.
func (l *Lookup) Templates() []*Template {
	out := make([]*Template, 0, len(l.names))
	for _, name := range l.names {
		out = append(out, l.templates[name])
	}
	return out
}

// Static returns the CSS and JS templates sorted by name.
func (l *Lookup) Static() []*Template {
	var out []*Template
	for _, t := range l.Templates() {
		if t.IsStatic() {
			out = append(out, t)
		}
	}
	return out
}

// Names returns the catalog.
func (l *Lookup) Names() []string {
	return slices.Clone(l.names)
}

// Warnings returns the version-gate findings collected at construction.
func (l *Lookup) Warnings() []*VersionWarning {
	return slices.Clone(l.warnings)
}
