package assets

import "log/slog"

// Resolve resolves one asset against the default theme and an optional
// override directory. An empty or missing overrideDir means "no override".
func Resolve(name, overrideDir string) (Resolved, error) {
	r, err := NewResolver(DefaultTheme(), overrideDir)
	if err != nil {
		return Resolved{}, err
	}
	return r.Resolve(name)
}

// DefaultLookup returns a Lookup over the default theme with no overrides.
func DefaultLookup() (*Lookup, error) {
	r, err := NewResolver(DefaultTheme())
	if err != nil {
		return nil, err
	}
	return NewLookup(r, slog.New(slog.DiscardHandler))
}
