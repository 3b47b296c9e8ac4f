package apidoc

import (
	"cmp"
	"log/slog"

	"github.com/alnah/go-apidoc/internal/assets"
)

// NewTemplateLookup resolves the templates of a built-in theme ("" for the
// default) with overrideDirs layered over it, later directories first.
// Overrides older than the template they replace are logged to logger at
// warn level; a nil logger discards them.
func NewTemplateLookup(theme string, overrideDirs []string, logger *slog.Logger) (*assets.Lookup, error) {
	t, err := assets.LoadTheme(cmp.Or(theme, assets.DefaultThemeName))
	if err != nil {
		return nil, err
	}
	r, err := assets.NewResolver(t, overrideDirs...)
	if err != nil {
		return nil, err
	}
	return assets.NewLookup(r, logger)
}
