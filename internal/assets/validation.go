package assets

import (
	"fmt"
	"strings"
)

// ValidateAssetName checks that an asset name is a bare file name.
// Returns ErrInvalidAssetName if the name is empty, hidden, contains path
// separators, NUL bytes, or a traversal sequence.
func ValidateAssetName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidAssetName)
	}
	if strings.ContainsAny(name, "/\\\x00") || strings.Contains(name, "..") || strings.HasPrefix(name, ".") {
		return fmt.Errorf("%w: %q", ErrInvalidAssetName, name)
	}
	return nil
}
