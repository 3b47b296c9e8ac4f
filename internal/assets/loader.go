package assets

// Origin tells where a resolved asset came from.
type Origin string

// Asset origins.
const (
	OriginBuiltin  Origin = "builtin"
	OriginOverride Origin = "override"
)

// AssetLoader defines the contract for one source of theme assets.
// Implementations may load from an embedded theme or a directory on disk.
type AssetLoader interface {
	// Load returns the raw bytes of the named asset and a location
	// describing where they were read from.
	// Returns ErrAssetNotFound if this source has no such file.
	// Returns ErrInvalidAssetName if the name contains invalid characters.
	Load(name string) (content []byte, location string, err error)

	// Origin reports whether this source is built-in or a user override.
	Origin() Origin
}
