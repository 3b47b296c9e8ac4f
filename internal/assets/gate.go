package assets

import (
	"errors"
	"fmt"
)

// WarningKind classifies a version-gate finding.
type WarningKind int

// Version-gate findings.
const (
	// WarningStale: the override declares an older version than the built-in.
	WarningStale WarningKind = iota + 1
	// WarningUnversioned: the override has no usable marker, so the check was skipped.
	WarningUnversioned
)

func (k WarningKind) String() string {
	switch k {
	case WarningStale:
		return "stale"
	case WarningUnversioned:
		return "unversioned"
	default:
		return "unknown"
	}
}

// VersionWarning is an advisory finding about an override template.
// It never blocks rendering.
type VersionWarning struct {
	Asset    string
	Kind     WarningKind
	Override int // NoVersion when the override has no usable marker
	Builtin  int
	Detail   string
}

func (w *VersionWarning) String() string {
	switch w.Kind {
	case WarningStale:
		return fmt.Sprintf("custom template %q is out of date (override version %d, built-in version %d): information might be missing, update it from the built-in theme",
			w.Asset, w.Override, w.Builtin)
	case WarningUnversioned:
		msg := fmt.Sprintf("custom template %q declares no %s marker: version check skipped (built-in version %d)",
			w.Asset, VersionMarker, w.Builtin)
		if w.Detail != "" {
			msg += ": " + w.Detail
		}
		return msg
	default:
		return fmt.Sprintf("custom template %q: version check failed", w.Asset)
	}
}

// CheckVersion compares the marker in overrideContent with the built-in
// version of the same asset. It returns nil when there is nothing to report:
// the override is current or newer, or the built-in carries no version.
func CheckVersion(name, overrideContent string, builtinVersion int) *VersionWarning {
	if builtinVersion == NoVersion {
		return nil
	}

	v, err := ReadVersion(name, overrideContent)
	if err != nil || v == NoVersion {
		w := &VersionWarning{Asset: name, Kind: WarningUnversioned, Override: NoVersion, Builtin: builtinVersion}
		if errors.Is(err, ErrMalformedVersion) {
			w.Detail = err.Error()
		}
		return w
	}

	if v < builtinVersion {
		return &VersionWarning{Asset: name, Kind: WarningStale, Override: v, Builtin: builtinVersion}
	}

	return nil
}
