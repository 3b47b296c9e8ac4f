package assets

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// VersionMarker is the token carrying a template's version.
//
// HTML templates declare it as a meta tag:
//
//	<meta name="apidoc-template-version" content="3" />
//
// CSS and JS templates declare it as a block comment:
//
//	/* apidoc-template-version: 3 */
const VersionMarker = "apidoc-template-version"

// NoVersion is the version of a template without a marker.
const NoVersion = -1

var (
	htmlMarkerRe   = regexp.MustCompile(`(?is)[ \t]*<meta(?:\s[^>]*)?\sname\s*=\s*["']` + VersionMarker + `["'][^>]*>[ \t]*\r?\n?`)
	htmlContentRe  = regexp.MustCompile(`(?is)\scontent\s*=\s*["']([^"']*)["']`)
	staticMarkerRe = regexp.MustCompile(`(?s)/\*\s*` + VersionMarker + `\s*:?\s*(.*?)\s*\*/`)
)

// versionMarker is the first marker found in a template.
type versionMarker struct {
	found      bool
	hasValue   bool
	raw        string
	start, end int
}

func findMarker(name, content string) versionMarker {
	if kindOf(name) == KindHTML {
		loc := htmlMarkerRe.FindStringIndex(content)
		if loc == nil {
			return versionMarker{}
		}
		m := versionMarker{found: true, start: loc[0], end: loc[1]}
		if sub := htmlContentRe.FindStringSubmatch(content[loc[0]:loc[1]]); sub != nil {
			m.hasValue = true
			m.raw = strings.TrimSpace(sub[1])
		}
		return m
	}

	loc := staticMarkerRe.FindStringSubmatchIndex(content)
	if loc == nil {
		return versionMarker{}
	}
	return versionMarker{
		found:    true,
		hasValue: true,
		raw:      strings.TrimSpace(content[loc[2]:loc[3]]),
		start:    loc[0],
		end:      loc[1],
	}
}

// ReadVersion returns the version declared in content, or NoVersion if the
// template carries no marker. A marker without a value, or whose value is not
// an integer, returns NoVersion and ErrMalformedVersion.
func ReadVersion(name, content string) (int, error) {
	m := findMarker(name, content)
	if !m.found {
		return NoVersion, nil
	}
	if !m.hasValue {
		return NoVersion, fmt.Errorf("%w: %q: the content attribute is missing", ErrMalformedVersion, name)
	}
	v, err := strconv.Atoi(m.raw)
	if err != nil || v < 0 {
		return NoVersion, fmt.Errorf("%w: %q: %q is not a non-negative integer", ErrMalformedVersion, name, m.raw)
	}
	return v, nil
}

// StripVersion removes the version meta tag from an HTML template.
// CSS and JS content is returned unchanged: the comment is harmless there.
func StripVersion(name, content string) string {
	if kindOf(name) != KindHTML {
		return content
	}
	m := findMarker(name, content)
	if !m.found {
		return content
	}
	return content[:m.start] + content[m.end:]
}
