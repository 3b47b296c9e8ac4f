package apidoc

import (
	"fmt"
	"strings"

	"github.com/gobwas/glob"
)

// Privacy says how prominently an object is shown.
type Privacy int

const (
	PrivacyHidden  Privacy = iota // not shown at all
	PrivacyPrivate                // shown, de-emphasized
	PrivacyPublic                 // shown normally
)

func (p Privacy) String() string {
	switch p {
	case PrivacyHidden:
		return "HIDDEN"
	case PrivacyPrivate:
		return "PRIVATE"
	case PrivacyPublic:
		return "PUBLIC"
	default:
		return fmt.Sprintf("Privacy(%d)", int(p))
	}
}

// ParsePrivacy accepts HIDDEN, PRIVATE or PUBLIC in any case.
func ParsePrivacy(s string) (Privacy, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "HIDDEN":
		return PrivacyHidden, nil
	case "PRIVATE":
		return PrivacyPrivate, nil
	case "PUBLIC":
		return PrivacyPublic, nil
	default:
		return 0, fmt.Errorf("%w: %w: unknown privacy %q (want HIDDEN, PRIVATE or PUBLIC)",
			ErrConfiguration, ErrInvalidPrivacyRule, s)
	}
}

// PrivacyRule assigns a privacy to the objects whose full name matches Pattern.
type PrivacyRule struct {
	Privacy Privacy
	Pattern string
	matcher glob.Glob
}

// ParsePrivacyRule parses a rule of the form "PRIVACY:PATTERN", for example
// "HIDDEN:pkg.tests.**" or "PUBLIC:pkg._impl.Helper".
//
// In patterns, '*' matches within one dotted segment, '**' across segments,
// and '?' matches a single character.
func ParsePrivacyRule(s string) (PrivacyRule, error) {
	level, pattern, ok := strings.Cut(s, ":")
	if !ok || strings.TrimSpace(pattern) == "" {
		return PrivacyRule{}, fmt.Errorf("%w: %w: %q (want PRIVACY:PATTERN)",
			ErrConfiguration, ErrInvalidPrivacyRule, s)
	}
	p, err := ParsePrivacy(level)
	if err != nil {
		return PrivacyRule{}, err
	}
	return NewPrivacyRule(p, strings.TrimSpace(pattern))
}

// NewPrivacyRule compiles pattern for p.
func NewPrivacyRule(p Privacy, pattern string) (PrivacyRule, error) {
	g, err := glob.Compile(pattern, '.')
	if err != nil {
		return PrivacyRule{}, fmt.Errorf("%w: %w: pattern %q: %v",
			ErrConfiguration, ErrInvalidPrivacyRule, pattern, err)
	}
	return PrivacyRule{Privacy: p, Pattern: pattern, matcher: g}, nil
}

// Match reports whether fullName matches the rule's pattern.
func (r PrivacyRule) Match(fullName string) bool {
	if r.matcher == nil {
		return r.Pattern == fullName
	}
	return r.matcher.Match(fullName)
}

func (r PrivacyRule) String() string {
	return r.Privacy.String() + ":" + r.Pattern
}

// ParsePrivacyRules parses each rule in order.
func ParsePrivacyRules(rules []string) ([]PrivacyRule, error) {
	parsed := make([]PrivacyRule, 0, len(rules))
	for _, s := range rules {
		r, err := ParsePrivacyRule(s)
		if err != nil {
			return nil, err
		}
		parsed = append(parsed, r)
	}
	return parsed, nil
}
