package apidoc

import (
	"fmt"
	"strings"

	"github.com/alnah/go-apidoc/internal/docstring"
)

// MemberOrder selects how members are sorted on a page.
type MemberOrder string

const (
	OrderAlphabetical MemberOrder = "alphabetical"
	OrderSource       MemberOrder = "source"
)

// ParseMemberOrder accepts "alphabetical" or "source". Empty means alphabetical.
func ParseMemberOrder(s string) (MemberOrder, error) {
	switch MemberOrder(strings.ToLower(strings.TrimSpace(s))) {
	case "", OrderAlphabetical:
		return OrderAlphabetical, nil
	case OrderSource:
		return OrderSource, nil
	default:
		return "", fmt.Errorf("%w: %w: %q (want alphabetical or source)",
			ErrConfiguration, ErrInvalidMemberOrder, s)
	}
}

// Docstring formats.
const (
	DocFormatMarkdown  = docstring.FormatMarkdown
	DocFormatPlaintext = docstring.FormatPlaintext
)

// Options holds the settings shared by the system and the writer.
type Options struct {
	PrivacyRules      []PrivacyRule
	ClassMemberOrder  MemberOrder
	ModuleMemberOrder MemberOrder
	DocFormat         string
}

// DefaultOptions returns alphabetical ordering, markdown docstrings and no
// privacy rules.
func DefaultOptions() Options {
	return Options{
		ClassMemberOrder:  OrderAlphabetical,
		ModuleMemberOrder: OrderAlphabetical,
		DocFormat:         DocFormatMarkdown,
	}
}

// Validate checks enumerated fields. Empty fields are accepted and mean
// the default.
func (o Options) Validate() error {
	if _, err := ParseMemberOrder(string(o.ClassMemberOrder)); err != nil {
		return fmt.Errorf("class member order: %w", err)
	}
	if _, err := ParseMemberOrder(string(o.ModuleMemberOrder)); err != nil {
		return fmt.Errorf("module member order: %w", err)
	}
	if !docstring.IsKnownFormat(o.DocFormat) {
		return fmt.Errorf("%w: %w: %q (want %s)", ErrConfiguration, ErrInvalidDocFormat,
			o.DocFormat, strings.Join(docstring.Formats, " or "))
	}
	return nil
}
