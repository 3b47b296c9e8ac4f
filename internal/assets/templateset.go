package assets

import (
	"fmt"
	"path"
	"strings"
)

// Kind distinguishes rendered HTML templates from static files copied as is.
type Kind int

// Template kinds.
const (
	KindUnsupported Kind = iota
	KindHTML
	KindStatic
)

// TemplateExtensions lists the file extensions recognized as templates.
var TemplateExtensions = []string{".html", ".css", ".js"}

func kindOf(name string) Kind {
	switch strings.ToLower(path.Ext(name)) {
	case ".html":
		return KindHTML
	case ".css", ".js":
		return KindStatic
	default:
		return KindUnsupported
	}
}

// Template is a resolved theme file ready for the writer.
// For HTML templates Text has the version marker removed.
type Template struct {
	Name     string
	Text     string
	Version  int
	Kind     Kind
	Origin   Origin
	Location string
}

// NewTemplate builds a Template from resolved content.
// Returns ErrUnsupportedTemplate for names without a template extension.
// A malformed version marker yields a Template with NoVersion and the
// ErrMalformedVersion error, so callers may warn and carry on.
func NewTemplate(res Resolved) (*Template, error) {
	kind := kindOf(res.Name)
	if kind == KindUnsupported {
		return nil, fmt.Errorf("%w: %q (extensions: %s)", ErrUnsupportedTemplate, res.Name, strings.Join(TemplateExtensions, ", "))
	}

	text := string(res.Content)
	version, verr := ReadVersion(res.Name, text)

	t := &Template{
		Name:     res.Name,
		Text:     StripVersion(res.Name, text),
		Version:  version,
		Kind:     kind,
		Origin:   res.Origin,
		Location: res.Location,
	}
	return t, verr
}

// IsEmpty reports whether the template holds nothing but whitespace.
// Empty templates render to nothing.
func (t *Template) IsEmpty() bool {
	return strings.TrimSpace(t.Text) == ""
}

// IsStatic reports whether the template is copied verbatim to the output.
func (t *Template) IsStatic() bool {
	return t.Kind == KindStatic
}
