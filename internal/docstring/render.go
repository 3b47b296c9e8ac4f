package docstring

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html"
	"slices"
	"strings"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	gmhtml "github.com/yuin/goldmark/renderer/html"
)

// Docstring formats.
const (
	FormatMarkdown  = "markdown"
	FormatPlaintext = "plaintext"
)

// Formats lists the supported docstring formats.
var Formats = []string{FormatMarkdown, FormatPlaintext}

var (
	ErrUnknownFormat = errors.New("unknown docstring format")
	ErrRender        = errors.New("docstring rendering failed")
)

// Renderer turns cleaned docstring text into an HTML fragment.
type Renderer interface {
	Render(ctx context.Context, text string) (string, error)
}

// New returns the renderer for format. Empty means markdown.
func New(format string) (Renderer, error) {
	switch strings.ToLower(format) {
	case "", FormatMarkdown:
		return NewMarkdownRenderer(), nil
	case FormatPlaintext:
		return PlaintextRenderer{}, nil
	default:
		return nil, fmt.Errorf("%w: %q (want one of %s)", ErrUnknownFormat, format, strings.Join(Formats, ", "))
	}
}

// IsKnownFormat reports whether format names a supported renderer.
func IsKnownFormat(format string) bool {
	return format == "" || slices.Contains(Formats, strings.ToLower(format))
}

// MarkdownRenderer renders docstrings with goldmark (pure Go).
// A single instance is safe for concurrent use.
type MarkdownRenderer struct {
	md goldmark.Markdown
}

// NewMarkdownRenderer creates a MarkdownRenderer with GFM extensions and
// syntax highlighting. Highlighted code uses CSS classes so the theme
// stylesheet controls the colors.
func NewMarkdownRenderer() *MarkdownRenderer {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			extension.Footnote,
			highlighting.NewHighlighting(
				highlighting.WithFormatOptions(
					chromahtml.WithClasses(true),
				),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			gmhtml.WithXHTML(),
			// Raw HTML in docstrings is not trusted: WithUnsafe is not set.
		),
	)
	return &MarkdownRenderer{md: md}
}

// Render converts markdown text to an HTML fragment.
// Goldmark has no context support, so conversion runs in a goroutine
// and the call returns early on cancellation.
func (r *MarkdownRenderer) Render(ctx context.Context, text string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	type result struct {
		html string
		err  error
	}
	done := make(chan result, 1)

	go func() {
		var buf bytes.Buffer
		if err := r.md.Convert([]byte(text), &buf); err != nil {
			done <- result{err: fmt.Errorf("%w: %v", ErrRender, err)}
			return
		}
		done <- result{html: buf.String()}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res := <-done:
		return res.html, res.err
	}
}

// PlaintextRenderer shows docstrings as preformatted, escaped text.
type PlaintextRenderer struct{}

// Render implements Renderer.
func (PlaintextRenderer) Render(ctx context.Context, text string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if text == "" {
		return "", nil
	}
	return `<pre class="plaintext">` + html.EscapeString(text) + "</pre>", nil
}
