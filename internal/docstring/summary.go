package docstring

import (
	"html"
	"strings"

	nethtml "golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Summary returns the first block of a rendered docstring as an HTML
// fragment: the content of the first paragraph, or the first paragraph of
// text of the first element when the docstring has no <p>.
// Empty input yields an empty summary.
func Summary(fragment string) (string, error) {
	if strings.TrimSpace(fragment) == "" {
		return "", nil
	}

	nodes, err := parseFragment(fragment)
	if err != nil {
		return "", err
	}

	for _, n := range nodes {
		if n.Type == nethtml.ElementNode && n.DataAtom == atom.P {
			return renderChildren(n)
		}
	}

	for _, n := range nodes {
		text := strings.TrimSpace(textContent(n))
		if text == "" {
			continue
		}
		first, _, _ := strings.Cut(text, "\n\n")
		return html.EscapeString(strings.Join(strings.Fields(first), " ")), nil
	}
	return "", nil
}

// parseFragment parses content in a body context so no html/body wrapper
// is added.
func parseFragment(content string) ([]*nethtml.Node, error) {
	context := &nethtml.Node{
		Type:     nethtml.ElementNode,
		DataAtom: atom.Body,
		Data:     "body",
	}
	return nethtml.ParseFragment(strings.NewReader(content), context)
}

// renderChildren renders the children of n without n itself.
func renderChildren(n *nethtml.Node) (string, error) {
	var buf strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if err := nethtml.Render(&buf, c); err != nil {
			return "", err
		}
	}
	return strings.TrimSpace(buf.String()), nil
}

func textContent(n *nethtml.Node) string {
	if n.Type == nethtml.TextNode {
		return n.Data
	}
	var b strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		b.WriteString(textContent(c))
	}
	return b.String()
}
