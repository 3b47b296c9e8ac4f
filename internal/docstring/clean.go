package docstring

import (
	"math"
	"regexp"
	"strings"
)

var (
	crlfOrCR           = regexp.MustCompile(`\r\n?`)
	multipleBlankLines = regexp.MustCompile(`\n{3,}`)
)

// Clean prepares raw docstring text for rendering. The first line keeps no
// leading whitespace, the common indentation of the following lines is
// removed, leading and trailing blank lines are dropped and runs of blank
// lines are compressed to one.
func Clean(text string) string {
	text = normalizeLineEndings(text)
	text = strings.ReplaceAll(text, "\t", "        ")
	text = dedent(text)
	text = compressBlankLines(text)
	return strings.Trim(text, "\n")
}

// normalizeLineEndings converts \r\n and \r to \n.
func normalizeLineEndings(content string) string {
	return crlfOrCR.ReplaceAllString(content, "\n")
}

// compressBlankLines limits consecutive blank lines to one.
func compressBlankLines(content string) string {
	return multipleBlankLines.ReplaceAllString(content, "\n\n")
}

func dedent(text string) string {
	lines := strings.Split(text, "\n")

	indent := math.MaxInt
	for _, line := range lines[1:] {
		stripped := strings.TrimLeft(line, " ")
		if stripped == "" {
			continue
		}
		indent = min(indent, len(line)-len(stripped))
	}

	lines[0] = strings.TrimSpace(lines[0])
	for i := 1; i < len(lines); i++ {
		line := strings.TrimRight(lines[i], " ")
		if indent != math.MaxInt && len(line) >= indent {
			line = line[indent:]
		}
		lines[i] = line
	}
	return strings.Join(lines, "\n")
}
