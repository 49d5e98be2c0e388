package pathtree

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/parser"
)

const indentUnit = "  "

// RenderMarkdown renders the tree below root as a markdown outline.
// Anchors become headings, directories bold entries with a trailing slash,
// leaves plain entries. Lines are joined with '\n' and there is no trailing
// newline; an empty tree renders as "".
func RenderMarkdown(root *Node) string {
	var lines []string
	root.Walk(func(node *Node, depth int) bool {
		if depth == 0 {
			lines = append(lines, "# "+node.Name)
			return true
		}
		indent := strings.Repeat(indentUnit, depth-1)
		if node.IsLeaf() {
			lines = append(lines, indent+"- "+node.Name)
			return false
		}
		lines = append(lines, indent+"- **"+node.Name+"/**")
		return true
	})
	return strings.Join(lines, "\n")
}

// RenderHTML converts a rendered outline into an HTML fragment.
func RenderHTML(markdown []byte) ([]byte, error) {
	engine := goldmark.New(
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
	)
	var buf bytes.Buffer
	if err := engine.Convert(markdown, &buf); err != nil {
		return nil, fmt.Errorf("markdown convert: %w", err)
	}
	return buf.Bytes(), nil
}
