// Package htmlclean reduces raw page markup to plain text suitable for
// inclusion in a model prompt.
package htmlclean

import (
	"strings"

	"golang.org/x/net/html"
)

// skipped elements contribute page chrome, not content.
var skipped = map[string]bool{
	"script": true,
	"style":  true,
	"nav":    true,
	"footer": true,
	"header": true,
	"aside":  true,
}

// Text strips markup from content and collapses all whitespace runs to
// single spaces. If the markup cannot be parsed the input is returned
// unchanged rather than losing the page context entirely.
func Text(content string) string {
	if content == "" {
		return ""
	}

	root, err := html.Parse(strings.NewReader(content))
	if err != nil {
		return content
	}

	var b strings.Builder
	collect(root, &b)
	return strings.Join(strings.Fields(b.String()), " ")
}

func collect(n *html.Node, b *strings.Builder) {
	if n.Type == html.ElementNode && skipped[n.Data] {
		return
	}
	if n.Type == html.TextNode {
		b.WriteString(n.Data)
		b.WriteByte(' ')
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collect(c, b)
	}
}
