// Package htmltext extracts plain text from HTML pages so they can be
// fed to the tagger and normalization pipeline.
package htmltext

import (
	"strings"

	"golang.org/x/net/html"
)

// Extract parses HTML and returns the concatenated text content with
// whitespace collapsed. Script and style bodies are skipped. On a
// parse failure the input is returned unchanged.
func Extract(s string) string {
	doc, err := html.Parse(strings.NewReader(s))
	if err != nil {
		return s
	}

	var buf strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "script", "style", "noscript":
				return
			}
		}
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
			buf.WriteString(" ")
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	return strings.Join(strings.Fields(buf.String()), " ")
}
