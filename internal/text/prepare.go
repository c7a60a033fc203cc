// Package text turns raw comment bodies into the normalized input the
// mistake checker expects: quoted lines removed and everything lower-cased.
package text

import (
	"strings"

	"golang.org/x/net/html"
)

// QuoteMarker starts a quoted line in a markdown comment body.
const QuoteMarker = ">"

// Prepare drops quoted lines from a markdown body and lower-cases the rest.
// Quoted text belongs to someone else and must not be corrected.
func Prepare(body string) string {
	lines := strings.Split(body, "\n")
	kept := lines[:0]
	for _, line := range lines {
		if strings.HasPrefix(line, QuoteMarker) {
			continue
		}
		kept = append(kept, line)
	}
	return strings.ToLower(strings.Join(kept, "\n"))
}

// PrepareHTML extracts the visible text of an HTML comment body, skipping
// blockquotes and code, and lower-cases it.
func PrepareHTML(body string) (string, error) {
	doc, err := html.Parse(strings.NewReader(body))
	if err != nil {
		return "", err
	}
	return strings.ToLower(visibleText(doc)), nil
}

// visibleText concatenates text nodes, breaking words at block elements,
// and collapses whitespace runs to single spaces.
func visibleText(n *html.Node) string {
	var buf strings.Builder

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		block := false
		if n.Type == html.ElementNode {
			switch n.Data {
			case "blockquote", "script", "style", "code", "pre":
				return
			case "p", "div", "br", "li", "ul", "ol", "tr", "td", "h1", "h2", "h3", "h4", "h5", "h6":
				block = true
			}
		}

		if block {
			buf.WriteString(" ")
		}
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
		if block {
			buf.WriteString(" ")
		}
	}

	walk(n)
	return strings.Join(strings.Fields(buf.String()), " ")
}
