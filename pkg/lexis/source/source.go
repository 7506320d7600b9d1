package source

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/net/html"

	"github.com/cognicore/lexis/pkg/lexis/internalerr"
)

// Read loads the source text at path. Files with an .html or .htm
// extension have their visible text extracted; everything else is read
// as plain text.
func Read(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		return ReadHTMLFile(path)
	default:
		return ReadFile(path)
	}
}

// ReadFile returns the full contents of a plain-text source. A missing or
// unreadable file surfaces as ErrSourceUnavailable, distinct from a file
// that exists but is empty.
func ReadFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: %s", internalerr.ErrSourceUnavailable, path)
	}
	return string(data), nil
}

// ReadHTMLFile reads an HTML document and extracts its visible text so
// the page can be analyzed as plain prose.
func ReadHTMLFile(path string) (string, error) {
	markup, err := ReadFile(path)
	if err != nil {
		return "", err
	}
	return ExtractText(markup), nil
}

// ExtractText returns the visible text of an HTML document, skipping
// script and style content. If the markup cannot be parsed the raw input
// is returned unchanged.
func ExtractText(markup string) string {
	doc, err := html.Parse(strings.NewReader(markup))
	if err != nil {
		return markup
	}

	var buf strings.Builder
	var extractText func(*html.Node)
	extractText = func(n *html.Node) {
		if n.Type == html.ElementNode && (n.Data == "script" || n.Data == "style") {
			return
		}
		if n.Type == html.TextNode {
			if buf.Len() > 0 {
				buf.WriteByte(' ')
			}
			buf.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extractText(c)
		}
	}
	extractText(doc)

	return strings.TrimSpace(buf.String())
}
