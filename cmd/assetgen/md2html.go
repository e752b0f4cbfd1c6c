package main

import (
	"bytes"
	"fmt"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

// markdown converts preview content with GFM extensions and syntax
// highlighting. Highlighted code uses CSS classes so a registered
// stylesheet can theme it.
var markdown = goldmark.New(
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
		html.WithXHTML(),
	),
)

// renderMarkdown converts markdown content to an HTML fragment for the
// page body. The page shell supplies the surrounding document.
func renderMarkdown(content []byte) (string, error) {
	var buf bytes.Buffer
	if err := markdown.Convert(content, &buf); err != nil {
		return "", fmt.Errorf("converting content: %w", err)
	}
	return buf.String(), nil
}
