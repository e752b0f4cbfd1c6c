// Package page renders the HTML shell the preview command wraps content in.
package page

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"
)

//go:embed page.html
var pageHTML string

var tmpl = template.Must(template.New("page").Parse(pageHTML))

// Data fills the page shell. Head, Content, and Footer are trusted
// HTML fragments; the title is escaped.
type Data struct {
	Title   string
	Head    template.HTML
	Content template.HTML
	Footer  template.HTML
}

// Render executes the shell template.
func Render(d Data) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, d); err != nil {
		return "", fmt.Errorf("rendering page: %w", err)
	}
	return buf.String(), nil
}
