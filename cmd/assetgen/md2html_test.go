package main

import (
	"strings"
	"testing"
)

func TestRenderMarkdown(t *testing.T) {
	t.Parallel()

	out, err := renderMarkdown([]byte("# Title\n\nSome *content*."))
	if err != nil {
		t.Fatalf("renderMarkdown() error = %v", err)
	}
	if !strings.Contains(out, "<h1") || !strings.Contains(out, "<em>content</em>") {
		t.Errorf("output = %q, want heading and emphasis", out)
	}
}

func TestRenderMarkdownHighlighting(t *testing.T) {
	t.Parallel()

	out, err := renderMarkdown([]byte("```go\npackage main\n```\n"))
	if err != nil {
		t.Fatalf("renderMarkdown() error = %v", err)
	}
	// Class-based highlighting so a registered stylesheet can theme it.
	if !strings.Contains(out, "<pre") || !strings.Contains(out, "class=") {
		t.Errorf("output = %q, want class-based highlighted code block", out)
	}
}

func TestRenderMarkdownEscapesRawHTML(t *testing.T) {
	t.Parallel()

	out, err := renderMarkdown([]byte("<script>alert(1)</script>"))
	if err != nil {
		t.Fatalf("renderMarkdown() error = %v", err)
	}
	if strings.Contains(out, "<script>") {
		t.Errorf("output = %q, raw HTML should not pass through", out)
	}
}
