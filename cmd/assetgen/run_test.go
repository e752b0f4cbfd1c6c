package main

// Notes:
// - run is exercised end to end with a manifest in a temp dir; main's
//   os.Exit paths are not tested (process-level concerns).

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/MaxRenglet/framework"
)

const runManifest = `
assets:
  - handle: base
    src: css/base.css
    version: "2.0"
    locations: [front]
  - handle: app
    src: js/app.js
    locations: [front]
  - handle: admin
    src: js/admin.js
    locations: [admin]
`

func writeRunManifest(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "assets.yaml")
	if err := os.WriteFile(path, []byte(runManifest), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRunRendersPreview(t *testing.T) {
	t.Parallel()

	flags := &cliFlags{
		manifest: writeRunManifest(t),
		title:    "Preview",
		location: "front",
		root:     ".",
		baseURL:  "/assets",
	}

	var stdout, stderr strings.Builder
	if err := run(flags, &stdout, &stderr); err != nil {
		t.Fatalf("run() error = %v", err)
	}

	out := stdout.String()
	if !strings.Contains(out, `href="/assets/css/base.css?ver=2.0"`) {
		t.Errorf("output missing stylesheet:\n%s", out)
	}
	if !strings.Contains(out, `src="/assets/js/app.js"`) {
		t.Errorf("output missing front script:\n%s", out)
	}
	if strings.Contains(out, "admin.js") {
		t.Errorf("admin asset leaked into front preview:\n%s", out)
	}

	// Footer scripts must land after the content area.
	if strings.Index(out, "<body>") > strings.Index(out, "app.js") {
		t.Errorf("footer script rendered before body:\n%s", out)
	}
}

func TestRunWithContent(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	content := filepath.Join(dir, "index.md")
	if err := os.WriteFile(content, []byte("# Welcome\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	flags := &cliFlags{
		manifest: writeRunManifest(t),
		content:  content,
		title:    "Docs",
		location: "front",
		root:     ".",
		baseURL:  "/assets",
	}

	var stdout, stderr strings.Builder
	if err := run(flags, &stdout, &stderr); err != nil {
		t.Fatalf("run() error = %v", err)
	}

	out := stdout.String()
	if !strings.Contains(out, "<title>Docs</title>") {
		t.Errorf("output missing title:\n%s", out)
	}
	if !strings.Contains(out, "Welcome") {
		t.Errorf("output missing rendered content:\n%s", out)
	}
}

func TestRunWritesOutputFile(t *testing.T) {
	t.Parallel()

	outPath := filepath.Join(t.TempDir(), "preview.html")
	flags := &cliFlags{
		manifest: writeRunManifest(t),
		output:   outPath,
		title:    "Preview",
		location: "front",
		root:     ".",
		baseURL:  "/assets",
		verbose:  true,
	}

	var stdout, stderr strings.Builder
	if err := run(flags, &stdout, &stderr); err != nil {
		t.Fatalf("run() error = %v", err)
	}

	if stdout.Len() != 0 {
		t.Errorf("stdout = %q, want file output only", stdout.String())
	}
	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	if !strings.Contains(string(data), "base.css") {
		t.Error("output file missing asset tags")
	}
	if !strings.Contains(stderr.String(), "registered 3 assets") {
		t.Errorf("stderr = %q, want registration report", stderr.String())
	}
}

func TestRunErrors(t *testing.T) {
	t.Parallel()

	t.Run("unknown location", func(t *testing.T) {
		t.Parallel()
		flags := &cliFlags{manifest: writeRunManifest(t), location: "sidebar"}
		var stdout, stderr strings.Builder
		err := run(flags, &stdout, &stderr)
		if err == nil || !strings.Contains(err.Error(), "unknown location") {
			t.Errorf("error = %v, want unknown location", err)
		}
	})

	t.Run("missing manifest", func(t *testing.T) {
		t.Parallel()
		flags := &cliFlags{
			manifest: filepath.Join(t.TempDir(), "missing.yaml"),
			location: "front",
		}
		var stdout, stderr strings.Builder
		if err := run(flags, &stdout, &stderr); !errors.Is(err, framework.ErrManifestNotFound) {
			t.Errorf("error = %v, want ErrManifestNotFound", err)
		}
	})

	t.Run("missing content", func(t *testing.T) {
		t.Parallel()
		flags := &cliFlags{
			manifest: writeRunManifest(t),
			content:  filepath.Join(t.TempDir(), "missing.md"),
			location: "front",
		}
		var stdout, stderr strings.Builder
		if err := run(flags, &stdout, &stderr); err == nil {
			t.Error("expected error for missing content file")
		}
	})
}
