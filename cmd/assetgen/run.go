package main

import (
	"fmt"
	"html/template"
	"io"
	"os"

	"github.com/MaxRenglet/framework"
	"github.com/MaxRenglet/framework/internal/fileutil"
	"github.com/MaxRenglet/framework/internal/page"
)

// run loads the manifest, fires the chosen location's lifecycle event,
// and writes the rendered preview page.
func run(flags *cliFlags, stdout, stderr io.Writer) error {
	location, ok := framework.ParseLocation(flags.location)
	if !ok {
		return fmt.Errorf("unknown location %q (want front, admin, login, customizer, or editor)", flags.location)
	}

	manifest, err := framework.LoadManifest(flags.manifest)
	if err != nil {
		return err
	}

	hooks := framework.NewHooks()
	host := framework.NewRenderer(hooks)
	dir := framework.NewDir(flags.root, flags.baseURL)

	assets, err := manifest.Register(dir, hooks, host)
	if err != nil {
		return err
	}
	if flags.verbose {
		fmt.Fprintf(stderr, "registered %d assets\n", len(assets))
	}

	if err := hooks.Do(location.Hook()); err != nil {
		return fmt.Errorf("enqueueing %s assets: %w", location, err)
	}

	var content string
	if flags.content != "" {
		if !fileutil.FileExists(flags.content) {
			return fmt.Errorf("content file not found: %s", flags.content)
		}
		raw, err := os.ReadFile(flags.content)
		if err != nil {
			return fmt.Errorf("reading content: %w", err)
		}
		if content, err = renderMarkdown(raw); err != nil {
			return err
		}
	}

	rendered, err := page.Render(page.Data{
		Title:   flags.title,
		Head:    template.HTML(host.Head()),
		Content: template.HTML(content),
		Footer:  template.HTML(host.Footer()),
	})
	if err != nil {
		return err
	}

	if flags.output == "" {
		_, err = io.WriteString(stdout, rendered)
		return err
	}
	if err := os.WriteFile(flags.output, []byte(rendered), 0o644); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	if flags.verbose {
		fmt.Fprintf(stderr, "wrote %s\n", flags.output)
	}
	return nil
}
