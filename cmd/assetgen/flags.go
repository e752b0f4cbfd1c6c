package main

import (
	flag "github.com/spf13/pflag"
)

// cliFlags holds parsed command-line options.
type cliFlags struct {
	manifest string
	content  string
	output   string
	title    string
	location string
	root     string
	baseURL  string
	verbose  bool
	version  bool
}

// parseFlags parses args (including the program name at args[0]).
func parseFlags(args []string) (*cliFlags, error) {
	fs := flag.NewFlagSet("assetgen", flag.ContinueOnError)
	f := &cliFlags{}

	fs.StringVarP(&f.manifest, "manifest", "m", "assets.yaml", "asset manifest file")
	fs.StringVarP(&f.content, "content", "c", "", "markdown content file (optional)")
	fs.StringVarP(&f.output, "output", "o", "", "output file (default: stdout)")
	fs.StringVarP(&f.title, "title", "t", "Preview", "page title")
	fs.StringVarP(&f.location, "location", "l", "front", "location to preview (front, admin, login, customizer, editor)")
	fs.StringVar(&f.root, "root", ".", "document root local asset paths resolve against")
	fs.StringVar(&f.baseURL, "base-url", "/assets", "public base URL for local assets")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "report progress to stderr")
	fs.BoolVar(&f.version, "version", false, "print version and exit")

	if err := fs.Parse(args[1:]); err != nil {
		return nil, err
	}
	return f, nil
}
