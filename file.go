package framework

import (
	"path"
	"path/filepath"
	"strings"
)

// File resolves an asset's filesystem path, public URL, and type.
// Implementations are exclusively owned by the asset they build.
type File interface {
	// Path returns the filesystem path, or "" for external assets.
	Path() string

	// URL returns the public URL used when enqueueing.
	URL() string

	// External reports whether the asset is served from another origin.
	External() bool

	// Type returns the discovered asset type, or "" when unknown.
	Type() AssetType
}

// TypeByExtension discovers an asset type from a path or URL extension.
// Query strings and fragments are ignored. Unknown extensions return "".
func TypeByExtension(name string) AssetType {
	if i := strings.IndexAny(name, "?#"); i != -1 {
		name = name[:i]
	}
	switch strings.ToLower(path.Ext(name)) {
	case ".js", ".mjs":
		return Script
	case ".css":
		return Style
	}
	return ""
}

// Dir maps a document root on disk to the public base URL it is served
// from.
type Dir struct {
	root    string
	baseURL string
}

// NewDir creates a Dir. A trailing slash on baseURL is ignored.
func NewDir(root, baseURL string) *Dir {
	return &Dir{root: root, baseURL: strings.TrimRight(baseURL, "/")}
}

// File resolves a slash-separated relative path, e.g. "js/app.js".
func (d *Dir) File(rel string) *LocalFile {
	rel = strings.TrimLeft(rel, "/")
	return &LocalFile{
		path: filepath.Join(d.root, filepath.FromSlash(rel)),
		url:  d.baseURL + "/" + rel,
	}
}

// LocalFile is an asset file under a Dir's document root.
type LocalFile struct {
	path string
	url  string
}

func (f *LocalFile) Path() string    { return f.path }
func (f *LocalFile) URL() string     { return f.url }
func (f *LocalFile) External() bool  { return false }
func (f *LocalFile) Type() AssetType { return TypeByExtension(f.url) }

// RemoteFile is an asset served from another origin. It has no local
// path; its type is discovered from the URL's extension when possible.
type RemoteFile struct {
	url string
}

// NewRemoteFile wraps an external asset URL.
func NewRemoteFile(url string) *RemoteFile { return &RemoteFile{url: url} }

func (f *RemoteFile) Path() string    { return "" }
func (f *RemoteFile) URL() string     { return f.url }
func (f *RemoteFile) External() bool  { return true }
func (f *RemoteFile) Type() AssetType { return TypeByExtension(f.url) }
