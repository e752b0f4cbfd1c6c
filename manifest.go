package framework

import (
	"fmt"
	"os"
	"strings"

	"github.com/MaxRenglet/framework/internal/fileutil"
	"github.com/MaxRenglet/framework/internal/yamlutil"
)

// Manifest declares assets in YAML. A minimal manifest:
//
//	assets:
//	  - handle: app
//	    src: js/app.js
//	    deps: [jquery]
//	    version: "1.0"
//	    locations: [front]
type Manifest struct {
	Assets []ManifestAsset `yaml:"assets"`
}

// ManifestAsset declares one asset. Src is either a path under the
// registration Dir or an http(s) URL for external assets.
type ManifestAsset struct {
	Handle     string          `yaml:"handle"`
	Src        string          `yaml:"src"`
	Type       string          `yaml:"type"` // optional override: "script" or "style"
	Deps       []string        `yaml:"deps"`
	Version    string          `yaml:"version"`
	NoVersion  bool            `yaml:"noVersion"` // disable cache busting entirely
	Media      string          `yaml:"media"`     // styles only
	InFooter   *bool           `yaml:"inFooter"`  // scripts only
	Locations  []string        `yaml:"locations"` // default: [front]
	Attributes map[string]any  `yaml:"attributes"`
	Localize   []LocalizeEntry `yaml:"localize"`
	Inline     []InlineEntry   `yaml:"inline"`
}

// LocalizeEntry names a data bundle injected before the script runs.
// Entries are a list rather than a map so the manifest preserves
// injection order.
type LocalizeEntry struct {
	Name string `yaml:"name"`
	Data any    `yaml:"data"`
}

// InlineEntry declares inline code and its position relative to the
// asset's tag.
type InlineEntry struct {
	Code     string `yaml:"code"`
	Position string `yaml:"position"` // "before" or "after" (default)
}

// LoadManifest reads and parses a YAML manifest file.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrManifestNotFound, path)
		}
		return nil, fmt.Errorf("reading manifest: %w", err)
	}
	return ParseManifest(data)
}

// ParseManifest parses YAML manifest content. Unknown fields are
// rejected.
func ParseManifest(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yamlutil.UnmarshalStrict(data, &m); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrManifestParse, err)
	}
	return &m, nil
}

// Register constructs and binds every declared asset. Local src paths
// resolve against dir; lifecycle and filter registrations go to reg;
// enqueue calls go to host. Unlike To, an unknown location name in a
// manifest is an error, not a no-op.
func (m *Manifest) Register(dir *Dir, reg Registrars, host Host) ([]*Asset, error) {
	assets := make([]*Asset, 0, len(m.Assets))
	for i := range m.Assets {
		a, err := m.Assets[i].build(dir, reg, host)
		if err != nil {
			return nil, fmt.Errorf("asset %d (%q): %w", i, m.Assets[i].Handle, err)
		}
		assets = append(assets, a)
	}
	return assets, nil
}

// build turns the declaration into a configured, bound Asset.
func (d *ManifestAsset) build(dir *Dir, reg Registrars, host Host) (*Asset, error) {
	if strings.TrimSpace(d.Handle) == "" {
		return nil, ErrMissingHandle
	}
	if d.Src == "" {
		return nil, ErrMissingSrc
	}

	var file File
	if fileutil.IsURL(d.Src) {
		file = NewRemoteFile(d.Src)
	} else {
		file = dir.File(d.Src)
	}

	a := NewAsset(file, reg, host).
		SetHandle(d.Handle).
		SetDependencies(d.Deps...)

	if d.Type != "" {
		t := AssetType(strings.ToLower(d.Type))
		if !t.known() {
			return nil, fmt.Errorf("%w: %q", ErrUnknownType, d.Type)
		}
		a.SetType(t)
	}

	switch {
	case d.NoVersion:
		a.SetVersion(NoVersion())
	case d.Version != "":
		a.SetVersion(VersionTag(d.Version))
	}

	switch {
	case d.Media != "":
		a.SetArgument(Media(d.Media))
	case d.InFooter != nil:
		a.SetArgument(InFooter(*d.InFooter))
	default:
		a.DefaultArgument()
	}

	for _, l := range d.Localize {
		a.Localize(l.Name, l.Data)
	}
	for _, in := range d.Inline {
		pos := After
		if strings.EqualFold(in.Position, string(Before)) {
			pos = Before
		}
		a.Inline(in.Code, pos)
	}

	if len(d.Attributes) > 0 {
		if err := a.Attributes(d.Attributes); err != nil {
			return nil, err
		}
	}

	locations := make([]Location, 0, len(d.Locations))
	for _, name := range d.Locations {
		l, ok := ParseLocation(name)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownLocation, name)
		}
		locations = append(locations, l)
	}
	a.To(locations...)

	return a, nil
}
