package framework

// AssetType selects the enqueue branch and the loader-tag filter an
// asset uses.
type AssetType string

// Asset type constants.
const (
	Script AssetType = "script"
	Style  AssetType = "style"
)

// known reports whether t is a type the enqueue dispatch understands.
func (t AssetType) known() bool { return t == Script || t == Style }

// Position places inline code relative to the asset's own tag.
type Position string

// Inline code positions.
const (
	Before Position = "before"
	After  Position = "after"
)

// InlineCode is a snippet injected adjacent to the asset's tag.
type InlineCode struct {
	Code     string
	Position Position
}

type versionKind int

const (
	versionUnset versionKind = iota
	versionExplicit
	versionDisabled
)

// Version is the cache-busting token appended to an asset's URL.
// The zero value means no version was configured.
type Version struct {
	kind  versionKind
	value string
}

// VersionTag returns an explicit version.
func VersionTag(value string) Version {
	return Version{kind: versionExplicit, value: value}
}

// NoVersion returns a version that explicitly disables cache busting.
func NoVersion() Version {
	return Version{kind: versionDisabled}
}

// Tag returns the version string and whether an explicit version was set.
func (v Version) Tag() (string, bool) {
	return v.value, v.kind == versionExplicit
}

// IsZero reports whether no version was configured.
func (v Version) IsZero() bool { return v.kind == versionUnset }

type argumentKind int

const (
	argumentUnset argumentKind = iota
	argumentMedia
	argumentInFooter
)

// Argument is the type-dependent load argument: a media query for
// styles, an in-footer flag for scripts. The zero value means unset.
type Argument struct {
	kind     argumentKind
	media    string
	inFooter bool
}

// Media returns a style load argument carrying a media query.
func Media(query string) Argument {
	return Argument{kind: argumentMedia, media: query}
}

// InFooter returns a script load argument; true moves the tag to the
// page footer.
func InFooter(v bool) Argument {
	return Argument{kind: argumentInFooter, inFooter: v}
}

// IsZero reports whether no argument was configured.
func (a Argument) IsZero() bool { return a.kind == argumentUnset }

// MediaQuery returns the media query and whether a is a media argument.
func (a Argument) MediaQuery() (string, bool) {
	return a.media, a.kind == argumentMedia
}

// Footer returns the in-footer flag and whether a is a script argument.
func (a Argument) Footer() (bool, bool) {
	return a.inFooter, a.kind == argumentInFooter
}

// defaultArgument returns the default load argument for t: "all" media
// for styles, footer placement for scripts. Unknown types get no
// default; callers must not rely on one.
func defaultArgument(t AssetType) Argument {
	switch t {
	case Style:
		return Media("all")
	case Script:
		return InFooter(true)
	}
	return Argument{}
}
