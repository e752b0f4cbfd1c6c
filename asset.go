package framework

import (
	"regexp"
	"strings"
)

// Rendering filter names assets hang tag rewrites on.
const (
	FilterScriptTag = "script_tag"
	FilterStyleTag  = "style_tag"
)

// srcHrefPattern anchors a loader-tag rewrite on the tag's src or href
// attribute. Only the first occurrence is rewritten; the text splice is
// intentional and must stay byte-compatible with existing output.
var srcHrefPattern = regexp.MustCompile(`(src|href)=`)

// Asset registers a script or stylesheet with the host platform's
// loading lifecycle. Configure it with the chained setters, then bind
// it with To; the host fires the bound lifecycle events and the asset
// enqueues itself.
//
// An Asset is single-request state owned by one goroutine; it needs no
// teardown.
type Asset struct {
	file    File
	actions ActionRegistrar
	filters FilterRegistrar
	html    AttributeFormatter
	host    Host

	handle   string
	deps     []string
	version  Version
	argument Argument
	typ      AssetType

	localized []localizedData
	inline    []InlineCode
}

// localizedData is a named data bundle injected before the script runs.
type localizedData struct {
	name string
	data any
}

// AssetOption customizes an Asset at construction.
type AssetOption func(*Asset)

// WithFormatter replaces the HTML attribute formatter used by
// Attributes. The default is TagAttributes.
func WithFormatter(f AttributeFormatter) AssetOption {
	return func(a *Asset) { a.html = f }
}

// NewAsset creates an Asset around file. Lifecycle and filter
// registrations go to reg; enqueue calls go to host.
func NewAsset(file File, reg Registrars, host Host, opts ...AssetOption) *Asset {
	a := &Asset{
		file:    file,
		actions: reg,
		filters: reg,
		host:    host,
		html:    TagAttributes{},
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// SetHandle sets the identifier the host knows this asset by. The host
// enforces uniqueness per lifecycle event, not the asset.
func (a *Asset) SetHandle(handle string) *Asset {
	a.handle = handle
	return a
}

// Handle returns the asset's identifier.
func (a *Asset) Handle() string { return a.handle }

// SetDependencies lists the handles this asset depends on. No handles
// means no dependencies.
func (a *Asset) SetDependencies(handles ...string) *Asset {
	a.deps = handles
	return a
}

// SetVersion sets the cache-busting token attached to the asset's URL.
func (a *Asset) SetVersion(v Version) *Asset {
	a.version = v
	return a
}

// SetType overrides the type the file would otherwise discover. Call it
// before DefaultArgument, Attributes, or Enqueue when an override is
// wanted.
func (a *Asset) SetType(t AssetType) *Asset {
	a.typ = t
	return a
}

// Type returns the explicit override when set, otherwise whatever the
// file discovers. "" means unresolved.
func (a *Asset) Type() AssetType {
	if a.typ != "" {
		return a.typ
	}
	return a.file.Type()
}

// SetArgument stores the load argument verbatim.
func (a *Asset) SetArgument(arg Argument) *Asset {
	a.argument = arg
	return a
}

// DefaultArgument applies the type-dependent default load argument:
// Media("all") for styles, InFooter(true) for scripts. An argument
// already set explicitly is kept, and an unknown type leaves the
// argument unset.
func (a *Asset) DefaultArgument() *Asset {
	if a.argument.IsZero() {
		a.argument = defaultArgument(a.Type())
	}
	return a
}

// Localize stores a named data bundle injected before the script runs.
// A later bundle under the same name replaces the earlier one in place;
// distinct names keep their insertion order and are each injected
// independently.
func (a *Asset) Localize(name string, data any) *Asset {
	for i := range a.localized {
		if a.localized[i].name == name {
			a.localized[i].data = data
			return a
		}
	}
	a.localized = append(a.localized, localizedData{name: name, data: data})
	return a
}

// Inline queues code for injection next to the asset's own tag. Entries
// keep their call order. Positions outside Before/After fall back to
// After.
func (a *Asset) Inline(code string, position Position) *Asset {
	if position != Before {
		position = After
	}
	a.inline = append(a.inline, InlineCode{Code: code, Position: position})
	return a
}

// Attributes registers a loader-tag filter that splices extra HTML
// attributes into this asset's rendered tag. The filter rewrites only
// tags whose handle matches the asset's (case-insensitive, trimmed),
// prepending the formatted fragment immediately before the tag's first
// src or href attribute; every other tag passes through unmodified.
//
// Returns ErrTypeRequired when the asset type is unresolved: the type
// picks which rendering filter the rewrite hangs on.
func (a *Asset) Attributes(attrs map[string]any) error {
	t := a.Type()
	if !t.known() {
		return ErrTypeRequired
	}

	name := FilterStyleTag
	if t == Script {
		name = FilterScriptTag
	}

	a.filters.AddFilter(name, func(tag, handle string) string {
		if !strings.EqualFold(strings.TrimSpace(handle), strings.TrimSpace(a.handle)) {
			return tag
		}
		loc := srcHrefPattern.FindStringIndex(tag)
		if loc == nil {
			return tag
		}
		return tag[:loc[0]] + a.html.Attributes(attrs) + " " + tag[loc[0]:]
	})
	return nil
}

// To binds the asset to one or more host locations, registering Enqueue
// against each location's lifecycle event. No locations means Front.
// Locations outside the known set have no lifecycle event and are
// skipped.
func (a *Asset) To(locations ...Location) *Asset {
	if len(locations) == 0 {
		locations = []Location{Front}
	}
	for _, l := range locations {
		hook := l.Hook()
		if hook == "" {
			continue
		}
		a.actions.AddAction(hook, a.Enqueue)
	}
	return a
}

// Enqueue hands the asset to the host's enqueue primitives. Scripts get
// their localized bundles and then their inline code after the enqueue
// call; styles get inline code only, since the host's inline-style
// primitive has no position parameter.
//
// Returns ErrTypeRequired when the asset type is unresolved. An unset
// argument falls back to the type default at this point.
func (a *Asset) Enqueue() error {
	t := a.Type()
	if !t.known() {
		return ErrTypeRequired
	}

	arg := a.argument
	if arg.IsZero() {
		arg = defaultArgument(t)
	}

	if t == Script {
		inFooter, _ := arg.Footer()
		a.host.EnqueueScript(a.handle, a.file.URL(), a.deps, a.version, inFooter)
		for _, l := range a.localized {
			a.host.LocalizeScript(a.handle, l.name, l.data)
		}
		for _, in := range a.inline {
			a.host.AddInlineScript(a.handle, in.Code, in.Position)
		}
		return nil
	}

	media, _ := arg.MediaQuery()
	a.host.EnqueueStyle(a.handle, a.file.URL(), a.deps, a.version, media)
	for _, in := range a.inline {
		a.host.AddInlineStyle(a.handle, in.Code)
	}
	return nil
}
