package framework

import (
	"html"
	"net/url"
	"strings"

	json "github.com/goccy/go-json"
)

// FilterApplier runs registered rendering filters over a tag. *Hooks
// implements it.
type FilterApplier interface {
	Apply(name, tag, handle string) string
}

// Renderer is the built-in Host: it records enqueue calls and renders
// the HTML tags a page needs. Loader-tag filters are applied through
// the given FilterApplier. Stylesheets and head scripts come out of
// Head; scripts flagged for the footer come out of Footer.
//
// A handle enqueued twice within the same kind is rendered once; the
// first registration wins. Dependencies are rendered as-is in enqueue
// order, never resolved across assets.
type Renderer struct {
	filters FilterApplier
	scripts []*scriptRegistration
	styles  []*styleRegistration
	seen    map[string]bool
}

type scriptRegistration struct {
	handle    string
	url       string
	version   Version
	inFooter  bool
	localized []localizedData
	inline    []InlineCode
}

type styleRegistration struct {
	handle  string
	url     string
	version Version
	media   string
	inline  []string
}

// NewRenderer creates a Renderer. filters may be nil, disabling tag
// rewriting.
func NewRenderer(filters FilterApplier) *Renderer {
	return &Renderer{filters: filters, seen: make(map[string]bool)}
}

// EnqueueScript implements Host.
func (r *Renderer) EnqueueScript(handle, url string, deps []string, version Version, inFooter bool) {
	if r.seen["script:"+handle] {
		return
	}
	r.seen["script:"+handle] = true
	r.scripts = append(r.scripts, &scriptRegistration{
		handle:   handle,
		url:      url,
		version:  version,
		inFooter: inFooter,
	})
}

// EnqueueStyle implements Host.
func (r *Renderer) EnqueueStyle(handle, url string, deps []string, version Version, media string) {
	if r.seen["style:"+handle] {
		return
	}
	r.seen["style:"+handle] = true
	if media == "" {
		media = "all"
	}
	r.styles = append(r.styles, &styleRegistration{
		handle:  handle,
		url:     url,
		version: version,
		media:   media,
	})
}

// LocalizeScript implements Host. Bundles for handles that were never
// enqueued are dropped.
func (r *Renderer) LocalizeScript(handle, name string, data any) {
	if s := r.script(handle); s != nil {
		s.localized = append(s.localized, localizedData{name: name, data: data})
	}
}

// AddInlineScript implements Host. Code for handles that were never
// enqueued is dropped.
func (r *Renderer) AddInlineScript(handle, code string, position Position) {
	if s := r.script(handle); s != nil {
		s.inline = append(s.inline, InlineCode{Code: code, Position: position})
	}
}

// AddInlineStyle implements Host. Code for handles that were never
// enqueued is dropped.
func (r *Renderer) AddInlineStyle(handle, code string) {
	if s := r.style(handle); s != nil {
		s.inline = append(s.inline, code)
	}
}

func (r *Renderer) script(handle string) *scriptRegistration {
	for _, s := range r.scripts {
		if s.handle == handle {
			return s
		}
	}
	return nil
}

func (r *Renderer) style(handle string) *styleRegistration {
	for _, s := range r.styles {
		if s.handle == handle {
			return s
		}
	}
	return nil
}

// Head renders stylesheet tags followed by head script tags.
func (r *Renderer) Head() string {
	var b strings.Builder
	for _, s := range r.styles {
		r.renderStyle(&b, s)
	}
	for _, s := range r.scripts {
		if !s.inFooter {
			r.renderScript(&b, s)
		}
	}
	return b.String()
}

// Footer renders the tags for footer scripts.
func (r *Renderer) Footer() string {
	var b strings.Builder
	for _, s := range r.scripts {
		if s.inFooter {
			r.renderScript(&b, s)
		}
	}
	return b.String()
}

func (r *Renderer) renderStyle(b *strings.Builder, s *styleRegistration) {
	tag := `<link rel="stylesheet" id="` + html.EscapeString(s.handle) + `-css" href="` +
		html.EscapeString(withVersion(s.url, s.version)) + `" media="` +
		html.EscapeString(s.media) + "\" />\n"
	b.WriteString(r.apply(FilterStyleTag, tag, s.handle))

	for _, code := range s.inline {
		b.WriteString(`<style id="` + html.EscapeString(s.handle) + "-inline-css\">\n")
		b.WriteString(code)
		b.WriteString("\n</style>\n")
	}
}

func (r *Renderer) renderScript(b *strings.Builder, s *scriptRegistration) {
	for _, l := range s.localized {
		// Bundles that fail to serialize are dropped; the host
		// primitives have no error surface.
		data, err := json.Marshal(l.data)
		if err != nil {
			continue
		}
		b.WriteString(`<script id="` + html.EscapeString(s.handle) + "-js-extra\">\n")
		b.WriteString("var " + l.name + " = " + string(data) + ";\n")
		b.WriteString("</script>\n")
	}

	for _, in := range s.inline {
		if in.Position == Before {
			r.renderInlineScript(b, s.handle, in)
		}
	}

	tag := `<script src="` + html.EscapeString(withVersion(s.url, s.version)) + `" id="` +
		html.EscapeString(s.handle) + "-js\"></script>\n"
	b.WriteString(r.apply(FilterScriptTag, tag, s.handle))

	for _, in := range s.inline {
		if in.Position == After {
			r.renderInlineScript(b, s.handle, in)
		}
	}
}

func (r *Renderer) renderInlineScript(b *strings.Builder, handle string, in InlineCode) {
	b.WriteString(`<script id="` + html.EscapeString(handle) + "-js-" + string(in.Position) + "\">\n")
	b.WriteString(in.Code)
	b.WriteString("\n</script>\n")
}

func (r *Renderer) apply(name, tag, handle string) string {
	if r.filters == nil {
		return tag
	}
	return r.filters.Apply(name, tag, handle)
}

// withVersion appends the cache-busting query parameter when an
// explicit version is set.
func withVersion(u string, v Version) string {
	tag, ok := v.Tag()
	if !ok {
		return u
	}
	sep := "?"
	if strings.Contains(u, "?") {
		sep = "&"
	}
	return u + sep + "ver=" + url.QueryEscape(tag)
}
