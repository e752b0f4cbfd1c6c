package framework

// Host exposes the platform's enqueue primitives. Calls are synchronous
// and assumed to succeed; the asset performs no retries.
type Host interface {
	// EnqueueScript requests a script tag for the next rendered page.
	EnqueueScript(handle, url string, deps []string, version Version, inFooter bool)

	// EnqueueStyle requests a stylesheet tag for the next rendered page.
	EnqueueStyle(handle, url string, deps []string, version Version, media string)

	// LocalizeScript attaches a named data bundle served before the
	// script runs.
	LocalizeScript(handle, name string, data any)

	// AddInlineScript attaches code rendered before or after the
	// script's own tag.
	AddInlineScript(handle, code string, position Position)

	// AddInlineStyle attaches CSS rendered after the stylesheet's tag.
	AddInlineStyle(handle, code string)
}
