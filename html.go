package framework

import (
	"fmt"
	"html"
	"sort"
	"strings"
)

// AttributeFormatter serializes a key/value map into an HTML attribute
// fragment.
type AttributeFormatter interface {
	Attributes(attrs map[string]any) string
}

// TagAttributes is the default AttributeFormatter. Boolean true becomes
// a bare attribute, boolean false is omitted, and any other value is
// escaped and quoted. Keys are sorted so output is deterministic.
type TagAttributes struct{}

// Attributes implements AttributeFormatter.
func (TagAttributes) Attributes(attrs map[string]any) string {
	keys := make([]string, 0, len(attrs))
	for k := range attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		switch v := attrs[k].(type) {
		case bool:
			if v {
				parts = append(parts, k)
			}
		default:
			parts = append(parts, fmt.Sprintf(`%s="%s"`, k, html.EscapeString(fmt.Sprint(v))))
		}
	}
	return strings.Join(parts, " ")
}
