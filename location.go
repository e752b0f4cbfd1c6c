package framework

import "strings"

// Location identifies where in the host platform an asset loads.
type Location int

// Known locations.
const (
	Front Location = iota
	Admin
	Login
	Customizer
	Editor
)

// Lifecycle event names the host fires for each location.
const (
	HookFront      = "enqueue.front"
	HookAdmin      = "enqueue.admin"
	HookLogin      = "enqueue.login"
	HookCustomizer = "enqueue.customizer"
	HookEditor     = "enqueue.editor"
)

// locationHooks maps each location to its lifecycle event. Read-only
// after package init.
var locationHooks = map[Location]string{
	Front:      HookFront,
	Admin:      HookAdmin,
	Login:      HookLogin,
	Customizer: HookCustomizer,
	Editor:     HookEditor,
}

// String returns the location's name, or "" for values outside the
// known set.
func (l Location) String() string {
	switch l {
	case Front:
		return "front"
	case Admin:
		return "admin"
	case Login:
		return "login"
	case Customizer:
		return "customizer"
	case Editor:
		return "editor"
	}
	return ""
}

// Hook returns the lifecycle event name for l, or "" when l is not a
// known location.
func (l Location) Hook() string { return locationHooks[l] }

// ParseLocation resolves a location name ("front", "admin", "login",
// "customizer", "editor"). Matching is case-insensitive and ignores
// surrounding whitespace; ok is false for unknown names.
func ParseLocation(name string) (Location, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "front":
		return Front, true
	case "admin":
		return Admin, true
	case "login":
		return Login, true
	case "customizer":
		return Customizer, true
	case "editor":
		return Editor, true
	}
	return 0, false
}
