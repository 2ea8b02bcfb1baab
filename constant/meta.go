// Package constant defines immutable application-level identifiers and configuration defaults.
package constant

const (
	// Termtint is the canonical application identifier used for filesystem paths and CLI branding.
	Termtint = "termtint"

	// Version is the current application semantic version string.
	Version = "0.1.0"

	// ProfilesRoot is the default preference-database directory under which
	// terminal profiles are stored, one `:<id>/` subdirectory per profile.
	ProfilesRoot = "/org/gnome/terminal/legacy/profiles:/"
)

// Build metadata, injected at link time via -ldflags.
var (
	BuiltAt  = "unknown"
	BuiltBy  = "unknown"
	Revision = "unknown"
)
