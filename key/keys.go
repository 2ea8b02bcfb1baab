// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// Preference Store - these keys select and address the backing preference database.
const (
	StoreBackend = "store.backend"
	StoreRoot    = "store.root"
)

// Iconography - these keys manage the visual rendering of UI symbols.
const (
	IconsVariant = "icons.variant"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics and auditing system.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment - these flags and settings govern general application behavior.
const (
	CliColored      = "cli.colored"
	CliVersionCheck = "cli.version_check"
)
