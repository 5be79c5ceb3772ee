// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// Network - these keys shape the HTTP context inherited by every outbound request.
const (
	NetworkUserAgent      = "network.user_agent"
	NetworkTimeout        = "network.timeout"
	NetworkTLSFingerprint = "network.tls_fingerprint"
)

// Stream selection - these keys govern which resolved stream is chosen for playback.
const (
	StreamsDefault = "streams.default"
)

// Iconography - these keys manage the visual rendering of UI symbols.
const (
	IconsVariant = "icons.variant"
)

// Media Playback - these keys maintain the configuration for external video players.
const (
	Player       = "player.default"
	PlayerDetach = "player.detach"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics system.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment - these settings govern the non-interactive application behavior.
const (
	CliColored = "cli.colored"
)
