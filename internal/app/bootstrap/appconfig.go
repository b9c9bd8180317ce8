// internal/app/bootstrap/appconfig.go
package bootstrap

import "time"

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// These values come from environment variables, configuration files, or
// command-line flags (loaded in LoadConfig). They represent *app-level*
// configuration, not WAFFLE core configuration.
//
// WAFFLE's CoreConfig handles framework-level settings like:
//   - HTTP/HTTPS ports and TLS configuration
//   - Logging level and format
//   - CORS settings
//   - Request body size limits
//
// The struct is passed to most lifecycle hooks, so any configuration
// needed during startup, request handling, or shutdown lives here.
type AppConfig struct {
	// Admin session cookie
	SessionKey      string        // Secret key for signing session cookies (must be strong in production)
	SessionName     string        // Cookie name (default: startupbridge-admin)
	SessionDomain   string        // Cookie domain (blank means current host)
	SessionDuration time.Duration // Lifetime of an admin session (default: 15m)

	// Latency waits and request deadline
	LoginDelay     time.Duration // Wait before a credential check resolves
	SubmitDelay    time.Duration // Wait before a listing or need submission is stored
	ContactDelay   time.Duration // Wait before a contact message is delivered
	RequestTimeout time.Duration // Deadline for a whole HTTP request

	// Catalog
	SeedCatalog bool // Load the demo listings and needs into empty stores at startup

	// Activity and audit logging: "all", "store", "log", or "off"
	ActivityLog        string // Moderation events
	AuditLogAuth       string // Sign-in and sign-out events
	AuditLogSubmission string // Public submissions and contact messages

	// Bounded in-memory logs
	ActivityCapacity int // Moderation activity records kept (default: 500)
	MessageCapacity  int // Contact messages kept (default: 1000)

	// Admin identity
	AdminAccounts string // email|bcrypt-hash|name|role entries separated by ';'

	// Login rate limiting
	LoginIPLimit    int // Attempts per client IP per minute
	LoginEmailLimit int // Attempts per email per five minutes
}
