// internal/app/bootstrap/config.go
package bootstrap

import (
	"errors"
	"fmt"
	"time"

	"github.com/dalemusser/startupbridge/internal/app/store/activity"
	messagestore "github.com/dalemusser/startupbridge/internal/app/store/messages"
	"github.com/dalemusser/startupbridge/internal/app/system/auditlog"
	"github.com/dalemusser/startupbridge/internal/app/system/auth"
	"github.com/dalemusser/startupbridge/internal/app/system/timeouts"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// appConfigKeys defines the configuration keys for StartupBridge.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: session_key, submit_delay, etc.
//   - Environment variables: STARTUPBRIDGE_SESSION_KEY, STARTUPBRIDGE_SUBMIT_DELAY, etc.
//   - Command-line flags: --session_key, --submit_delay, etc.
var appConfigKeys = []config.AppKey{
	{Name: "session_key", Default: "dev-only-change-me-please-0123456789ABCDEF", Desc: "Session signing key (must be strong in production)"},
	{Name: "session_name", Default: "startupbridge-admin", Desc: "Admin session cookie name"},
	{Name: "session_domain", Default: "", Desc: "Session cookie domain (blank means current host)"},
	{Name: "session_duration", Default: "15m", Desc: "Admin session lifetime (e.g., 15m, 1h)"},

	// Latency waits
	{Name: "login_delay", Default: "1s", Desc: "Wait before an admin credential check resolves"},
	{Name: "submit_delay", Default: "1500ms", Desc: "Wait before a listing or need submission is stored"},
	{Name: "contact_delay", Default: "1s", Desc: "Wait before a contact message is delivered"},
	{Name: "request_timeout", Default: "30s", Desc: "Deadline for a whole HTTP request"},

	// Catalog
	{Name: "seed_catalog", Default: true, Desc: "Load the demo listings and needs at startup"},

	// Activity and audit logging
	{Name: "activity_log", Default: "all", Desc: "Moderation event logging: 'all' (store+log), 'store', 'log', or 'off'"},
	{Name: "audit_log_auth", Default: "log", Desc: "Auth event logging: 'all', 'store', 'log', or 'off'"},
	{Name: "audit_log_submission", Default: "log", Desc: "Submission event logging: 'all', 'store', 'log', or 'off'"},
	{Name: "activity_capacity", Default: activity.DefaultCapacity, Desc: "Moderation activity records kept in memory"},
	{Name: "message_capacity", Default: messagestore.DefaultCapacity, Desc: "Contact messages kept in memory"},

	// Admin identity
	{Name: "admin_accounts", Default: "", Desc: "Admin allow-list: email|bcrypt-hash|name|role;... (dev seeds demo accounts when blank)"},

	// Login rate limiting
	{Name: "login_ip_limit", Default: 10, Desc: "Admin sign-in attempts per client IP per minute"},
	{Name: "login_email_limit", Default: 5, Desc: "Admin sign-in attempts per email per five minutes"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// WAFFLE's config.LoadWithAppConfig handles:
//   - Loading from .env files
//   - Loading from config.yaml/json/toml files
//   - Reading environment variables (WAFFLE_* for core, STARTUPBRIDGE_* for app)
//   - Parsing command-line flags
//   - Merging with precedence: flags > env > files > defaults
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "STARTUPBRIDGE", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		SessionKey:      appValues.String("session_key"),
		SessionName:     appValues.String("session_name"),
		SessionDomain:   appValues.String("session_domain"),
		SessionDuration: appValues.Duration("session_duration", auth.DefaultDuration),

		// Latency waits
		LoginDelay:     appValues.Duration("login_delay", timeouts.DefaultLoginDelay),
		SubmitDelay:    appValues.Duration("submit_delay", timeouts.DefaultSubmitDelay),
		ContactDelay:   appValues.Duration("contact_delay", timeouts.DefaultContactDelay),
		RequestTimeout: appValues.Duration("request_timeout", timeouts.DefaultRequest),

		// Catalog
		SeedCatalog: appValues.Bool("seed_catalog"),

		// Activity and audit logging
		ActivityLog:        appValues.String("activity_log"),
		AuditLogAuth:       appValues.String("audit_log_auth"),
		AuditLogSubmission: appValues.String("audit_log_submission"),
		ActivityCapacity:   appValues.Int("activity_capacity"),
		MessageCapacity:    appValues.Int("message_capacity"),

		// Admin identity
		AdminAccounts: appValues.String("admin_accounts"),

		// Login rate limiting
		LoginIPLimit:    appValues.Int("login_ip_limit"),
		LoginEmailLimit: appValues.Int("login_email_limit"),
	}

	return coreCfg, appCfg, nil
}

// ValidateConfig performs app-specific config validation.
//
// Return nil to accept the loaded config, or an error to abort startup.
// Outside dev the admin allow-list must be configured explicitly; the demo
// accounts are a dev convenience only.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	if appCfg.SessionKey == "" {
		return errors.New("session_key is required")
	}
	if appCfg.SessionName == "" {
		return errors.New("session_name is required")
	}

	// The session cookie max-age is whole seconds; zero disables it.
	if appCfg.SessionDuration < time.Second {
		return fmt.Errorf("session_duration must be at least 1s, got %s", appCfg.SessionDuration)
	}
	if appCfg.RequestTimeout <= 0 {
		return fmt.Errorf("request_timeout must be positive, got %s", appCfg.RequestTimeout)
	}
	for name, d := range map[string]time.Duration{
		"login_delay":   appCfg.LoginDelay,
		"submit_delay":  appCfg.SubmitDelay,
		"contact_delay": appCfg.ContactDelay,
	} {
		if d < 0 {
			return fmt.Errorf("%s must not be negative, got %s", name, d)
		}
	}

	for name, mode := range map[string]string{
		"activity_log":         appCfg.ActivityLog,
		"audit_log_auth":       appCfg.AuditLogAuth,
		"audit_log_submission": appCfg.AuditLogSubmission,
	} {
		if !auditlog.ValidMode(mode) {
			return fmt.Errorf("%s: unknown mode %q (want all, store, log, or off)", name, mode)
		}
	}

	if appCfg.ActivityCapacity <= 0 || appCfg.MessageCapacity <= 0 {
		return errors.New("activity_capacity and message_capacity must be positive")
	}

	accounts, err := auth.ParseAccounts(appCfg.AdminAccounts)
	if err != nil {
		logger.Error("invalid admin_accounts", zap.Error(err))
		return fmt.Errorf("invalid admin_accounts: %w", err)
	}
	if len(accounts) == 0 && coreCfg.Env != "dev" {
		return fmt.Errorf("admin_accounts must be set when env is %q", coreCfg.Env)
	}

	return nil
}
