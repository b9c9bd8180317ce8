// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	adminfeature "github.com/dalemusser/startupbridge/internal/app/features/admin"
	contactfeature "github.com/dalemusser/startupbridge/internal/app/features/contact"
	errorsfeature "github.com/dalemusser/startupbridge/internal/app/features/errors"
	healthfeature "github.com/dalemusser/startupbridge/internal/app/features/health"
	homefeature "github.com/dalemusser/startupbridge/internal/app/features/home"
	listingsfeature "github.com/dalemusser/startupbridge/internal/app/features/listings"
	loginfeature "github.com/dalemusser/startupbridge/internal/app/features/login"
	logoutfeature "github.com/dalemusser/startupbridge/internal/app/features/logout"
	needsfeature "github.com/dalemusser/startupbridge/internal/app/features/needs"
	"github.com/dalemusser/startupbridge/internal/app/system/auditlog"
	"github.com/dalemusser/startupbridge/internal/app/system/auth"
	"github.com/dalemusser/startupbridge/internal/app/system/moderation"
	"github.com/dalemusser/startupbridge/internal/app/system/timeouts"
	"github.com/dalemusser/waffle/config"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, store construction, schema checks,
// and the Startup hook have completed. At this point you have access to:
//   - coreCfg: WAFFLE core configuration (ports, env, timeouts, etc.)
//   - appCfg: app-specific configuration defined in AppConfig
//   - deps: the in-memory stores bundled in DBDeps
//   - logger: the fully configured zap.Logger for this app
//
// StartupBridge applies the admin session middleware and mounts the public
// catalog (home, listings, needs, contact) and the admin console.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	// Secure cookies are enabled in production mode.
	sessionMgr, err := auth.NewSessionManager(auth.Config{
		Key:      appCfg.SessionKey,
		Name:     appCfg.SessionName,
		Domain:   appCfg.SessionDomain,
		Duration: appCfg.SessionDuration,
		Secure:   coreCfg.Env == "prod",
	}, deps.Identity, logger)
	if err != nil {
		logger.Error("session manager init failed", zap.Error(err))
		return nil, err
	}

	errLog := errorsfeature.NewErrorLogger(logger)
	audit := auditlog.New(deps.Activity, logger, auditlog.Config{
		Moderation: appCfg.ActivityLog,
		Auth:       appCfg.AuditLogAuth,
		Submission: appCfg.AuditLogSubmission,
	})
	mod := moderation.New(deps.Listings, audit, logger)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(timeouts.Request()))

	// Resumes the admin session on every request and puts the admin into
	// the request context for auth.CurrentAdmin.
	r.Use(sessionMgr.LoadAdmin)

	// Must be set before mounting so sub-routers inherit them.
	errorsHandler := errorsfeature.NewHandler()
	r.NotFound(errorsHandler.NotFound)
	r.MethodNotAllowed(errorsHandler.MethodNotAllowed)

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.Listings, deps.Needs, deps.Activity, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Public catalog
	homeHandler := homefeature.NewHandler(deps.Listings, deps.Needs, logger)
	r.Mount("/", homefeature.Routes(homeHandler))

	listingsHandler := listingsfeature.NewHandler(deps.Listings, audit, errLog, logger)
	r.Mount("/listings", listingsfeature.Routes(listingsHandler))

	needsHandler := needsfeature.NewHandler(deps.Needs, audit, errLog, logger)
	r.Mount("/needs", needsfeature.Routes(needsHandler))

	contactHandler := contactfeature.NewHandler(deps.Listings, deps.Needs, deps.Messages, audit, errLog, logger)
	r.Mount("/contact", contactfeature.Routes(contactHandler))

	// Admin console
	loginHandler := loginfeature.NewHandler(sessionMgr, deps.LoginLimiter, audit, errLog, logger)
	logoutHandler := logoutfeature.NewHandler(sessionMgr, audit, logger)
	adminHandler := adminfeature.NewHandler(deps.Listings, deps.Activity, deps.Messages, mod, sessionMgr, errLog, logger)
	r.Route("/admin", func(r chi.Router) {
		r.Mount("/login", loginfeature.Routes(loginHandler))
		r.Mount("/logout", logoutfeature.Routes(logoutHandler))
		r.Mount("/", adminfeature.Routes(adminHandler, sessionMgr))
	})

	// Error pages
	r.Get(auth.AccessDeniedPath, errorsHandler.AccessDenied)

	return r, nil
}
