// internal/app/bootstrap/db.go
package bootstrap

import (
	"context"
	"fmt"

	"github.com/dalemusser/startupbridge/internal/app/store/activity"
	listingstore "github.com/dalemusser/startupbridge/internal/app/store/listings"
	messagestore "github.com/dalemusser/startupbridge/internal/app/store/messages"
	needstore "github.com/dalemusser/startupbridge/internal/app/store/needs"
	"github.com/dalemusser/startupbridge/internal/app/system/auth"
	"github.com/dalemusser/startupbridge/internal/app/system/ratelimit"
	"github.com/dalemusser/startupbridge/internal/domain/models"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// demoAccounts are the dev sign-in accounts used when admin_accounts is
// blank. ValidateConfig refuses to start outside dev without real ones.
var demoAccounts = []struct {
	email, password, name, role string
}{
	{"admin@startupbridge.com", "admin123", "Admin User", models.RoleAdmin},
	{"super@startupbridge.com", "super123", "Super Admin", models.RoleSuperAdmin},
}

// ConnectDB builds the in-memory stores, the admin identity provider, and
// the login rate limiter.
func ConnectDB(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) (DBDeps, error) {
	identity, err := buildIdentity(appCfg, logger)
	if err != nil {
		return DBDeps{}, err
	}

	deps := DBDeps{
		Listings: listingstore.New(),
		Needs:    needstore.New(),
		Activity: activity.New(appCfg.ActivityCapacity),
		Messages: messagestore.New(appCfg.MessageCapacity),
		Identity: identity,
		LoginLimiter: ratelimit.NewLoginLimiter(ratelimit.LoginConfig{
			IPLimit:    appCfg.LoginIPLimit,
			EmailLimit: appCfg.LoginEmailLimit,
		}),
	}

	logger.Info("in-memory stores ready",
		zap.Int("activity_capacity", appCfg.ActivityCapacity),
		zap.Int("message_capacity", appCfg.MessageCapacity),
		zap.Int("admin_accounts", identity.Len()))
	return deps, nil
}

func buildIdentity(appCfg AppConfig, logger *zap.Logger) (*auth.StaticProvider, error) {
	accounts, err := auth.ParseAccounts(appCfg.AdminAccounts)
	if err != nil {
		return nil, fmt.Errorf("admin accounts: %w", err)
	}

	if len(accounts) == 0 {
		logger.Warn("admin_accounts is blank; using demo admin accounts")
		for i, d := range demoAccounts {
			a, err := auth.HashAccount(i+1, d.email, d.password, d.name, d.role, bcrypt.DefaultCost)
			if err != nil {
				return nil, err
			}
			accounts = append(accounts, a)
		}
	}

	return auth.NewStaticProvider(accounts...)
}

// EnsureSchema checks the facet taxonomy the submission validators and
// browse filters depend on: every list is non-empty and free of
// duplicates.
func EnsureSchema(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	facets := map[string][]string{
		"industries":     models.Industries,
		"business types": models.BusinessTypes,
		"need types":     models.NeedTypes,
		"countries":      models.Countries,
	}
	for name, values := range facets {
		if err := checkFacet(name, values); err != nil {
			logger.Error("taxonomy check failed", zap.Error(err))
			return err
		}
	}
	return nil
}

func checkFacet(name string, values []string) error {
	if len(values) == 0 {
		return fmt.Errorf("taxonomy: %s is empty", name)
	}
	seen := make(map[string]bool, len(values))
	for _, v := range values {
		if v == "" {
			return fmt.Errorf("taxonomy: %s has a blank value", name)
		}
		if seen[v] {
			return fmt.Errorf("taxonomy: %s lists %q twice", name, v)
		}
		seen[v] = true
	}
	return nil
}
