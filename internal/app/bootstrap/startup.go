// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"
	"fmt"

	"github.com/dalemusser/startupbridge/internal/app/resources"
	"github.com/dalemusser/startupbridge/internal/app/system/timeouts"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// Startup runs one-time application initialization after the stores are
// built, but before the HTTP handler is. It installs the configured
// latency waits and loads the demo catalog into empty stores.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	timeouts.Configure(timeouts.Config{
		Request:      appCfg.RequestTimeout,
		LoginDelay:   appCfg.LoginDelay,
		SubmitDelay:  appCfg.SubmitDelay,
		ContactDelay: appCfg.ContactDelay,
	})
	timeouts.Log(logger)

	if !appCfg.SeedCatalog {
		return nil
	}
	return seedCatalog(deps, logger)
}

func seedCatalog(deps DBDeps, logger *zap.Logger) error {
	catalog, err := resources.LoadCatalog()
	if err != nil {
		return fmt.Errorf("seed catalog: %w", err)
	}

	if deps.Listings.Len() == 0 {
		deps.Listings.Seed(catalog.Listings)
		logger.Info("seeded listings", zap.Int("count", len(catalog.Listings)))
	}
	if deps.Needs.Len() == 0 {
		deps.Needs.Seed(catalog.Needs)
		logger.Info("seeded needs", zap.Int("count", len(catalog.Needs)))
	}
	return nil
}
