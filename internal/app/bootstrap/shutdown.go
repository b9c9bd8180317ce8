// internal/app/bootstrap/shutdown.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// Shutdown stops the rate limiter janitors and logs what the in-memory
// stores held, since none of it survives the process.
func Shutdown(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	if deps.LoginLimiter != nil {
		deps.LoginLimiter.Close()
	}

	fields := []zap.Field{}
	if deps.Listings != nil {
		stats := deps.Listings.Counts()
		fields = append(fields,
			zap.Int("listings", stats.Total),
			zap.Int("pending", stats.Pending))
	}
	if deps.Needs != nil {
		fields = append(fields, zap.Int("needs", deps.Needs.Len()))
	}
	if deps.Activity != nil {
		fields = append(fields, zap.Int("activities", deps.Activity.Len()))
	}
	if deps.Messages != nil {
		fields = append(fields, zap.Int("messages", deps.Messages.Len()))
	}
	logger.Info("discarding in-memory stores", fields...)
	return nil
}
