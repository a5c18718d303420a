package app

import (
	"context"

	"go-ems/internal/account"
	"go-ems/internal/config"

	"go.uber.org/zap"
)

// SeedSuperAdmin is a no-op when seeding is not configured or a super admin
// is already live.
func SeedSuperAdmin(ctx context.Context, accounts account.Service, cfg config.SuperAdminConfig, logger *zap.Logger) error {
	log := logger.Named("seed")
	if !cfg.Enabled() {
		log.Info("super admin seeding skipped: SUPER_ADMIN_EMAIL or SUPER_ADMIN_PASSWORD not set")
		return nil
	}

	acc, created, err := accounts.EnsureSuperAdmin(ctx, cfg.Name, cfg.Email, cfg.Password)
	if err != nil {
		return err
	}
	if created {
		log.Info("super admin created", zap.String("account_id", acc.ID.String()), zap.String("email", acc.Email))
	} else {
		log.Info("super admin already present")
	}
	return nil
}
