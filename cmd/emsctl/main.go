package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go-ems/internal/bootstrap"
	"go-ems/internal/config"
	"go-ems/internal/shared/connection"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "emsctl",
		Short:         "Operational tasks for the employee management service",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newMigrateCommand())
	root.AddCommand(newSeedCommand())
	return root
}

// runtime is what every subcommand needs before doing its work.
type runtime struct {
	cfg    config.Config
	logger *zap.Logger
	db     *gorm.DB
}

func setup(ctx context.Context, envFile string) (*runtime, error) {
	cfg, err := config.Load(envFile)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logger, err := bootstrap.NewLogger(cfg.IsProduction())
	if err != nil {
		return nil, err
	}
	zap.ReplaceGlobals(logger)

	db, err := connection.ConnectGORMWithRetry(ctx, cfg.DB.DSN(), cfg.DB.MaxRetries, logger)
	if err != nil {
		return nil, err
	}
	return &runtime{cfg: cfg, logger: logger, db: db}, nil
}

func (r *runtime) close() {
	if sqlDB, err := r.db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	_ = r.logger.Sync()
}
