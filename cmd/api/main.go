package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"go-ems/internal/account"
	"go-ems/internal/app"
	"go-ems/internal/bootstrap"
	"go-ems/internal/config"
	"go-ems/internal/shared/apperror"
	"go-ems/internal/shared/connection"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		// logger belum ada, cukup tulis ke stderr
		os.Stderr.WriteString("config: " + err.Error() + "\n")
		os.Exit(1)
	}

	logger, err := bootstrap.NewLogger(cfg.IsProduction())
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	apperror.Init()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := connection.ConnectGORMWithRetry(ctx, cfg.DB.DSN(), cfg.DB.MaxRetries, logger)
	if err != nil {
		logger.Fatal("database connection failed", zap.Error(err))
	}
	if err := account.Migrate(db); err != nil {
		logger.Fatal("migration failed", zap.Error(err))
	}

	rdb, err := connection.ConnectRedisWithRetry(ctx, cfg.RedisAddr, cfg.DB.MaxRetries, logger)
	if err != nil {
		logger.Warn("redis unavailable, rate limiting falls back to in-process counters", zap.Error(err))
		rdb = nil
	}

	auditLogger := bootstrap.NewStdoutAuditLogger(logger)

	// build dependency + routes
	application, err := app.BuildApp(app.Deps{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
		Logger: logger,
		Audit:  auditLogger,
	})
	if err != nil {
		logger.Fatal("build app failed", zap.Error(err))
	}

	if err := application.SeedSuperAdmin(ctx, cfg.SuperAdmin); err != nil {
		logger.Fatal("seed super admin failed", zap.Error(err))
	}

	err = bootstrap.StartHTTPServer(ctx, application.Router, bootstrap.ServerConfig{
		Port:         cfg.HTTP.Port,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
	}, auditLogger)
	if err != nil {
		logger.Fatal("http server stopped", zap.Error(err))
	}
}
