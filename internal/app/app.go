package app

import (
	"context"
	"net/http"
	"time"

	"go-ems/internal/bootstrap"
	"go-ems/internal/config"
	"go-ems/internal/middleware"
	"go-ems/internal/shared/apperror"
	"go-ems/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Deps are the process-wide handles the HTTP layer is built from.
type Deps struct {
	Config config.Config
	DB     *gorm.DB
	Redis  *redis.Client
	Logger *zap.Logger
	Audit  bootstrap.AuditLogger
}

// App is the wired HTTP application.
type App struct {
	Router  *gin.Engine
	modules *modules
}

func BuildApp(d Deps) (*App, error) {
	if d.Logger == nil {
		d.Logger = zap.L()
	}
	if d.Audit == nil {
		d.Audit = bootstrap.NewStdoutAuditLogger(d.Logger)
	}
	if d.Config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	apperror.Init()

	router := gin.New()
	router.Use(
		middleware.ContextLogger(d.Logger),
		middleware.RequestLogger(),
		gin.CustomRecovery(func(c *gin.Context, recovered any) {
			d.Logger.Error("panic recovered", zap.Any("panic", recovered), zap.String("path", c.Request.URL.Path))
			response.Abort(c, http.StatusInternalServerError, apperror.CodeInternalError, apperror.ErrInternal.Message)
		}),
	)
	router.NoRoute(func(c *gin.Context) {
		response.Error(c, http.StatusNotFound, apperror.CodeNotFound, apperror.ErrRouteNotFound.Message, nil)
	})

	api := router.Group("/api")
	api.GET("/health", healthHandler(d.DB))

	m, err := registerModules(api, d)
	if err != nil {
		return nil, err
	}

	return &App{Router: router, modules: m}, nil
}

// SeedSuperAdmin creates the configured super admin when none exists yet.
func (a *App) SeedSuperAdmin(ctx context.Context, cfg config.SuperAdminConfig) error {
	return SeedSuperAdmin(ctx, a.modules.accounts, cfg, zap.L())
}

func healthHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		data := gin.H{"status": "ok", "database": "up"}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		sqlDB, err := db.DB()
		if err == nil {
			err = sqlDB.PingContext(ctx)
		}
		if err != nil {
			data["status"] = "degraded"
			data["database"] = "down"
			c.JSON(http.StatusServiceUnavailable, response.Envelope{
				StatusCode: http.StatusServiceUnavailable,
				Status:     response.StatusFailure,
				Message:    apperror.ErrServiceUnavailable.Message,
				Code:       apperror.CodeServiceUnavailable,
				Data:       data,
			})
			return
		}

		response.Success(c, http.StatusOK, "Server is healthy", data)
	}
}
