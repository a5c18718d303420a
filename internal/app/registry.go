package app

import (
	"go-ems/internal/account"
	"go-ems/internal/admin"
	"go-ems/internal/auth"
	"go-ems/internal/credential"
	"go-ems/internal/employee"
	"go-ems/internal/middleware"
	"go-ems/internal/rbac"
	"go-ems/internal/rbac/infra"
	"go-ems/internal/user"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

type modules struct {
	accounts account.Service
}

func registerModules(api *gin.RouterGroup, d Deps) (*modules, error) {
	cfg := d.Config
	logger := d.Logger

	// --- Credential & policy ---
	passwords := credential.NewPasswordCodec()
	tokens, err := credential.NewTokenCodec(cfg.JWTSecret, cfg.TokenTTL)
	if err != nil {
		return nil, err
	}

	enforcer, err := infra.NewEnforcer()
	if err != nil {
		return nil, err
	}
	policy, err := rbac.NewService(enforcer)
	if err != nil {
		return nil, err
	}

	// --- Repositories ---
	accountRepo := account.NewRepository(d.DB)
	adminProfileRepo := account.NewAdminProfileRepository(d.DB)
	employeeProfileRepo := account.NewEmployeeProfileRepository(d.DB)
	employeeRepo := employee.NewRepository(d.DB)
	adminRepo := admin.NewRepository(d.DB)
	userRepo := user.NewRepository(d.DB)

	// --- Services ---
	accountService := account.NewService(account.Deps{
		DB:        d.DB,
		Accounts:  accountRepo,
		Admins:    adminProfileRepo,
		Employees: employeeProfileRepo,
		Policy:    policy,
		Passwords: passwords,
		Tokens:    tokens,
		Audit:     d.Audit,
	}, account.Config{
		AdminEmailDomain:    cfg.AdminEmailDomain,
		EmployeeEmailDomain: cfg.EmployeeEmailDomain,
	}, logger)
	authService := auth.NewService(accountRepo, accountService, passwords, tokens, logger)
	userService := user.NewService(userRepo, accountService, logger)
	employeeService := employee.NewService(employeeRepo, accountService, logger)
	adminService := admin.NewService(adminRepo, accountService, logger)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService, logger)
	userHandler := user.NewHandler(userService, logger)
	employeeHandler := employee.NewHandler(employeeService, logger)
	adminHandler := admin.NewHandler(adminService, logger)

	// --- Middleware ---
	// a nil *redis.Client must stay a nil interface for NewLimiter
	var limiterStore redis.Cmdable
	if d.Redis != nil {
		limiterStore = d.Redis
	}
	authenticate := middleware.Authenticate(tokens, accountRepo)
	guards := auth.Guards{
		Authenticate:         authenticate,
		OptionalAuthenticate: middleware.OptionalAuthenticate(tokens, accountRepo),
		LoginLimit: middleware.RateLimitByIPAndEmail(
			middleware.NewLimiter(limiterStore, "login", cfg.RateLimit.Login, cfg.RateLimit.Window),
			middleware.LoginLimitMessage,
		),
		SignupLimit: middleware.RateLimitByIPAndEmail(
			middleware.NewLimiter(limiterStore, "signup", cfg.RateLimit.Signup, cfg.RateLimit.Window),
			middleware.SignupLimitMessage,
		),
	}

	// --- Routes Registration ---
	auth.RegisterRoutes(api, authHandler, guards)
	user.RegisterRoutes(api, userHandler, authenticate)
	employee.RegisterRoutes(api, employeeHandler, authenticate)
	admin.RegisterRoutes(api, adminHandler, authenticate)

	return &modules{accounts: accountService}, nil
}
