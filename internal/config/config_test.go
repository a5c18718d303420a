package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"go-ems/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("DB_USER", "ems")
	t.Setenv("DB_NAME", "ems")

	cfg, err := config.Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "3000", cfg.HTTP.Port)
	assert.Equal(t, 5*time.Second, cfg.HTTP.ReadTimeout)
	assert.Equal(t, time.Hour, cfg.TokenTTL)
	assert.Equal(t, "spanadmin.com", cfg.AdminEmailDomain)
	assert.Equal(t, "spanemployee.com", cfg.EmployeeEmailDomain)
	assert.Equal(t, 5, cfg.RateLimit.Login)
	assert.Equal(t, 3, cfg.RateLimit.Signup)
	assert.Equal(t, 10*time.Minute, cfg.RateLimit.Window)
	assert.Equal(t, 5, cfg.DB.MaxRetries)
	assert.Empty(t, cfg.RedisAddr)
	assert.False(t, cfg.SuperAdmin.Enabled())
	assert.False(t, cfg.IsProduction())
	assert.Equal(t, "host=localhost user=ems password= dbname=ems port=5432 sslmode=disable", cfg.DB.DSN())
}

func TestLoad_EnvFileAndOverrides(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, "test.env")
	content := "JWT_SECRET=from-file\nDB_USER=file-user\nDB_NAME=file-db\nTOKEN_TTL=30m\nSUPER_ADMIN_EMAIL=root@spanadmin.com\nSUPER_ADMIN_PASSWORD=Secret123\n"
	require.NoError(t, os.WriteFile(envFile, []byte(content), 0o600))

	fromFile := []string{"JWT_SECRET", "DB_NAME", "TOKEN_TTL", "SUPER_ADMIN_EMAIL", "SUPER_ADMIN_PASSWORD", "SUPER_ADMIN_NAME"}
	for _, k := range fromFile {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
	t.Cleanup(func() {
		for _, k := range fromFile {
			os.Unsetenv(k)
		}
	})

	// godotenv never overrides a variable that is already set
	t.Setenv("DB_USER", "env-user")
	t.Setenv("ADMIN_EMAIL_DOMAIN", " Corp.Example ")

	cfg, err := config.Load(envFile)
	require.NoError(t, err)

	assert.Equal(t, "from-file", cfg.JWTSecret)
	assert.Equal(t, "env-user", cfg.DB.User)
	assert.Equal(t, 30*time.Minute, cfg.TokenTTL)
	assert.Equal(t, "corp.example", cfg.AdminEmailDomain)
	assert.True(t, cfg.SuperAdmin.Enabled())
	assert.Equal(t, "Super Admin", cfg.SuperAdmin.Name)
}

func TestLoad_MissingRequired(t *testing.T) {
	for _, k := range []string{"JWT_SECRET", "DB_USER", "DB_NAME"} {
		t.Setenv(k, "")
	}

	_, err := config.Load(filepath.Join(t.TempDir(), "none.env"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET is required")
	assert.Contains(t, err.Error(), "DB_USER is required")
	assert.Contains(t, err.Error(), "DB_NAME is required")
}
