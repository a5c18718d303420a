package app_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go-ems/internal/account"
	"go-ems/internal/app"
	"go-ems/internal/bootstrap"
	"go-ems/internal/config"
	"go-ems/internal/shared/testdb"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type envelope struct {
	StatusCode int             `json:"statusCode"`
	Status     string          `json:"status"`
	Message    string          `json:"message"`
	Code       string          `json:"code"`
	Data       json.RawMessage `json:"data"`
}

func testConfig() config.Config {
	return config.Config{
		Env:                 "test",
		JWTSecret:           "integration-secret",
		TokenTTL:            time.Hour,
		AdminEmailDomain:    "spanadmin.com",
		EmployeeEmailDomain: "spanemployee.com",
		SuperAdmin: config.SuperAdminConfig{
			Name:     "Root",
			Email:    "root@spanadmin.com",
			Password: "RootPass123",
		},
		RateLimit: config.RateLimitConfig{Login: 100, Signup: 100, Window: time.Minute},
	}
}

func newTestApp(t *testing.T) *app.App {
	t.Helper()
	gin.SetMode(gin.TestMode)

	a, err := app.BuildApp(app.Deps{
		Config: testConfig(),
		DB:     testdb.Open(t, account.Migrate),
		Logger: zap.NewNop(),
		Audit:  bootstrap.NopAuditLogger{},
	})
	require.NoError(t, err)
	return a
}

func call(t *testing.T, r http.Handler, method, path, token string, body any) (int, envelope) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	return w.Code, env
}

func login(t *testing.T, r http.Handler, email, password string) string {
	t.Helper()
	code, env := call(t, r, http.MethodPost, "/api/auth/login", "", gin.H{"email": email, "password": password})
	require.Equal(t, http.StatusOK, code, env.Message)

	var data struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	require.NotEmpty(t, data.Token)
	return data.Token
}

func TestRouter_HealthAndNoRoute(t *testing.T) {
	a := newTestApp(t)

	code, env := call(t, a.Router, http.MethodGet, "/api/health", "", nil)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "SUCCESS", env.Status)
	assert.JSONEq(t, `{"status":"ok","database":"up"}`, string(env.Data))

	code, env = call(t, a.Router, http.MethodGet, "/api/nope", "", nil)
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "FAILURE", env.Status)
	assert.Equal(t, "NOT_FOUND", env.Code)
	assert.Equal(t, "Route not found", env.Message)
}

func TestRouter_ProtectedRoutesNeedToken(t *testing.T) {
	a := newTestApp(t)

	code, env := call(t, a.Router, http.MethodGet, "/api/employees", "", nil)
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.Equal(t, "UNAUTHENTICATED", env.Code)
}

func TestSeedSuperAdmin_Idempotent(t *testing.T) {
	a := newTestApp(t)
	ctx := context.Background()
	cfg := testConfig().SuperAdmin

	require.NoError(t, a.SeedSuperAdmin(ctx, cfg))
	require.NoError(t, a.SeedSuperAdmin(ctx, cfg))
	require.NoError(t, a.SeedSuperAdmin(ctx, config.SuperAdminConfig{}))

	login(t, a.Router, cfg.Email, cfg.Password)
}

func TestRouter_EndToEnd(t *testing.T) {
	a := newTestApp(t)
	cfg := testConfig().SuperAdmin
	require.NoError(t, a.SeedSuperAdmin(context.Background(), cfg))

	rootToken := login(t, a.Router, cfg.Email, cfg.Password)

	code, env := call(t, a.Router, http.MethodPost, "/api/admins", rootToken, gin.H{
		"name":       "Alice Admin",
		"email":      "alice@spanadmin.com",
		"password":   "AlicePass1",
		"department": "HR",
	})
	require.Equal(t, http.StatusCreated, code, env.Message)

	adminToken := login(t, a.Router, "alice@spanadmin.com", "AlicePass1")

	code, _ = call(t, a.Router, http.MethodGet, "/api/admins", adminToken, nil)
	assert.Equal(t, http.StatusForbidden, code, "admins cannot manage admins")

	code, env = call(t, a.Router, http.MethodPost, "/api/employees", adminToken, gin.H{
		"name":         "Bob Builder",
		"email":        "bob@spanemployee.com",
		"password":     "BobPass123",
		"employeeCode": "EMP100",
		"salary":       "5000.00",
		"joiningDate":  "2026-02-01",
	})
	require.Equal(t, http.StatusCreated, code, env.Message)

	code, env = call(t, a.Router, http.MethodPost, "/api/employees", adminToken, gin.H{
		"name":         "Bobby Clone",
		"email":        "bobby@spanemployee.com",
		"password":     "BobPass123",
		"employeeCode": "EMP100",
	})
	assert.Equal(t, http.StatusConflict, code)
	assert.Equal(t, "Employee Code already exists", env.Message)

	code, env = call(t, a.Router, http.MethodGet, "/api/employees?search=bob", adminToken, nil)
	require.Equal(t, http.StatusOK, code)
	var list struct {
		Employees []struct {
			Name   string `json:"name"`
			Salary string `json:"salary"`
		} `json:"employees"`
		Total int64 `json:"total"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &list))
	assert.Equal(t, int64(1), list.Total)
	require.Len(t, list.Employees, 1)
	assert.Equal(t, "Bob Builder", list.Employees[0].Name)
	assert.Equal(t, "5000.00", list.Employees[0].Salary)

	employeeToken := login(t, a.Router, "bob@spanemployee.com", "BobPass123")

	code, env = call(t, a.Router, http.MethodGet, "/api/users/me", employeeToken, nil)
	require.Equal(t, http.StatusOK, code)
	var me struct {
		User struct {
			Role         string `json:"role"`
			EmployeeCode string `json:"employeeCode"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &me))
	assert.Equal(t, "EMPLOYEE", me.User.Role)
	assert.Equal(t, "EMP100", me.User.EmployeeCode)

	code, _ = call(t, a.Router, http.MethodGet, "/api/employees", employeeToken, nil)
	assert.Equal(t, http.StatusForbidden, code)

	code, _ = call(t, a.Router, http.MethodDelete, "/api/users/me", employeeToken, nil)
	require.Equal(t, http.StatusOK, code)

	code, env = call(t, a.Router, http.MethodGet, "/api/users/me", employeeToken, nil)
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.Equal(t, "User no longer exists", env.Message)
}

func TestRouter_SignupIgnoresForgedRole(t *testing.T) {
	a := newTestApp(t)

	code, env := call(t, a.Router, http.MethodPost, "/api/auth/signup", "", gin.H{
		"name":     "Mallory",
		"email":    "mallory@spanemployee.com",
		"password": "Mallory123",
		"role":     "SUPER_ADMIN",
	})
	require.Equal(t, http.StatusCreated, code, env.Message)

	var out struct {
		User struct {
			Role string `json:"role"`
		} `json:"user"`
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &out))
	assert.Equal(t, "EMPLOYEE", out.User.Role)
	require.NotEmpty(t, out.Token)

	// a signed-in employee registering someone else also ends up with an employee
	code, env = call(t, a.Router, http.MethodPost, "/api/auth/signup", out.Token, gin.H{
		"name":     "Trent",
		"email":    "trent@spanemployee.com",
		"password": "Trent12345",
		"role":     "admin",
	})
	require.Equal(t, http.StatusCreated, code, env.Message)
	require.NoError(t, json.Unmarshal(env.Data, &out))
	assert.Equal(t, "EMPLOYEE", out.User.Role)
}
