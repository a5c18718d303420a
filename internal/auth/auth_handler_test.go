package auth_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-ems/internal/account"
	accounterrors "go-ems/internal/account/errors"
	"go-ems/internal/auth"
	autherrors "go-ems/internal/auth/errors"
	"go-ems/internal/domain"
	"go-ems/internal/middleware"
	"go-ems/internal/shared/apperror"
	"go-ems/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAuthService struct {
	LoginFn  func(ctx context.Context, req auth.LoginRequest) (auth.AuthResponse, error)
	SignupFn func(ctx context.Context, actor *account.Account, req auth.SignupRequest) (auth.AuthResponse, error)
}

func (f *fakeAuthService) Login(ctx context.Context, req auth.LoginRequest) (auth.AuthResponse, error) {
	return f.LoginFn(ctx, req)
}

func (f *fakeAuthService) Signup(ctx context.Context, actor *account.Account, req auth.SignupRequest) (auth.AuthResponse, error) {
	return f.SignupFn(ctx, actor, req)
}

// countingLimiter allows the first n calls per key.
type countingLimiter struct {
	n    int
	seen map[string]int
}

func (l *countingLimiter) Allow(_ context.Context, key string) (bool, error) {
	if l.seen == nil {
		l.seen = map[string]int{}
	}
	l.seen[key]++
	return l.seen[key] <= l.n, nil
}

func newAuthRouter(svc auth.Service, actor *account.Account, loginLimit int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	apperror.Init()
	r := gin.New()

	attach := func(c *gin.Context) {
		if actor != nil {
			middleware.SetCurrentAccount(c, actor)
		}
		c.Next()
	}
	auth.RegisterRoutes(r.Group("/api"), auth.NewHandler(svc), auth.Guards{
		Authenticate:         attach,
		OptionalAuthenticate: attach,
		LoginLimit:           middleware.RateLimitByIPAndEmail(&countingLimiter{n: loginLimit}, middleware.LoginLimitMessage),
		SignupLimit:          middleware.RateLimitByIPAndEmail(&countingLimiter{n: 100}, middleware.SignupLimitMessage),
	})
	return r
}

func postJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) response.Envelope {
	t.Helper()
	var env response.Envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

func TestAuthHandler_Login(t *testing.T) {
	svc := &fakeAuthService{
		LoginFn: func(_ context.Context, req auth.LoginRequest) (auth.AuthResponse, error) {
			if req.Password != "Secret123" {
				return auth.AuthResponse{}, autherrors.ErrInvalidCredentials
			}
			return auth.AuthResponse{User: auth.UserResponse{Email: req.Email}, Token: "tok"}, nil
		},
	}

	t.Run("success", func(t *testing.T) {
		w := postJSON(newAuthRouter(svc, nil, 5), "/api/auth/login", `{"email":"jane@spanemployee.com","password":"Secret123"}`)

		require.Equal(t, http.StatusOK, w.Code)
		var body struct {
			Message string            `json:"message"`
			Data    auth.AuthResponse `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "Login successful", body.Message)
		assert.Equal(t, "tok", body.Data.Token)
	})

	t.Run("bad credentials", func(t *testing.T) {
		w := postJSON(newAuthRouter(svc, nil, 5), "/api/auth/login", `{"email":"jane@spanemployee.com","password":"nope"}`)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "Invalid credentials", decode(t, w).Message)
	})

	t.Run("missing email", func(t *testing.T) {
		w := postJSON(newAuthRouter(svc, nil, 5), "/api/auth/login", `{"password":"Secret123"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Email is required", decode(t, w).Message)
	})

	t.Run("rate limited per email", func(t *testing.T) {
		r := newAuthRouter(svc, nil, 2)
		body := `{"email":"jane@spanemployee.com","password":"nope"}`

		for i := 0; i < 2; i++ {
			assert.Equal(t, http.StatusUnauthorized, postJSON(r, "/api/auth/login", body).Code)
		}
		w := postJSON(r, "/api/auth/login", body)
		require.Equal(t, http.StatusTooManyRequests, w.Code)
		assert.Equal(t, middleware.LoginLimitMessage, decode(t, w).Message)

		other := postJSON(r, "/api/auth/login", `{"email":"other@spanemployee.com","password":"Secret123"}`)
		assert.Equal(t, http.StatusOK, other.Code)
	})
}

func TestAuthHandler_Signup(t *testing.T) {
	signup := func(role domain.Role, err error) *fakeAuthService {
		return &fakeAuthService{
			SignupFn: func(_ context.Context, _ *account.Account, req auth.SignupRequest) (auth.AuthResponse, error) {
				if err != nil {
					return auth.AuthResponse{}, err
				}
				return auth.AuthResponse{User: auth.UserResponse{Name: req.Name, Role: role.String()}}, nil
			},
		}
	}
	body := `{"name":"Jane","email":"jane@spanemployee.com","password":"Secret123"}`

	t.Run("employee", func(t *testing.T) {
		w := postJSON(newAuthRouter(signup(domain.RoleEmployee, nil), nil, 5), "/api/auth/signup", body)
		require.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, "User registered successfully", decode(t, w).Message)
	})

	t.Run("admin created by super admin", func(t *testing.T) {
		actor := &account.Account{ID: uuid.New(), Role: domain.RoleSuperAdmin}
		w := postJSON(newAuthRouter(signup(domain.RoleAdmin, nil), actor, 5), "/api/auth/signup", body)
		require.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, "Admin created successfully", decode(t, w).Message)
	})

	t.Run("role in body is left to the service", func(t *testing.T) {
		var got string
		svc := &fakeAuthService{
			SignupFn: func(_ context.Context, _ *account.Account, req auth.SignupRequest) (auth.AuthResponse, error) {
				got = req.Role
				return auth.AuthResponse{User: auth.UserResponse{Role: domain.RoleEmployee.String()}}, nil
			},
		}
		for _, role := range []string{"SUPER_ADMIN", "employee", "janitor"} {
			w := postJSON(newAuthRouter(svc, nil, 5), "/api/auth/signup",
				`{"name":"Jane","email":"jane@spanemployee.com","password":"Secret123","role":"`+role+`"}`)
			require.Equal(t, http.StatusCreated, w.Code, role)
			assert.Equal(t, role, got)
			assert.Equal(t, "User registered successfully", decode(t, w).Message)
		}
	})

	t.Run("conflict", func(t *testing.T) {
		w := postJSON(newAuthRouter(signup("", accounterrors.ErrEmailAlreadyRegistered), nil, 5), "/api/auth/signup", body)
		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Equal(t, "Email already registered", decode(t, w).Message)
	})
}

func TestAuthHandler_Logout(t *testing.T) {
	actor := &account.Account{ID: uuid.New(), Role: domain.RoleEmployee}
	w := postJSON(newAuthRouter(&fakeAuthService{}, actor, 5), "/api/auth/logout", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Logged out successfully", decode(t, w).Message)
}
