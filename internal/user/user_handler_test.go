package user_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-ems/internal/account"
	accounterrors "go-ems/internal/account/errors"
	"go-ems/internal/domain"
	"go-ems/internal/middleware"
	"go-ems/internal/shared/apperror"
	"go-ems/internal/shared/response"
	"go-ems/internal/user"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUserService struct {
	MeFn       func(ctx context.Context, actor *account.Account) (user.MeResponse, error)
	UpdateMeFn func(ctx context.Context, actor *account.Account, req user.UpdateProfileRequest) (user.AccountResponse, bool, error)
	DeleteMeFn func(ctx context.Context, actor *account.Account) error
}

func (f *fakeUserService) Me(ctx context.Context, actor *account.Account) (user.MeResponse, error) {
	return f.MeFn(ctx, actor)
}
func (f *fakeUserService) UpdateMe(ctx context.Context, actor *account.Account, req user.UpdateProfileRequest) (user.AccountResponse, bool, error) {
	return f.UpdateMeFn(ctx, actor, req)
}
func (f *fakeUserService) DeleteMe(ctx context.Context, actor *account.Account) error {
	return f.DeleteMeFn(ctx, actor)
}

func newRouter(svc user.Service, actor *account.Account) *gin.Engine {
	gin.SetMode(gin.TestMode)
	apperror.Init()
	r := gin.New()
	user.RegisterRoutes(r.Group("/api"), user.NewHandler(svc), func(c *gin.Context) {
		middleware.SetCurrentAccount(c, actor)
		c.Next()
	})
	return r
}

func decode(t *testing.T, w *httptest.ResponseRecorder) response.Envelope {
	t.Helper()
	var env response.Envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

func TestUserHandler_GetMe(t *testing.T) {
	actor := &account.Account{ID: uuid.New(), Role: domain.RoleEmployee}
	svc := &fakeUserService{
		MeFn: func(_ context.Context, got *account.Account) (user.MeResponse, error) {
			assert.Same(t, actor, got)
			return user.MeResponse{User: user.ProfileResponse{ID: got.ID.String(), Name: "Jane"}}, nil
		},
	}

	w := httptest.NewRecorder()
	newRouter(svc, actor).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/users/me", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Profile fetched successfully", decode(t, w).Message)
	assert.Contains(t, w.Body.String(), `"user":{`)
	assert.NotContains(t, w.Body.String(), "password")
}

func TestUserHandler_UpdateMe(t *testing.T) {
	actor := &account.Account{ID: uuid.New(), Role: domain.RoleEmployee}

	tests := []struct {
		name    string
		body    string
		changed bool
		status  int
		message string
	}{
		{name: "updated", body: `{"name":"Jane Doe"}`, changed: true, status: http.StatusOK, message: "Profile updated successfully"},
		{name: "nothing", body: `{}`, changed: false, status: http.StatusOK, message: "No changes detected"},
		{name: "short password", body: `{"password":"123"}`, status: http.StatusBadRequest, message: "Password must be at least 8 characters"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeUserService{
				UpdateMeFn: func(_ context.Context, _ *account.Account, req user.UpdateProfileRequest) (user.AccountResponse, bool, error) {
					return user.AccountResponse{ID: actor.ID.String()}, tt.changed, nil
				},
			}

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPatch, "/api/users/me", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			newRouter(svc, actor).ServeHTTP(w, req)

			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, tt.message, decode(t, w).Message)
		})
	}
}

func TestUserHandler_DeleteMe(t *testing.T) {
	t.Run("deleted", func(t *testing.T) {
		actor := &account.Account{ID: uuid.New(), Role: domain.RoleAdmin}
		svc := &fakeUserService{DeleteMeFn: func(context.Context, *account.Account) error { return nil }}

		w := httptest.NewRecorder()
		newRouter(svc, actor).ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/users/me", nil))

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Account deleted successfully", decode(t, w).Message)
	})

	t.Run("super admin", func(t *testing.T) {
		actor := &account.Account{ID: uuid.New(), Role: domain.RoleSuperAdmin}
		svc := &fakeUserService{DeleteMeFn: func(context.Context, *account.Account) error {
			return accounterrors.ErrCannotDeleteSuperAdmin
		}}

		w := httptest.NewRecorder()
		newRouter(svc, actor).ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/users/me", nil))

		assert.Equal(t, http.StatusForbidden, w.Code)
		env := decode(t, w)
		assert.Equal(t, "Cannot delete Super Admin", env.Message)
		assert.Equal(t, apperror.CodeForbidden, env.Code)
	})
}
