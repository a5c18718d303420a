package user_test

import (
	"context"
	"errors"
	"testing"

	"go-ems/internal/account"
	accounterrors "go-ems/internal/account/errors"
	accountMock "go-ems/internal/account/mock"
	"go-ems/internal/domain"
	"go-ems/internal/shared/apperror"
	"go-ems/internal/user"
	userMock "go-ems/internal/user/mock"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func setupService(t *testing.T) (user.Service, *userMock.MockRepository, *accountMock.MockService) {
	ctrl := gomock.NewController(t)
	repo := userMock.NewMockRepository(ctrl)
	accounts := accountMock.NewMockService(ctrl)
	return user.NewService(repo, accounts), repo, accounts
}

func TestUserService_Me(t *testing.T) {
	ctx := context.Background()
	actor := &account.Account{ID: uuid.New(), Role: domain.RoleEmployee}

	t.Run("merged profile", func(t *testing.T) {
		svc, repo, _ := setupService(t)
		code := "EMP7"
		repo.EXPECT().FindProfile(ctx, actor.ID).Return(&user.Profile{
			ID:           actor.ID,
			Name:         "Jane",
			Role:         domain.RoleEmployee,
			EmployeeCode: &code,
			Salary:       decimal.NewNullDecimal(decimal.NewFromInt(3000)),
		}, nil)

		resp, err := svc.Me(ctx, actor)

		require.NoError(t, err)
		assert.Equal(t, "Jane", resp.User.Name)
		require.NotNil(t, resp.User.Salary)
		assert.Equal(t, "3000.00", *resp.User.Salary)
		assert.Equal(t, "EMP7", *resp.User.EmployeeCode)
	})

	t.Run("vanished account", func(t *testing.T) {
		svc, repo, _ := setupService(t)
		repo.EXPECT().FindProfile(ctx, actor.ID).Return(nil, nil)

		_, err := svc.Me(ctx, actor)
		assert.ErrorIs(t, err, accounterrors.ErrAccountNotFound)
	})

	t.Run("store error", func(t *testing.T) {
		svc, repo, _ := setupService(t)
		dbErr := errors.New("boom")
		repo.EXPECT().FindProfile(ctx, actor.ID).Return(nil, dbErr)

		_, err := svc.Me(ctx, actor)
		assert.ErrorIs(t, err, dbErr)
	})

	t.Run("anonymous", func(t *testing.T) {
		svc, _, _ := setupService(t)
		_, err := svc.Me(ctx, nil)
		assert.ErrorIs(t, err, apperror.ErrUnauthenticated)
	})
}

func TestUserService_UpdateMe(t *testing.T) {
	ctx := context.Background()
	actor := &account.Account{ID: uuid.New(), Name: "Jane", Role: domain.RoleEmployee}
	name := "Jane Doe"

	t.Run("changed", func(t *testing.T) {
		svc, _, accounts := setupService(t)
		accounts.EXPECT().
			UpdateProfile(ctx, actor, account.UpdateProfileInput{Name: &name}).
			Return(&account.Account{ID: actor.ID, Name: name, Role: domain.RoleEmployee, PasswordHash: "$argon2id$secret"}, true, nil)

		resp, changed, err := svc.UpdateMe(ctx, actor, user.UpdateProfileRequest{Name: &name})

		require.NoError(t, err)
		assert.True(t, changed)
		assert.Equal(t, name, resp.Name)
	})

	t.Run("unchanged", func(t *testing.T) {
		svc, _, accounts := setupService(t)
		accounts.EXPECT().UpdateProfile(ctx, actor, gomock.Any()).Return(actor, false, nil)

		_, changed, err := svc.UpdateMe(ctx, actor, user.UpdateProfileRequest{})

		require.NoError(t, err)
		assert.False(t, changed)
	})
}

func TestUserService_DeleteMe(t *testing.T) {
	ctx := context.Background()

	t.Run("self delete", func(t *testing.T) {
		svc, _, accounts := setupService(t)
		actor := &account.Account{ID: uuid.New(), Role: domain.RoleEmployee}
		accounts.EXPECT().SoftDelete(ctx, actor, actor.ID).Return(nil)

		assert.NoError(t, svc.DeleteMe(ctx, actor))
	})

	t.Run("super admin refused", func(t *testing.T) {
		svc, _, accounts := setupService(t)
		actor := &account.Account{ID: uuid.New(), Role: domain.RoleSuperAdmin}
		accounts.EXPECT().SoftDelete(ctx, actor, actor.ID).Return(accounterrors.ErrCannotDeleteSuperAdmin)

		assert.ErrorIs(t, svc.DeleteMe(ctx, actor), accounterrors.ErrCannotDeleteSuperAdmin)
	})
}
