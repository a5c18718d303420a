package admin_test

import (
	"context"
	"testing"
	"time"

	"go-ems/internal/account"
	accounterrors "go-ems/internal/account/errors"
	accountMock "go-ems/internal/account/mock"
	"go-ems/internal/admin"
	adminerrors "go-ems/internal/admin/errors"
	adminMock "go-ems/internal/admin/mock"
	"go-ems/internal/domain"
	"go-ems/internal/shared/scope"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func setupService(t *testing.T) (admin.Service, *adminMock.MockRepository, *accountMock.MockService) {
	ctrl := gomock.NewController(t)
	repo := adminMock.NewMockRepository(ctrl)
	accounts := accountMock.NewMockService(ctrl)
	return admin.NewService(repo, accounts), repo, accounts
}

func TestAdminService_List(t *testing.T) {
	ctx := context.Background()
	svc, repo, _ := setupService(t)

	row := admin.Admin{ID: uuid.New(), AccountID: uuid.New(), Name: "Ana", Role: domain.RoleAdmin, CreatedAt: time.Now()}
	repo.EXPECT().
		List(ctx, admin.ListFilter{Page: scope.Page{Limit: 10, Skip: 20}}).
		Return([]admin.Admin{row}, int64(21), nil)

	resp, err := svc.List(ctx, admin.ListQuery{Skip: "20"})

	require.NoError(t, err)
	require.Len(t, resp.Admins, 1)
	assert.Equal(t, "ADMIN", resp.Admins[0].Role)
	assert.Equal(t, 3, resp.CurrentPage)
	assert.Equal(t, 3, resp.TotalPages)
}

func TestAdminService_Create(t *testing.T) {
	ctx := context.Background()
	actor := &account.Account{ID: uuid.New(), Role: domain.RoleSuperAdmin}

	t.Run("admin creation channel", func(t *testing.T) {
		svc, repo, accounts := setupService(t)
		profileID := uuid.New()

		accounts.EXPECT().
			Create(ctx, actor, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *account.Account, in account.CreateInput) (*account.Created, error) {
				assert.Equal(t, domain.ChannelAdminCreation, in.Channel)
				assert.Equal(t, domain.RoleAdmin, in.RequestedRole)
				assert.Equal(t, "Ops", in.Admin.Department)
				assert.Equal(t, "Jakarta", in.Admin.Address.City)
				return &account.Created{AdminProfile: &account.AdminProfile{ID: profileID}}, nil
			})
		repo.EXPECT().FindByID(ctx, profileID).Return(&admin.Admin{ID: profileID, Name: "Ana"}, nil)

		resp, err := svc.Create(ctx, actor, admin.CreateAdminRequest{
			Name:       "Ana",
			Email:      "ana@spanadmin.com",
			Password:   "Secret123",
			Department: " Ops ",
			Address:    &admin.AddressDTO{City: "Jakarta"},
		})

		require.NoError(t, err)
		assert.Equal(t, profileID.String(), resp.ID)
	})

	t.Run("domain rule surfaces", func(t *testing.T) {
		svc, _, accounts := setupService(t)
		domainErr := accounterrors.AdminEmailDomain("spanadmin.com")
		accounts.EXPECT().Create(ctx, actor, gomock.Any()).Return(nil, domainErr)

		_, err := svc.Create(ctx, actor, admin.CreateAdminRequest{Name: "Ana", Email: "ana@gmail.com", Password: "Secret123"})
		assert.ErrorIs(t, err, domainErr)
	})
}

func TestAdminService_UpdateAndDelete(t *testing.T) {
	ctx := context.Background()
	actor := &account.Account{ID: uuid.New(), Role: domain.RoleSuperAdmin}

	t.Run("unchanged", func(t *testing.T) {
		svc, repo, accounts := setupService(t)
		id := uuid.New()
		name := "Ana"

		accounts.EXPECT().
			UpdateAdmin(ctx, actor, id, account.UpdateAdminInput{Name: &name}).
			Return(false, nil)
		repo.EXPECT().FindByID(ctx, id).Return(&admin.Admin{ID: id, Name: name}, nil)

		resp, changed, err := svc.Update(ctx, actor, id.String(), admin.UpdateAdminRequest{Name: &name})

		require.NoError(t, err)
		assert.False(t, changed)
		assert.Equal(t, "Ana", resp.Name)
	})

	t.Run("invalid id", func(t *testing.T) {
		svc, _, _ := setupService(t)
		_, _, err := svc.Update(ctx, actor, "x", admin.UpdateAdminRequest{})
		assert.ErrorIs(t, err, adminerrors.ErrInvalidAdminID)
		assert.ErrorIs(t, svc.Delete(ctx, actor, "x"), adminerrors.ErrInvalidAdminID)
	})

	t.Run("delete delegates", func(t *testing.T) {
		svc, _, accounts := setupService(t)
		id := uuid.New()
		accounts.EXPECT().DeleteAdmin(ctx, actor, id).Return(accounterrors.ErrAdminNotFound)

		assert.ErrorIs(t, svc.Delete(ctx, actor, id.String()), accounterrors.ErrAdminNotFound)
	})

	t.Run("get missing", func(t *testing.T) {
		svc, repo, _ := setupService(t)
		id := uuid.New()
		repo.EXPECT().FindByID(ctx, id).Return(nil, nil)

		_, err := svc.GetByID(ctx, id.String())
		assert.ErrorIs(t, err, accounterrors.ErrAdminNotFound)
	})
}
