package account

import (
	"context"
	"errors"
	"time"

	accounterrors "go-ems/internal/account/errors"
	"go-ems/internal/shared/scope"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=admin_profile_repo.go -destination=mock/admin_profile_repo_mock.go -package=mock
type AdminProfileRepository interface {
	WithTx(tx *gorm.DB) AdminProfileRepository
	Create(ctx context.Context, p *AdminProfile) error
	FindActiveByID(ctx context.Context, id uuid.UUID) (*AdminProfile, error)
	FindActiveByAccountID(ctx context.Context, accountID uuid.UUID) (*AdminProfile, error)
	UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]any) error
	SoftDeleteByAccountID(ctx context.Context, accountID uuid.UUID, at time.Time) error
}

type adminProfileRepository struct {
	db *gorm.DB
}

func NewAdminProfileRepository(db *gorm.DB) AdminProfileRepository {
	return &adminProfileRepository{db: db}
}

func (r *adminProfileRepository) WithTx(tx *gorm.DB) AdminProfileRepository {
	return &adminProfileRepository{db: tx}
}

func (r *adminProfileRepository) Create(ctx context.Context, p *AdminProfile) error {
	return mapRepositoryError(r.db.WithContext(ctx).Omit("Account").Create(p).Error)
}

func (r *adminProfileRepository) FindActiveByID(ctx context.Context, id uuid.UUID) (*AdminProfile, error) {
	return r.findOne(ctx, "id = ?", id)
}

func (r *adminProfileRepository) FindActiveByAccountID(ctx context.Context, accountID uuid.UUID) (*AdminProfile, error) {
	return r.findOne(ctx, "account_id = ?", accountID)
}

func (r *adminProfileRepository) findOne(ctx context.Context, query string, args ...any) (*AdminProfile, error) {
	var p AdminProfile
	err := r.db.WithContext(ctx).
		Scopes(scope.Active("")).
		Where(query, args...).
		First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *adminProfileRepository) UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]any) error {
	res := r.db.WithContext(ctx).
		Model(&AdminProfile{}).
		Scopes(scope.Active("")).
		Where("id = ?", id).
		Updates(fields)
	if res.Error != nil {
		return mapRepositoryError(res.Error)
	}
	if res.RowsAffected == 0 {
		return accounterrors.ErrAdminNotFound
	}
	return nil
}

// SoftDeleteByAccountID is a no-op when the account has no live profile.
func (r *adminProfileRepository) SoftDeleteByAccountID(ctx context.Context, accountID uuid.UUID, at time.Time) error {
	return r.db.WithContext(ctx).
		Model(&AdminProfile{}).
		Scopes(scope.Active("")).
		Where("account_id = ?", accountID).
		Updates(map[string]any{"is_deleted": true, "updated_at": at}).Error
}
