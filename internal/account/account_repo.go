package account

import (
	"context"
	"errors"
	"time"

	accounterrors "go-ems/internal/account/errors"
	"go-ems/internal/domain"
	"go-ems/internal/shared/scope"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=account_repo.go -destination=mock/account_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, a *Account) error
	FindActiveByID(ctx context.Context, id uuid.UUID) (*Account, error)
	FindActiveByEmail(ctx context.Context, email string) (*Account, error)
	ExistsActiveByRole(ctx context.Context, role domain.Role) (bool, error)
	UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]any) error
	SoftDelete(ctx context.Context, id uuid.UUID, at time.Time) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	return &repository{db: tx}
}

func (r *repository) Create(ctx context.Context, a *Account) error {
	a.Email = NormalizeEmail(a.Email)
	return mapRepositoryError(r.db.WithContext(ctx).Create(a).Error)
}

func (r *repository) FindActiveByID(ctx context.Context, id uuid.UUID) (*Account, error) {
	var a Account
	err := r.db.WithContext(ctx).
		Scopes(scope.Active("")).
		First(&a, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *repository) FindActiveByEmail(ctx context.Context, email string) (*Account, error) {
	var a Account
	err := r.db.WithContext(ctx).
		Scopes(scope.Active("")).
		First(&a, "email = ?", NormalizeEmail(email)).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *repository) ExistsActiveByRole(ctx context.Context, role domain.Role) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Account{}).
		Scopes(scope.Active("")).
		Where("role = ?", role).
		Count(&count).Error
	return count > 0, err
}

// UpdateFields writes column values on a live account.
func (r *repository) UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]any) error {
	res := r.db.WithContext(ctx).
		Model(&Account{}).
		Scopes(scope.Active("")).
		Where("id = ?", id).
		Updates(fields)
	if res.Error != nil {
		return mapRepositoryError(res.Error)
	}
	if res.RowsAffected == 0 {
		return accounterrors.ErrAccountNotFound
	}
	return nil
}

func (r *repository) SoftDelete(ctx context.Context, id uuid.UUID, at time.Time) error {
	res := r.db.WithContext(ctx).
		Model(&Account{}).
		Scopes(scope.Active("")).
		Where("id = ?", id).
		Updates(map[string]any{"is_deleted": true, "updated_at": at})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return accounterrors.ErrAccountNotFound
	}
	return nil
}
