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

//go:generate mockgen -source=employee_profile_repo.go -destination=mock/employee_profile_repo_mock.go -package=mock
type EmployeeProfileRepository interface {
	WithTx(tx *gorm.DB) EmployeeProfileRepository
	Create(ctx context.Context, p *EmployeeProfile) error
	FindActiveByID(ctx context.Context, id uuid.UUID) (*EmployeeProfile, error)
	FindActiveByAccountID(ctx context.Context, accountID uuid.UUID) (*EmployeeProfile, error)
	CodeTaken(ctx context.Context, code string, excludeID *uuid.UUID) (bool, error)
	UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]any) error
	SoftDeleteByAccountID(ctx context.Context, accountID uuid.UUID, at time.Time) error
}

type employeeProfileRepository struct {
	db *gorm.DB
}

func NewEmployeeProfileRepository(db *gorm.DB) EmployeeProfileRepository {
	return &employeeProfileRepository{db: db}
}

func (r *employeeProfileRepository) WithTx(tx *gorm.DB) EmployeeProfileRepository {
	return &employeeProfileRepository{db: tx}
}

func (r *employeeProfileRepository) Create(ctx context.Context, p *EmployeeProfile) error {
	p.EmployeeCode = normalizeCode(p.EmployeeCode)
	return mapRepositoryError(r.db.WithContext(ctx).
		Omit("Account", "CreatedByAdmin", "ReportingManager").
		Create(p).Error)
}

func (r *employeeProfileRepository) FindActiveByID(ctx context.Context, id uuid.UUID) (*EmployeeProfile, error) {
	return r.findOne(ctx, "id = ?", id)
}

func (r *employeeProfileRepository) FindActiveByAccountID(ctx context.Context, accountID uuid.UUID) (*EmployeeProfile, error) {
	return r.findOne(ctx, "account_id = ?", accountID)
}

func (r *employeeProfileRepository) findOne(ctx context.Context, query string, args ...any) (*EmployeeProfile, error) {
	var p EmployeeProfile
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

// CodeTaken checks the code against live profiles only; codes of deleted
// employees may be reused.
func (r *employeeProfileRepository) CodeTaken(ctx context.Context, code string, excludeID *uuid.UUID) (bool, error) {
	q := r.db.WithContext(ctx).
		Model(&EmployeeProfile{}).
		Scopes(scope.Active("")).
		Where("employee_code = ?", code)
	if excludeID != nil {
		q = q.Where("id <> ?", *excludeID)
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *employeeProfileRepository) UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]any) error {
	res := r.db.WithContext(ctx).
		Model(&EmployeeProfile{}).
		Scopes(scope.Active("")).
		Where("id = ?", id).
		Updates(fields)
	if res.Error != nil {
		return mapRepositoryError(res.Error)
	}
	if res.RowsAffected == 0 {
		return accounterrors.ErrEmployeeNotFound
	}
	return nil
}

// SoftDeleteByAccountID is a no-op when the account has no live profile.
func (r *employeeProfileRepository) SoftDeleteByAccountID(ctx context.Context, accountID uuid.UUID, at time.Time) error {
	return r.db.WithContext(ctx).
		Model(&EmployeeProfile{}).
		Scopes(scope.Active("")).
		Where("account_id = ?", accountID).
		Updates(map[string]any{"is_deleted": true, "updated_at": at}).Error
}
