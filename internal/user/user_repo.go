package user

import (
	"context"

	"go-ems/internal/shared/scope"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=user_repo.go -destination=mock/user_repo_mock.go -package=mock
type Repository interface {
	FindProfile(ctx context.Context, accountID uuid.UUID) (*Profile, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

const profileColumns = `a.id, a.name, a.email, a.role, a.created_at, a.updated_at,
	COALESCE(ep.id, ap.id) AS profile_id,
	COALESCE(ep.department, ap.department, '') AS department,
	COALESCE(ep.phone, ap.phone, '') AS phone,
	COALESCE(ep.address_line1, ap.address_line1, '') AS address_line1,
	COALESCE(ep.address_line2, ap.address_line2, '') AS address_line2,
	COALESCE(ep.address_city, ap.address_city, '') AS address_city,
	COALESCE(ep.address_state, ap.address_state, '') AS address_state,
	COALESCE(ep.address_zip_code, ap.address_zip_code, '') AS address_zip_code,
	ep.employee_code, ep.age, ep.personal_email, ep.salary,
	ep.reporting_manager_id, ma.name AS manager_name,
	ep.joining_date, ep.is_active`

// FindProfile returns nil when the account is gone. A live account without a
// profile still resolves, with the profile columns empty.
func (r *repository) FindProfile(ctx context.Context, accountID uuid.UUID) (*Profile, error) {
	var rows []Profile
	err := r.db.WithContext(ctx).
		Table("accounts AS a").
		Joins("LEFT JOIN admin_profiles ap ON ap.account_id = a.id AND ap.is_deleted = ?", false).
		Joins("LEFT JOIN employee_profiles ep ON ep.account_id = a.id AND ep.is_deleted = ?", false).
		Joins("LEFT JOIN employee_profiles mp ON mp.id = ep.reporting_manager_id AND mp.is_deleted = ?", false).
		Joins("LEFT JOIN accounts ma ON ma.id = mp.account_id").
		Scopes(scope.Active("a")).
		Where("a.id = ?", accountID).
		Select(profileColumns).
		Limit(1).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return &rows[0], nil
}
