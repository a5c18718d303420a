package admin

import (
	"context"
	"strings"

	"go-ems/internal/domain"
	"go-ems/internal/shared/scope"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ListFilter struct {
	Page   scope.Page
	Search string
}

//go:generate mockgen -source=admin_repo.go -destination=mock/admin_repo_mock.go -package=mock
type Repository interface {
	List(ctx context.Context, f ListFilter) ([]Admin, int64, error)
	FindByID(ctx context.Context, id uuid.UUID) (*Admin, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

const adminColumns = `ap.id, ap.account_id, a.name, a.email, a.role,
	ap.department, ap.phone,
	ap.address_line1, ap.address_line2, ap.address_city, ap.address_state, ap.address_zip_code,
	ap.created_at, ap.updated_at`

func (r *repository) base(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("admin_profiles AS ap").
		Joins("JOIN accounts a ON a.id = ap.account_id").
		Scopes(scope.Active("ap"), scope.Active("a")).
		Where("a.role = ?", domain.RoleAdmin)
}

func filtered(q *gorm.DB, f ListFilter) *gorm.DB {
	if s := strings.TrimSpace(f.Search); s != "" {
		pattern := scope.ContainsPattern(s)
		q = q.Where(`(LOWER(a.name) LIKE ? ESCAPE '\' OR LOWER(a.email) LIKE ? ESCAPE '\')`, pattern, pattern)
	}
	return q
}

func (r *repository) List(ctx context.Context, f ListFilter) ([]Admin, int64, error) {
	var rows []Admin
	err := filtered(r.base(ctx), f).
		Select(adminColumns + ", COUNT(*) OVER() AS total_count").
		Order("ap.created_at DESC, ap.id DESC").
		Scopes(scope.Paginate(f.Page)).
		Scan(&rows).Error
	if err != nil {
		return nil, 0, err
	}

	if len(rows) > 0 {
		return rows, rows[0].TotalCount, nil
	}
	if f.Page.Skip == 0 {
		return rows, 0, nil
	}

	var total int64
	if err := filtered(r.base(ctx), f).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*Admin, error) {
	var rows []Admin
	err := r.base(ctx).
		Select(adminColumns).
		Where("ap.id = ?", id).
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
