package employee

import (
	"context"
	"strings"

	"go-ems/internal/domain"
	"go-ems/internal/shared/scope"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ListFilter struct {
	Page       scope.Page
	Search     string
	Department string
}

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	List(ctx context.Context, f ListFilter) ([]Employee, int64, error)
	FindByID(ctx context.Context, id uuid.UUID) (*Employee, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

const employeeColumns = `ep.id, ep.account_id, ep.created_by_admin_id,
	a.name, a.email,
	ep.employee_code, ep.age, ep.department, ep.phone, ep.personal_email,
	ep.address_line1, ep.address_line2, ep.address_city, ep.address_state, ep.address_zip_code,
	ep.salary, ep.reporting_manager_id, ma.name AS manager_name,
	ep.joining_date, ep.is_active, ep.created_at, ep.updated_at`

// base joins profile -> account -> manager profile -> manager account and keeps
// live EMPLOYEE rows only.
func (r *repository) base(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("employee_profiles AS ep").
		Joins("JOIN accounts a ON a.id = ep.account_id").
		Joins("LEFT JOIN employee_profiles mp ON mp.id = ep.reporting_manager_id AND mp.is_deleted = ?", false).
		Joins("LEFT JOIN accounts ma ON ma.id = mp.account_id").
		Scopes(scope.Active("ep"), scope.Active("a")).
		Where("a.role = ?", domain.RoleEmployee)
}

func filtered(q *gorm.DB, f ListFilter) *gorm.DB {
	if s := strings.TrimSpace(f.Search); s != "" {
		pattern := scope.ContainsPattern(s)
		q = q.Where(`(LOWER(a.name) LIKE ? ESCAPE '\' OR LOWER(a.email) LIKE ? ESCAPE '\')`, pattern, pattern)
	}
	if d := strings.TrimSpace(f.Department); d != "" {
		q = q.Where("ep.department = ?", d)
	}
	return q
}

// List returns one page and the total match count. The count rides along on
// every row through a window function; only a page past the end needs a
// second query.
func (r *repository) List(ctx context.Context, f ListFilter) ([]Employee, int64, error) {
	var rows []Employee
	err := filtered(r.base(ctx), f).
		Select(employeeColumns + ", COUNT(*) OVER() AS total_count").
		Order("ep.created_at DESC, ep.id DESC").
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

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*Employee, error) {
	var rows []Employee
	err := r.base(ctx).
		Select(employeeColumns).
		Where("ep.id = ?", id).
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
