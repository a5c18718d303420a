package employee_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"go-ems/internal/account"
	"go-ems/internal/domain"
	"go-ems/internal/employee"
	"go-ems/internal/shared/scope"
	"go-ems/internal/shared/testdb"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type seeded struct {
	db       *gorm.DB
	repo     employee.Repository
	profiles []*account.EmployeeProfile
}

// seedEmployees inserts n employees, the first created earliest.
func seedEmployees(t *testing.T, n int) *seeded {
	t.Helper()
	db := testdb.Open(t, account.Migrate)
	ctx := context.Background()
	accounts := account.NewRepository(db)
	profiles := account.NewEmployeeProfileRepository(db)

	base := time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC)
	s := &seeded{db: db, repo: employee.NewRepository(db)}

	for i := 0; i < n; i++ {
		at := base.Add(time.Duration(i) * time.Minute)
		acc := &account.Account{
			ID:           uuid.New(),
			Name:         fmt.Sprintf("Employee %02d", i+1),
			Email:        fmt.Sprintf("emp%02d@spanemployee.com", i+1),
			PasswordHash: "$argon2id$x",
			Role:         domain.RoleEmployee,
			CreatedAt:    at,
			UpdatedAt:    at,
		}
		require.NoError(t, accounts.Create(ctx, acc))

		dept := "Engineering"
		if i%3 == 0 {
			dept = "Finance"
		}
		p := &account.EmployeeProfile{
			ID:         uuid.New(),
			AccountID:  acc.ID,
			Age:        20 + i,
			Department: dept,
			Salary:     decimal.NewFromInt(int64(1000 + i)),
			IsActive:   true,
			CreatedAt:  at,
			UpdatedAt:  at,
		}
		require.NoError(t, profiles.Create(ctx, p))
		s.profiles = append(s.profiles, p)
	}
	return s
}

func TestRepository_ListPagination(t *testing.T) {
	s := seedEmployees(t, 12)
	ctx := context.Background()

	page1, total, err := s.repo.List(ctx, employee.ListFilter{Page: scope.ParsePage("5", "", "1", 5)})
	require.NoError(t, err)
	assert.Equal(t, int64(12), total)
	require.Len(t, page1, 5)
	assert.Equal(t, "Employee 12", page1[0].Name, "newest first")

	page3, total, err := s.repo.List(ctx, employee.ListFilter{Page: scope.ParsePage("5", "", "3", 5)})
	require.NoError(t, err)
	assert.Equal(t, int64(12), total)
	require.Len(t, page3, 2)
	assert.Equal(t, "Employee 01", page3[1].Name)

	beyond, total, err := s.repo.List(ctx, employee.ListFilter{Page: scope.ParsePage("5", "", "9", 5)})
	require.NoError(t, err)
	assert.Empty(t, beyond)
	assert.Equal(t, int64(12), total, "total still reported past the last page")
}

func TestRepository_ListFilters(t *testing.T) {
	s := seedEmployees(t, 6)
	ctx := context.Background()
	page := scope.Page{Limit: 10}

	t.Run("search is case-insensitive over name and email", func(t *testing.T) {
		rows, total, err := s.repo.List(ctx, employee.ListFilter{Page: page, Search: "EMP03"})
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		require.Len(t, rows, 1)
		assert.Equal(t, "emp03@spanemployee.com", rows[0].Email)
	})

	t.Run("wildcards are literal", func(t *testing.T) {
		rows, _, err := s.repo.List(ctx, employee.ListFilter{Page: page, Search: "%"})
		require.NoError(t, err)
		assert.Empty(t, rows)
	})

	t.Run("department is exact", func(t *testing.T) {
		rows, total, err := s.repo.List(ctx, employee.ListFilter{Page: page, Department: "Finance"})
		require.NoError(t, err)
		assert.Equal(t, int64(2), total)
		for _, r := range rows {
			assert.Equal(t, "Finance", r.Department)
		}
	})

	t.Run("soft-deleted employees are hidden", func(t *testing.T) {
		victim := s.profiles[0]
		now := time.Now().UTC()
		require.NoError(t, account.NewRepository(s.db).SoftDelete(ctx, victim.AccountID, now))
		require.NoError(t, account.NewEmployeeProfileRepository(s.db).SoftDeleteByAccountID(ctx, victim.AccountID, now))

		_, total, err := s.repo.List(ctx, employee.ListFilter{Page: page})
		require.NoError(t, err)
		assert.Equal(t, int64(5), total)

		got, err := s.repo.FindByID(ctx, victim.ID)
		require.NoError(t, err)
		assert.Nil(t, got)
	})
}

func TestRepository_FindByIDJoinsManager(t *testing.T) {
	s := seedEmployees(t, 2)
	ctx := context.Background()

	manager, report := s.profiles[0], s.profiles[1]
	require.NoError(t, account.NewEmployeeProfileRepository(s.db).UpdateFields(ctx, report.ID, map[string]any{
		"reporting_manager_id": manager.ID,
		"address_city":         "Pune",
	}))

	got, err := s.repo.FindByID(ctx, report.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Employee 02", got.Name)
	require.NotNil(t, got.ReportingManagerID)
	assert.Equal(t, manager.ID, *got.ReportingManagerID)
	require.NotNil(t, got.ManagerName)
	assert.Equal(t, "Employee 01", *got.ManagerName)
	assert.Equal(t, "Pune", got.Address.City)
	assert.True(t, decimal.NewFromInt(1001).Equal(got.Salary))

	missing, err := s.repo.FindByID(ctx, uuid.New())
	require.NoError(t, err)
	assert.Nil(t, missing)
}
