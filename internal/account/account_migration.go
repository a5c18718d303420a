package account

import (
	"fmt"

	"gorm.io/gorm"
)

// partialIndexes back the uniqueness rules that only apply to live rows.
var partialIndexes = []struct {
	name    string
	table   string
	columns string
	where   string
}{
	{"ux_accounts_email_active", "accounts", "email", "is_deleted = false"},
	{"ux_admin_profiles_account_active", "admin_profiles", "account_id", "is_deleted = false"},
	{"ux_employee_profiles_account_active", "employee_profiles", "account_id", "is_deleted = false"},
	{"ux_employee_profiles_code_active", "employee_profiles", "employee_code", "employee_code IS NOT NULL AND is_deleted = false"},
}

// Migrate creates or updates the three tables and their partial unique indexes.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&Account{}, &AdminProfile{}, &EmployeeProfile{}); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}

	for _, idx := range partialIndexes {
		stmt := fmt.Sprintf(
			"CREATE UNIQUE INDEX IF NOT EXISTS %s ON %s (%s) WHERE %s",
			idx.name, idx.table, idx.columns, idx.where,
		)
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("create index %s: %w", idx.name, err)
		}
	}

	return nil
}
