package employee

import (
	"time"

	"go-ems/internal/account"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Employee is the joined read model: profile, owning account and the
// manager's display name. It is never written back.
type Employee struct {
	ID                 uuid.UUID
	AccountID          uuid.UUID
	CreatedByAdminID   *uuid.UUID
	Name               string
	Email              string
	EmployeeCode       *string
	Age                int
	Department         string
	Phone              string
	PersonalEmail      string
	Address            account.Address `gorm:"embedded;embeddedPrefix:address_"`
	Salary             decimal.Decimal
	ReportingManagerID *uuid.UUID
	ManagerName        *string
	JoiningDate        *time.Time
	IsActive           bool
	CreatedAt          time.Time
	UpdatedAt          time.Time

	TotalCount int64 `gorm:"column:total_count"`
}
