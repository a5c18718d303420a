package user

import (
	"time"

	"go-ems/internal/account"
	"go-ems/internal/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Profile is an account merged with whichever profile it owns. Employee-only
// columns are nil for administrative accounts.
type Profile struct {
	ID         uuid.UUID
	Name       string
	Email      string
	Role       domain.Role
	CreatedAt  time.Time
	UpdatedAt  time.Time
	ProfileID  *uuid.UUID
	Department string
	Phone      string
	Address    account.Address `gorm:"embedded;embeddedPrefix:address_"`

	EmployeeCode       *string
	Age                *int
	PersonalEmail      *string
	Salary             decimal.NullDecimal
	ReportingManagerID *uuid.UUID
	ManagerName        *string
	JoiningDate        *time.Time
	IsActive           *bool
}
