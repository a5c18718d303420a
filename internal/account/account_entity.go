package account

import (
	"strings"
	"time"

	"go-ems/internal/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Account is the identity record. Rows are never removed, only flagged IsDeleted.
type Account struct {
	ID           uuid.UUID   `gorm:"type:uuid;primaryKey"`
	Name         string      `gorm:"size:100;not null"`
	Email        string      `gorm:"size:254;not null"`
	PasswordHash string      `gorm:"not null"`
	Role         domain.Role `gorm:"type:varchar(20);not null;index"`
	IsDeleted    bool        `gorm:"not null;index"`
	CreatedAt    time.Time   `gorm:"not null;autoCreateTime:false"`
	UpdatedAt    time.Time   `gorm:"not null;autoUpdateTime:false"`
}

func (Account) TableName() string { return "accounts" }

type Address struct {
	Line1   string `gorm:"size:200"`
	Line2   string `gorm:"size:200"`
	City    string `gorm:"size:100"`
	State   string `gorm:"size:100"`
	ZipCode string `gorm:"size:20"`
}

func (a Address) columns() map[string]any {
	return map[string]any{
		"address_line1":    a.Line1,
		"address_line2":    a.Line2,
		"address_city":     a.City,
		"address_state":    a.State,
		"address_zip_code": a.ZipCode,
	}
}

// AdminProfile belongs to exactly one ADMIN or SUPER_ADMIN account.
type AdminProfile struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	AccountID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Department string    `gorm:"size:100"`
	Phone      string    `gorm:"size:30"`
	Address    Address   `gorm:"embedded;embeddedPrefix:address_"`
	IsDeleted  bool      `gorm:"not null;index"`
	CreatedAt  time.Time `gorm:"not null;autoCreateTime:false"`
	UpdatedAt  time.Time `gorm:"not null;autoUpdateTime:false"`

	Account *Account `gorm:"foreignKey:AccountID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
}

func (AdminProfile) TableName() string { return "admin_profiles" }

// EmployeeProfile belongs to exactly one EMPLOYEE account.
type EmployeeProfile struct {
	ID                 uuid.UUID       `gorm:"type:uuid;primaryKey"`
	AccountID          uuid.UUID       `gorm:"type:uuid;not null;index"`
	CreatedByAdminID   *uuid.UUID      `gorm:"type:uuid;index"`
	EmployeeCode       *string         `gorm:"size:50"`
	Age                int             `gorm:"not null"`
	Department         string          `gorm:"size:100;index"`
	Phone              string          `gorm:"size:30"`
	PersonalEmail      string          `gorm:"size:254"`
	Address            Address         `gorm:"embedded;embeddedPrefix:address_"`
	Salary             decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	ReportingManagerID *uuid.UUID      `gorm:"type:uuid;index"`
	JoiningDate        *time.Time
	IsActive           bool      `gorm:"not null"`
	IsDeleted          bool      `gorm:"not null;index"`
	CreatedAt          time.Time `gorm:"not null;index;autoCreateTime:false"`
	UpdatedAt          time.Time `gorm:"not null;autoUpdateTime:false"`

	Account          *Account         `gorm:"foreignKey:AccountID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	CreatedByAdmin   *AdminProfile    `gorm:"foreignKey:CreatedByAdminID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL"`
	ReportingManager *EmployeeProfile `gorm:"foreignKey:ReportingManagerID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL"`
}

func (EmployeeProfile) TableName() string { return "employee_profiles" }

// NormalizeEmail is applied before every insert and lookup.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// normalizeCode maps blank codes to nil so they stay outside the sparse index.
func normalizeCode(code *string) *string {
	if code == nil {
		return nil
	}
	c := strings.TrimSpace(*code)
	if c == "" {
		return nil
	}
	return &c
}
