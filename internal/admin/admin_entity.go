package admin

import (
	"time"

	"go-ems/internal/account"
	"go-ems/internal/domain"

	"github.com/google/uuid"
)

// Admin joins an admin profile with its account.
type Admin struct {
	ID         uuid.UUID
	AccountID  uuid.UUID
	Name       string
	Email      string
	Role       domain.Role
	Department string
	Phone      string
	Address    account.Address `gorm:"embedded;embeddedPrefix:address_"`
	CreatedAt  time.Time
	UpdatedAt  time.Time

	TotalCount int64 `gorm:"column:total_count"`
}
