package account

import (
	"time"

	"go-ems/internal/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type AdminFields struct {
	Department string
	Phone      string
	Address    Address
}

type EmployeeFields struct {
	EmployeeCode       *string
	Age                int
	Department         string
	Phone              string
	PersonalEmail      string
	Address            Address
	Salary             decimal.Decimal
	ReportingManagerID *uuid.UUID
	JoiningDate        *time.Time
}

// CreateInput carries a creation request. RequestedRole is only a hint; the
// effective role comes from the policy.
type CreateInput struct {
	Channel       domain.Channel
	RequestedRole domain.Role
	Name          string
	Email         string
	Password      string
	Admin         AdminFields
	Employee      EmployeeFields
}

// Created is the result of Create. Token is only set for anonymous signup.
type Created struct {
	Account         *Account
	AdminProfile    *AdminProfile
	EmployeeProfile *EmployeeProfile
	Token           string
}

// UpdateProfileInput is the self-service patch. Nil means "not submitted".
type UpdateProfileInput struct {
	Name     *string
	Password *string
}

// UpdateEmployeeInput is the admin patch for an employee. An empty
// EmployeeCode clears it; uuid.Nil in ReportingManagerID clears the manager.
type UpdateEmployeeInput struct {
	Name               *string
	EmployeeCode       *string
	Age                *int
	Department         *string
	Phone              *string
	PersonalEmail      *string
	Address            *Address
	Salary             *decimal.Decimal
	ReportingManagerID *uuid.UUID
	JoiningDate        *time.Time
	IsActive           *bool
}

type UpdateAdminInput struct {
	Name       *string
	Department *string
	Phone      *string
	Address    *Address
}
