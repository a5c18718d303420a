package employee

import (
	"time"

	"go-ems/internal/account"
	"go-ems/internal/shared/response"

	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

type AddressDTO struct {
	Line1   string `json:"line1" binding:"omitempty,max=200"`
	Line2   string `json:"line2" binding:"omitempty,max=200"`
	City    string `json:"city" binding:"omitempty,max=100"`
	State   string `json:"state" binding:"omitempty,max=100"`
	ZipCode string `json:"zipCode" binding:"omitempty,max=20"`
}

func (a AddressDTO) toModel() account.Address {
	return account.Address{
		Line1:   a.Line1,
		Line2:   a.Line2,
		City:    a.City,
		State:   a.State,
		ZipCode: a.ZipCode,
	}
}

func addressFromModel(a account.Address) AddressDTO {
	return AddressDTO{
		Line1:   a.Line1,
		Line2:   a.Line2,
		City:    a.City,
		State:   a.State,
		ZipCode: a.ZipCode,
	}
}

type CreateEmployeeRequest struct {
	Name             string           `json:"name" binding:"required,min=2,max=100"`
	Email            string           `json:"email" binding:"required,email"`
	Password         string           `json:"password" binding:"required,min=8,max=72"`
	EmployeeCode     string           `json:"employeeCode" binding:"omitempty,max=50"`
	Age              int              `json:"age" binding:"omitempty,gte=16,lte=100"`
	Department       string           `json:"department" binding:"omitempty,max=100"`
	Phone            string           `json:"phone" binding:"omitempty,max=30"`
	PersonalEmail    string           `json:"personalEmail" binding:"omitempty,email"`
	Address          *AddressDTO      `json:"address"`
	Salary           *decimal.Decimal `json:"salary"`
	ReportingManager *string          `json:"reportingManager" binding:"omitempty,uuid"`
	JoiningDate      *string          `json:"joiningDate" binding:"omitempty,datetime=2006-01-02"`
}

// UpdateEmployeeRequest is a partial update; absent fields stay untouched.
// An empty employeeCode or reportingManager clears the value.
type UpdateEmployeeRequest struct {
	Name             *string          `json:"name" binding:"omitempty,min=2,max=100"`
	EmployeeCode     *string          `json:"employeeCode" binding:"omitempty,max=50"`
	Age              *int             `json:"age" binding:"omitempty,gte=16,lte=100"`
	Department       *string          `json:"department" binding:"omitempty,max=100"`
	Phone            *string          `json:"phone" binding:"omitempty,max=30"`
	PersonalEmail    *string          `json:"personalEmail" binding:"omitempty,email"`
	Address          *AddressDTO      `json:"address"`
	Salary           *decimal.Decimal `json:"salary"`
	ReportingManager *string          `json:"reportingManager"`
	JoiningDate      *string          `json:"joiningDate" binding:"omitempty,datetime=2006-01-02"`
	IsActive         *bool            `json:"isActive"`
}

type ListQuery struct {
	Limit      string
	Skip       string
	Page       string
	Search     string
	Department string
}

type EmployeeResponse struct {
	ID               string     `json:"id"`
	UserID           string     `json:"userId"`
	AdminID          *string    `json:"adminId"`
	Name             string     `json:"name"`
	Email            string     `json:"email"`
	EmployeeCode     *string    `json:"employeeCode"`
	Age              int        `json:"age"`
	Department       string     `json:"department"`
	Phone            string     `json:"phone"`
	PersonalEmail    string     `json:"personalEmail"`
	Address          AddressDTO `json:"address"`
	Salary           string     `json:"salary"`
	ReportingManager *string    `json:"reportingManager"`
	ManagerName      *string    `json:"managerName"`
	JoiningDate      *string    `json:"joiningDate"`
	IsActive         bool       `json:"isActive"`
	CreatedAt        time.Time  `json:"createdAt"`
	UpdatedAt        time.Time  `json:"updatedAt"`
}

type EmployeeListResponse struct {
	Employees []EmployeeResponse `json:"employees"`
	response.PaginationMeta
}

func mapEmployeeToResponse(e Employee) EmployeeResponse {
	resp := EmployeeResponse{
		ID:            e.ID.String(),
		UserID:        e.AccountID.String(),
		Name:          e.Name,
		Email:         e.Email,
		EmployeeCode:  e.EmployeeCode,
		Age:           e.Age,
		Department:    e.Department,
		Phone:         e.Phone,
		PersonalEmail: e.PersonalEmail,
		Address:       addressFromModel(e.Address),
		Salary:        e.Salary.StringFixed(2),
		ManagerName:   e.ManagerName,
		IsActive:      e.IsActive,
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}
	if e.CreatedByAdminID != nil {
		id := e.CreatedByAdminID.String()
		resp.AdminID = &id
	}
	if e.ReportingManagerID != nil {
		id := e.ReportingManagerID.String()
		resp.ReportingManager = &id
	}
	if e.JoiningDate != nil {
		d := e.JoiningDate.Format(dateLayout)
		resp.JoiningDate = &d
	}
	return resp
}
