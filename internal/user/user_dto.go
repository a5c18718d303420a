package user

import (
	"time"

	"go-ems/internal/account"
)

const dateLayout = "2006-01-02"

type UpdateProfileRequest struct {
	Name     *string `json:"name" binding:"omitempty,min=2,max=100"`
	Password *string `json:"password" binding:"omitempty,min=8,max=72"`
}

type AddressDTO struct {
	Line1   string `json:"line1"`
	Line2   string `json:"line2"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zipCode"`
}

// ProfileResponse is what GET /users/me returns under "user".
type ProfileResponse struct {
	ID         string     `json:"id"`
	ProfileID  *string    `json:"profileId,omitempty"`
	Name       string     `json:"name"`
	Email      string     `json:"email"`
	Role       string     `json:"role"`
	Department string     `json:"department,omitempty"`
	Phone      string     `json:"phone,omitempty"`
	Address    AddressDTO `json:"address"`

	EmployeeCode     *string `json:"employeeCode,omitempty"`
	Age              *int    `json:"age,omitempty"`
	PersonalEmail    *string `json:"personalEmail,omitempty"`
	Salary           *string `json:"salary,omitempty"`
	ReportingManager *string `json:"reportingManager,omitempty"`
	ManagerName      *string `json:"managerName,omitempty"`
	JoiningDate      *string `json:"joiningDate,omitempty"`
	IsActive         *bool   `json:"isActive,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type MeResponse struct {
	User ProfileResponse `json:"user"`
}

type AccountResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func mapAccountToResponse(a *account.Account) AccountResponse {
	return AccountResponse{
		ID:        a.ID.String(),
		Name:      a.Name,
		Email:     a.Email,
		Role:      a.Role.String(),
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

func mapProfileToResponse(p Profile) ProfileResponse {
	resp := ProfileResponse{
		ID:            p.ID.String(),
		Name:          p.Name,
		Email:         p.Email,
		Role:          p.Role.String(),
		Department:    p.Department,
		Phone:         p.Phone,
		Address:       AddressDTO(p.Address),
		EmployeeCode:  p.EmployeeCode,
		Age:           p.Age,
		PersonalEmail: p.PersonalEmail,
		ManagerName:   p.ManagerName,
		IsActive:      p.IsActive,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
	if p.ProfileID != nil {
		id := p.ProfileID.String()
		resp.ProfileID = &id
	}
	if p.Salary.Valid {
		s := p.Salary.Decimal.StringFixed(2)
		resp.Salary = &s
	}
	if p.ReportingManagerID != nil {
		id := p.ReportingManagerID.String()
		resp.ReportingManager = &id
	}
	if p.JoiningDate != nil {
		d := p.JoiningDate.Format(dateLayout)
		resp.JoiningDate = &d
	}
	return resp
}
