package admin

import (
	"time"

	"go-ems/internal/account"
	"go-ems/internal/shared/response"
)

type AddressDTO struct {
	Line1   string `json:"line1" binding:"omitempty,max=200"`
	Line2   string `json:"line2" binding:"omitempty,max=200"`
	City    string `json:"city" binding:"omitempty,max=100"`
	State   string `json:"state" binding:"omitempty,max=100"`
	ZipCode string `json:"zipCode" binding:"omitempty,max=20"`
}

func (a AddressDTO) toModel() account.Address {
	return account.Address(a)
}

type CreateAdminRequest struct {
	Name       string      `json:"name" binding:"required,min=2,max=100"`
	Email      string      `json:"email" binding:"required,email"`
	Password   string      `json:"password" binding:"required,min=8,max=72"`
	Department string      `json:"department" binding:"omitempty,max=100"`
	Phone      string      `json:"phone" binding:"omitempty,max=30"`
	Address    *AddressDTO `json:"address"`
}

type UpdateAdminRequest struct {
	Name       *string     `json:"name" binding:"omitempty,min=2,max=100"`
	Department *string     `json:"department" binding:"omitempty,max=100"`
	Phone      *string     `json:"phone" binding:"omitempty,max=30"`
	Address    *AddressDTO `json:"address"`
}

type ListQuery struct {
	Limit  string
	Skip   string
	Page   string
	Search string
}

type AdminResponse struct {
	ID         string     `json:"id"`
	UserID     string     `json:"userId"`
	Name       string     `json:"name"`
	Email      string     `json:"email"`
	Role       string     `json:"role"`
	Department string     `json:"department"`
	Phone      string     `json:"phone"`
	Address    AddressDTO `json:"address"`
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  time.Time  `json:"updatedAt"`
}

type AdminListResponse struct {
	Admins []AdminResponse `json:"admins"`
	response.PaginationMeta
}

func mapAdminToResponse(a Admin) AdminResponse {
	return AdminResponse{
		ID:         a.ID.String(),
		UserID:     a.AccountID.String(),
		Name:       a.Name,
		Email:      a.Email,
		Role:       a.Role.String(),
		Department: a.Department,
		Phone:      a.Phone,
		Address:    AddressDTO(a.Address),
		CreatedAt:  a.CreatedAt,
		UpdatedAt:  a.UpdatedAt,
	}
}
