package auth

import (
	"time"

	"go-ems/internal/account"
)

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AddressDTO struct {
	Line1   string `json:"line1" binding:"omitempty,max=200"`
	Line2   string `json:"line2" binding:"omitempty,max=200"`
	City    string `json:"city" binding:"omitempty,max=100"`
	State   string `json:"state" binding:"omitempty,max=100"`
	ZipCode string `json:"zipCode" binding:"omitempty,max=20"`
}

// SignupRequest serves public registration and staff-created accounts. Role
// is only honoured for a super admin caller; anyone else gets EMPLOYEE
// whatever the body says.
type SignupRequest struct {
	Name       string      `json:"name" binding:"required,min=2,max=100"`
	Email      string      `json:"email" binding:"required,email"`
	Password   string      `json:"password" binding:"required,min=8,max=72"`
	Role       string      `json:"role" binding:"omitempty,max=20"`
	Age        int         `json:"age" binding:"omitempty,gte=16,lte=100"`
	Department string      `json:"department" binding:"omitempty,max=100"`
	Phone      string      `json:"phone" binding:"omitempty,max=30"`
	Address    *AddressDTO `json:"address"`
}

type UserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type AuthResponse struct {
	User  UserResponse `json:"user"`
	Token string       `json:"token,omitempty"`
}

func mapAccountToResponse(a *account.Account) UserResponse {
	return UserResponse{
		ID:        a.ID.String(),
		Name:      a.Name,
		Email:     a.Email,
		Role:      a.Role.String(),
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}
