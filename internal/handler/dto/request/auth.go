package request

import (
	"veritag/internal/domain/user"
)

type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3,max=64"`
	Password string `json:"password" binding:"required,min=8"`
	Role     string `json:"role" binding:"omitempty,oneof=issuer consumer"`
}

func (r *RegisterRequest) ToRole() (user.Role, error) {
	if r.Role == "" {
		return user.RoleConsumer, nil
	}
	return user.NewRole(r.Role)
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required,min=8"`
}

func (r *LoginRequest) ToDomain() (user.Credentials, error) {
	return user.NewCredentials(r.Username, r.Password)
}
