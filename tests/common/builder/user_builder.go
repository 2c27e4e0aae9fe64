//go:build unit || e2e

package builder

import (
	"time"

	"veritag/internal/domain/user"
	"veritag/internal/usecase/commands"

	"github.com/google/uuid"
)

type UserBuilder struct {
	Username     string
	Password     string
	PasswordHash string
	Role         string
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		Username:     "test-issuer",
		Password:     "password123",
		PasswordHash: "hashed_password",
		Role:         "issuer",
	}
}

// Build methods
func (u *UserBuilder) BuildDomain() (*user.User, error) {
	username, err := user.NewUsername(u.Username)
	if err != nil {
		return nil, err
	}

	role, err := user.NewRole(u.Role)
	if err != nil {
		return nil, err
	}

	return user.NewUser(username, u.PasswordHash, role), nil
}

func (u *UserBuilder) BuildSnapshot() *commands.UserSnapshot {
	return &commands.UserSnapshot{
		ID:        uuid.New(),
		Username:  u.Username,
		Role:      u.Role,
		CreatedAt: time.Now(),
	}
}

func (u *UserBuilder) BuildRegisterDTO() map[string]any {
	return map[string]any{
		"username": u.Username,
		"password": u.Password,
		"role":     u.Role,
	}
}

func (u *UserBuilder) BuildLoginDTO() map[string]any {
	return map[string]any{
		"username": u.Username,
		"password": u.Password,
	}
}

// Fluent builder methods
func (u *UserBuilder) WithUsername(username string) *UserBuilder {
	u.Username = username
	return u
}

func (u *UserBuilder) WithPassword(password string) *UserBuilder {
	u.Password = password
	return u
}

func (u *UserBuilder) WithRole(role string) *UserBuilder {
	u.Role = role
	return u
}
