package user

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrInvalidUsername = errors.New("invalid username")
	ErrInvalidPassword = errors.New("invalid password")
	ErrInvalidRole     = errors.New("invalid role")
)

const (
	MinUsernameLength = 3
	MaxUsernameLength = 64
	MinPasswordLength = 8
)

var usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9._-]+$`)

type Username string

func NewUsername(s string) (Username, error) {
	s = strings.TrimSpace(s)
	if len(s) < MinUsernameLength || len(s) > MaxUsernameLength {
		return "", ErrInvalidUsername
	}
	if !usernamePattern.MatchString(s) {
		return "", ErrInvalidUsername
	}
	return Username(s), nil
}

func (u Username) String() string {
	return string(u)
}

type Password string

func NewPassword(s string) (Password, error) {
	if len(s) < MinPasswordLength {
		return "", ErrInvalidPassword
	}
	return Password(s), nil
}

func (p Password) Value() string {
	return string(p)
}

// Credentials carries a login attempt before verification.
type Credentials struct {
	username Username
	password Password
}

func NewCredentials(username, password string) (Credentials, error) {
	u, err := NewUsername(username)
	if err != nil {
		return Credentials{}, err
	}
	p, err := NewPassword(password)
	if err != nil {
		return Credentials{}, err
	}
	return Credentials{username: u, password: p}, nil
}

func (c Credentials) Username() Username { return c.username }
func (c Credentials) Password() Password { return c.password }
