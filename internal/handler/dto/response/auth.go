package response

import "veritag/internal/usecase/commands"

type UserResponse struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Role      string `json:"role"`
	CreatedAt int64  `json:"created_at"`
}

type AuthResponse struct {
	AccessToken string        `json:"access_token"`
	User        *UserResponse `json:"user"`
}

func FromAuthResult(r *commands.AuthResult) *AuthResponse {
	return &AuthResponse{
		AccessToken: r.Token,
		User:        FromUserSnapshot(r.User),
	}
}

func FromUserSnapshot(s *commands.UserSnapshot) *UserResponse {
	return &UserResponse{
		ID:        s.ID.String(),
		Username:  s.Username,
		Role:      s.Role,
		CreatedAt: s.CreatedAt.Unix(),
	}
}
