package response

import "tripflow/internal/gateway"

type UserResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name,omitempty"`
	Email string `json:"email"`
}

type AuthResponse struct {
	User UserResponse `json:"user"`
}

func FromAuthResult(result gateway.AuthResult) *AuthResponse {
	return &AuthResponse{
		User: UserResponse{
			ID:    result.UserID,
			Name:  result.Name,
			Email: result.Email,
		},
	}
}
