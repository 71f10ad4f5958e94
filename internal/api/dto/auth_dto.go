package dto

import (
	"time"

	"github.com/spec-kit/reporting-service/internal/domain"
)

// RegisterRequest payload for new accounts. Students register with a
// student number, staff roles with an institutional email.
type RegisterRequest struct {
	Name      string      `json:"name"`
	Email     string      `json:"email"`
	StudentID string      `json:"student_id"`
	Password  string      `json:"password"`
	Role      domain.Role `json:"role"`
}

// LoginRequest payload for login. The identifier is interpreted by role.
type LoginRequest struct {
	Identifier string      `json:"identifier"`
	Password   string      `json:"password"`
	Role       domain.Role `json:"role"`
}

// UserResponse is the public view of an account.
type UserResponse struct {
	ID        int64       `json:"id"`
	Name      string      `json:"name"`
	Role      domain.Role `json:"role"`
	Email     *string     `json:"email"`
	StudentID *string     `json:"student_id"`
	CreatedAt time.Time   `json:"created_at,omitempty"`
}

// LoginResponse bundles the session token with the user's public fields.
type LoginResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expires_at"`
	User      UserResponse `json:"user"`
}

// UpdateRoleRequest payload for the administrative role change.
type UpdateRoleRequest struct {
	Role domain.Role `json:"role"`
}

// FromUser maps a domain user to its public view.
func FromUser(user *domain.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Name:      user.Name,
		Role:      user.Role,
		Email:     user.Email,
		StudentID: user.StudentID,
		CreatedAt: user.CreatedAt,
	}
}
