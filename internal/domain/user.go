package domain

import "time"

// Role enumerates the fixed set of account roles.
type Role string

const (
	RoleStudent           Role = "student"
	RoleLecturer          Role = "lecturer"
	RolePrincipalLecturer Role = "prl"
	RoleProgramLeader     Role = "pl"
)

// ValidRole reports whether the role belongs to the closed set.
func ValidRole(r Role) bool {
	switch r {
	case RoleStudent, RoleLecturer, RolePrincipalLecturer, RoleProgramLeader:
		return true
	}
	return false
}

// User is the domain model for all account holders. Exactly one of Email or
// StudentID is populated, determined by Role: students carry a student
// number, every other role an institutional email.
type User struct {
	ID           int64
	Name         string
	Email        *string
	StudentID    *string
	Role         Role
	PasswordHash string
	CreatedAt    time.Time
}

// Identifier returns the login handle for the user's role.
func (u *User) Identifier() string {
	if u.Role == RoleStudent {
		if u.StudentID != nil {
			return *u.StudentID
		}
		return ""
	}
	if u.Email != nil {
		return *u.Email
	}
	return ""
}
