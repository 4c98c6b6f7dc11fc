package account

import (
	"time"

	"jobzee/internal/common"
)

type Role string

const (
	RoleStudent Role = "student"
	RoleAlumni  Role = "alumni"
	RoleCompany Role = "company"
	RoleAdmin   Role = "admin"
)

func ValidRole(role Role) bool {
	switch role {
	case RoleStudent, RoleAlumni, RoleCompany, RoleAdmin:
		return true
	default:
		return false
	}
}

// IsJobSeeker reports whether the role owns a job-seeker profile.
func (r Role) IsJobSeeker() bool {
	return r == RoleStudent || r == RoleAlumni
}

type Account struct {
	ID                     common.UUID `json:"id"`
	FirstName              string      `json:"first_name"`
	LastName               string      `json:"last_name"`
	Email                  string      `json:"email"`
	PasswordHash           string      `json:"-"`
	Role                   Role        `json:"role"`
	EmailVerified          bool        `json:"email_verified"`
	EmailVerificationToken *string     `json:"-"`
	PasswordResetToken     *string     `json:"-"`
	PasswordResetExpires   *time.Time  `json:"-"`
	LastLogin              *time.Time  `json:"last_login,omitempty"`
	IsActive               bool        `json:"is_active"`
	CreatedAt              time.Time   `json:"created_at"`
	UpdatedAt              time.Time   `json:"updated_at"`
}
