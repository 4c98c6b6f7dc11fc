package account

import (
	"context"
	"time"

	"jobzee/internal/common"
)

type ListFilter struct {
	Role          *Role
	IsActive      *bool
	EmailVerified *bool
}

type Stats struct {
	ByRole         map[Role]int
	Verified       int
	Unverified     int
	RecentAccounts int
}

type Repository interface {
	// CreateWithProfile inserts the account together with its role-matching
	// profile row (job seeker for student/alumni, company for company) in a
	// single transaction.
	CreateWithProfile(ctx context.Context, acct Account) (*Account, error)
	GetByID(ctx context.Context, id common.UUID) (*Account, error)
	GetByEmail(ctx context.Context, email string) (*Account, error)
	GetByVerificationToken(ctx context.Context, token string) (*Account, error)
	// GetByResetToken matches only tokens whose expiry is after now.
	GetByResetToken(ctx context.Context, token string, now time.Time) (*Account, error)
	UpdateLastLogin(ctx context.Context, id common.UUID, at time.Time) error
	SetEmailVerified(ctx context.Context, id common.UUID) error
	SetVerificationToken(ctx context.Context, id common.UUID, token string) error
	SetResetToken(ctx context.Context, id common.UUID, token string, expires time.Time) error
	SetPassword(ctx context.Context, id common.UUID, passwordHash string) error
	SetRole(ctx context.Context, id common.UUID, role Role) error
	SetActive(ctx context.Context, id common.UUID, active bool) error
	// Delete removes the account; profile, jobs, applications and reviews go
	// with it through ON DELETE CASCADE.
	Delete(ctx context.Context, id common.UUID) error
	List(ctx context.Context, filter ListFilter, limit, offset int) ([]Account, int, error)
	CountStats(ctx context.Context, since time.Time) (*Stats, error)
}
