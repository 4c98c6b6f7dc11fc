package profile

import (
	"context"

	"jobzee/internal/common"
)

type JobSeekerRepository interface {
	GetByID(ctx context.Context, id common.UUID) (*JobSeeker, error)
	GetByAccountID(ctx context.Context, accountID common.UUID) (*JobSeeker, error)
	Update(ctx context.Context, seeker JobSeeker) (*JobSeeker, error)
}

type CompanyRepository interface {
	GetByID(ctx context.Context, id common.UUID) (*Company, error)
	GetByAccountID(ctx context.Context, accountID common.UUID) (*Company, error)
	Update(ctx context.Context, company Company) (*Company, error)
	List(ctx context.Context, limit, offset int) ([]Company, int, error)
}
