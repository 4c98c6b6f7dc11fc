package review

import (
	"context"

	"jobzee/internal/common"
)

type Repository interface {
	Create(ctx context.Context, r Review) (*Review, error)
	GetByID(ctx context.Context, id common.UUID) (*Review, error)
	FindByCompanyAndSeeker(ctx context.Context, companyID, jobSeekerID common.UUID) (*Review, error)
	ListByCompany(ctx context.Context, companyID common.UUID, limit, offset int) ([]WithReviewer, int, error)
	AverageRating(ctx context.Context, companyID common.UUID) (float64, error)
	Update(ctx context.Context, r Review) (*Review, error)
	Delete(ctx context.Context, id common.UUID) error
}
