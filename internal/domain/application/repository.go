package application

import (
	"context"
	"time"

	"jobzee/internal/common"
)

type Repository interface {
	Create(ctx context.Context, app Application) (*Application, error)
	GetByID(ctx context.Context, id common.UUID) (*Application, error)
	FindByJobAndSeeker(ctx context.Context, jobID, jobSeekerID common.UUID) (*Application, error)
	ListBySeeker(ctx context.Context, jobSeekerID common.UUID, status *Status, limit, offset int) ([]WithJob, int, error)
	ListByJob(ctx context.Context, jobID common.UUID, limit, offset int) ([]WithApplicant, int, error)
	UpdateStatus(ctx context.Context, id common.UUID, status Status) (*Application, error)
	CountByStatus(ctx context.Context) (map[Status]int, error)
	CountCreatedSince(ctx context.Context, since time.Time) (int, error)
}
