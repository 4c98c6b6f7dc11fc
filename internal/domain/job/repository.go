package job

import (
	"context"
	"time"

	"jobzee/internal/common"
	"jobzee/internal/domain/profile"
)

type Repository interface {
	Create(ctx context.Context, j Job) (*Job, error)
	// CreateWithCompany provisions the company profile and inserts the job in a
	// single transaction. Used when an alumni account posts its first job.
	CreateWithCompany(ctx context.Context, j Job, company profile.Company) (*Job, error)
	GetByID(ctx context.Context, id common.UUID) (*WithCompany, error)
	Update(ctx context.Context, j Job) (*Job, error)
	Delete(ctx context.Context, id common.UUID) error
	List(ctx context.Context, filter Filter, limit, offset int) ([]WithCompany, int, error)
	ListByCompany(ctx context.Context, companyID common.UUID) ([]Job, error)
	ListPending(ctx context.Context, limit, offset int) ([]WithCompany, int, error)
	SetApproval(ctx context.Context, id common.UUID, status ApprovalStatus, reason *string, adminID common.UUID, at time.Time) error
	CountByApprovalStatus(ctx context.Context) (map[ApprovalStatus]int, error)
	CountCreatedSince(ctx context.Context, since time.Time) (int, error)
}
