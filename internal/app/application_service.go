package app

import (
	"context"
	"strings"

	"jobzee/internal/common"
	"jobzee/internal/domain/account"
	"jobzee/internal/domain/application"
	"jobzee/internal/domain/job"
	"jobzee/internal/domain/profile"
)

// ApplicationService handles the apply flow and the status pipeline between
// job seekers and the companies that own the jobs.
type ApplicationService struct {
	applications application.Repository
	jobs         job.Repository
	seekers      profile.JobSeekerRepository
	companies    profile.CompanyRepository
	logger       Logger
}

func NewApplicationService(applications application.Repository, jobs job.Repository, seekers profile.JobSeekerRepository, companies profile.CompanyRepository, logger Logger) *ApplicationService {
	return &ApplicationService{
		applications: applications,
		jobs:         jobs,
		seekers:      seekers,
		companies:    companies,
		logger:       logger,
	}
}

type ApplyInput struct {
	JobID       common.UUID `json:"job_id"`
	CoverLetter string      `json:"cover_letter"`
}

// Apply submits an application for the caller. The job must still be live and
// the seeker may apply to each job once.
func (s *ApplicationService) Apply(ctx context.Context, accountID common.UUID, role account.Role, input ApplyInput) (*application.Application, error) {
	if !role.IsJobSeeker() {
		return nil, common.NewError(common.CodeForbidden, "only job seekers can apply to jobs", nil)
	}
	if input.JobID == "" {
		return nil, common.NewValidationError("job_id is required", nil)
	}

	seeker, err := s.seekers.GetByAccountID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	posting, err := s.jobs.GetByID(ctx, input.JobID)
	if err != nil {
		return nil, err
	}
	if !posting.IsActive || posting.IsArchived {
		return nil, common.NewValidationError("this job is no longer accepting applications", nil)
	}
	// Pre-check for a friendlier message; the unique index still backstops
	// concurrent applies.
	if _, err := s.applications.FindByJobAndSeeker(ctx, posting.ID, seeker.ID); err == nil {
		return nil, common.NewError(common.CodeDuplicate, "you have already applied to this job", nil)
	} else if !common.Is(err, common.CodeNotFound) {
		return nil, err
	}

	return s.applications.Create(ctx, application.Application{
		JobID:       posting.ID,
		JobSeekerID: seeker.ID,
		Status:      application.StatusApplied,
		CoverLetter: strings.TrimSpace(input.CoverLetter),
	})
}

type ApplicationPage struct {
	Applications []application.WithJob `json:"applications"`
	Total        int                   `json:"total"`
}

// ListMine returns the caller's applications, newest first, with the parent
// job summary attached.
func (s *ApplicationService) ListMine(ctx context.Context, accountID common.UUID, status *application.Status, limit, offset int) (*ApplicationPage, error) {
	if status != nil && *status != application.StatusApplied && !application.ValidUpdateStatus(*status) {
		return nil, common.NewValidationError("unknown application status", nil)
	}
	seeker, err := s.seekers.GetByAccountID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	items, total, err := s.applications.ListBySeeker(ctx, seeker.ID, status, normalizeLimit(limit), normalizeOffset(offset))
	if err != nil {
		return nil, err
	}
	return &ApplicationPage{Applications: items, Total: total}, nil
}

type ApplicantPage struct {
	Applications []application.WithApplicant `json:"applications"`
	Total        int                         `json:"total"`
}

// ListForJob returns the applications on a job for its owning company or an
// admin.
func (s *ApplicationService) ListForJob(ctx context.Context, accountID common.UUID, role account.Role, jobID common.UUID, limit, offset int) (*ApplicantPage, error) {
	if _, err := s.authorizeJobOwner(ctx, accountID, role, jobID); err != nil {
		return nil, err
	}
	items, total, err := s.applications.ListByJob(ctx, jobID, normalizeLimit(limit), normalizeOffset(offset))
	if err != nil {
		return nil, err
	}
	return &ApplicantPage{Applications: items, Total: total}, nil
}

// UpdateStatus moves an application through the pipeline. Only the company
// owning the job or an admin may do it, and applied cannot be re-entered.
func (s *ApplicationService) UpdateStatus(ctx context.Context, accountID common.UUID, role account.Role, applicationID common.UUID, status application.Status) (*application.Application, error) {
	if !application.ValidUpdateStatus(status) {
		return nil, common.NewValidationError("status must be one of reviewing, interview, accepted or rejected", nil)
	}
	app, err := s.applications.GetByID(ctx, applicationID)
	if err != nil {
		return nil, err
	}
	if _, err := s.authorizeJobOwner(ctx, accountID, role, app.JobID); err != nil {
		return nil, err
	}
	return s.applications.UpdateStatus(ctx, applicationID, status)
}

func (s *ApplicationService) authorizeJobOwner(ctx context.Context, accountID common.UUID, role account.Role, jobID common.UUID) (*job.WithCompany, error) {
	posting, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if role == account.RoleAdmin {
		return posting, nil
	}
	company, err := s.companies.GetByAccountID(ctx, accountID)
	if err != nil {
		if common.Is(err, common.CodeNotFound) {
			return nil, errNotJobOwner()
		}
		return nil, err
	}
	if company.ID != posting.CompanyID {
		return nil, errNotJobOwner()
	}
	return posting, nil
}
