package app

import (
	"context"
	"strings"
	"time"

	"jobzee/internal/common"
	"jobzee/internal/domain/account"
	"jobzee/internal/domain/job"
	"jobzee/internal/domain/profile"
)

// JobService owns the posting lifecycle: creation, the public listing, edits
// by the owning company and archival.
type JobService struct {
	jobs      job.Repository
	companies profile.CompanyRepository
	accounts  account.Repository
	logger    Logger

	// requireApproval hides jobs still awaiting moderation from the public
	// listing.
	requireApproval bool
}

func NewJobService(jobs job.Repository, companies profile.CompanyRepository, accounts account.Repository, logger Logger, requireApproval bool) *JobService {
	return &JobService{
		jobs:            jobs,
		companies:       companies,
		accounts:        accounts,
		logger:          logger,
		requireApproval: requireApproval,
	}
}

type CreateJobInput struct {
	Title           string              `json:"title"`
	Description     string              `json:"description"`
	Category        string              `json:"category"`
	Location        string              `json:"location"`
	Salary          *float64            `json:"salary"`
	JobType         job.Type            `json:"job_type"`
	ExperienceLevel job.ExperienceLevel `json:"experience_level"`
	RequiredSkills  []string            `json:"required_skills"`
	Deadline        *time.Time          `json:"deadline"`
}

func (in *CreateJobInput) validate() error {
	fields := map[string]string{}
	in.Title = strings.TrimSpace(in.Title)
	in.Description = strings.TrimSpace(in.Description)
	if in.Title == "" {
		fields["title"] = "title is required"
	}
	if in.Description == "" {
		fields["description"] = "description is required"
	}
	if strings.TrimSpace(in.Category) == "" {
		fields["category"] = "category is required"
	}
	if strings.TrimSpace(in.Location) == "" {
		fields["location"] = "location is required"
	}
	if !job.ValidType(in.JobType) {
		fields["job_type"] = "job type must be one of Full-time, Part-time, Contract, Temporary or Internship"
	}
	if !job.ValidExperienceLevel(in.ExperienceLevel) {
		fields["experience_level"] = "experience level must be one of Entry, Mid or Senior"
	}
	if in.Salary != nil && *in.Salary < 0 {
		fields["salary"] = "salary must not be negative"
	}
	if len(fields) > 0 {
		return common.NewValidationError("job validation failed", fields)
	}
	return nil
}

// Create posts a job for the caller's company. Alumni without a company
// profile get one provisioned in the same transaction as the job insert.
// Every new job starts in the pending moderation state.
func (s *JobService) Create(ctx context.Context, accountID common.UUID, role account.Role, input CreateJobInput) (*job.Job, error) {
	if role != account.RoleCompany && role != account.RoleAlumni {
		return nil, common.NewError(common.CodeForbidden, "only companies and alumni can post jobs", nil)
	}
	if err := input.validate(); err != nil {
		return nil, err
	}

	posting := job.Job{
		Title:           input.Title,
		Description:     input.Description,
		Category:        strings.TrimSpace(input.Category),
		Location:        strings.TrimSpace(input.Location),
		Salary:          input.Salary,
		JobType:         input.JobType,
		ExperienceLevel: input.ExperienceLevel,
		RequiredSkills:  input.RequiredSkills,
		Deadline:        input.Deadline,
		IsActive:        true,
		ApprovalStatus:  job.ApprovalPending,
	}

	company, err := s.companies.GetByAccountID(ctx, accountID)
	if err != nil {
		if !common.Is(err, common.CodeNotFound) {
			return nil, err
		}
		if role != account.RoleAlumni {
			return nil, common.NewError(common.CodeNotFound, "company profile not found", nil)
		}
		return s.createWithProvisionedCompany(ctx, accountID, posting)
	}

	posting.CompanyID = company.ID
	return s.jobs.Create(ctx, posting)
}

func (s *JobService) createWithProvisionedCompany(ctx context.Context, accountID common.UUID, posting job.Job) (*job.Job, error) {
	acct, err := s.accounts.GetByID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	suffix := accountID.String()
	if len(suffix) > 6 {
		suffix = suffix[:6]
	}
	company := profile.Company{
		AccountID:   accountID,
		CompanyName: "Alumni " + acct.FirstName + " " + acct.LastName + " " + suffix,
		Industry:    "Alumni",
	}
	return s.jobs.CreateWithCompany(ctx, posting, company)
}

type ListJobsInput struct {
	Category        string
	Location        string
	JobType         string
	ExperienceLevel string
	Search          string
	MinSalary       *float64
	MaxSalary       *float64
	Limit           int
	Offset          int
}

type JobPage struct {
	Jobs  []job.WithCompany `json:"jobs"`
	Total int               `json:"total"`
}

// List serves the public board. Archived and deactivated jobs never appear;
// unapproved jobs are hidden only when moderation gating is on.
func (s *JobService) List(ctx context.Context, input ListJobsInput) (*JobPage, error) {
	filter := job.Filter{
		Category:        strings.TrimSpace(input.Category),
		Location:        strings.TrimSpace(input.Location),
		JobType:         strings.TrimSpace(input.JobType),
		ExperienceLevel: strings.TrimSpace(input.ExperienceLevel),
		Search:          strings.TrimSpace(input.Search),
		MinSalary:       input.MinSalary,
		MaxSalary:       input.MaxSalary,
		OnlyApproved:    s.requireApproval,
	}
	jobs, total, err := s.jobs.List(ctx, filter, normalizeLimit(input.Limit), normalizeOffset(input.Offset))
	if err != nil {
		return nil, err
	}
	return &JobPage{Jobs: jobs, Total: total}, nil
}

func (s *JobService) Get(ctx context.Context, id common.UUID) (*job.WithCompany, error) {
	return s.jobs.GetByID(ctx, id)
}

type UpdateJobInput struct {
	Title           *string              `json:"title"`
	Description     *string              `json:"description"`
	Category        *string              `json:"category"`
	Location        *string              `json:"location"`
	Salary          *float64             `json:"salary"`
	JobType         *job.Type            `json:"job_type"`
	ExperienceLevel *job.ExperienceLevel `json:"experience_level"`
	RequiredSkills  []string             `json:"required_skills"`
	Deadline        *time.Time           `json:"deadline"`
	IsActive        *bool                `json:"is_active"`
}

// Update applies the provided fields to an existing job. Only the owning
// company or an admin may edit; moderation fields are untouchable here.
func (s *JobService) Update(ctx context.Context, accountID common.UUID, role account.Role, jobID common.UUID, input UpdateJobInput) (*job.Job, error) {
	existing, err := s.authorizeOwner(ctx, accountID, role, jobID)
	if err != nil {
		return nil, err
	}

	updated := existing.Job
	fields := map[string]string{}
	if input.Title != nil {
		updated.Title = strings.TrimSpace(*input.Title)
		if updated.Title == "" {
			fields["title"] = "title must not be empty"
		}
	}
	if input.Description != nil {
		updated.Description = strings.TrimSpace(*input.Description)
		if updated.Description == "" {
			fields["description"] = "description must not be empty"
		}
	}
	if input.Category != nil {
		updated.Category = strings.TrimSpace(*input.Category)
	}
	if input.Location != nil {
		updated.Location = strings.TrimSpace(*input.Location)
	}
	if input.Salary != nil {
		if *input.Salary < 0 {
			fields["salary"] = "salary must not be negative"
		}
		updated.Salary = input.Salary
	}
	if input.JobType != nil {
		if !job.ValidType(*input.JobType) {
			fields["job_type"] = "job type must be one of Full-time, Part-time, Contract, Temporary or Internship"
		}
		updated.JobType = *input.JobType
	}
	if input.ExperienceLevel != nil {
		if !job.ValidExperienceLevel(*input.ExperienceLevel) {
			fields["experience_level"] = "experience level must be one of Entry, Mid or Senior"
		}
		updated.ExperienceLevel = *input.ExperienceLevel
	}
	if input.RequiredSkills != nil {
		updated.RequiredSkills = input.RequiredSkills
	}
	if input.Deadline != nil {
		updated.Deadline = input.Deadline
	}
	if input.IsActive != nil {
		updated.IsActive = *input.IsActive
	}
	if len(fields) > 0 {
		return nil, common.NewValidationError("job validation failed", fields)
	}

	return s.jobs.Update(ctx, updated)
}

// Archive retires the job from the board. Archived jobs stay readable for the
// owner and for existing applications.
func (s *JobService) Archive(ctx context.Context, accountID common.UUID, role account.Role, jobID common.UUID) (*job.Job, error) {
	existing, err := s.authorizeOwner(ctx, accountID, role, jobID)
	if err != nil {
		return nil, err
	}
	updated := existing.Job
	updated.IsArchived = true
	updated.IsActive = false
	return s.jobs.Update(ctx, updated)
}

func (s *JobService) Delete(ctx context.Context, accountID common.UUID, role account.Role, jobID common.UUID) error {
	if _, err := s.authorizeOwner(ctx, accountID, role, jobID); err != nil {
		return err
	}
	return s.jobs.Delete(ctx, jobID)
}

// ListMine returns all of the caller's jobs regardless of state.
func (s *JobService) ListMine(ctx context.Context, accountID common.UUID) ([]job.Job, error) {
	company, err := s.companies.GetByAccountID(ctx, accountID)
	if err != nil {
		if common.Is(err, common.CodeNotFound) {
			return []job.Job{}, nil
		}
		return nil, err
	}
	return s.jobs.ListByCompany(ctx, company.ID)
}

func (s *JobService) authorizeOwner(ctx context.Context, accountID common.UUID, role account.Role, jobID common.UUID) (*job.WithCompany, error) {
	existing, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if role == account.RoleAdmin {
		return existing, nil
	}
	company, err := s.companies.GetByAccountID(ctx, accountID)
	if err != nil {
		if common.Is(err, common.CodeNotFound) {
			return nil, errNotJobOwner()
		}
		return nil, err
	}
	if company.ID != existing.CompanyID {
		return nil, errNotJobOwner()
	}
	return existing, nil
}

func errNotJobOwner() error {
	return common.NewError(common.CodeForbidden, "you do not own this job", nil)
}

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

func normalizeLimit(limit int) int {
	if limit <= 0 {
		return defaultPageSize
	}
	if limit > maxPageSize {
		return maxPageSize
	}
	return limit
}

func normalizeOffset(offset int) int {
	if offset < 0 {
		return 0
	}
	return offset
}
