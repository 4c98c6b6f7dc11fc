package app

import (
	"context"
	"strings"
	"time"

	"jobzee/internal/common"
	"jobzee/internal/domain/account"
	"jobzee/internal/domain/application"
	"jobzee/internal/domain/job"
)

// AdminService covers job moderation, user administration and the dashboard.
type AdminService struct {
	accounts     account.Repository
	jobs         job.Repository
	applications application.Repository
	logger       Logger
}

func NewAdminService(accounts account.Repository, jobs job.Repository, applications application.Repository, logger Logger) *AdminService {
	return &AdminService{
		accounts:     accounts,
		jobs:         jobs,
		applications: applications,
		logger:       logger,
	}
}

func (s *AdminService) PendingJobs(ctx context.Context, limit, offset int) (*JobPage, error) {
	jobs, total, err := s.jobs.ListPending(ctx, normalizeLimit(limit), normalizeOffset(offset))
	if err != nil {
		return nil, err
	}
	return &JobPage{Jobs: jobs, Total: total}, nil
}

func (s *AdminService) ApproveJob(ctx context.Context, adminID common.UUID, jobID common.UUID) (*job.WithCompany, error) {
	existing, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if existing.ApprovalStatus == job.ApprovalApproved {
		return nil, common.NewValidationError("job is already approved", nil)
	}
	if err := s.jobs.SetApproval(ctx, jobID, job.ApprovalApproved, nil, adminID, time.Now().UTC()); err != nil {
		return nil, err
	}
	s.logInfo("job approved id=" + jobID.String())
	return s.jobs.GetByID(ctx, jobID)
}

func (s *AdminService) RejectJob(ctx context.Context, adminID common.UUID, jobID common.UUID, reason string) (*job.WithCompany, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, common.NewValidationError("rejection reason is required", nil)
	}
	if _, err := s.jobs.GetByID(ctx, jobID); err != nil {
		return nil, err
	}
	if err := s.jobs.SetApproval(ctx, jobID, job.ApprovalRejected, &reason, adminID, time.Now().UTC()); err != nil {
		return nil, err
	}
	s.logInfo("job rejected id=" + jobID.String())
	return s.jobs.GetByID(ctx, jobID)
}

func (s *AdminService) DeleteJob(ctx context.Context, jobID common.UUID) error {
	return s.jobs.Delete(ctx, jobID)
}

type UserPage struct {
	Users []account.Account `json:"users"`
	Total int               `json:"total"`
}

func (s *AdminService) ListUsers(ctx context.Context, filter account.ListFilter, limit, offset int) (*UserPage, error) {
	if filter.Role != nil && !account.ValidRole(*filter.Role) {
		return nil, common.NewValidationError("unknown role", nil)
	}
	users, total, err := s.accounts.List(ctx, filter, normalizeLimit(limit), normalizeOffset(offset))
	if err != nil {
		return nil, err
	}
	return &UserPage{Users: users, Total: total}, nil
}

func (s *AdminService) ChangeRole(ctx context.Context, adminID, userID common.UUID, role account.Role) (*account.Account, error) {
	if !account.ValidRole(role) {
		return nil, common.NewValidationError("unknown role", nil)
	}
	if adminID == userID {
		return nil, errSelfAction("you cannot change your own role")
	}
	if _, err := s.accounts.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	if err := s.accounts.SetRole(ctx, userID, role); err != nil {
		return nil, err
	}
	return s.accounts.GetByID(ctx, userID)
}

func (s *AdminService) DeactivateUser(ctx context.Context, adminID, userID common.UUID) (*account.Account, error) {
	if adminID == userID {
		return nil, errSelfAction("you cannot deactivate your own account")
	}
	if err := s.accounts.SetActive(ctx, userID, false); err != nil {
		return nil, err
	}
	return s.accounts.GetByID(ctx, userID)
}

func (s *AdminService) ReactivateUser(ctx context.Context, userID common.UUID) (*account.Account, error) {
	if err := s.accounts.SetActive(ctx, userID, true); err != nil {
		return nil, err
	}
	return s.accounts.GetByID(ctx, userID)
}

// DeleteUser removes the account and everything hanging off it through the
// cascade chain.
func (s *AdminService) DeleteUser(ctx context.Context, adminID, userID common.UUID) error {
	if adminID == userID {
		return errSelfAction("you cannot delete your own account")
	}
	return s.accounts.Delete(ctx, userID)
}

type DashboardStats struct {
	UsersByRole          map[account.Role]int       `json:"users_by_role"`
	VerifiedUsers        int                        `json:"verified_users"`
	UnverifiedUsers      int                        `json:"unverified_users"`
	RecentUsers          int                        `json:"recent_users"`
	JobsByApproval       map[job.ApprovalStatus]int `json:"jobs_by_approval"`
	RecentJobs           int                        `json:"recent_jobs"`
	ApplicationsByStatus map[application.Status]int `json:"applications_by_status"`
	RecentApplications   int                        `json:"recent_applications"`
}

// Stats aggregates the dashboard counters. Recent counters cover the last 30
// days.
func (s *AdminService) Stats(ctx context.Context) (*DashboardStats, error) {
	since := time.Now().UTC().AddDate(0, 0, -30)

	accountStats, err := s.accounts.CountStats(ctx, since)
	if err != nil {
		return nil, err
	}
	jobsByApproval, err := s.jobs.CountByApprovalStatus(ctx)
	if err != nil {
		return nil, err
	}
	recentJobs, err := s.jobs.CountCreatedSince(ctx, since)
	if err != nil {
		return nil, err
	}
	applicationsByStatus, err := s.applications.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}
	recentApplications, err := s.applications.CountCreatedSince(ctx, since)
	if err != nil {
		return nil, err
	}

	return &DashboardStats{
		UsersByRole:          accountStats.ByRole,
		VerifiedUsers:        accountStats.Verified,
		UnverifiedUsers:      accountStats.Unverified,
		RecentUsers:          accountStats.RecentAccounts,
		JobsByApproval:       jobsByApproval,
		RecentJobs:           recentJobs,
		ApplicationsByStatus: applicationsByStatus,
		RecentApplications:   recentApplications,
	}, nil
}

func (s *AdminService) logInfo(msg string) {
	if s.logger == nil {
		return
	}
	s.logger.Info(msg)
}

func errSelfAction(msg string) error {
	return common.NewValidationError(msg, nil)
}
