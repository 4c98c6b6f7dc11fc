package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lib/pq"

	"jobzee/internal/common"
	"jobzee/internal/domain/job"
	"jobzee/internal/domain/profile"
)

type JobRepository struct {
	db *sql.DB
}

func NewJobRepository(db *sql.DB) *JobRepository {
	return &JobRepository{db: db}
}

const jobColumns = `j.id, j.company_id, j.title, j.description, j.category, j.location, j.salary, j.job_type, j.experience_level, j.required_skills, j.deadline, j.is_active, j.is_archived, j.approval_status, j.rejection_reason, j.approved_by, j.approved_at, j.created_at, j.updated_at`

const jobInsert = `INSERT INTO jobs (id, company_id, title, description, category, location, salary, job_type, experience_level, required_skills, deadline, is_active, is_archived, approval_status, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`

func (r *JobRepository) Create(ctx context.Context, j job.Job) (*job.Job, error) {
	j.ID = common.NewUUID()
	now := time.Now().UTC()
	j.CreatedAt = now
	j.UpdatedAt = now
	_, err := r.db.ExecContext(ctx, jobInsert,
		j.ID, j.CompanyID, j.Title, j.Description, j.Category, j.Location, j.Salary, j.JobType,
		j.ExperienceLevel, pq.Array(j.RequiredSkills), j.Deadline, j.IsActive, j.IsArchived, j.ApprovalStatus,
		j.CreatedAt, j.UpdatedAt)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to create job", err)
	}
	return &j, nil
}

func (r *JobRepository) CreateWithCompany(ctx context.Context, j job.Job, company profile.Company) (*job.Job, error) {
	j.ID = common.NewUUID()
	company.ID = common.NewUUID()
	j.CompanyID = company.ID
	now := time.Now().UTC()
	j.CreatedAt = now
	j.UpdatedAt = now

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to begin transaction", err)
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.ExecContext(ctx, `INSERT INTO companies (id, account_id, company_name, industry, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		company.ID, company.AccountID, company.CompanyName, company.Industry, now, now)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, common.NewError(common.CodeDuplicate, "company profile already exists", err)
		}
		return nil, common.NewError(common.CodeInternal, "failed to provision company profile", err)
	}

	_, err = tx.ExecContext(ctx, jobInsert,
		j.ID, j.CompanyID, j.Title, j.Description, j.Category, j.Location, j.Salary, j.JobType,
		j.ExperienceLevel, pq.Array(j.RequiredSkills), j.Deadline, j.IsActive, j.IsArchived, j.ApprovalStatus,
		j.CreatedAt, j.UpdatedAt)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to create job", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to commit job creation", err)
	}
	return &j, nil
}

const jobWithCompanySelect = `SELECT ` + jobColumns + `, c.id, c.company_name, c.industry, c.location, c.website, c.logo_url
	FROM jobs j JOIN companies c ON c.id = j.company_id`

func (r *JobRepository) GetByID(ctx context.Context, id common.UUID) (*job.WithCompany, error) {
	row := r.db.QueryRowContext(ctx, jobWithCompanySelect+` WHERE j.id = $1`, id)
	item, err := scanJobWithCompany(row)
	if err != nil {
		return nil, err
	}
	return item, nil
}

func (r *JobRepository) Update(ctx context.Context, j job.Job) (*job.Job, error) {
	j.UpdatedAt = time.Now().UTC()
	result, err := r.db.ExecContext(ctx, `UPDATE jobs SET title = $1, description = $2, category = $3, location = $4, salary = $5, job_type = $6, experience_level = $7, required_skills = $8, deadline = $9, is_active = $10, is_archived = $11, updated_at = $12
		WHERE id = $13`,
		j.Title, j.Description, j.Category, j.Location, j.Salary, j.JobType, j.ExperienceLevel,
		pq.Array(j.RequiredSkills), j.Deadline, j.IsActive, j.IsArchived, j.UpdatedAt, j.ID)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to update job", err)
	}
	rows, err := result.RowsAffected()
	if err == nil && rows == 0 {
		return nil, common.NewError(common.CodeNotFound, "job not found", sql.ErrNoRows)
	}
	return &j, nil
}

func (r *JobRepository) Delete(ctx context.Context, id common.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM jobs WHERE id = $1`, id)
	if err != nil {
		return common.NewError(common.CodeInternal, "failed to delete job", err)
	}
	rows, err := result.RowsAffected()
	if err == nil && rows == 0 {
		return common.NewError(common.CodeNotFound, "job not found", sql.ErrNoRows)
	}
	return nil
}

func (r *JobRepository) List(ctx context.Context, filter job.Filter, limit, offset int) ([]job.WithCompany, int, error) {
	conditions := []string{"j.is_active = TRUE", "j.is_archived = FALSE"}
	args := []interface{}{}
	if filter.OnlyApproved {
		args = append(args, job.ApprovalApproved)
		conditions = append(conditions, fmt.Sprintf("j.approval_status = $%d", len(args)))
	}
	if filter.Category != "" {
		args = append(args, filter.Category)
		conditions = append(conditions, fmt.Sprintf("j.category = $%d", len(args)))
	}
	if filter.Location != "" {
		args = append(args, "%"+filter.Location+"%")
		conditions = append(conditions, fmt.Sprintf("j.location ILIKE $%d", len(args)))
	}
	if filter.JobType != "" {
		args = append(args, filter.JobType)
		conditions = append(conditions, fmt.Sprintf("j.job_type = $%d", len(args)))
	}
	if filter.ExperienceLevel != "" {
		args = append(args, filter.ExperienceLevel)
		conditions = append(conditions, fmt.Sprintf("j.experience_level = $%d", len(args)))
	}
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		conditions = append(conditions, fmt.Sprintf("(j.title ILIKE $%d OR j.description ILIKE $%d)", len(args), len(args)))
	}
	if filter.MinSalary != nil {
		args = append(args, *filter.MinSalary)
		conditions = append(conditions, fmt.Sprintf("j.salary >= $%d", len(args)))
	}
	if filter.MaxSalary != nil {
		args = append(args, *filter.MaxSalary)
		conditions = append(conditions, fmt.Sprintf("j.salary <= $%d", len(args)))
	}
	where := strings.Join(conditions, " AND ")

	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM jobs j WHERE `+where, args...).Scan(&total); err != nil {
		return nil, 0, common.NewError(common.CodeInternal, "failed to count jobs", err)
	}

	args = append(args, limit, offset)
	query := fmt.Sprintf(jobWithCompanySelect+` WHERE %s ORDER BY j.created_at DESC LIMIT $%d OFFSET $%d`, where, len(args)-1, len(args))
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, common.NewError(common.CodeInternal, "failed to list jobs", err)
	}
	defer rows.Close()
	var items []job.WithCompany
	for rows.Next() {
		item, err := scanJobWithCompany(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, *item)
	}
	return items, total, nil
}

func (r *JobRepository) ListByCompany(ctx context.Context, companyID common.UUID) ([]job.Job, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+jobColumns+` FROM jobs j WHERE j.company_id = $1 ORDER BY j.created_at DESC`, companyID)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to list company jobs", err)
	}
	defer rows.Close()
	var items []job.Job
	for rows.Next() {
		item, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *item)
	}
	return items, nil
}

func (r *JobRepository) ListPending(ctx context.Context, limit, offset int) ([]job.WithCompany, int, error) {
	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM jobs j WHERE j.approval_status = $1`, job.ApprovalPending).Scan(&total); err != nil {
		return nil, 0, common.NewError(common.CodeInternal, "failed to count pending jobs", err)
	}
	rows, err := r.db.QueryContext(ctx, jobWithCompanySelect+` WHERE j.approval_status = $1 ORDER BY j.created_at DESC LIMIT $2 OFFSET $3`, job.ApprovalPending, limit, offset)
	if err != nil {
		return nil, 0, common.NewError(common.CodeInternal, "failed to list pending jobs", err)
	}
	defer rows.Close()
	var items []job.WithCompany
	for rows.Next() {
		item, err := scanJobWithCompany(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, *item)
	}
	return items, total, nil
}

func (r *JobRepository) SetApproval(ctx context.Context, id common.UUID, status job.ApprovalStatus, reason *string, adminID common.UUID, at time.Time) error {
	result, err := r.db.ExecContext(ctx, `UPDATE jobs SET approval_status = $1, rejection_reason = $2, approved_by = $3, approved_at = $4, updated_at = $5 WHERE id = $6`,
		status, reason, adminID, at, time.Now().UTC(), id)
	if err != nil {
		return common.NewError(common.CodeInternal, "failed to update approval status", err)
	}
	rows, err := result.RowsAffected()
	if err == nil && rows == 0 {
		return common.NewError(common.CodeNotFound, "job not found", sql.ErrNoRows)
	}
	return nil
}

func (r *JobRepository) CountByApprovalStatus(ctx context.Context) (map[job.ApprovalStatus]int, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT approval_status, COUNT(*) FROM jobs GROUP BY approval_status`)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to count jobs by status", err)
	}
	defer rows.Close()
	counts := make(map[job.ApprovalStatus]int)
	for rows.Next() {
		var status job.ApprovalStatus
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, common.NewError(common.CodeInternal, "failed to scan job status count", err)
		}
		counts[status] = count
	}
	return counts, nil
}

func (r *JobRepository) CountCreatedSince(ctx context.Context, since time.Time) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM jobs WHERE created_at >= $1`, since).Scan(&count); err != nil {
		return 0, common.NewError(common.CodeInternal, "failed to count recent jobs", err)
	}
	return count, nil
}

func scanJob(row rowScanner) (*job.Job, error) {
	var j job.Job
	err := row.Scan(&j.ID, &j.CompanyID, &j.Title, &j.Description, &j.Category, &j.Location, &j.Salary,
		&j.JobType, &j.ExperienceLevel, pq.Array(&j.RequiredSkills), &j.Deadline, &j.IsActive, &j.IsArchived,
		&j.ApprovalStatus, &j.RejectionReason, &j.ApprovedBy, &j.ApprovedAt, &j.CreatedAt, &j.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.NewError(common.CodeNotFound, "job not found", err)
		}
		return nil, common.NewError(common.CodeInternal, "failed to load job", err)
	}
	if j.RequiredSkills == nil {
		j.RequiredSkills = []string{}
	}
	return &j, nil
}

func scanJobWithCompany(row rowScanner) (*job.WithCompany, error) {
	var item job.WithCompany
	var industry, location, website, logoURL sql.NullString
	err := row.Scan(&item.ID, &item.CompanyID, &item.Title, &item.Description, &item.Category, &item.Location,
		&item.Salary, &item.JobType, &item.ExperienceLevel, pq.Array(&item.RequiredSkills), &item.Deadline,
		&item.IsActive, &item.IsArchived, &item.ApprovalStatus, &item.RejectionReason, &item.ApprovedBy,
		&item.ApprovedAt, &item.CreatedAt, &item.UpdatedAt,
		&item.Company.ID, &item.Company.CompanyName, &industry, &location, &website, &logoURL)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.NewError(common.CodeNotFound, "job not found", err)
		}
		return nil, common.NewError(common.CodeInternal, "failed to load job", err)
	}
	item.Company.Industry = industry.String
	item.Company.Location = location.String
	item.Company.Website = website.String
	item.Company.LogoURL = logoURL.String
	if item.RequiredSkills == nil {
		item.RequiredSkills = []string{}
	}
	return &item, nil
}
