package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"jobzee/internal/common"
	"jobzee/internal/domain/application"
)

type ApplicationRepository struct {
	db *sql.DB
}

func NewApplicationRepository(db *sql.DB) *ApplicationRepository {
	return &ApplicationRepository{db: db}
}

const applicationColumns = `a.id, a.job_id, a.job_seeker_id, a.status, a.cover_letter, a.applied_at, a.updated_at`

func (r *ApplicationRepository) Create(ctx context.Context, app application.Application) (*application.Application, error) {
	app.ID = common.NewUUID()
	now := time.Now().UTC()
	app.AppliedAt = now
	app.UpdatedAt = now
	_, err := r.db.ExecContext(ctx, `INSERT INTO applications (id, job_id, job_seeker_id, status, cover_letter, applied_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		app.ID, app.JobID, app.JobSeekerID, app.Status, app.CoverLetter, app.AppliedAt, app.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, common.NewError(common.CodeDuplicate, "you have already applied to this job", err)
		}
		return nil, common.NewError(common.CodeInternal, "failed to create application", err)
	}
	return &app, nil
}

func (r *ApplicationRepository) GetByID(ctx context.Context, id common.UUID) (*application.Application, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+applicationColumns+` FROM applications a WHERE a.id = $1`, id)
	return scanApplication(row)
}

func (r *ApplicationRepository) FindByJobAndSeeker(ctx context.Context, jobID, jobSeekerID common.UUID) (*application.Application, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+applicationColumns+` FROM applications a WHERE a.job_id = $1 AND a.job_seeker_id = $2`, jobID, jobSeekerID)
	return scanApplication(row)
}

func (r *ApplicationRepository) ListBySeeker(ctx context.Context, jobSeekerID common.UUID, status *application.Status, limit, offset int) ([]application.WithJob, int, error) {
	where := `a.job_seeker_id = $1`
	args := []interface{}{jobSeekerID}
	if status != nil {
		args = append(args, *status)
		where += fmt.Sprintf(" AND a.status = $%d", len(args))
	}

	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM applications a WHERE `+where, args...).Scan(&total); err != nil {
		return nil, 0, common.NewError(common.CodeInternal, "failed to count applications", err)
	}

	args = append(args, limit, offset)
	query := fmt.Sprintf(`SELECT `+applicationColumns+`, j.id, j.title, j.location, c.company_name
		FROM applications a
		JOIN jobs j ON j.id = a.job_id
		JOIN companies c ON c.id = j.company_id
		WHERE %s ORDER BY a.applied_at DESC LIMIT $%d OFFSET $%d`, where, len(args)-1, len(args))
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, common.NewError(common.CodeInternal, "failed to list applications", err)
	}
	defer rows.Close()
	var items []application.WithJob
	for rows.Next() {
		var item application.WithJob
		var coverLetter, jobLocation sql.NullString
		err := rows.Scan(&item.ID, &item.JobID, &item.JobSeekerID, &item.Status, &coverLetter, &item.AppliedAt, &item.UpdatedAt,
			&item.Job.JobID, &item.Job.Title, &jobLocation, &item.Job.CompanyName)
		if err != nil {
			return nil, 0, common.NewError(common.CodeInternal, "failed to scan application", err)
		}
		item.CoverLetter = coverLetter.String
		item.Job.Location = jobLocation.String
		items = append(items, item)
	}
	return items, total, nil
}

func (r *ApplicationRepository) ListByJob(ctx context.Context, jobID common.UUID, limit, offset int) ([]application.WithApplicant, int, error) {
	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM applications a WHERE a.job_id = $1`, jobID).Scan(&total); err != nil {
		return nil, 0, common.NewError(common.CodeInternal, "failed to count job applications", err)
	}
	rows, err := r.db.QueryContext(ctx, `SELECT `+applicationColumns+`, s.id, u.first_name, u.last_name, u.email, s.location, s.skills, s.resume_url
		FROM applications a
		JOIN job_seekers s ON s.id = a.job_seeker_id
		JOIN accounts u ON u.id = s.account_id
		WHERE a.job_id = $1 ORDER BY a.applied_at DESC LIMIT $2 OFFSET $3`, jobID, limit, offset)
	if err != nil {
		return nil, 0, common.NewError(common.CodeInternal, "failed to list job applications", err)
	}
	defer rows.Close()
	var items []application.WithApplicant
	for rows.Next() {
		var item application.WithApplicant
		var coverLetter, seekerLocation, resumeURL sql.NullString
		err := rows.Scan(&item.ID, &item.JobID, &item.JobSeekerID, &item.Status, &coverLetter, &item.AppliedAt, &item.UpdatedAt,
			&item.Applicant.JobSeekerID, &item.Applicant.FirstName, &item.Applicant.LastName, &item.Applicant.Email,
			&seekerLocation, pq.Array(&item.Applicant.Skills), &resumeURL)
		if err != nil {
			return nil, 0, common.NewError(common.CodeInternal, "failed to scan job application", err)
		}
		item.CoverLetter = coverLetter.String
		item.Applicant.Location = seekerLocation.String
		item.Applicant.ResumeURL = resumeURL.String
		if item.Applicant.Skills == nil {
			item.Applicant.Skills = []string{}
		}
		items = append(items, item)
	}
	return items, total, nil
}

func (r *ApplicationRepository) UpdateStatus(ctx context.Context, id common.UUID, status application.Status) (*application.Application, error) {
	_, err := r.db.ExecContext(ctx, `UPDATE applications SET status = $1, updated_at = $2 WHERE id = $3`, status, time.Now().UTC(), id)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to update application", err)
	}
	return r.GetByID(ctx, id)
}

func (r *ApplicationRepository) CountByStatus(ctx context.Context) (map[application.Status]int, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT status, COUNT(*) FROM applications GROUP BY status`)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to count applications by status", err)
	}
	defer rows.Close()
	counts := make(map[application.Status]int)
	for rows.Next() {
		var status application.Status
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, common.NewError(common.CodeInternal, "failed to scan application status count", err)
		}
		counts[status] = count
	}
	return counts, nil
}

func (r *ApplicationRepository) CountCreatedSince(ctx context.Context, since time.Time) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM applications WHERE applied_at >= $1`, since).Scan(&count); err != nil {
		return 0, common.NewError(common.CodeInternal, "failed to count recent applications", err)
	}
	return count, nil
}

func scanApplication(row rowScanner) (*application.Application, error) {
	var app application.Application
	var coverLetter sql.NullString
	err := row.Scan(&app.ID, &app.JobID, &app.JobSeekerID, &app.Status, &coverLetter, &app.AppliedAt, &app.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.NewError(common.CodeNotFound, "application not found", err)
		}
		return nil, common.NewError(common.CodeInternal, "failed to load application", err)
	}
	app.CoverLetter = coverLetter.String
	return &app, nil
}
