package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/lib/pq"

	"jobzee/internal/common"
	"jobzee/internal/domain/profile"
)

type JobSeekerRepository struct {
	db *sql.DB
}

func NewJobSeekerRepository(db *sql.DB) *JobSeekerRepository {
	return &JobSeekerRepository{db: db}
}

const jobSeekerColumns = `id, account_id, bio, phone, location, skills, experience_years, education, resume_url, resume_file_name, resume_uploaded_at, created_at, updated_at`

func (r *JobSeekerRepository) GetByID(ctx context.Context, id common.UUID) (*profile.JobSeeker, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+jobSeekerColumns+` FROM job_seekers WHERE id = $1`, id)
	return scanJobSeeker(row)
}

func (r *JobSeekerRepository) GetByAccountID(ctx context.Context, accountID common.UUID) (*profile.JobSeeker, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+jobSeekerColumns+` FROM job_seekers WHERE account_id = $1`, accountID)
	return scanJobSeeker(row)
}

func (r *JobSeekerRepository) Update(ctx context.Context, seeker profile.JobSeeker) (*profile.JobSeeker, error) {
	seeker.UpdatedAt = time.Now().UTC()
	education, err := json.Marshal(seeker.Education)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to encode education", err)
	}
	result, err := r.db.ExecContext(ctx, `UPDATE job_seekers SET bio = $1, phone = $2, location = $3, skills = $4, experience_years = $5, education = $6, resume_url = $7, resume_file_name = $8, resume_uploaded_at = $9, updated_at = $10
		WHERE id = $11`,
		seeker.Bio, seeker.Phone, seeker.Location, pq.Array(seeker.Skills), seeker.ExperienceYears, education,
		seeker.ResumeURL, seeker.ResumeFileName, seeker.ResumeUploadedAt, seeker.UpdatedAt, seeker.ID)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to update job seeker profile", err)
	}
	rows, err := result.RowsAffected()
	if err == nil && rows == 0 {
		return nil, common.NewError(common.CodeNotFound, "job seeker profile not found", sql.ErrNoRows)
	}
	return &seeker, nil
}

func scanJobSeeker(row rowScanner) (*profile.JobSeeker, error) {
	var seeker profile.JobSeeker
	var bio, phone, location, resumeURL, resumeFileName sql.NullString
	var education []byte
	err := row.Scan(&seeker.ID, &seeker.AccountID, &bio, &phone, &location, pq.Array(&seeker.Skills),
		&seeker.ExperienceYears, &education, &resumeURL, &resumeFileName, &seeker.ResumeUploadedAt,
		&seeker.CreatedAt, &seeker.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.NewError(common.CodeNotFound, "job seeker profile not found", err)
		}
		return nil, common.NewError(common.CodeInternal, "failed to load job seeker profile", err)
	}
	seeker.Bio = bio.String
	seeker.Phone = phone.String
	seeker.Location = location.String
	seeker.ResumeURL = resumeURL.String
	seeker.ResumeFileName = resumeFileName.String
	if len(education) > 0 {
		if err := json.Unmarshal(education, &seeker.Education); err != nil {
			return nil, common.NewError(common.CodeInternal, "failed to decode education", err)
		}
	}
	if seeker.Skills == nil {
		seeker.Skills = []string{}
	}
	if seeker.Education == nil {
		seeker.Education = []profile.EducationEntry{}
	}
	return &seeker, nil
}

type CompanyRepository struct {
	db *sql.DB
}

func NewCompanyRepository(db *sql.DB) *CompanyRepository {
	return &CompanyRepository{db: db}
}

const companyColumns = `id, account_id, company_name, description, website, industry, location, employee_count, logo_url, created_at, updated_at`

func (r *CompanyRepository) GetByID(ctx context.Context, id common.UUID) (*profile.Company, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+companyColumns+` FROM companies WHERE id = $1`, id)
	return scanCompany(row)
}

func (r *CompanyRepository) GetByAccountID(ctx context.Context, accountID common.UUID) (*profile.Company, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+companyColumns+` FROM companies WHERE account_id = $1`, accountID)
	return scanCompany(row)
}

func (r *CompanyRepository) Update(ctx context.Context, company profile.Company) (*profile.Company, error) {
	company.UpdatedAt = time.Now().UTC()
	result, err := r.db.ExecContext(ctx, `UPDATE companies SET company_name = $1, description = $2, website = $3, industry = $4, location = $5, employee_count = $6, logo_url = $7, updated_at = $8
		WHERE id = $9`,
		company.CompanyName, company.Description, company.Website, company.Industry, company.Location,
		company.EmployeeCount, company.LogoURL, company.UpdatedAt, company.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, common.NewError(common.CodeDuplicate, "a company with this name already exists", err)
		}
		return nil, common.NewError(common.CodeInternal, "failed to update company profile", err)
	}
	rows, err := result.RowsAffected()
	if err == nil && rows == 0 {
		return nil, common.NewError(common.CodeNotFound, "company profile not found", sql.ErrNoRows)
	}
	return &company, nil
}

func (r *CompanyRepository) List(ctx context.Context, limit, offset int) ([]profile.Company, int, error) {
	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM companies`).Scan(&total); err != nil {
		return nil, 0, common.NewError(common.CodeInternal, "failed to count companies", err)
	}
	rows, err := r.db.QueryContext(ctx, `SELECT `+companyColumns+` FROM companies ORDER BY company_name ASC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, common.NewError(common.CodeInternal, "failed to list companies", err)
	}
	defer rows.Close()
	var items []profile.Company
	for rows.Next() {
		company, err := scanCompany(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, *company)
	}
	return items, total, nil
}

func scanCompany(row rowScanner) (*profile.Company, error) {
	var company profile.Company
	var description, website, industry, location, logoURL sql.NullString
	var employeeCount sql.NullInt64
	err := row.Scan(&company.ID, &company.AccountID, &company.CompanyName, &description, &website, &industry,
		&location, &employeeCount, &logoURL, &company.CreatedAt, &company.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.NewError(common.CodeNotFound, "company profile not found", err)
		}
		return nil, common.NewError(common.CodeInternal, "failed to load company profile", err)
	}
	company.Description = description.String
	company.Website = website.String
	company.Industry = industry.String
	company.Location = location.String
	company.EmployeeCount = int(employeeCount.Int64)
	company.LogoURL = logoURL.String
	return &company, nil
}
