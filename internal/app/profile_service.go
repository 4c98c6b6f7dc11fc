package app

import (
	"context"
	"strings"

	"jobzee/internal/common"
	"jobzee/internal/domain/profile"
)

// ProfileService manages the job-seeker and company profiles attached to
// accounts, plus the public company directory.
type ProfileService struct {
	seekers   profile.JobSeekerRepository
	companies profile.CompanyRepository
	logger    Logger
}

func NewProfileService(seekers profile.JobSeekerRepository, companies profile.CompanyRepository, logger Logger) *ProfileService {
	return &ProfileService{seekers: seekers, companies: companies, logger: logger}
}

func (s *ProfileService) GetJobSeeker(ctx context.Context, accountID common.UUID) (*profile.JobSeeker, error) {
	return s.seekers.GetByAccountID(ctx, accountID)
}

type UpdateJobSeekerInput struct {
	Bio             *string                  `json:"bio"`
	Phone           *string                  `json:"phone"`
	Location        *string                  `json:"location"`
	Skills          []string                 `json:"skills"`
	ExperienceYears *int                     `json:"experience_years"`
	Education       []profile.EducationEntry `json:"education"`
	ResumeURL       *string                  `json:"resume_url"`
	ResumeFileName  *string                  `json:"resume_file_name"`
}

func (s *ProfileService) UpdateJobSeeker(ctx context.Context, accountID common.UUID, input UpdateJobSeekerInput) (*profile.JobSeeker, error) {
	existing, err := s.seekers.GetByAccountID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if input.Bio != nil {
		existing.Bio = strings.TrimSpace(*input.Bio)
	}
	if input.Phone != nil {
		existing.Phone = strings.TrimSpace(*input.Phone)
	}
	if input.Location != nil {
		existing.Location = strings.TrimSpace(*input.Location)
	}
	if input.Skills != nil {
		existing.Skills = input.Skills
	}
	if input.ExperienceYears != nil {
		if *input.ExperienceYears < 0 {
			return nil, common.NewValidationError("experience years must not be negative", nil)
		}
		existing.ExperienceYears = *input.ExperienceYears
	}
	if input.Education != nil {
		existing.Education = input.Education
	}
	if input.ResumeURL != nil {
		existing.ResumeURL = strings.TrimSpace(*input.ResumeURL)
	}
	if input.ResumeFileName != nil {
		existing.ResumeFileName = strings.TrimSpace(*input.ResumeFileName)
	}
	return s.seekers.Update(ctx, *existing)
}

func (s *ProfileService) GetCompany(ctx context.Context, accountID common.UUID) (*profile.Company, error) {
	return s.companies.GetByAccountID(ctx, accountID)
}

type UpdateCompanyInput struct {
	CompanyName   *string `json:"company_name"`
	Description   *string `json:"description"`
	Website       *string `json:"website"`
	Industry      *string `json:"industry"`
	Location      *string `json:"location"`
	EmployeeCount *int    `json:"employee_count"`
	LogoURL       *string `json:"logo_url"`
}

func (s *ProfileService) UpdateCompany(ctx context.Context, accountID common.UUID, input UpdateCompanyInput) (*profile.Company, error) {
	existing, err := s.companies.GetByAccountID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if input.CompanyName != nil {
		name := strings.TrimSpace(*input.CompanyName)
		if name == "" {
			return nil, common.NewValidationError("company name must not be empty", nil)
		}
		existing.CompanyName = name
	}
	if input.Description != nil {
		existing.Description = strings.TrimSpace(*input.Description)
	}
	if input.Website != nil {
		existing.Website = strings.TrimSpace(*input.Website)
	}
	if input.Industry != nil {
		existing.Industry = strings.TrimSpace(*input.Industry)
	}
	if input.Location != nil {
		existing.Location = strings.TrimSpace(*input.Location)
	}
	if input.EmployeeCount != nil {
		if *input.EmployeeCount < 0 {
			return nil, common.NewValidationError("employee count must not be negative", nil)
		}
		existing.EmployeeCount = *input.EmployeeCount
	}
	if input.LogoURL != nil {
		existing.LogoURL = strings.TrimSpace(*input.LogoURL)
	}
	return s.companies.Update(ctx, *existing)
}

type CompanyPage struct {
	Companies []profile.Company `json:"companies"`
	Total     int               `json:"total"`
}

// ListCompanies serves the public directory.
func (s *ProfileService) ListCompanies(ctx context.Context, limit, offset int) (*CompanyPage, error) {
	companies, total, err := s.companies.List(ctx, normalizeLimit(limit), normalizeOffset(offset))
	if err != nil {
		return nil, err
	}
	return &CompanyPage{Companies: companies, Total: total}, nil
}

func (s *ProfileService) GetCompanyByID(ctx context.Context, id common.UUID) (*profile.Company, error) {
	return s.companies.GetByID(ctx, id)
}
