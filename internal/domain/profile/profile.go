package profile

import (
	"time"

	"jobzee/internal/common"
)

type EducationEntry struct {
	Institution string `json:"institution"`
	Degree      string `json:"degree,omitempty"`
	Field       string `json:"field,omitempty"`
	StartYear   int    `json:"start_year,omitempty"`
	EndYear     int    `json:"end_year,omitempty"`
}

type JobSeeker struct {
	ID               common.UUID      `json:"id"`
	AccountID        common.UUID      `json:"account_id"`
	Bio              string           `json:"bio,omitempty"`
	Phone            string           `json:"phone,omitempty"`
	Location         string           `json:"location,omitempty"`
	Skills           []string         `json:"skills"`
	ExperienceYears  int              `json:"experience_years"`
	Education        []EducationEntry `json:"education"`
	ResumeURL        string           `json:"resume_url,omitempty"`
	ResumeFileName   string           `json:"resume_file_name,omitempty"`
	ResumeUploadedAt *time.Time       `json:"resume_uploaded_at,omitempty"`
	CreatedAt        time.Time        `json:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at"`
}

type Company struct {
	ID            common.UUID `json:"id"`
	AccountID     common.UUID `json:"account_id"`
	CompanyName   string      `json:"company_name"`
	Description   string      `json:"description,omitempty"`
	Website       string      `json:"website,omitempty"`
	Industry      string      `json:"industry,omitempty"`
	Location      string      `json:"location,omitempty"`
	EmployeeCount int         `json:"employee_count,omitempty"`
	LogoURL       string      `json:"logo_url,omitempty"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`
}
