package job

import (
	"time"

	"jobzee/internal/common"
)

type ApprovalStatus string

const (
	ApprovalPending  ApprovalStatus = "pending"
	ApprovalApproved ApprovalStatus = "approved"
	ApprovalRejected ApprovalStatus = "rejected"
)

type Type string

const (
	TypeFullTime   Type = "Full-time"
	TypePartTime   Type = "Part-time"
	TypeContract   Type = "Contract"
	TypeTemporary  Type = "Temporary"
	TypeInternship Type = "Internship"
)

func ValidType(t Type) bool {
	switch t {
	case TypeFullTime, TypePartTime, TypeContract, TypeTemporary, TypeInternship:
		return true
	default:
		return false
	}
}

type ExperienceLevel string

const (
	LevelEntry  ExperienceLevel = "Entry"
	LevelMid    ExperienceLevel = "Mid"
	LevelSenior ExperienceLevel = "Senior"
)

func ValidExperienceLevel(l ExperienceLevel) bool {
	switch l {
	case LevelEntry, LevelMid, LevelSenior:
		return true
	default:
		return false
	}
}

type Job struct {
	ID              common.UUID     `json:"id"`
	CompanyID       common.UUID     `json:"company_id"`
	Title           string          `json:"title"`
	Description     string          `json:"description"`
	Category        string          `json:"category"`
	Location        string          `json:"location"`
	Salary          *float64        `json:"salary,omitempty"`
	JobType         Type            `json:"job_type"`
	ExperienceLevel ExperienceLevel `json:"experience_level"`
	RequiredSkills  []string        `json:"required_skills"`
	Deadline        *time.Time      `json:"deadline,omitempty"`
	IsActive        bool            `json:"is_active"`
	IsArchived      bool            `json:"is_archived"`
	ApprovalStatus  ApprovalStatus  `json:"approval_status"`
	RejectionReason *string         `json:"rejection_reason,omitempty"`
	ApprovedBy      *common.UUID    `json:"approved_by,omitempty"`
	ApprovedAt      *time.Time      `json:"approved_at,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// CompanySummary is the slice of the owning company included in listings.
type CompanySummary struct {
	ID          common.UUID `json:"id"`
	CompanyName string      `json:"company_name"`
	Industry    string      `json:"industry,omitempty"`
	Location    string      `json:"location,omitempty"`
	Website     string      `json:"website,omitempty"`
	LogoURL     string      `json:"logo_url,omitempty"`
}

type WithCompany struct {
	Job
	Company CompanySummary `json:"company"`
}

type Filter struct {
	Category        string
	Location        string
	JobType         string
	ExperienceLevel string
	Search          string
	MinSalary       *float64
	MaxSalary       *float64
	// OnlyApproved additionally restricts the public listing to moderated jobs.
	OnlyApproved bool
}
