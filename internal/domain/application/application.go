package application

import (
	"time"

	"jobzee/internal/common"
)

type Status string

const (
	StatusApplied   Status = "applied"
	StatusReviewing Status = "reviewing"
	StatusInterview Status = "interview"
	StatusAccepted  Status = "accepted"
	StatusRejected  Status = "rejected"
)

// ValidUpdateStatus reports whether the status may be set after creation.
// The applied state is only ever set when the application is created.
func ValidUpdateStatus(status Status) bool {
	switch status {
	case StatusReviewing, StatusInterview, StatusAccepted, StatusRejected:
		return true
	default:
		return false
	}
}

type Application struct {
	ID          common.UUID `json:"id"`
	JobID       common.UUID `json:"job_id"`
	JobSeekerID common.UUID `json:"job_seeker_id"`
	Status      Status      `json:"status"`
	CoverLetter string      `json:"cover_letter,omitempty"`
	AppliedAt   time.Time   `json:"applied_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// JobSummary joins the parent job and its company into listings for seekers.
type JobSummary struct {
	JobID       common.UUID `json:"job_id"`
	Title       string      `json:"title"`
	Location    string      `json:"location,omitempty"`
	CompanyName string      `json:"company_name"`
}

type WithJob struct {
	Application
	Job JobSummary `json:"job"`
}

// ApplicantSummary joins the applicant into listings for the job owner.
type ApplicantSummary struct {
	JobSeekerID common.UUID `json:"job_seeker_id"`
	FirstName   string      `json:"first_name"`
	LastName    string      `json:"last_name"`
	Email       string      `json:"email"`
	Location    string      `json:"location,omitempty"`
	Skills      []string    `json:"skills"`
	ResumeURL   string      `json:"resume_url,omitempty"`
}

type WithApplicant struct {
	Application
	Applicant ApplicantSummary `json:"applicant"`
}
