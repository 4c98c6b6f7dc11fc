package review

import (
	"time"

	"jobzee/internal/common"
)

const (
	MinRating = 1
	MaxRating = 5
)

type Review struct {
	ID          common.UUID `json:"id"`
	CompanyID   common.UUID `json:"company_id"`
	JobSeekerID common.UUID `json:"job_seeker_id"`
	Rating      int         `json:"rating"`
	Comment     *string     `json:"comment,omitempty"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// WithReviewer carries the reviewer's name for the public company page.
type WithReviewer struct {
	Review
	ReviewerFirstName string `json:"reviewer_first_name"`
	ReviewerLastName  string `json:"reviewer_last_name"`
}
