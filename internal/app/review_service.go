package app

import (
	"context"
	"fmt"
	"strings"

	"jobzee/internal/common"
	"jobzee/internal/domain/account"
	"jobzee/internal/domain/profile"
	"jobzee/internal/domain/review"
)

// ReviewService lets job seekers rate companies, one review per pair.
type ReviewService struct {
	reviews   review.Repository
	companies profile.CompanyRepository
	seekers   profile.JobSeekerRepository
	logger    Logger
}

func NewReviewService(reviews review.Repository, companies profile.CompanyRepository, seekers profile.JobSeekerRepository, logger Logger) *ReviewService {
	return &ReviewService{
		reviews:   reviews,
		companies: companies,
		seekers:   seekers,
		logger:    logger,
	}
}

type CreateReviewInput struct {
	CompanyID common.UUID `json:"company_id"`
	Rating    int         `json:"rating"`
	Comment   *string     `json:"comment"`
}

func (s *ReviewService) Create(ctx context.Context, accountID common.UUID, role account.Role, input CreateReviewInput) (*review.Review, error) {
	if !role.IsJobSeeker() {
		return nil, common.NewError(common.CodeForbidden, "only job seekers can review companies", nil)
	}
	if input.CompanyID == "" {
		return nil, common.NewValidationError("company_id is required", nil)
	}
	if err := validateRating(input.Rating); err != nil {
		return nil, err
	}

	seeker, err := s.seekers.GetByAccountID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if _, err := s.companies.GetByID(ctx, input.CompanyID); err != nil {
		return nil, err
	}
	if _, err := s.reviews.FindByCompanyAndSeeker(ctx, input.CompanyID, seeker.ID); err == nil {
		return nil, common.NewError(common.CodeDuplicate, "you have already reviewed this company", nil)
	} else if !common.Is(err, common.CodeNotFound) {
		return nil, err
	}

	return s.reviews.Create(ctx, review.Review{
		CompanyID:   input.CompanyID,
		JobSeekerID: seeker.ID,
		Rating:      input.Rating,
		Comment:     trimComment(input.Comment),
	})
}

type ReviewPage struct {
	Reviews       []review.WithReviewer `json:"reviews"`
	Total         int                   `json:"total"`
	AverageRating float64               `json:"average_rating"`
}

// ListByCompany returns the company's reviews together with the average
// rating over all of them, not just the returned page.
func (s *ReviewService) ListByCompany(ctx context.Context, companyID common.UUID, limit, offset int) (*ReviewPage, error) {
	if _, err := s.companies.GetByID(ctx, companyID); err != nil {
		return nil, err
	}
	items, total, err := s.reviews.ListByCompany(ctx, companyID, normalizeLimit(limit), normalizeOffset(offset))
	if err != nil {
		return nil, err
	}
	avg, err := s.reviews.AverageRating(ctx, companyID)
	if err != nil {
		return nil, err
	}
	return &ReviewPage{Reviews: items, Total: total, AverageRating: avg}, nil
}

type UpdateReviewInput struct {
	Rating  *int    `json:"rating"`
	Comment *string `json:"comment"`
}

func (s *ReviewService) Update(ctx context.Context, accountID common.UUID, reviewID common.UUID, input UpdateReviewInput) (*review.Review, error) {
	existing, err := s.authorizeAuthor(ctx, accountID, reviewID)
	if err != nil {
		return nil, err
	}
	if input.Rating != nil {
		if err := validateRating(*input.Rating); err != nil {
			return nil, err
		}
		existing.Rating = *input.Rating
	}
	if input.Comment != nil {
		existing.Comment = trimComment(input.Comment)
	}
	return s.reviews.Update(ctx, *existing)
}

func (s *ReviewService) Delete(ctx context.Context, accountID common.UUID, reviewID common.UUID) error {
	if _, err := s.authorizeAuthor(ctx, accountID, reviewID); err != nil {
		return err
	}
	return s.reviews.Delete(ctx, reviewID)
}

func (s *ReviewService) authorizeAuthor(ctx context.Context, accountID common.UUID, reviewID common.UUID) (*review.Review, error) {
	existing, err := s.reviews.GetByID(ctx, reviewID)
	if err != nil {
		return nil, err
	}
	seeker, err := s.seekers.GetByAccountID(ctx, accountID)
	if err != nil {
		if common.Is(err, common.CodeNotFound) {
			return nil, errNotReviewAuthor()
		}
		return nil, err
	}
	if seeker.ID != existing.JobSeekerID {
		return nil, errNotReviewAuthor()
	}
	return existing, nil
}

func errNotReviewAuthor() error {
	return common.NewError(common.CodeForbidden, "you can only modify your own reviews", nil)
}

func validateRating(rating int) error {
	if rating < review.MinRating || rating > review.MaxRating {
		return common.NewValidationError(fmt.Sprintf("rating must be between %d and %d", review.MinRating, review.MaxRating), nil)
	}
	return nil
}

func trimComment(comment *string) *string {
	if comment == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*comment)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
