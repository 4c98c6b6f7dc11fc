package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"jobzee/internal/common"
	"jobzee/internal/domain/review"
)

type ReviewRepository struct {
	db *sql.DB
}

func NewReviewRepository(db *sql.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

const reviewColumns = `r.id, r.company_id, r.job_seeker_id, r.rating, r.comment, r.created_at, r.updated_at`

func (r *ReviewRepository) Create(ctx context.Context, rev review.Review) (*review.Review, error) {
	rev.ID = common.NewUUID()
	now := time.Now().UTC()
	rev.CreatedAt = now
	rev.UpdatedAt = now
	_, err := r.db.ExecContext(ctx, `INSERT INTO reviews (id, company_id, job_seeker_id, rating, comment, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		rev.ID, rev.CompanyID, rev.JobSeekerID, rev.Rating, rev.Comment, rev.CreatedAt, rev.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, common.NewError(common.CodeDuplicate, "you have already reviewed this company", err)
		}
		return nil, common.NewError(common.CodeInternal, "failed to create review", err)
	}
	return &rev, nil
}

func (r *ReviewRepository) GetByID(ctx context.Context, id common.UUID) (*review.Review, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+reviewColumns+` FROM reviews r WHERE r.id = $1`, id)
	return scanReview(row)
}

func (r *ReviewRepository) FindByCompanyAndSeeker(ctx context.Context, companyID, jobSeekerID common.UUID) (*review.Review, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+reviewColumns+` FROM reviews r WHERE r.company_id = $1 AND r.job_seeker_id = $2`, companyID, jobSeekerID)
	return scanReview(row)
}

func (r *ReviewRepository) ListByCompany(ctx context.Context, companyID common.UUID, limit, offset int) ([]review.WithReviewer, int, error) {
	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM reviews r WHERE r.company_id = $1`, companyID).Scan(&total); err != nil {
		return nil, 0, common.NewError(common.CodeInternal, "failed to count reviews", err)
	}
	rows, err := r.db.QueryContext(ctx, `SELECT `+reviewColumns+`, u.first_name, u.last_name
		FROM reviews r
		JOIN job_seekers s ON s.id = r.job_seeker_id
		JOIN accounts u ON u.id = s.account_id
		WHERE r.company_id = $1 ORDER BY r.created_at DESC LIMIT $2 OFFSET $3`, companyID, limit, offset)
	if err != nil {
		return nil, 0, common.NewError(common.CodeInternal, "failed to list reviews", err)
	}
	defer rows.Close()
	var items []review.WithReviewer
	for rows.Next() {
		var item review.WithReviewer
		err := rows.Scan(&item.ID, &item.CompanyID, &item.JobSeekerID, &item.Rating, &item.Comment,
			&item.CreatedAt, &item.UpdatedAt, &item.ReviewerFirstName, &item.ReviewerLastName)
		if err != nil {
			return nil, 0, common.NewError(common.CodeInternal, "failed to scan review", err)
		}
		items = append(items, item)
	}
	return items, total, nil
}

func (r *ReviewRepository) AverageRating(ctx context.Context, companyID common.UUID) (float64, error) {
	var avg sql.NullFloat64
	if err := r.db.QueryRowContext(ctx, `SELECT AVG(rating) FROM reviews WHERE company_id = $1`, companyID).Scan(&avg); err != nil {
		return 0, common.NewError(common.CodeInternal, "failed to load average rating", err)
	}
	return avg.Float64, nil
}

func (r *ReviewRepository) Update(ctx context.Context, rev review.Review) (*review.Review, error) {
	rev.UpdatedAt = time.Now().UTC()
	result, err := r.db.ExecContext(ctx, `UPDATE reviews SET rating = $1, comment = $2, updated_at = $3 WHERE id = $4`,
		rev.Rating, rev.Comment, rev.UpdatedAt, rev.ID)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to update review", err)
	}
	rows, err := result.RowsAffected()
	if err == nil && rows == 0 {
		return nil, common.NewError(common.CodeNotFound, "review not found", sql.ErrNoRows)
	}
	return &rev, nil
}

func (r *ReviewRepository) Delete(ctx context.Context, id common.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM reviews WHERE id = $1`, id)
	if err != nil {
		return common.NewError(common.CodeInternal, "failed to delete review", err)
	}
	rows, err := result.RowsAffected()
	if err == nil && rows == 0 {
		return common.NewError(common.CodeNotFound, "review not found", sql.ErrNoRows)
	}
	return nil
}

func scanReview(row rowScanner) (*review.Review, error) {
	var rev review.Review
	err := row.Scan(&rev.ID, &rev.CompanyID, &rev.JobSeekerID, &rev.Rating, &rev.Comment, &rev.CreatedAt, &rev.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.NewError(common.CodeNotFound, "review not found", err)
		}
		return nil, common.NewError(common.CodeInternal, "failed to load review", err)
	}
	return &rev, nil
}
