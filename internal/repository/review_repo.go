package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/AKC07-Dev/English-Text-Sentiment-Analysis-stage-2/internal/domain"
)

// ReviewRepository persists submitted reviews. Records are append-only.
type ReviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository creates a new ReviewRepository.
// Parameters:
//   - db: GORM database handle used for queries.
//
// Returns:
//   - *ReviewRepository: repository instance bound to db.
func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

// Append inserts a review and returns the id assigned by the database.
// Any ID already set on review is ignored.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - review: record to persist; its ID is populated on success.
//
// Returns:
//   - uint: the new record id.
//   - error: non-nil if the insert fails.
func (r *ReviewRepository) Append(ctx context.Context, review *domain.Review) (uint, error) {
	review.ID = 0
	if err := r.db.WithContext(ctx).Create(review).Error; err != nil {
		return 0, fmt.Errorf("insert review: %w", err)
	}
	return review.ID, nil
}

// ListAll returns every stored review ordered by id.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//
// Returns:
//   - []domain.Review: all records, empty (not nil) when none exist.
//   - error: non-nil if the query fails.
func (r *ReviewRepository) ListAll(ctx context.Context) ([]domain.Review, error) {
	reviews := make([]domain.Review, 0)
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&reviews).Error; err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	return reviews, nil
}

// Count returns the number of stored reviews.
func (r *ReviewRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&domain.Review{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("count reviews: %w", err)
	}
	return n, nil
}
