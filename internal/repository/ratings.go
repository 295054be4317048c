package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/shelfmate/catalog/internal/model"
)

type RatingRepository interface {
	Create(ctx context.Context, userID, bookID uuid.UUID, score float64) (*model.Rating, error)
	ListForBook(ctx context.Context, bookID uuid.UUID) ([]model.Rating, error)
}

type GormRatingRepository struct {
	db *gorm.DB
}

func NewGormRatingRepository(db *gorm.DB) *GormRatingRepository {
	return &GormRatingRepository{db: db}
}

// Create records a score for a book on behalf of a user. The caller is
// responsible for having resolved both ids; the score value is stored as
// given, range checks happen at the request boundary.
func (r *GormRatingRepository) Create(ctx context.Context, userID, bookID uuid.UUID, score float64) (*model.Rating, error) {
	rating := model.Rating{
		Score:  score,
		UserID: userID,
		BookID: bookID,
	}
	if err := r.db.WithContext(ctx).Create(&rating).Error; err != nil {
		return nil, err
	}
	return &rating, nil
}

// ListForBook returns every rating of the book, oldest first. An unknown
// book id yields an empty slice, not an error.
func (r *GormRatingRepository) ListForBook(ctx context.Context, bookID uuid.UUID) ([]model.Rating, error) {
	var ratings []model.Rating
	if err := r.db.WithContext(ctx).
		Where("book_id = ?", bookID).
		Order("created_at ASC").
		Find(&ratings).Error; err != nil {

		return nil, err
	}
	return ratings, nil
}
