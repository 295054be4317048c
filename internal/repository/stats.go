package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/shelfmate/catalog/internal/model"
)

// DefaultTopLimit is the number of entries the stats endpoints return when
// the caller does not ask for a different limit.
const DefaultTopLimit = 3

type BookAverage struct {
	Book         model.Book
	AverageScore float64
}

type AuthorAverage struct {
	Author       model.Author
	AverageScore float64
}

type StatsRepository interface {
	TopBooks(ctx context.Context, limit int) ([]BookAverage, error)
	TopAuthors(ctx context.Context, limit int) ([]AuthorAverage, error)
}

type GormStatsRepository struct {
	db *gorm.DB
}

func NewGormStatsRepository(db *gorm.DB) *GormStatsRepository {
	return &GormStatsRepository{db: db}
}

type idAverage struct {
	ID           uuid.UUID
	AverageScore float64
}

// TopBooks ranks books by the arithmetic mean of their rating scores,
// highest first. Books without ratings are excluded by the inner join.
// Order among equal means follows storage order and is not guaranteed.
func (r *GormStatsRepository) TopBooks(ctx context.Context, limit int) ([]BookAverage, error) {
	if limit <= 0 {
		limit = DefaultTopLimit
	}

	var rows []idAverage
	if err := r.db.WithContext(ctx).
		Model(&model.Book{}).
		Select("books.id AS id, AVG(ratings.score) AS average_score").
		Joins("JOIN ratings ON ratings.book_id = books.id").
		Group("books.id").
		Order("average_score DESC").
		Limit(limit).
		Scan(&rows).Error; err != nil {

		return nil, err
	}
	if len(rows) == 0 {
		return []BookAverage{}, nil
	}

	ids := make([]uuid.UUID, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.ID)
	}

	var books []model.Book
	if err := r.db.WithContext(ctx).
		Preload("Authors").
		Preload("Genres").
		Where("id IN ?", ids).
		Find(&books).Error; err != nil {

		return nil, err
	}

	byID := make(map[uuid.UUID]model.Book, len(books))
	for _, b := range books {
		byID[b.ID] = b
	}

	result := make([]BookAverage, 0, len(rows))
	for _, row := range rows {
		if b, ok := byID[row.ID]; ok {
			result = append(result, BookAverage{Book: b, AverageScore: row.AverageScore})
		}
	}
	return result, nil
}

// TopAuthors ranks authors by the mean score over the flattened set of all
// ratings of all their books, not by averaging per-book means. Authors whose
// books have no ratings are excluded.
func (r *GormStatsRepository) TopAuthors(ctx context.Context, limit int) ([]AuthorAverage, error) {
	if limit <= 0 {
		limit = DefaultTopLimit
	}

	var rows []idAverage
	if err := r.db.WithContext(ctx).
		Model(&model.Author{}).
		Select("authors.id AS id, AVG(ratings.score) AS average_score").
		Joins("JOIN book_authors ON book_authors.author_id = authors.id").
		Joins("JOIN ratings ON ratings.book_id = book_authors.book_id").
		Group("authors.id").
		Order("average_score DESC").
		Limit(limit).
		Scan(&rows).Error; err != nil {

		return nil, err
	}
	if len(rows) == 0 {
		return []AuthorAverage{}, nil
	}

	ids := make([]uuid.UUID, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.ID)
	}

	var authors []model.Author
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&authors).Error; err != nil {
		return nil, err
	}

	byID := make(map[uuid.UUID]model.Author, len(authors))
	for _, a := range authors {
		byID[a.ID] = a
	}

	result := make([]AuthorAverage, 0, len(rows))
	for _, row := range rows {
		if a, ok := byID[row.ID]; ok {
			result = append(result, AuthorAverage{Author: a, AverageScore: row.AverageScore})
		}
	}
	return result, nil
}
