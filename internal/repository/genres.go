package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/shelfmate/catalog/internal/model"
)

type GenreRepository interface {
	Create(ctx context.Context, genre *model.Genre) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Genre, error)
	List(ctx context.Context) ([]model.Genre, error)
	Update(ctx context.Context, genre *model.Genre) error
	Delete(ctx context.Context, id uuid.UUID) (*model.Genre, error)
}

type GormGenreRepository struct {
	db *gorm.DB
}

func NewGormGenreRepository(db *gorm.DB) *GormGenreRepository {
	return &GormGenreRepository{db: db}
}

func (r *GormGenreRepository) Create(ctx context.Context, genre *model.Genre) error {
	return r.db.WithContext(ctx).Create(genre).Error
}

func (r *GormGenreRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Genre, error) {
	var genre model.Genre
	if err := r.db.WithContext(ctx).First(&genre, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &genre, nil
}

func (r *GormGenreRepository) List(ctx context.Context) ([]model.Genre, error) {
	var genres []model.Genre
	if err := r.db.WithContext(ctx).Order("created_at ASC").Find(&genres).Error; err != nil {
		return nil, err
	}
	return genres, nil
}

func (r *GormGenreRepository) Update(ctx context.Context, genre *model.Genre) error {
	res := r.db.WithContext(ctx).
		Model(&model.Genre{}).
		Where("id = ?", genre.ID).
		Update("name", genre.Name)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete removes the genre and its book_genres join rows, returning the
// prior state.
func (r *GormGenreRepository) Delete(ctx context.Context, id uuid.UUID) (*model.Genre, error) {
	genre, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(genre).Association("Books").Clear(); err != nil {
			return err
		}
		return tx.Delete(&model.Genre{}, "id = ?", id).Error
	})
	if err != nil {
		return nil, err
	}
	return genre, nil
}
