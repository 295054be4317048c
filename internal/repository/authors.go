package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/shelfmate/catalog/internal/model"
)

type AuthorRepository interface {
	Create(ctx context.Context, author *model.Author) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Author, error)
	List(ctx context.Context) ([]model.Author, error)
	Update(ctx context.Context, author *model.Author) error
	Delete(ctx context.Context, id uuid.UUID) (*model.Author, error)
}

type GormAuthorRepository struct {
	db *gorm.DB
}

func NewGormAuthorRepository(db *gorm.DB) *GormAuthorRepository {
	return &GormAuthorRepository{db: db}
}

func (r *GormAuthorRepository) Create(ctx context.Context, author *model.Author) error {
	return r.db.WithContext(ctx).Create(author).Error
}

func (r *GormAuthorRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Author, error) {
	var author model.Author
	if err := r.db.WithContext(ctx).First(&author, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &author, nil
}

func (r *GormAuthorRepository) List(ctx context.Context) ([]model.Author, error) {
	var authors []model.Author
	if err := r.db.WithContext(ctx).Order("created_at ASC").Find(&authors).Error; err != nil {
		return nil, err
	}
	return authors, nil
}

func (r *GormAuthorRepository) Update(ctx context.Context, author *model.Author) error {
	res := r.db.WithContext(ctx).
		Model(&model.Author{}).
		Where("id = ?", author.ID).
		Update("name", author.Name)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete removes the author and its book_authors join rows. Ratings of the
// author's books are left untouched; they belong to the books. The prior
// state is returned to the caller.
func (r *GormAuthorRepository) Delete(ctx context.Context, id uuid.UUID) (*model.Author, error) {
	author, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(author).Association("Books").Clear(); err != nil {
			return err
		}
		return tx.Delete(&model.Author{}, "id = ?", id).Error
	})
	if err != nil {
		return nil, err
	}
	return author, nil
}
