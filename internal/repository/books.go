package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/shelfmate/catalog/internal/model"
)

type BookRepository interface {
	Create(ctx context.Context, book *model.Book, authorIDs, genreIDs []uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Book, error)
	List(ctx context.Context) ([]model.Book, error)
	Update(ctx context.Context, id uuid.UUID, params BookUpdateParams) (*model.Book, error)
	Delete(ctx context.Context, id uuid.UUID) (*model.Book, error)
	LinkGenre(ctx context.Context, bookID, genreID uuid.UUID) (*model.Book, error)
	UnlinkGenre(ctx context.Context, bookID, genreID uuid.UUID) (*model.Book, error)
	ListGenres(ctx context.Context, bookID uuid.UUID) ([]model.Genre, error)
}

// BookUpdateParams carries a partial update. Nil fields are left unchanged.
// A non-nil AuthorIDs or GenreIDs replaces the whole relation set, it is not
// a merge.
type BookUpdateParams struct {
	Title       *string
	Description *string
	AuthorIDs   *[]uuid.UUID
	GenreIDs    *[]uuid.UUID
}

type GormBookRepository struct {
	db *gorm.DB
}

func NewGormBookRepository(db *gorm.DB) *GormBookRepository {
	return &GormBookRepository{db: db}
}

// Create persists the book together with its author and genre links in one
// transaction. Ids that do not resolve to an existing author or genre are
// silently dropped, matching the documented store contract.
func (r *GormBookRepository) Create(ctx context.Context, book *model.Book, authorIDs, genreIDs []uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		authors, err := authorsByIDs(tx, authorIDs)
		if err != nil {
			return err
		}
		genres, err := genresByIDs(tx, genreIDs)
		if err != nil {
			return err
		}

		book.Authors = authors
		book.Genres = genres
		return tx.Create(book).Error
	})
}

func (r *GormBookRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Book, error) {
	var book model.Book
	if err := r.db.WithContext(ctx).
		Preload("Authors").
		Preload("Genres").
		First(&book, "id = ?", id).Error; err != nil {

		return nil, err
	}
	return &book, nil
}

func (r *GormBookRepository) List(ctx context.Context) ([]model.Book, error) {
	var books []model.Book
	if err := r.db.WithContext(ctx).
		Preload("Authors").
		Preload("Genres").
		Order("created_at ASC").
		Find(&books).Error; err != nil {

		return nil, err
	}
	return books, nil
}

func (r *GormBookRepository) Update(ctx context.Context, id uuid.UUID, params BookUpdateParams) (*model.Book, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var book model.Book
		if err := tx.First(&book, "id = ?", id).Error; err != nil {
			return err
		}

		updates := map[string]any{}
		if params.Title != nil {
			updates["title"] = *params.Title
		}
		if params.Description != nil {
			updates["description"] = *params.Description
		}
		if len(updates) > 0 {
			if err := tx.Model(&book).Updates(updates).Error; err != nil {
				return err
			}
		}

		if params.AuthorIDs != nil {
			authors, err := authorsByIDs(tx, *params.AuthorIDs)
			if err != nil {
				return err
			}
			if err := tx.Model(&book).Association("Authors").Replace(authors); err != nil {
				return err
			}
		}
		if params.GenreIDs != nil {
			genres, err := genresByIDs(tx, *params.GenreIDs)
			if err != nil {
				return err
			}
			if err := tx.Model(&book).Association("Genres").Replace(genres); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return r.FindByID(ctx, id)
}

// Delete removes the book, its join rows and its ratings in one transaction.
// Keeping ratings of a deleted book around would leave dangling book_id
// references, so they go with it. The prior state is returned.
func (r *GormBookRepository) Delete(ctx context.Context, id uuid.UUID) (*model.Book, error) {
	book, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("book_id = ?", id).Delete(&model.Rating{}).Error; err != nil {
			return err
		}
		if err := tx.Model(book).Association("Authors").Clear(); err != nil {
			return err
		}
		if err := tx.Model(book).Association("Genres").Clear(); err != nil {
			return err
		}
		return tx.Delete(&model.Book{}, "id = ?", id).Error
	})
	if err != nil {
		return nil, err
	}
	return book, nil
}

// LinkGenre attaches a genre to a book. Linking an already linked pair is a
// no-op; the join insert does nothing on conflict.
func (r *GormBookRepository) LinkGenre(ctx context.Context, bookID, genreID uuid.UUID) (*model.Book, error) {
	var book model.Book
	if err := r.db.WithContext(ctx).First(&book, "id = ?", bookID).Error; err != nil {
		return nil, err
	}

	var genre model.Genre
	if err := r.db.WithContext(ctx).First(&genre, "id = ?", genreID).Error; err != nil {
		return nil, err
	}

	if err := r.db.WithContext(ctx).Model(&book).Association("Genres").Append(&genre); err != nil {
		return nil, err
	}

	return r.FindByID(ctx, bookID)
}

// UnlinkGenre detaches a genre from a book. Unlinking a pair that is not
// linked is a no-op.
func (r *GormBookRepository) UnlinkGenre(ctx context.Context, bookID, genreID uuid.UUID) (*model.Book, error) {
	var book model.Book
	if err := r.db.WithContext(ctx).First(&book, "id = ?", bookID).Error; err != nil {
		return nil, err
	}

	var genre model.Genre
	if err := r.db.WithContext(ctx).First(&genre, "id = ?", genreID).Error; err != nil {
		return nil, err
	}

	if err := r.db.WithContext(ctx).Model(&book).Association("Genres").Delete(&genre); err != nil {
		return nil, err
	}

	return r.FindByID(ctx, bookID)
}

func (r *GormBookRepository) ListGenres(ctx context.Context, bookID uuid.UUID) ([]model.Genre, error) {
	var book model.Book
	if err := r.db.WithContext(ctx).First(&book, "id = ?", bookID).Error; err != nil {
		return nil, err
	}

	var genres []model.Genre
	if err := r.db.WithContext(ctx).Model(&book).Association("Genres").Find(&genres); err != nil {
		return nil, err
	}
	return genres, nil
}

func authorsByIDs(tx *gorm.DB, ids []uuid.UUID) ([]model.Author, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var authors []model.Author
	if err := tx.Where("id IN ?", ids).Find(&authors).Error; err != nil {
		return nil, err
	}
	return authors, nil
}

func genresByIDs(tx *gorm.DB, ids []uuid.UUID) ([]model.Genre, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var genres []model.Genre
	if err := tx.Where("id IN ?", ids).Find(&genres).Error; err != nil {
		return nil, err
	}
	return genres, nil
}
