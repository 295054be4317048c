package handler

import (
	"time"

	"github.com/google/uuid"
)

type CreateBookRequest struct {
	Title       string      `json:"title" binding:"required,min=1"`
	Description string      `json:"description" binding:"omitempty,max=2000"`
	AuthorIDs   []uuid.UUID `json:"author_ids"`
	GenreIDs    []uuid.UUID `json:"genre_ids"`
}

type UpdateBookRequest struct {
	Title       *string      `json:"title" binding:"omitempty,min=1"`
	Description *string      `json:"description" binding:"omitempty,max=2000"`
	AuthorIDs   *[]uuid.UUID `json:"author_ids"`
	GenreIDs    *[]uuid.UUID `json:"genre_ids"`
}

type RateBookRequest struct {
	Score float64 `json:"score" binding:"required,gte=1,lte=5"`
}

type Book struct {
	ID          uuid.UUID       `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Authors     []AuthorSummary `json:"authors"`
	Genres      []GenreSummary  `json:"genres"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

type BookResponse struct {
	Data Book `json:"data"`
}

type ListBooksResponse struct {
	Data []Book `json:"data"`
}

type Rating struct {
	ID        uuid.UUID `json:"id"`
	Score     float64   `json:"score"`
	UserID    uuid.UUID `json:"user_id"`
	BookID    uuid.UUID `json:"book_id"`
	CreatedAt time.Time `json:"created_at"`
}

type RatingResponse struct {
	Data Rating `json:"data"`
}

type ListRatingsResponse struct {
	Data []Rating `json:"data"`
}
