package handler

import (
	"time"

	"github.com/google/uuid"
)

type CreateGenreRequest struct {
	Name string `json:"name" binding:"required,min=1"`
}

type UpdateGenreRequest struct {
	Name *string `json:"name" binding:"omitempty,min=1"`
}

type Genre struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type GenreSummary struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type GenreResponse struct {
	Data Genre `json:"data"`
}

type ListGenresResponse struct {
	Data []Genre `json:"data"`
}
