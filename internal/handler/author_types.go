package handler

import (
	"time"

	"github.com/google/uuid"
)

type CreateAuthorRequest struct {
	Name string `json:"name" binding:"required,min=1"`
}

type UpdateAuthorRequest struct {
	Name *string `json:"name" binding:"omitempty,min=1"`
}

type Author struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type AuthorSummary struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type AuthorResponse struct {
	Data Author `json:"data"`
}

type ListAuthorsResponse struct {
	Data []Author `json:"data"`
}
