package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Rating is a single user's score for a book. Score is stored as given; the
// 1-5 range is enforced at the request boundary, not here.
type Rating struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Score     float64   `gorm:"not null"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	BookID    uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (r *Rating) BeforeCreate(tx *gorm.DB) (err error) {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return
}
