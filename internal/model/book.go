package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Book owns its author and genre associations through the book_authors and
// book_genres join tables. Relations are loaded only when the caller asks for
// them via Preload; nothing is fetched implicitly.
type Book struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Title       string    `gorm:"not null;index"`
	Description string    `gorm:"type:text"`
	Authors     []Author  `gorm:"many2many:book_authors"`
	Genres      []Genre   `gorm:"many2many:book_genres"`
	Ratings     []Rating  `gorm:"foreignKey:BookID"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (b *Book) BeforeCreate(tx *gorm.DB) (err error) {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return
}
