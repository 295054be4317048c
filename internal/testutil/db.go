package testutil

import (
	"testing"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/shelfmate/catalog/internal/model"
)

// NewTestDB opens a fresh in-memory sqlite database, migrates the full
// schema and closes it when the test finishes.
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := "file:testdb_" + uuid.New().String() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	if err := db.AutoMigrate(model.All()...); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB from gorm: %v", err)
	}

	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	return db
}

func SeedAuthor(t *testing.T, db *gorm.DB, name string) model.Author {
	t.Helper()

	author := model.Author{Name: name}
	if err := db.Create(&author).Error; err != nil {
		t.Fatalf("failed to seed author %q: %v", name, err)
	}
	return author
}

func SeedGenre(t *testing.T, db *gorm.DB, name string) model.Genre {
	t.Helper()

	genre := model.Genre{Name: name}
	if err := db.Create(&genre).Error; err != nil {
		t.Fatalf("failed to seed genre %q: %v", name, err)
	}
	return genre
}

func SeedBook(t *testing.T, db *gorm.DB, title string, authors []model.Author, genres []model.Genre) model.Book {
	t.Helper()

	book := model.Book{
		Title:   title,
		Authors: authors,
		Genres:  genres,
	}
	if err := db.Create(&book).Error; err != nil {
		t.Fatalf("failed to seed book %q: %v", title, err)
	}
	return book
}

func SeedUser(t *testing.T, db *gorm.DB, username, passwordHash string) model.User {
	t.Helper()

	user := model.User{Username: username, PasswordHash: passwordHash}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("failed to seed user %q: %v", username, err)
	}
	return user
}

func SeedRating(t *testing.T, db *gorm.DB, user model.User, book model.Book, score float64) model.Rating {
	t.Helper()

	rating := model.Rating{Score: score, UserID: user.ID, BookID: book.ID}
	if err := db.Create(&rating).Error; err != nil {
		t.Fatalf("failed to seed rating: %v", err)
	}
	return rating
}
