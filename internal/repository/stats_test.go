package repository

import (
	"context"
	"math"
	"testing"

	"github.com/shelfmate/catalog/internal/model"
	"github.com/shelfmate/catalog/internal/testutil"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestTopBooks_OrdersByMeanScore(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewGormStatsRepository(db)

	u1 := testutil.SeedUser(t, db, "u1", "x")
	u2 := testutil.SeedUser(t, db, "u2", "x")

	bookA := testutil.SeedBook(t, db, "A", nil, nil)
	bookB := testutil.SeedBook(t, db, "B", nil, nil)
	testutil.SeedBook(t, db, "C", nil, nil)

	testutil.SeedRating(t, db, u1, bookA, 4)
	testutil.SeedRating(t, db, u2, bookA, 5)
	testutil.SeedRating(t, db, u1, bookB, 1)

	got, err := repo.TopBooks(context.Background(), 2)
	if err != nil {
		t.Fatalf("TopBooks failed: %v", err)
	}

	if len(got) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(got))
	}
	if got[0].Book.ID != bookA.ID || !almostEqual(got[0].AverageScore, 4.5) {
		t.Errorf("expected book A with mean 4.5 first, got %s %.2f", got[0].Book.Title, got[0].AverageScore)
	}
	if got[1].Book.ID != bookB.ID || !almostEqual(got[1].AverageScore, 1) {
		t.Errorf("expected book B with mean 1 second, got %s %.2f", got[1].Book.Title, got[1].AverageScore)
	}
}

func TestTopBooks_ExcludesUnrated(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewGormStatsRepository(db)

	u := testutil.SeedUser(t, db, "u1", "x")
	rated := testutil.SeedBook(t, db, "Rated", nil, nil)
	testutil.SeedBook(t, db, "Unrated", nil, nil)
	testutil.SeedRating(t, db, u, rated, 3)

	got, err := repo.TopBooks(context.Background(), DefaultTopLimit)
	if err != nil {
		t.Fatalf("TopBooks failed: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected only the rated book, got %d entries", len(got))
	}
	if got[0].Book.ID != rated.ID {
		t.Errorf("expected book %s, got %s", rated.ID, got[0].Book.ID)
	}
}

func TestTopBooks_Empty(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewGormStatsRepository(db)

	got, err := repo.TopBooks(context.Background(), DefaultTopLimit)
	if err != nil {
		t.Fatalf("TopBooks failed: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected no entries without ratings, got %d", len(got))
	}
}

func TestTopBooks_DefaultLimit(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewGormStatsRepository(db)

	u := testutil.SeedUser(t, db, "u1", "x")
	for i, title := range []string{"B1", "B2", "B3", "B4", "B5"} {
		book := testutil.SeedBook(t, db, title, nil, nil)
		testutil.SeedRating(t, db, u, book, float64(i%5)+1)
	}

	got, err := repo.TopBooks(context.Background(), 0)
	if err != nil {
		t.Fatalf("TopBooks failed: %v", err)
	}
	if len(got) != DefaultTopLimit {
		t.Errorf("expected limit to fall back to %d, got %d entries", DefaultTopLimit, len(got))
	}
}

func TestTopBooks_PreloadsRelations(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewGormStatsRepository(db)

	author := testutil.SeedAuthor(t, db, "Loaded Author")
	genre := testutil.SeedGenre(t, db, "Loaded Genre")
	u := testutil.SeedUser(t, db, "u1", "x")
	book := testutil.SeedBook(t, db, "Loaded", []model.Author{author}, []model.Genre{genre})
	testutil.SeedRating(t, db, u, book, 5)

	got, err := repo.TopBooks(context.Background(), 1)
	if err != nil {
		t.Fatalf("TopBooks failed: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(got))
	}
	if len(got[0].Book.Authors) != 1 || len(got[0].Book.Genres) != 1 {
		t.Errorf("expected authors and genres preloaded, got %+v", got[0].Book)
	}
}

func TestTopAuthors_FlattenedMean(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewGormStatsRepository(db)

	// Author X has two books: one with scores [5, 5], one with [1].
	// The flattened mean is (5+5+1)/3, not the mean of per-book means.
	authorX := testutil.SeedAuthor(t, db, "X")
	authorY := testutil.SeedAuthor(t, db, "Y")

	u1 := testutil.SeedUser(t, db, "u1", "x")
	u2 := testutil.SeedUser(t, db, "u2", "x")

	bookHigh := testutil.SeedBook(t, db, "High", []model.Author{authorX}, nil)
	bookLow := testutil.SeedBook(t, db, "Low", []model.Author{authorX}, nil)
	bookMid := testutil.SeedBook(t, db, "Mid", []model.Author{authorY}, nil)

	testutil.SeedRating(t, db, u1, bookHigh, 5)
	testutil.SeedRating(t, db, u2, bookHigh, 5)
	testutil.SeedRating(t, db, u1, bookLow, 1)
	testutil.SeedRating(t, db, u1, bookMid, 4)

	got, err := repo.TopAuthors(context.Background(), DefaultTopLimit)
	if err != nil {
		t.Fatalf("TopAuthors failed: %v", err)
	}

	if len(got) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(got))
	}
	if got[0].Author.ID != authorY.ID || !almostEqual(got[0].AverageScore, 4) {
		t.Errorf("expected author Y with mean 4 first, got %s %.4f", got[0].Author.Name, got[0].AverageScore)
	}
	if got[1].Author.ID != authorX.ID || !almostEqual(got[1].AverageScore, 11.0/3.0) {
		t.Errorf("expected author X with mean 11/3 second, got %s %.4f", got[1].Author.Name, got[1].AverageScore)
	}
}

func TestTopAuthors_ExcludesAuthorsWithoutRatings(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewGormStatsRepository(db)

	rated := testutil.SeedAuthor(t, db, "Rated")
	unrated := testutil.SeedAuthor(t, db, "Unrated")

	u := testutil.SeedUser(t, db, "u1", "x")
	ratedBook := testutil.SeedBook(t, db, "Rated Book", []model.Author{rated}, nil)
	testutil.SeedBook(t, db, "Unrated Book", []model.Author{unrated}, nil)
	testutil.SeedRating(t, db, u, ratedBook, 2)

	got, err := repo.TopAuthors(context.Background(), DefaultTopLimit)
	if err != nil {
		t.Fatalf("TopAuthors failed: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(got))
	}
	if got[0].Author.ID != rated.ID {
		t.Errorf("expected author %s, got %s", rated.ID, got[0].Author.ID)
	}
}
