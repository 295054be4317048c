package handler

import (
	"net/http"
	"testing"

	"github.com/google/uuid"

	"github.com/shelfmate/catalog/internal/model"
	"github.com/shelfmate/catalog/internal/testutil"
)

func TestCreateBook_Success(t *testing.T) {
	db := testutil.NewTestDB(t)
	router := setupTestRouter(db)

	author := testutil.SeedAuthor(t, db, "Le Guin")
	genre := testutil.SeedGenre(t, db, "Fantasy")

	body := CreateBookRequest{
		Title:       "The Dispossessed",
		Description: "An ambiguous utopia",
		AuthorIDs:   []uuid.UUID{author.ID},
		GenreIDs:    []uuid.UUID{genre.ID},
	}

	w := doJSON(t, router, http.MethodPost, "/books", body, "")
	if w.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d, body=%s", w.Code, w.Body.String())
	}

	resp := decode[BookResponse](t, w)
	if resp.Data.ID == uuid.Nil {
		t.Errorf("expected non-empty ID")
	}
	if resp.Data.Title != body.Title {
		t.Errorf("expected title %q, got %q", body.Title, resp.Data.Title)
	}
	if len(resp.Data.Authors) != 1 || resp.Data.Authors[0].ID != author.ID {
		t.Errorf("expected author %s linked, got %v", author.ID, resp.Data.Authors)
	}
	if len(resp.Data.Genres) != 1 || resp.Data.Genres[0].ID != genre.ID {
		t.Errorf("expected genre %s linked, got %v", genre.ID, resp.Data.Genres)
	}
}

func TestCreateBook_UnknownIDsDropped(t *testing.T) {
	db := testutil.NewTestDB(t)
	router := setupTestRouter(db)

	body := CreateBookRequest{
		Title:     "No Relations",
		AuthorIDs: []uuid.UUID{uuid.New()},
		GenreIDs:  []uuid.UUID{uuid.New(), uuid.New()},
	}

	w := doJSON(t, router, http.MethodPost, "/books", body, "")
	if w.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d, body=%s", w.Code, w.Body.String())
	}

	resp := decode[BookResponse](t, w)
	if len(resp.Data.Authors) != 0 || len(resp.Data.Genres) != 0 {
		t.Errorf("expected unknown ids dropped, got %v / %v", resp.Data.Authors, resp.Data.Genres)
	}
}

func TestCreateBook_MissingTitle(t *testing.T) {
	db := testutil.NewTestDB(t)
	router := setupTestRouter(db)

	w := doJSON(t, router, http.MethodPost, "/books", map[string]any{"description": "no title"}, "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d, body=%s", w.Code, w.Body.String())
	}
}

func TestGetBook_NotFound(t *testing.T) {
	db := testutil.NewTestDB(t)
	router := setupTestRouter(db)

	w := doJSON(t, router, http.MethodGet, "/books/"+uuid.NewString(), nil, "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d, body=%s", w.Code, w.Body.String())
	}
}

func TestGetBook_InvalidID(t *testing.T) {
	db := testutil.NewTestDB(t)
	router := setupTestRouter(db)

	w := doJSON(t, router, http.MethodGet, "/books/not-a-uuid", nil, "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d, body=%s", w.Code, w.Body.String())
	}
}

func TestUpdateBook_ReplacesGenres(t *testing.T) {
	db := testutil.NewTestDB(t)
	router := setupTestRouter(db)

	old := testutil.SeedGenre(t, db, "Old")
	replacement := testutil.SeedGenre(t, db, "Replacement")
	book := testutil.SeedBook(t, db, "Mutable", nil, []model.Genre{old})

	body := map[string]any{"genre_ids": []string{replacement.ID.String()}}
	w := doJSON(t, router, http.MethodPatch, "/books/"+book.ID.String(), body, "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d, body=%s", w.Code, w.Body.String())
	}

	resp := decode[BookResponse](t, w)
	if len(resp.Data.Genres) != 1 || resp.Data.Genres[0].ID != replacement.ID {
		t.Errorf("expected genre set replaced, got %v", resp.Data.Genres)
	}
}

func TestDeleteBook_ReturnsPriorState(t *testing.T) {
	db := testutil.NewTestDB(t)
	router := setupTestRouter(db)

	book := testutil.SeedBook(t, db, "Short-lived", nil, nil)

	w := doJSON(t, router, http.MethodDelete, "/books/"+book.ID.String(), nil, "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d, body=%s", w.Code, w.Body.String())
	}

	resp := decode[BookResponse](t, w)
	if resp.Data.ID != book.ID || resp.Data.Title != "Short-lived" {
		t.Errorf("expected deleted book in response, got %+v", resp.Data)
	}

	w = doJSON(t, router, http.MethodGet, "/books/"+book.ID.String(), nil, "")
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404 after delete, got %d", w.Code)
	}
}

func TestRateBook_RequiresToken(t *testing.T) {
	db := testutil.NewTestDB(t)
	router := setupTestRouter(db)

	book := testutil.SeedBook(t, db, "Guarded", nil, nil)

	w := doJSON(t, router, http.MethodPost, "/books/"+book.ID.String()+"/rate",
		RateBookRequest{Score: 4}, "")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d, body=%s", w.Code, w.Body.String())
	}
}

func TestRateBook_Success(t *testing.T) {
	db := testutil.NewTestDB(t)
	router := setupTestRouter(db)

	user := testutil.SeedUser(t, db, "rater", "h")
	book := testutil.SeedBook(t, db, "Rateable", nil, nil)

	token, err := testTokenManager().Issue(user.ID)
	if err != nil {
		t.Fatalf("failed to issue token: %v", err)
	}

	w := doJSON(t, router, http.MethodPost, "/books/"+book.ID.String()+"/rate",
		RateBookRequest{Score: 4.5}, token)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d, body=%s", w.Code, w.Body.String())
	}

	resp := decode[RatingResponse](t, w)
	if resp.Data.Score != 4.5 || resp.Data.UserID != user.ID || resp.Data.BookID != book.ID {
		t.Errorf("unexpected rating %+v", resp.Data)
	}
}

func TestRateBook_ScoreOutOfRange(t *testing.T) {
	db := testutil.NewTestDB(t)
	router := setupTestRouter(db)

	user := testutil.SeedUser(t, db, "rater", "h")
	book := testutil.SeedBook(t, db, "Picky", nil, nil)

	token, err := testTokenManager().Issue(user.ID)
	if err != nil {
		t.Fatalf("failed to issue token: %v", err)
	}

	for _, score := range []float64{0.5, 5.5} {
		w := doJSON(t, router, http.MethodPost, "/books/"+book.ID.String()+"/rate",
			map[string]any{"score": score}, token)
		if w.Code != http.StatusBadRequest {
			t.Errorf("expected status 400 for score %v, got %d", score, w.Code)
		}
	}
}

func TestRateBook_UnknownBook(t *testing.T) {
	db := testutil.NewTestDB(t)
	router := setupTestRouter(db)

	user := testutil.SeedUser(t, db, "rater", "h")
	token, err := testTokenManager().Issue(user.ID)
	if err != nil {
		t.Fatalf("failed to issue token: %v", err)
	}

	w := doJSON(t, router, http.MethodPost, "/books/"+uuid.NewString()+"/rate",
		RateBookRequest{Score: 3}, token)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d, body=%s", w.Code, w.Body.String())
	}
}

func TestListBookRatings_UnknownBookEmpty(t *testing.T) {
	db := testutil.NewTestDB(t)
	router := setupTestRouter(db)

	w := doJSON(t, router, http.MethodGet, "/books/"+uuid.NewString()+"/ratings", nil, "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d, body=%s", w.Code, w.Body.String())
	}

	resp := decode[ListRatingsResponse](t, w)
	if len(resp.Data) != 0 {
		t.Errorf("expected empty list, got %d entries", len(resp.Data))
	}
}

func TestLinkGenre_IdempotentOverHTTP(t *testing.T) {
	db := testutil.NewTestDB(t)
	router := setupTestRouter(db)

	genre := testutil.SeedGenre(t, db, "Sticky")
	book := testutil.SeedBook(t, db, "Linked", nil, nil)

	path := "/books/" + book.ID.String() + "/genres/" + genre.ID.String()
	for i := 0; i < 2; i++ {
		w := doJSON(t, router, http.MethodPost, path, nil, "")
		if w.Code != http.StatusOK {
			t.Fatalf("link attempt %d: expected status 200, got %d, body=%s", i+1, w.Code, w.Body.String())
		}
	}

	w := doJSON(t, router, http.MethodGet, "/books/"+book.ID.String()+"/genres", nil, "")
	resp := decode[ListGenresResponse](t, w)
	if len(resp.Data) != 1 {
		t.Errorf("expected 1 genre after double link, got %d", len(resp.Data))
	}
}

func TestLinkGenre_UnknownGenre(t *testing.T) {
	db := testutil.NewTestDB(t)
	router := setupTestRouter(db)

	book := testutil.SeedBook(t, db, "Lonesome", nil, nil)

	w := doJSON(t, router, http.MethodPost,
		"/books/"+book.ID.String()+"/genres/"+uuid.NewString(), nil, "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d, body=%s", w.Code, w.Body.String())
	}
}

func TestUnlinkGenre_NoOp(t *testing.T) {
	db := testutil.NewTestDB(t)
	router := setupTestRouter(db)

	genre := testutil.SeedGenre(t, db, "Detachable")
	book := testutil.SeedBook(t, db, "Stable", nil, nil)

	w := doJSON(t, router, http.MethodDelete,
		"/books/"+book.ID.String()+"/genres/"+genre.ID.String(), nil, "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200 for unlinking an unlinked genre, got %d, body=%s", w.Code, w.Body.String())
	}
}
