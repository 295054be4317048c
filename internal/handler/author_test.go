package handler

import (
	"net/http"
	"testing"

	"github.com/google/uuid"

	"github.com/shelfmate/catalog/internal/testutil"
)

func TestCreateAuthor_Success(t *testing.T) {
	db := testutil.NewTestDB(t)
	router := setupTestRouter(db)

	w := doJSON(t, router, http.MethodPost, "/authors",
		CreateAuthorRequest{Name: "Borges"}, "")
	if w.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d, body=%s", w.Code, w.Body.String())
	}

	resp := decode[AuthorResponse](t, w)
	if resp.Data.ID == uuid.Nil || resp.Data.Name != "Borges" {
		t.Errorf("unexpected author %+v", resp.Data)
	}
}

func TestCreateAuthor_DuplicateName(t *testing.T) {
	db := testutil.NewTestDB(t)
	router := setupTestRouter(db)

	testutil.SeedAuthor(t, db, "Calvino")

	w := doJSON(t, router, http.MethodPost, "/authors",
		CreateAuthorRequest{Name: "Calvino"}, "")
	if w.Code != http.StatusConflict {
		t.Fatalf("expected status 409, got %d, body=%s", w.Code, w.Body.String())
	}
}

func TestCreateAuthor_EmptyName(t *testing.T) {
	db := testutil.NewTestDB(t)
	router := setupTestRouter(db)

	w := doJSON(t, router, http.MethodPost, "/authors", map[string]any{"name": ""}, "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d, body=%s", w.Code, w.Body.String())
	}
}

func TestUpdateAuthor(t *testing.T) {
	db := testutil.NewTestDB(t)
	router := setupTestRouter(db)

	author := testutil.SeedAuthor(t, db, "Before")

	name := "After"
	w := doJSON(t, router, http.MethodPatch, "/authors/"+author.ID.String(),
		UpdateAuthorRequest{Name: &name}, "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d, body=%s", w.Code, w.Body.String())
	}

	resp := decode[AuthorResponse](t, w)
	if resp.Data.Name != "After" {
		t.Errorf("expected updated name, got %q", resp.Data.Name)
	}
}

func TestDeleteAuthor_ReturnsPriorState(t *testing.T) {
	db := testutil.NewTestDB(t)
	router := setupTestRouter(db)

	author := testutil.SeedAuthor(t, db, "Going")

	w := doJSON(t, router, http.MethodDelete, "/authors/"+author.ID.String(), nil, "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d, body=%s", w.Code, w.Body.String())
	}

	resp := decode[AuthorResponse](t, w)
	if resp.Data.ID != author.ID || resp.Data.Name != "Going" {
		t.Errorf("expected deleted author in response, got %+v", resp.Data)
	}

	w = doJSON(t, router, http.MethodGet, "/authors/"+author.ID.String(), nil, "")
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404 after delete, got %d", w.Code)
	}
}

func TestListAuthors(t *testing.T) {
	db := testutil.NewTestDB(t)
	router := setupTestRouter(db)

	testutil.SeedAuthor(t, db, "One")
	testutil.SeedAuthor(t, db, "Two")

	w := doJSON(t, router, http.MethodGet, "/authors", nil, "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d, body=%s", w.Code, w.Body.String())
	}

	resp := decode[ListAuthorsResponse](t, w)
	if len(resp.Data) != 2 {
		t.Errorf("expected 2 authors, got %d", len(resp.Data))
	}
}
