package handler

import (
	"net/http"
	"testing"

	"github.com/shelfmate/catalog/internal/testutil"
)

func TestRegisterLoginMe_Flow(t *testing.T) {
	db := testutil.NewTestDB(t)
	router := setupTestRouter(db)

	w := doJSON(t, router, http.MethodPost, "/register",
		RegisterRequest{Username: "alice", Password: "s3cret"}, "")
	if w.Code != http.StatusCreated {
		t.Fatalf("register: expected status 201, got %d, body=%s", w.Code, w.Body.String())
	}
	registered := decode[UserResponse](t, w)
	if registered.Data.Username != "alice" {
		t.Errorf("expected username alice, got %q", registered.Data.Username)
	}

	w = doJSON(t, router, http.MethodPost, "/login",
		LoginRequest{Username: "alice", Password: "s3cret"}, "")
	if w.Code != http.StatusOK {
		t.Fatalf("login: expected status 200, got %d, body=%s", w.Code, w.Body.String())
	}
	tokenResp := decode[TokenResponse](t, w)
	if tokenResp.AccessToken == "" {
		t.Fatalf("expected a token")
	}
	if tokenResp.TokenType != "bearer" {
		t.Errorf("expected token_type bearer, got %q", tokenResp.TokenType)
	}

	w = doJSON(t, router, http.MethodGet, "/me", nil, tokenResp.AccessToken)
	if w.Code != http.StatusOK {
		t.Fatalf("me: expected status 200, got %d, body=%s", w.Code, w.Body.String())
	}
	me := decode[UserResponse](t, w)
	if me.Data.ID != registered.Data.ID {
		t.Errorf("expected current user %s, got %s", registered.Data.ID, me.Data.ID)
	}
}

func TestRegister_DuplicateUsername(t *testing.T) {
	db := testutil.NewTestDB(t)
	router := setupTestRouter(db)

	body := RegisterRequest{Username: "bob", Password: "pw"}
	if w := doJSON(t, router, http.MethodPost, "/register", body, ""); w.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", w.Code)
	}

	w := doJSON(t, router, http.MethodPost, "/register", body, "")
	if w.Code != http.StatusConflict {
		t.Fatalf("expected status 409, got %d, body=%s", w.Code, w.Body.String())
	}
}

func TestRegister_PasswordNotExposed(t *testing.T) {
	db := testutil.NewTestDB(t)
	router := setupTestRouter(db)

	w := doJSON(t, router, http.MethodPost, "/register",
		RegisterRequest{Username: "carol", Password: "hunter2"}, "")
	if w.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", w.Code)
	}

	raw := decode[map[string]map[string]any](t, w)
	if _, ok := raw["data"]["password_hash"]; ok {
		t.Errorf("expected password hash to stay out of the response")
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	db := testutil.NewTestDB(t)
	router := setupTestRouter(db)

	if w := doJSON(t, router, http.MethodPost, "/register",
		RegisterRequest{Username: "dave", Password: "right"}, ""); w.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", w.Code)
	}

	w := doJSON(t, router, http.MethodPost, "/login",
		LoginRequest{Username: "dave", Password: "wrong"}, "")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d, body=%s", w.Code, w.Body.String())
	}
}

func TestLogin_UnknownUser(t *testing.T) {
	db := testutil.NewTestDB(t)
	router := setupTestRouter(db)

	w := doJSON(t, router, http.MethodPost, "/login",
		LoginRequest{Username: "ghost", Password: "pw"}, "")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d, body=%s", w.Code, w.Body.String())
	}
}

func TestMe_WithoutToken(t *testing.T) {
	db := testutil.NewTestDB(t)
	router := setupTestRouter(db)

	w := doJSON(t, router, http.MethodGet, "/me", nil, "")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d, body=%s", w.Code, w.Body.String())
	}
}

func TestMe_GarbageToken(t *testing.T) {
	db := testutil.NewTestDB(t)
	router := setupTestRouter(db)

	w := doJSON(t, router, http.MethodGet, "/me", nil, "not-a-real-token")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d, body=%s", w.Code, w.Body.String())
	}
}
