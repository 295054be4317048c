package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	hash, err := HashPassword("s3cret")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	if hash == "s3cret" {
		t.Fatalf("expected hash to differ from plaintext")
	}

	if !CheckPassword("s3cret", hash) {
		t.Errorf("expected matching password to verify")
	}
	if CheckPassword("wrong", hash) {
		t.Errorf("expected mismatched password to fail")
	}
}

func TestHashPassword_UniqueSalts(t *testing.T) {
	first, err := HashPassword("same")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	second, err := HashPassword("same")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	if first == second {
		t.Errorf("expected distinct hashes for the same password")
	}
}

func TestTokenManager_RoundTrip(t *testing.T) {
	tm := NewTokenManager("test-secret", time.Minute)
	userID := uuid.New()

	token, err := tm.Issue(userID)
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	got, err := tm.Resolve(token)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if got != userID {
		t.Errorf("expected user %s, got %s", userID, got)
	}
}

func TestTokenManager_Expired(t *testing.T) {
	tm := NewTokenManager("test-secret", -time.Minute)

	token, err := tm.Issue(uuid.New())
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	if _, err := tm.Resolve(token); err != ErrInvalidToken {
		t.Errorf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestTokenManager_WrongSecret(t *testing.T) {
	issuer := NewTokenManager("one-secret", time.Minute)
	verifier := NewTokenManager("another-secret", time.Minute)

	token, err := issuer.Issue(uuid.New())
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	if _, err := verifier.Resolve(token); err != ErrInvalidToken {
		t.Errorf("expected ErrInvalidToken for foreign token, got %v", err)
	}
}

func TestTokenManager_Malformed(t *testing.T) {
	tm := NewTokenManager("test-secret", time.Minute)

	for _, token := range []string{"", "not-a-token", "aaa.bbb.ccc"} {
		if _, err := tm.Resolve(token); err != ErrInvalidToken {
			t.Errorf("expected ErrInvalidToken for %q, got %v", token, err)
		}
	}
}
