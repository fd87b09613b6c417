package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/kharcha-app/kharcha/internal/models"
)

func TestTokenRoundTrip(t *testing.T) {
	m := NewTokenManager("secret", time.Hour)
	account := &models.Account{ID: "acc-1", Email: "a@b.com"}

	token, err := m.Generate(account)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	claims, err := m.Validate(token)
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if claims.AccountID != "acc-1" {
		t.Errorf("AccountID = %q, want acc-1", claims.AccountID)
	}
	if claims.Email != "a@b.com" {
		t.Errorf("Email = %q, want a@b.com", claims.Email)
	}
}

func TestTokenExpired(t *testing.T) {
	m := NewTokenManager("secret", -time.Minute)
	token, err := m.Generate(&models.Account{ID: "acc-1", Email: "a@b.com"})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if _, err := m.Validate(token); !errors.Is(err, ErrTokenExpired) {
		t.Errorf("error = %v, want ErrTokenExpired", err)
	}
}

func TestTokenWrongSecret(t *testing.T) {
	signer := NewTokenManager("secret-a", time.Hour)
	verifier := NewTokenManager("secret-b", time.Hour)

	token, err := signer.Generate(&models.Account{ID: "acc-1", Email: "a@b.com"})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if _, err := verifier.Validate(token); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("error = %v, want ErrInvalidToken", err)
	}
}

func TestTokenMalformed(t *testing.T) {
	m := NewTokenManager("secret", time.Hour)
	for _, bad := range []string{"", "garbage", "a.b.c"} {
		if _, err := m.Validate(bad); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("Validate(%q) error = %v, want ErrInvalidToken", bad, err)
		}
	}
}
