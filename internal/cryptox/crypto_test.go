package cryptox

import (
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	for _, pw := range []string{"pw123", "", "пароль", strings.Repeat("x", MaxPasswordLength)} {
		hash, err := HashPassword(pw, bcrypt.MinCost)
		if err != nil {
			t.Fatalf("HashPassword(%q) error: %v", pw, err)
		}
		if !VerifyPassword(pw, hash) {
			t.Fatalf("VerifyPassword(%q) = false, want true", pw)
		}
	}
}

func TestHashPassword_SaltedEachCall(t *testing.T) {
	h1, err := HashPassword("secret-password", bcrypt.MinCost)
	if err != nil {
		t.Fatal(err)
	}
	h2, err := HashPassword("secret-password", bcrypt.MinCost)
	if err != nil {
		t.Fatal(err)
	}

	if h1 == h2 {
		t.Errorf("expected different hashes for the same password, got %q twice", h1)
	}
	if strings.Contains(h1, "secret-password") {
		t.Errorf("hash leaks plaintext: %q", h1)
	}
}

func TestHashPassword_UsesCost(t *testing.T) {
	hash, err := HashPassword("pw", 5)
	if err != nil {
		t.Fatal(err)
	}
	cost, err := bcrypt.Cost([]byte(hash))
	if err != nil {
		t.Fatal(err)
	}
	if cost != 5 {
		t.Errorf("cost = %d, want 5", cost)
	}
}

func TestHashPassword_TooLong(t *testing.T) {
	_, err := HashPassword(strings.Repeat("x", MaxPasswordLength+1), bcrypt.MinCost)
	if err != ErrPasswordTooLong {
		t.Fatalf("expected ErrPasswordTooLong, got %v", err)
	}
}

func TestVerifyPassword_Mismatch(t *testing.T) {
	hash, err := HashPassword("right", bcrypt.MinCost)
	if err != nil {
		t.Fatal(err)
	}
	if VerifyPassword("wrong", hash) {
		t.Error("wrong password verified")
	}
	if VerifyPassword("right", "not-a-bcrypt-hash") {
		t.Error("malformed hash verified")
	}
}

func TestNormalizeCost(t *testing.T) {
	tests := []struct {
		in, want int
	}{
		{0, bcrypt.DefaultCost},
		{bcrypt.MinCost - 1, bcrypt.DefaultCost},
		{bcrypt.MaxCost + 1, bcrypt.DefaultCost},
		{bcrypt.MinCost, bcrypt.MinCost},
		{12, 12},
	}
	for _, tt := range tests {
		if got := NormalizeCost(tt.in); got != tt.want {
			t.Errorf("NormalizeCost(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
