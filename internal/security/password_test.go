package security_test

import (
	"testing"

	"github.com/avega-dev/cronogramas/internal/security"
)

func TestHashPassword_NeverStoresPlaintext(t *testing.T) {
	hash, err := security.HashPassword("secreto123")

	if err != nil {
		t.Fatalf("HashPassword returned error: %v", err)
	}

	if hash == "secreto123" {
		t.Fatalf("hash equals the plaintext password")
	}

	if hash == "" {
		t.Fatalf("hash is empty")
	}
}

func TestCheckPassword(t *testing.T) {
	hash, err := security.HashPassword("secreto123")

	if err != nil {
		t.Fatalf("HashPassword returned error: %v", err)
	}

	if err := security.CheckPassword(hash, "secreto123"); err != nil {
		t.Fatalf("correct password rejected: %v", err)
	}

	if err := security.CheckPassword(hash, "secreto124"); err == nil {
		t.Fatalf("altered password accepted")
	}
}

func TestHashPassword_SaltedPerCall(t *testing.T) {
	h1, err := security.HashPassword("mismo")
	if err != nil {
		t.Fatalf("HashPassword returned error: %v", err)
	}

	h2, err := security.HashPassword("mismo")
	if err != nil {
		t.Fatalf("HashPassword returned error: %v", err)
	}

	if h1 == h2 {
		t.Fatalf("two hashes of the same password are identical, salt missing")
	}
}
