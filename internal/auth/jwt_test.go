package auth_test

import (
	"testing"
	"time"

	"github.com/avega-dev/cronogramas/internal/auth"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	m := auth.NewManager("test-secret", time.Hour)

	token, err := m.GenerateAccessToken(42, "maestro")

	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}

	userID, claims, err := m.VerifyAccessToken(token)

	if err != nil {
		t.Fatalf("VerifyAccessToken: %v", err)
	}

	if userID != 42 {
		t.Fatalf("got userID %d, want 42", userID)
	}

	if claims.Rol != "maestro" {
		t.Fatalf("got rol %q, want maestro", claims.Rol)
	}

	if claims.Subject != "42" {
		t.Fatalf("got subject %q, want 42", claims.Subject)
	}
}

func TestVerifyAccessToken_Expired(t *testing.T) {
	m := auth.NewManager("test-secret", -time.Minute)

	token, err := m.GenerateAccessToken(7, "coordinador")

	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}

	_, _, err = m.VerifyAccessToken(token)

	if err == nil {
		t.Fatalf("expected expired token to fail verification")
	}
}

func TestVerifyAccessToken_WrongSecret(t *testing.T) {
	issuer := auth.NewManager("secret-a", time.Hour)
	verifier := auth.NewManager("secret-b", time.Hour)

	token, err := issuer.GenerateAccessToken(7, "maestro")

	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}

	_, _, err = verifier.VerifyAccessToken(token)

	if err == nil {
		t.Fatalf("expected token signed with another secret to fail")
	}
}

func TestVerifyAccessToken_Garbage(t *testing.T) {
	m := auth.NewManager("test-secret", time.Hour)

	_, _, err := m.VerifyAccessToken("not.a.token")

	if err == nil {
		t.Fatalf("expected garbage token to fail")
	}
}
