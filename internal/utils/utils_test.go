package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestPasswordHashAndVerify(t *testing.T) {
	hash, err := HashPassword("s3cret", 4)
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if !VerifyPassword(hash, "s3cret") {
		t.Fatal("correct password rejected")
	}
	if VerifyPassword(hash, "wrong") {
		t.Fatal("wrong password accepted")
	}
}

func TestAccessTokenClaims(t *testing.T) {
	at, err := NewAccessToken("secret", 42, "admin", 15)
	if err != nil {
		t.Fatalf("NewAccessToken: %v", err)
	}
	tok, err := jwt.Parse(at.Token, func(t *jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	if err != nil || !tok.Valid {
		t.Fatalf("parse token: %v", err)
	}
	claims := tok.Claims.(jwt.MapClaims)
	if claims["sub"].(float64) != 42 {
		t.Fatalf("sub = %v, want 42", claims["sub"])
	}
	if claims["role"] != "admin" {
		t.Fatalf("role = %v, want admin", claims["role"])
	}
	if time.Until(at.Exp) > 15*time.Minute {
		t.Fatalf("expiry too far out: %s", at.Exp)
	}
}

func TestRefreshTokenHashing(t *testing.T) {
	rt, err := NewRefreshToken(7)
	if err != nil {
		t.Fatalf("NewRefreshToken: %v", err)
	}
	if len(rt.Raw) != 96 {
		t.Fatalf("raw length = %d, want 96 hex chars", len(rt.Raw))
	}
	h1 := HashRefreshRaw(rt.Raw)
	h2 := HashRefreshRaw(rt.Raw)
	if h1 != h2 {
		t.Fatal("hash not deterministic")
	}
	if h1 == rt.Raw {
		t.Fatal("hash equals raw token")
	}

	other, err := NewRefreshToken(7)
	if err != nil {
		t.Fatalf("NewRefreshToken: %v", err)
	}
	if HashRefreshRaw(other.Raw) == h1 {
		t.Fatal("distinct tokens share a hash")
	}
}
