package middleware

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func signTestToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("signing token: %v", err)
	}
	return signed
}

func TestParseTokenFromRequest(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	signed := signTestToken(t, "test-secret", jwt.MapClaims{
		"user_id": "u-1",
		"email":   "ana@example.com",
		"exp":     time.Now().Add(time.Hour).Unix(),
	})

	r := httptest.NewRequest("GET", "/api/auth/me", nil)
	r.Header.Set("Authorization", "Bearer "+signed)

	claims, err := ParseTokenFromRequest(r)
	if err != nil {
		t.Fatalf("ParseTokenFromRequest: %v", err)
	}
	if claims["user_id"] != "u-1" {
		t.Errorf("user_id claim = %v, want u-1", claims["user_id"])
	}
	if claims["email"] != "ana@example.com" {
		t.Errorf("email claim = %v, want ana@example.com", claims["email"])
	}
}

func TestParseTokenFromRequestNoBearerPrefix(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	signed := signTestToken(t, "test-secret", jwt.MapClaims{
		"user_id": "u-1",
		"exp":     time.Now().Add(time.Hour).Unix(),
	})

	r := httptest.NewRequest("GET", "/api/auth/me", nil)
	r.Header.Set("Authorization", signed)

	if _, err := ParseTokenFromRequest(r); err != nil {
		t.Errorf("raw token without Bearer prefix rejected: %v", err)
	}
}

func TestParseTokenFromRequestMissingHeader(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	r := httptest.NewRequest("GET", "/api/auth/me", nil)
	if _, err := ParseTokenFromRequest(r); err == nil {
		t.Error("missing Authorization header accepted")
	}
}

func TestParseTokenFromRequestExpired(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	signed := signTestToken(t, "test-secret", jwt.MapClaims{
		"user_id": "u-1",
		"exp":     time.Now().Add(-time.Minute).Unix(),
	})

	r := httptest.NewRequest("GET", "/api/auth/me", nil)
	r.Header.Set("Authorization", "Bearer "+signed)

	if _, err := ParseTokenFromRequest(r); err == nil {
		t.Error("expired token accepted")
	}
}

func TestParseTokenFromRequestWrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	signed := signTestToken(t, "other-secret", jwt.MapClaims{
		"user_id": "u-1",
		"exp":     time.Now().Add(time.Hour).Unix(),
	})

	r := httptest.NewRequest("GET", "/api/auth/me", nil)
	r.Header.Set("Authorization", "Bearer "+signed)

	if _, err := ParseTokenFromRequest(r); err == nil {
		t.Error("token signed with wrong secret accepted")
	}
}

func TestParseTokenFromRequestGarbage(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	r := httptest.NewRequest("GET", "/api/auth/me", nil)
	r.Header.Set("Authorization", "Bearer not.a.token")

	if _, err := ParseTokenFromRequest(r); err == nil {
		t.Error("garbage token accepted")
	}
}
