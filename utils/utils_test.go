package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/ray-remotestate/foodcourt/middlewares"
	"github.com/ray-remotestate/foodcourt/models"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	hashed, err := HashPassword("s3cret")
	if err != nil {
		t.Fatalf("HashPassword returned error: %v", err)
	}
	if hashed == "s3cret" {
		t.Fatal("password must not be stored in the clear")
	}
	if !CheckPassword(hashed, "s3cret") {
		t.Error("expected matching password to verify")
	}
	if CheckPassword(hashed, "wrong") {
		t.Error("expected wrong password to be rejected")
	}
}

func TestGenerateAccessToken(t *testing.T) {
	secret := []byte("test-secret")
	user := models.User{
		ID:       uuid.New(),
		Username: "alice",
		Email:    "a@example.com",
	}

	tokenStr, err := GenerateAccessToken(secret, user)
	if err != nil {
		t.Fatalf("GenerateAccessToken returned error: %v", err)
	}

	claims := &middlewares.Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		return secret, nil
	})
	if err != nil || !token.Valid {
		t.Fatalf("expected valid token, err=%v", err)
	}

	if claims.UserID != user.ID {
		t.Errorf("expected user id %s, got %s", user.ID, claims.UserID)
	}
	if claims.Username != "alice" || claims.Email != "a@example.com" {
		t.Errorf("unexpected identity claims: %+v", claims)
	}

	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl > time.Hour || ttl < 59*time.Minute {
		t.Errorf("expected roughly one hour expiry, got %v", ttl)
	}
}

func TestGenerateAccessToken_WrongSecretRejected(t *testing.T) {
	tokenStr, err := GenerateAccessToken([]byte("secret-a"), models.User{ID: uuid.New()})
	if err != nil {
		t.Fatalf("GenerateAccessToken returned error: %v", err)
	}

	_, err = jwt.ParseWithClaims(tokenStr, &middlewares.Claims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte("secret-b"), nil
	})
	if err == nil {
		t.Fatal("expected verification to fail with a different secret")
	}
}

func TestIsValidEmail(t *testing.T) {
	tests := []struct {
		email string
		want  bool
	}{
		{"a@example.com", true},
		{"first.last@sub.example.co", true},
		{"missing-at.example.com", false},
		{"no-dot@example", false},
		{"spaces in@example.com", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := IsValidEmail(tt.email); got != tt.want {
			t.Errorf("IsValidEmail(%q) = %v, want %v", tt.email, got, tt.want)
		}
	}
}
