package auth

import (
	"context"
	"testing"

	"github.com/black-cross/backend/internal/domain"
)

func newTestService(t *testing.T) Service {
	t.Helper()
	svc, err := NewService(
		"admin@blackcross.com",
		"admin",
		"mock-jwt-token",
		domain.User{ID: "1", Email: "admin@blackcross.com", Role: "admin"},
	)
	if err != nil {
		t.Fatalf("failed to create service: %v", err)
	}
	return svc
}

func TestService_Login_Success(t *testing.T) {
	svc := newTestService(t)

	result, err := svc.Login(context.Background(), "admin@blackcross.com", "admin")
	if err != nil {
		t.Fatalf("expected successful login, got: %v", err)
	}
	if result.Token != "mock-jwt-token" {
		t.Errorf("expected fixed token, got %q", result.Token)
	}
	if result.User.ID != "1" || result.User.Role != "admin" {
		t.Errorf("unexpected user profile: %+v", result.User)
	}
}

func TestService_Login_Rejections(t *testing.T) {
	svc := newTestService(t)

	tests := []struct {
		name     string
		email    string
		password string
	}{
		{"wrong email", "x", "admin"},
		{"wrong password", "admin@blackcross.com", "y"},
		{"both wrong", "x", "y"},
		{"empty credentials", "", ""},
		{"password case sensitive", "admin@blackcross.com", "Admin"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Login(context.Background(), tt.email, tt.password)
			if err == nil {
				t.Fatal("expected login to be rejected")
			}
			if !domain.IsUnauthorized(err) {
				t.Errorf("expected unauthorized error, got: %v", err)
			}
		})
	}
}
