package auth

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/black-cross/backend/internal/domain"
)

// Service defines the authentication operations.
type Service interface {
	Login(ctx context.Context, email, password string) (*LoginResult, error)
}

// LoginResult carries the token and profile handed back on a successful login.
type LoginResult struct {
	Token string
	User  domain.User
}

// stubService implements Service against a single configured credential.
// The token is a fixed literal; nothing is signed, stored, or validated
// afterwards.
type stubService struct {
	email        string
	passwordHash []byte
	token        string
	user         domain.User
}

// NewService creates the stub auth Service. The mock password is hashed
// once here so request handling never compares plaintext.
func NewService(email, password, token string, user domain.User) (Service, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash mock password: %w", err)
	}

	return &stubService{
		email:        email,
		passwordHash: hash,
		token:        token,
		user:         user,
	}, nil
}

// Login checks the submitted credentials against the configured pair.
// Any mismatch returns domain.ErrInvalidCredentials without revealing
// which field was wrong.
func (s *stubService) Login(_ context.Context, email, password string) (*LoginResult, error) {
	if email != s.email {
		return nil, domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	return &LoginResult{
		Token: s.token,
		User:  s.user,
	}, nil
}
