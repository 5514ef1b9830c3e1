package auth

import "github.com/black-cross/backend/internal/domain"

// LoginRequest represents the input for the stub login.
//
// The fields deliberately carry no binding constraints: the wire contract
// answers 200 for every well-formed JSON body, with the success flag
// carrying the verdict. Constraint tags would turn a wrong credential into
// a 400.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse is the payload returned on a successful credential match.
type LoginResponse struct {
	Success bool        `json:"success"`
	Token   string      `json:"token"`
	User    domain.User `json:"user"`
}
