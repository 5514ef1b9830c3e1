package domain

// User is the account profile returned by the login endpoint.
// The mock backend knows exactly one account; nothing is persisted.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}
