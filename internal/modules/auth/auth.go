package auth

import "context"

// Service defines the interface for authentication-related business logic.
type Service interface {
	// Login checks the credentials and returns a signed JWT for the account.
	Login(ctx context.Context, email, password string) (string, error)

	// Verify parses a token and returns the subject (user id) it carries.
	Verify(token string) (string, error)
}
