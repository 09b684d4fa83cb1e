package auth

import "context"

type AuthService interface {
	// Login verifies the admin password and issues an access token.
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)
}
