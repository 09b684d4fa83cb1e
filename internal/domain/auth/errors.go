package auth

import "errors"

// Auth domain errors
var (
	ErrInvalidCredentials = errors.New("invalid admin password")
	ErrInvalidToken       = errors.New("invalid or expired token")
)
