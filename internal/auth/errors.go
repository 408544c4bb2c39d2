package auth

import "errors"

var (
	ErrCredentialsRequired = errors.New("Username and password are required")
	ErrInvalidUsername     = errors.New("Invalid username and/or password")
	ErrIncorrectPassword   = errors.New("Invalid username and/or password")
	ErrNotAuthenticated    = errors.New("Not authenticated")
)
