package users

import "errors"

var (
	ErrUsernameRequired     = errors.New("Must provide username to register")
	ErrInvalidUsername      = errors.New("Username may only contain letters, digits, dots, hyphens and underscores (3-32 characters)")
	ErrUsernameTaken        = errors.New("That username already exists")
	ErrPasswordRequired     = errors.New("Must provide password to register")
	ErrInvalidPassword      = errors.New("Password must be at least 8 characters with a letter, a number and a special character")
	ErrConfirmationRequired = errors.New("Must provide a password confirmation value")
	ErrPasswordMismatch     = errors.New("Your passwords do not match")
)
