package services

import "errors"

var (
	ErrUserNotFound     = errors.New("user not found")
	ErrItemNotFound     = errors.New("item not found")
	ErrUsernameTaken    = errors.New("username already registered")
	ErrPasswordMismatch = errors.New("password and confirmation do not match")
	ErrPasswordTooShort = errors.New("password must be at least 8 characters")
	ErrInvalidLogin     = errors.New("invalid username or password")
)
