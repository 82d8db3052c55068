package model

import "errors"

// Common errors used across the application
var (
	// Player errors
	ErrPlayerNotFound    = errors.New("player not found")
	ErrUsernameExists    = errors.New("username already exists")
	ErrIncorrectPassword = errors.New("incorrect password")
	ErrUsernameLength    = errors.New("username must be 5 to 12 characters")
	ErrPasswordLength    = errors.New("password must be 8 to 12 characters")

	// Prompt errors
	ErrPromptNotFound = errors.New("prompt not found")
	ErrPromptLength   = errors.New("prompt text must be 20 to 100 characters")
)
