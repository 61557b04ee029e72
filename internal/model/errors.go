package model

import "errors"

// Common errors used across the application
var (
	// Player errors
	ErrPlayerNotFound = errors.New("player not found")

	// Session errors
	ErrSessionNotFound    = errors.New("session not found")
	ErrNotSessionOwner    = errors.New("session belongs to another player")
	ErrInvalidRequest     = errors.New("word and sentence are both required")
	ErrValidationInFlight = errors.New("a validation is already in progress")
	ErrStaleResult        = errors.New("validation result arrived after the game was reset")

	// ErrValidationUnavailable wraps any failure of the judge: network errors,
	// timeouts and malformed responses all look the same to the caller.
	ErrValidationUnavailable = errors.New("could not validate your word")

	// Coaching errors
	ErrInvalidInput          = errors.New("invalid input")
	ErrGenerationUnavailable = errors.New("content generation unavailable")

	// Dictionary errors
	ErrDictionaryNotLoaded = errors.New("dictionary not loaded")
)
