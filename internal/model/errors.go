package model

import "errors"

// Common errors used across the application
var (
	// Player errors
	ErrPlayerNotFound = errors.New("player not found")

	// Game identity errors
	ErrUnknownGame = errors.New("unknown game")

	// Session errors
	ErrSessionNotFound      = errors.New("session not found")
	ErrSessionNotInProgress = errors.New("session is not in progress")
	ErrSessionComplete      = errors.New("session is already complete")

	// Quiz errors
	ErrInvalidOption = errors.New("selected option is out of range")

	// Tower of Hanoi errors
	ErrInvalidMove      = errors.New("invalid move")
	ErrInvalidRod       = errors.New("invalid rod index")
	ErrInvalidDiskCount = errors.New("invalid disk count")

	// Scramble errors
	ErrEmptyGuess = errors.New("guess must not be empty")
)
