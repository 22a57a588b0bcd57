package model

import "errors"

// Common errors used across the application
var (
	// User errors
	ErrUserNotFound = errors.New("user not found")

	// Trade errors
	ErrTradeNotFound = errors.New("trade not found")
	ErrEmptySide     = errors.New("trade side has no players")

	// History query errors
	ErrInvalidPage  = errors.New("page must be 1 or greater")
	ErrInvalidLimit = errors.New("limit is out of range")
)
