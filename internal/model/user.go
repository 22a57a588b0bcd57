package model

import "time"

// UserID uniquely identifies a user across the system.
// It is the opaque subject identifier carried by validated sessions.
type UserID string

// User represents a registered account
type User struct {
	ID           UserID
	Username     string // login username (immutable)
	PasswordHash string // bcrypt hash
	CreatedAt    time.Time
}
