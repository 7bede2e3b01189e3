// Package models holds the server-side persistence models.
package models

import "time"

// User is one row of the users table.
//
// ResetToken is nil when no password reset is pending. PasswordHash and
// ResetToken never leave the server.
type User struct {
	ID           string
	UserName     string
	Email        string
	Telephone    string
	PasswordHash string
	ResetToken   *string
	CreatedAt    time.Time
}
