// Package users declares the persistence contract for user accounts and
// its SQL implementations.
package users

import (
	"context"

	"github.com/dmitrijs2005/accountkeeper/internal/server/models"
)

// Repository is the capability set the account service needs from storage.
//
// Lookups return common.ErrorNotFound when no row matches. Create returns
// common.ErrorAlreadyExists when username or email is taken.
type Repository interface {
	// Create inserts a new user with no pending reset token.
	Create(ctx context.Context, user *models.User) (*models.User, error)

	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByResetToken(ctx context.Context, token string) (*models.User, error)

	// SetResetToken stores token as the user's only pending reset token,
	// replacing any previous one.
	SetResetToken(ctx context.Context, userID string, token string) error

	// UpdatePassword replaces the password hash and clears the reset token,
	// but only while token is still the user's pending token. It returns
	// common.ErrorNotFound if the token was already consumed or replaced.
	UpdatePassword(ctx context.Context, userID string, token string, passwordHash string) error
}
