package storage

import (
	"context"
	"time"

	"github.com/iudanet/leadsync/internal/models"
)

// UserStorage defines the interface for account persistence
type UserStorage interface {
	// CreateUser creates a new user
	// Returns ErrUserAlreadyExists if the username is taken
	CreateUser(ctx context.Context, user *models.User) error

	// GetUserByUsername retrieves a user by username
	// Returns ErrUserNotFound if the user doesn't exist
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)

	// UpdateLastLogin updates the last login timestamp
	UpdateLastLogin(ctx context.Context, userID string, lastLogin time.Time) error
}
