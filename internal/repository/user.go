package repository

import (
	"context"

	"linq/internal/domain"
)

// UserRepository defines the storage operations for accounts.
type UserRepository interface {
	// Create stores a new user.
	Create(ctx context.Context, user *domain.User) error

	// GetByID retrieves a user by ID.
	GetByID(ctx context.Context, id string) (*domain.User, error)

	// GetByPhone retrieves a user by phone number.
	GetByPhone(ctx context.Context, phone string) (*domain.User, error)

	// Update updates an existing user.
	Update(ctx context.Context, user *domain.User) error
}
