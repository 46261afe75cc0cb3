package repository

import (
	"context"

	"linq/internal/domain"
)

// ChatRepository defines the storage operations for chat threads.
type ChatRepository interface {
	// Create stores a new thread.
	Create(ctx context.Context, thread *domain.ChatThread) error

	// GetByID retrieves a thread by ID.
	GetByID(ctx context.Context, id string) (*domain.ChatThread, error)

	// GetByRideID retrieves the thread tied to a ride.
	GetByRideID(ctx context.Context, rideID string) (*domain.ChatThread, error)

	// GetAll retrieves all threads.
	GetAll(ctx context.Context) ([]*domain.ChatThread, error)

	// Update updates an existing thread.
	Update(ctx context.Context, thread *domain.ChatThread) error
}
