package repository

import (
	"context"

	"linq/internal/domain"
)

// RideRepository defines the storage operations for rides.
type RideRepository interface {
	// Create stores a new ride.
	Create(ctx context.Context, ride *domain.Ride) error

	// GetByID retrieves a ride by ID.
	GetByID(ctx context.Context, id string) (*domain.Ride, error)

	// GetAll retrieves all rides.
	GetAll(ctx context.Context) ([]*domain.Ride, error)

	// Update updates an existing ride.
	Update(ctx context.Context, ride *domain.Ride) error
}

// MatchRepository defines read access to the search match catalog.
type MatchRepository interface {
	// GetByID retrieves a match by ID.
	GetByID(ctx context.Context, id string) (*domain.RideMatch, error)

	// GetAll retrieves all matches.
	GetAll(ctx context.Context) ([]*domain.RideMatch, error)
}
