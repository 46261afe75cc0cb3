package repository

import (
	"context"

	"linq/internal/domain"
)

// PlaceRepository defines read access to the places catalog.
type PlaceRepository interface {
	// GetByID retrieves a place by ID.
	GetByID(ctx context.Context, id string) (*domain.Place, error)

	// GetAll retrieves all places.
	GetAll(ctx context.Context) ([]*domain.Place, error)
}
