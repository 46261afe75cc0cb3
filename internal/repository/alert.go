package repository

import (
	"context"

	"linq/internal/domain"
)

// AlertRepository defines the storage operations for inbox alerts.
type AlertRepository interface {
	// Create stores a new alert.
	Create(ctx context.Context, alert *domain.Alert) error

	// GetByID retrieves an alert by ID.
	GetByID(ctx context.Context, id string) (*domain.Alert, error)

	// GetAll retrieves all alerts, newest first.
	GetAll(ctx context.Context) ([]*domain.Alert, error)

	// Update updates an existing alert.
	Update(ctx context.Context, alert *domain.Alert) error
}
