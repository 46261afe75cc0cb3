package repository

import (
	"context"

	"linq/internal/domain"
)

// WalletRepository defines the storage operations for contribution records.
type WalletRepository interface {
	// Create stores a new wallet item.
	Create(ctx context.Context, item *domain.WalletItem) error

	// GetByID retrieves a wallet item by ID.
	GetByID(ctx context.Context, id string) (*domain.WalletItem, error)

	// GetAll retrieves all wallet items.
	GetAll(ctx context.Context) ([]*domain.WalletItem, error)

	// Update updates an existing wallet item.
	Update(ctx context.Context, item *domain.WalletItem) error
}
