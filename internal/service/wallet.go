package service

import (
	"context"

	"github.com/google/uuid"

	"linq/internal/domain"
	"linq/internal/repository"
)

// WalletService tracks informal cost contributions between co-riders. It
// records acknowledgments only; no money moves through the system.
type WalletService struct {
	walletRepo repository.WalletRepository
}

// NewWalletService creates a new WalletService.
func NewWalletService(walletRepo repository.WalletRepository) *WalletService {
	return &WalletService{walletRepo: walletRepo}
}

// Active returns items still awaiting acknowledgment (any non-resolved
// status).
func (s *WalletService) Active(ctx context.Context) ([]*domain.WalletItem, error) {
	return s.filter(ctx, func(item *domain.WalletItem) bool {
		return item.Status != domain.ContributionResolved
	})
}

// History returns resolved items.
func (s *WalletService) History(ctx context.Context) ([]*domain.WalletItem, error) {
	return s.filter(ctx, func(item *domain.WalletItem) bool {
		return item.Status == domain.ContributionResolved
	})
}

func (s *WalletService) filter(ctx context.Context, keep func(*domain.WalletItem) bool) ([]*domain.WalletItem, error) {
	items, err := s.walletRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]*domain.WalletItem, 0, len(items))
	for _, item := range items {
		if keep(item) {
			result = append(result, item)
		}
	}
	return result, nil
}

// MarkSettled resolves a contribution. The transition is one-directional;
// calling it on an already resolved item succeeds without changes.
func (s *WalletService) MarkSettled(ctx context.Context, itemID string) (*domain.WalletItem, error) {
	if itemID == "" {
		return nil, ErrInvalidWalletItemID
	}

	item, err := s.walletRepo.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}

	if item.Status == domain.ContributionResolved {
		return item, nil
	}

	item.Status = domain.ContributionResolved
	if err := s.walletRepo.Update(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// Summary holds the figures shown at the top of the wallet view. All values
// are computed from the current items on every call.
type Summary struct {
	PendingToPay     float64
	PendingToReceive float64
	ClearedTotal     float64
	ActiveCount      int
}

// Summarize computes the wallet summary.
func (s *WalletService) Summarize(ctx context.Context) (*Summary, error) {
	items, err := s.walletRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	summary := &Summary{}
	for _, item := range items {
		if item.Status == domain.ContributionResolved {
			summary.ClearedTotal += item.Amount
			continue
		}
		summary.ActiveCount++
		switch item.Role {
		case domain.WalletRolePayer:
			summary.PendingToPay += item.Amount
		case domain.WalletRoleReceiver:
			summary.PendingToReceive += item.Amount
		}
	}
	return summary, nil
}

// CreateForRide records a pending fuel-share contribution when a priced ride
// completes.
func (s *WalletService) CreateForRide(ctx context.Context, ride *domain.Ride) (*domain.WalletItem, error) {
	item := &domain.WalletItem{
		ID:              uuid.New().String(),
		RideID:          ride.ID,
		Date:            ride.Date + ", " + ride.Time,
		OtherUserName:   ride.ProviderName,
		Role:            domain.WalletRolePayer,
		Amount:          ride.Price,
		VehicleType:     ride.VehicleType,
		Type:            domain.ContributionFuelShare,
		Status:          domain.ContributionPending,
		RideDescription: rideRoute(ride),
	}
	if err := s.walletRepo.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}
