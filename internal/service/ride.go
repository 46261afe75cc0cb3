package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"linq/internal/domain"
	"linq/internal/repository"
)

// RideService drives the ride lifecycle: Requested → Confirmed → InProgress
// → Completed, with cancellation possible before boarding. Every transition
// also mirrors the new status onto the ride's chat thread and publishes a
// ride alert.
type RideService struct {
	rideRepo      repository.RideRepository
	chatService   *ChatService
	walletService *WalletService
	alertService  *AlertService
}

// NewRideService creates a new RideService.
func NewRideService(
	rideRepo repository.RideRepository,
	chatService *ChatService,
	walletService *WalletService,
	alertService *AlertService,
) *RideService {
	return &RideService{
		rideRepo:      rideRepo,
		chatService:   chatService,
		walletService: walletService,
		alertService:  alertService,
	}
}

// RideGroups is the rides view: buckets derived from status.
type RideGroups struct {
	Upcoming  []*domain.Ride
	Active    []*domain.Ride
	Completed []*domain.Ride
}

// Get retrieves a ride by ID.
func (s *RideService) Get(ctx context.Context, rideID string) (*domain.Ride, error) {
	if rideID == "" {
		return nil, ErrInvalidRideID
	}
	return s.rideRepo.GetByID(ctx, rideID)
}

// List groups all rides by their derived category.
func (s *RideService) List(ctx context.Context) (*RideGroups, error) {
	rides, err := s.rideRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	groups := &RideGroups{}
	for _, r := range rides {
		switch domain.CategoryOf(r.Status) {
		case domain.CategoryUpcoming:
			groups.Upcoming = append(groups.Upcoming, r)
		case domain.CategoryActive:
			groups.Active = append(groups.Active, r)
		case domain.CategoryCompleted:
			groups.Completed = append(groups.Completed, r)
		}
	}
	return groups, nil
}

// Accept moves a requested ride to Confirmed. This is the counterparty
// acceptance surface; there is no decline counterpart.
func (s *RideService) Accept(ctx context.Context, rideID string) (*domain.Ride, error) {
	ride, err := s.transition(ctx, rideID, domain.RideStatusConfirmed)
	if err != nil {
		return nil, err
	}

	if s.alertService != nil {
		_ = s.alertService.PublishRideAlert(ctx, ride, "Ride Confirmed",
			fmt.Sprintf("%s accepted your request for %s.", ride.ProviderName, rideRoute(ride)))
	}
	return ride, nil
}

// Board moves a confirmed ride to InProgress.
func (s *RideService) Board(ctx context.Context, rideID string) (*domain.Ride, error) {
	ride, err := s.transition(ctx, rideID, domain.RideStatusInProgress)
	if err != nil {
		return nil, err
	}

	if s.alertService != nil {
		_ = s.alertService.PublishRideAlert(ctx, ride, "Ride Started",
			fmt.Sprintf("Your ride %s is in progress.", rideRoute(ride)))
	}
	return ride, nil
}

// Complete ends a ride in progress. A priced ride also records a pending
// fuel-share contribution in the wallet. Ending a live ride always uses
// Complete, never Cancel.
func (s *RideService) Complete(ctx context.Context, rideID string) (*domain.Ride, error) {
	ride, err := s.transition(ctx, rideID, domain.RideStatusCompleted)
	if err != nil {
		return nil, err
	}

	if s.walletService != nil && ride.Price > 0 {
		if _, err := s.walletService.CreateForRide(ctx, ride); err != nil {
			return nil, err
		}
	}

	if s.alertService != nil {
		_ = s.alertService.PublishRideAlert(ctx, ride, "Ride Completed",
			fmt.Sprintf("Your ride %s is complete.", rideRoute(ride)))
	}
	return ride, nil
}

// Cancel cancels a ride that has not started. In-progress and finished
// rides cannot be cancelled.
func (s *RideService) Cancel(ctx context.Context, rideID, reason string) (*domain.Ride, error) {
	if rideID == "" {
		return nil, ErrInvalidRideID
	}

	ride, err := s.rideRepo.GetByID(ctx, rideID)
	if err != nil {
		return nil, err
	}

	if !ride.Status.CanTransitionTo(domain.RideStatusCancelled) {
		return nil, ErrRideNotCancellable
	}

	ride.Status = domain.RideStatusCancelled
	ride.CancelledAt = time.Now()
	ride.CancelReason = reason

	if err := s.rideRepo.Update(ctx, ride); err != nil {
		return nil, err
	}

	if err := s.chatService.SyncRideStatus(ctx, ride.ID, ride.Status); err != nil {
		return nil, err
	}

	if s.alertService != nil {
		_ = s.alertService.PublishRideAlert(ctx, ride, "Ride Cancelled",
			fmt.Sprintf("Your ride %s was cancelled.", rideRoute(ride)))
	}
	return ride, nil
}

// transition applies a lifecycle step after checking it is modeled, then
// mirrors the new status onto the chat thread.
func (s *RideService) transition(ctx context.Context, rideID string, next domain.RideStatus) (*domain.Ride, error) {
	if rideID == "" {
		return nil, ErrInvalidRideID
	}

	ride, err := s.rideRepo.GetByID(ctx, rideID)
	if err != nil {
		return nil, err
	}

	if !ride.Status.CanTransitionTo(next) {
		return nil, ErrInvalidTransition
	}

	ride.Status = next
	if err := s.rideRepo.Update(ctx, ride); err != nil {
		return nil, err
	}

	if err := s.chatService.SyncRideStatus(ctx, ride.ID, ride.Status); err != nil {
		return nil, err
	}
	return ride, nil
}

// CreateFromMatch creates a new ride request from a selected match and opens
// its conversation. Price is the per-seat price times the requested seats.
func (s *RideService) CreateFromMatch(ctx context.Context, match *domain.RideMatch, search SearchState) (*domain.Ride, error) {
	ride := &domain.Ride{
		ID:             uuid.New().String(),
		RiderID:        search.RiderID,
		Mode:           search.Mode,
		VehicleType:    match.VehicleType,
		From:           search.From,
		To:             search.To,
		Date:           search.Date,
		Time:           search.Time,
		Seats:          search.Seats,
		Price:          match.PricePerSeat * float64(search.Seats),
		ProviderName:   match.DriverName,
		ProviderRating: match.Rating,
		Status:         domain.RideStatusRequested,
		CreatedAt:      time.Now(),
	}

	if err := s.rideRepo.Create(ctx, ride); err != nil {
		return nil, err
	}

	if _, err := s.chatService.CreateForRide(ctx, ride); err != nil {
		return nil, err
	}

	if s.alertService != nil {
		_ = s.alertService.PublishRideAlert(ctx, ride, "Request Sent",
			fmt.Sprintf("Your request to %s for %s was sent.", ride.ProviderName, rideRoute(ride)))
	}
	return ride, nil
}
