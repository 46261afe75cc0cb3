package memory

import (
	"context"
	"sync"

	"linq/internal/domain"
	"linq/internal/repository"
)

// RideStore is an in-memory implementation of repository.RideRepository.
type RideStore struct {
	mu    sync.RWMutex
	rides map[string]*domain.Ride
}

// NewRideStore creates an empty in-memory ride store.
func NewRideStore() *RideStore {
	return &RideStore{
		rides: make(map[string]*domain.Ride),
	}
}

func (s *RideStore) Create(ctx context.Context, ride *domain.Ride) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := *ride
	s.rides[ride.ID] = &c
	return nil
}

func (s *RideStore) GetByID(ctx context.Context, id string) (*domain.Ride, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ride, ok := s.rides[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	// Return a copy to avoid mutation issues.
	c := *ride
	return &c, nil
}

func (s *RideStore) GetAll(ctx context.Context) ([]*domain.Ride, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]*domain.Ride, 0, len(s.rides))
	for _, r := range s.rides {
		c := *r
		result = append(result, &c)
	}
	return result, nil
}

func (s *RideStore) Update(ctx context.Context, ride *domain.Ride) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.rides[ride.ID]; !ok {
		return repository.ErrNotFound
	}
	c := *ride
	s.rides[ride.ID] = &c
	return nil
}
