package memory

import (
	"context"
	"sort"
	"sync"

	"linq/internal/domain"
	"linq/internal/repository"
)

// PlaceStore is an in-memory implementation of repository.PlaceRepository.
type PlaceStore struct {
	mu     sync.RWMutex
	places map[string]*domain.Place
}

// NewPlaceStore creates an empty in-memory place store.
func NewPlaceStore() *PlaceStore {
	return &PlaceStore{
		places: make(map[string]*domain.Place),
	}
}

// Add inserts a place into the catalog.
func (s *PlaceStore) Add(place *domain.Place) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.places[place.ID] = place
}

func (s *PlaceStore) GetByID(ctx context.Context, id string) (*domain.Place, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	place, ok := s.places[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	c := *place
	c.Tags = append([]string(nil), place.Tags...)
	return &c, nil
}

func (s *PlaceStore) GetAll(ctx context.Context) ([]*domain.Place, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]*domain.Place, 0, len(s.places))
	for _, p := range s.places {
		c := *p
		c.Tags = append([]string(nil), p.Tags...)
		result = append(result, &c)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}
