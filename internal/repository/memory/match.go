package memory

import (
	"context"
	"sort"
	"sync"

	"linq/internal/domain"
	"linq/internal/repository"
)

// MatchStore is an in-memory implementation of repository.MatchRepository.
// The match catalog is fixture data, so the store is read-mostly.
type MatchStore struct {
	mu      sync.RWMutex
	matches map[string]*domain.RideMatch
}

// NewMatchStore creates an empty in-memory match store.
func NewMatchStore() *MatchStore {
	return &MatchStore{
		matches: make(map[string]*domain.RideMatch),
	}
}

// Add inserts a match into the catalog.
func (s *MatchStore) Add(match *domain.RideMatch) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.matches[match.ID] = match
}

func (s *MatchStore) GetByID(ctx context.Context, id string) (*domain.RideMatch, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	match, ok := s.matches[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	c := *match
	c.Tags = append([]string(nil), match.Tags...)
	return &c, nil
}

func (s *MatchStore) GetAll(ctx context.Context) ([]*domain.RideMatch, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]*domain.RideMatch, 0, len(s.matches))
	for _, m := range s.matches {
		c := *m
		c.Tags = append([]string(nil), m.Tags...)
		result = append(result, &c)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}
