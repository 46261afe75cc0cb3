package memory

import (
	"context"
	"sync"

	"linq/internal/domain"
	"linq/internal/repository"
)

// AlertStore is an in-memory implementation of repository.AlertRepository.
// Insertion order is preserved so GetAll can return newest first.
type AlertStore struct {
	mu     sync.RWMutex
	alerts map[string]*domain.Alert
	order  []string
}

// NewAlertStore creates an empty in-memory alert store.
func NewAlertStore() *AlertStore {
	return &AlertStore{
		alerts: make(map[string]*domain.Alert),
	}
}

func (s *AlertStore) Create(ctx context.Context, alert *domain.Alert) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := *alert
	s.alerts[alert.ID] = &c
	s.order = append(s.order, alert.ID)
	return nil
}

func (s *AlertStore) GetByID(ctx context.Context, id string) (*domain.Alert, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	alert, ok := s.alerts[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	c := *alert
	return &c, nil
}

func (s *AlertStore) GetAll(ctx context.Context) ([]*domain.Alert, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]*domain.Alert, 0, len(s.order))
	for i := len(s.order) - 1; i >= 0; i-- {
		c := *s.alerts[s.order[i]]
		result = append(result, &c)
	}
	return result, nil
}

func (s *AlertStore) Update(ctx context.Context, alert *domain.Alert) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.alerts[alert.ID]; !ok {
		return repository.ErrNotFound
	}
	c := *alert
	s.alerts[alert.ID] = &c
	return nil
}
