package memory

import (
	"context"
	"sync"

	"linq/internal/domain"
	"linq/internal/repository"
)

// WalletStore is an in-memory implementation of repository.WalletRepository.
type WalletStore struct {
	mu    sync.RWMutex
	items map[string]*domain.WalletItem
}

// NewWalletStore creates an empty in-memory wallet store.
func NewWalletStore() *WalletStore {
	return &WalletStore{
		items: make(map[string]*domain.WalletItem),
	}
}

func (s *WalletStore) Create(ctx context.Context, item *domain.WalletItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := *item
	s.items[item.ID] = &c
	return nil
}

func (s *WalletStore) GetByID(ctx context.Context, id string) (*domain.WalletItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	item, ok := s.items[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	c := *item
	return &c, nil
}

func (s *WalletStore) GetAll(ctx context.Context) ([]*domain.WalletItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]*domain.WalletItem, 0, len(s.items))
	for _, item := range s.items {
		c := *item
		result = append(result, &c)
	}
	return result, nil
}

func (s *WalletStore) Update(ctx context.Context, item *domain.WalletItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.items[item.ID]; !ok {
		return repository.ErrNotFound
	}
	c := *item
	s.items[item.ID] = &c
	return nil
}
