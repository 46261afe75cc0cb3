package memory

import (
	"context"
	"sync"

	"linq/internal/domain"
	"linq/internal/repository"
)

// ChatStore is an in-memory implementation of repository.ChatRepository.
type ChatStore struct {
	mu      sync.RWMutex
	threads map[string]*domain.ChatThread
}

// NewChatStore creates an empty in-memory chat store.
func NewChatStore() *ChatStore {
	return &ChatStore{
		threads: make(map[string]*domain.ChatThread),
	}
}

func copyThread(t *domain.ChatThread) *domain.ChatThread {
	c := *t
	c.Messages = append([]domain.Message(nil), t.Messages...)
	return &c
}

func (s *ChatStore) Create(ctx context.Context, thread *domain.ChatThread) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.threads[thread.ID] = copyThread(thread)
	return nil
}

func (s *ChatStore) GetByID(ctx context.Context, id string) (*domain.ChatThread, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	thread, ok := s.threads[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return copyThread(thread), nil
}

func (s *ChatStore) GetByRideID(ctx context.Context, rideID string) (*domain.ChatThread, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, t := range s.threads {
		if t.RideID == rideID {
			return copyThread(t), nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s *ChatStore) GetAll(ctx context.Context) ([]*domain.ChatThread, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]*domain.ChatThread, 0, len(s.threads))
	for _, t := range s.threads {
		result = append(result, copyThread(t))
	}
	return result, nil
}

func (s *ChatStore) Update(ctx context.Context, thread *domain.ChatThread) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.threads[thread.ID]; !ok {
		return repository.ErrNotFound
	}
	s.threads[thread.ID] = copyThread(thread)
	return nil
}
