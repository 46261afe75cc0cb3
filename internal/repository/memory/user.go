package memory

import (
	"context"
	"sync"

	"linq/internal/domain"
	"linq/internal/repository"
)

// UserStore is an in-memory implementation of repository.UserRepository.
type UserStore struct {
	mu    sync.RWMutex
	users map[string]*domain.User
}

// NewUserStore creates an empty in-memory user store.
func NewUserStore() *UserStore {
	return &UserStore{
		users: make(map[string]*domain.User),
	}
}

func copyUser(u *domain.User) *domain.User {
	c := *u
	if u.ProviderDetails != nil {
		pd := *u.ProviderDetails
		c.ProviderDetails = &pd
	}
	if u.EmergencyContact != nil {
		ec := *u.EmergencyContact
		c.EmergencyContact = &ec
	}
	return &c
}

func (s *UserStore) Create(ctx context.Context, user *domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[user.ID] = copyUser(user)
	return nil
}

func (s *UserStore) GetByID(ctx context.Context, id string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	user, ok := s.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return copyUser(user), nil
}

func (s *UserStore) GetByPhone(ctx context.Context, phone string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.Phone == phone {
			return copyUser(u), nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s *UserStore) Update(ctx context.Context, user *domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[user.ID]; !ok {
		return repository.ErrNotFound
	}
	s.users[user.ID] = copyUser(user)
	return nil
}
