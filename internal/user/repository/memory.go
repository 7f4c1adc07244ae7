package repository

import (
	"context"
	"fmt"
	"sync"

	commoncrypto "userapi/internal/common/crypto"
	"userapi/internal/user/domain"
)

// MemoryRepository keeps users in process memory. Passwords are stored and
// compared verbatim, so it is only suitable for local runs and tests.
type MemoryRepository struct {
	mu          sync.RWMutex
	byID        map[domain.ID]domain.User
	byUsername  map[string]domain.ID
	idGenerator commoncrypto.IDGenerator
}

func NewMemoryRepository(idGenerator commoncrypto.IDGenerator) *MemoryRepository {
	return &MemoryRepository{
		byID:        make(map[domain.ID]domain.User),
		byUsername:  make(map[string]domain.ID),
		idGenerator: idGenerator,
	}
}

func (r *MemoryRepository) Save(ctx context.Context, user domain.User) (domain.User, error) {
	id, err := r.idGenerator.NewID()
	if err != nil {
		return domain.User{}, fmt.Errorf("failed to generate user id: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byUsername[user.Username]; exists {
		return domain.User{}, ErrUsernameAlreadyExists
	}

	saved := user
	saved.ID = domain.ID(id)
	r.byID[saved.ID] = saved
	r.byUsername[saved.Username] = saved.ID

	return saved, nil
}

func (r *MemoryRepository) FindByID(ctx context.Context, id domain.ID) (domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.byID[id]
	if !ok {
		return domain.User{}, ErrUserNotFound
	}

	return user, nil
}

func (r *MemoryRepository) FindByCredentials(ctx context.Context, username, password string) (domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byUsername[username]
	if !ok {
		return domain.User{}, ErrUserNotFound
	}

	user := r.byID[id]
	if user.Password != password {
		return domain.User{}, ErrPasswordMismatch
	}

	return user, nil
}
