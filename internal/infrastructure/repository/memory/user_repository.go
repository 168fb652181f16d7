package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/mlbb-fantasy/api/internal/domain/user"
)

type UserRepository struct {
	mu      sync.RWMutex
	byID    map[string]user.User
	byEmail map[string]string
}

func NewUserRepository(users []user.User) *UserRepository {
	repo := &UserRepository{
		byID:    make(map[string]user.User, len(users)),
		byEmail: make(map[string]string, len(users)),
	}
	for _, u := range users {
		repo.byID[u.ID] = u
		repo.byEmail[strings.ToLower(u.Email)] = u.ID
	}

	return repo
}

func (r *UserRepository) Create(_ context.Context, u user.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.byID[u.ID] = u
	r.byEmail[strings.ToLower(u.Email)] = u.ID

	return nil
}

func (r *UserRepository) GetByID(_ context.Context, userID string) (user.User, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byID[userID]

	return u, ok, nil
}

func (r *UserRepository) GetByEmail(_ context.Context, email string) (user.User, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	userID, ok := r.byEmail[strings.ToLower(email)]
	if !ok {
		return user.User{}, false, nil
	}

	return r.byID[userID], true, nil
}
