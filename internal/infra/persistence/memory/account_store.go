// Package memory provides an in-memory AccountRepository. It backs the test
// suites and doubles as a storage-free development backend.
package memory

import (
	"context"
	"sync"
	"time"

	"authgate/internal/domain/entity"
	domainerrors "authgate/internal/domain/errors"
	"authgate/internal/domain/repository"
)

// accountStore keeps accounts in a map keyed by exact username. The single
// mutex makes the existence check and the insert one atomic step, mirroring
// the unique-index guarantee of the SQL adapter.
type accountStore struct {
	mu     sync.Mutex
	byName map[string]*entity.Account
	nextID int64
}

// NewAccountStore is the constructor for the in-memory account repository.
func NewAccountStore() repository.AccountRepository {
	return &accountStore{
		byName: make(map[string]*entity.Account),
		nextID: 1,
	}
}

// FindByUsername retrieves a single account by its exact username.
func (s *accountStore) FindByUsername(_ context.Context, username string) (*entity.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	account, ok := s.byName[username]
	if !ok {
		return nil, repository.ErrAccountNotFound
	}

	// Copy so callers can't mutate stored state.
	found := *account

	return &found, nil
}

// Create persists a new account and assigns the next numeric id. Two
// concurrent creates for the same username serialize on the mutex; exactly
// one wins, the other reports ErrDuplicateAccount.
func (s *accountStore) Create(_ context.Context, account *entity.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byName[account.Username]; exists {
		return domainerrors.ErrDuplicateAccount.WrapMessage("username already taken")
	}

	account.ID = s.nextID
	s.nextID++
	if account.CreatedAt.IsZero() {
		account.CreatedAt = time.Now()
	}

	stored := *account
	s.byName[account.Username] = &stored

	return nil
}
