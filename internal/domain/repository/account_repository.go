// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"authgate/internal/domain/entity"
)

// ErrAccountNotFound is a domain-specific error returned when no account
// exists for the requested username.
var ErrAccountNotFound = errors.New("account not found")

// AccountRepository defines the standard operations for account persistence.
// The application layer depends on this interface, not the concrete adapter.
//
// Lookup is by exact username match; implementations must not normalize
// (case-fold, trim) the value. Create must detect username collisions
// atomically, via a unique constraint or equivalent, so that two concurrent
// creations of the same username leave exactly one account behind.
type AccountRepository interface {
	// FindByUsername retrieves a single account by its unique username.
	// Returns ErrAccountNotFound when absent.
	FindByUsername(ctx context.Context, username string) (*entity.Account, error)

	// Create persists a new account and assigns its generated ID.
	// Returns domainerrors.ErrDuplicateAccount (possibly wrapped) when the
	// username is already taken.
	Create(ctx context.Context, account *entity.Account) error
}
