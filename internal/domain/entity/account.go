// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"
)

// Account is the identity record at the center of the system. The username is
// unique and case-sensitive; uniqueness is enforced by the account store at
// creation time. PasswordHash holds the bcrypt-derived credential hash, never
// the raw password.
type Account struct {
	ID           int64     // Store-assigned numeric identifier.
	Username     string    // Unique login identifier (the request's "email" field).
	PasswordHash string    // Salted one-way hash of the password.
	CreatedAt    time.Time // Timestamp of when this account was created.
}
