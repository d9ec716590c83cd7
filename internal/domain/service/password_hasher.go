// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

// PasswordHasher defines the interface for password hashing and verification.
// This abstracts the underlying hashing algorithm (e.g., bcrypt), keeping the domain pure.
type PasswordHasher interface {
	// Hash generates a salted hash from a plaintext password. Hashing the
	// same password twice yields different outputs.
	Hash(password string) (string, error)

	// Check compares a plaintext password with a hash. A mismatch is a plain
	// false, never an error; the comparison does not leak the mismatch
	// position through timing.
	Check(password, hash string) bool
}
