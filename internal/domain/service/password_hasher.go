// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

// PasswordHasher defines the interface for password hashing and verification.
// This abstracts the underlying hashing algorithm (e.g., argon2id), keeping the domain pure.
type PasswordHasher interface {
	// Hash generates a salted hash token from a plaintext password. A fresh
	// salt is drawn on every call, so hashing the same password twice yields
	// two different tokens.
	Hash(password string) (string, error)

	// Check compares a plaintext password with a hash token. It returns false
	// both on mismatch and on a malformed token; callers cannot distinguish
	// the two cases.
	Check(password, hash string) bool
}
