package ports

// PasswordHasher is the one-way credential hashing contract.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	// Verify reports whether plaintext matches the stored hash. It returns
	// false for malformed hashes instead of failing.
	Verify(plaintext, hashed string) bool
}
