package core

// PasswordHasher abstracts credential hashing so the domain never sees
// plain bcrypt details
type PasswordHasher interface {
	// Hash derives a storable hash from a plain password
	Hash(password string) (string, error)
	// Compare verifies a plain password against a stored hash.
	// Returns ErrInvalidCredentials on mismatch.
	Compare(hash, password string) error
}
