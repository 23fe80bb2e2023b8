package ports

// PasswordHasher produces one-way salted hashes. Hash output differs between
// calls on the same input, so Verify must go through the algorithm's own
// comparison rather than output equality.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, hash string) bool
}
