package hashing

// Hasher defines the one-way salted hash primitive shared by password
// storage and verification-token storage.
type Hasher interface {
	// Hash hashes a plaintext value
	Hash(plaintext string) (string, error)

	// Verify checks if the provided plaintext matches the stored hash
	Verify(plaintext, hashed string) (bool, error)
}
