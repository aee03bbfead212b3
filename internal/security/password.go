// Package security provides password hashing helpers backed by argon2id.
package security

import "github.com/matthewhartstonge/argon2"

// HashPassword hashes a plaintext password with a fresh random salt and
// returns the encoded form for storage.
func HashPassword(password string) (string, error) {
	cfg := argon2.DefaultConfig()

	encoded, err := cfg.HashEncoded([]byte(password))
	if err != nil {
		return "", err
	}

	return string(encoded), nil
}

// VerifyPassword checks a plaintext password against a stored encoded hash.
// The comparison is constant-time; plaintext is never compared directly.
func VerifyPassword(password, encodedHash string) (bool, error) {
	return argon2.VerifyEncoded([]byte(password), []byte(encodedHash))
}
