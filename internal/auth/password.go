package auth

import (
	"fmt"

	"github.com/alexedwards/argon2id"
)

var hashParams = &argon2id.Params{
	Memory:      19 * 1024,
	Iterations:  2,
	Parallelism: 1,
	SaltLength:  32,
	KeyLength:   32,
}

// dummyHash is verified against when the user does not exist so that both
// failure paths cost one argon2 derivation.
var dummyHash = mustHash("tutorhub-dummy-password")

// HashPassword returns an argon2id PHC string with a fresh random salt.
func HashPassword(password string) (string, error) {
	hash, err := argon2id.CreateHash(password, hashParams)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return hash, nil
}

// VerifyPassword reports whether password matches encoded. A hash that cannot
// be parsed never matches.
func VerifyPassword(password, encoded string) bool {
	match, err := argon2id.ComparePasswordAndHash(password, encoded)
	if err != nil {
		return false
	}
	return match
}

func mustHash(password string) string {
	h, err := HashPassword(password)
	if err != nil {
		panic(err)
	}
	return h
}
