package auth_test

import (
	"strings"
	"testing"

	"tutorhub/internal/auth"

	"github.com/alexedwards/argon2id"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHashing(t *testing.T) {
	t.Run("RoundTrip", func(t *testing.T) {
		hash, err := auth.HashPassword("s3cret")
		require.NoError(t, err)

		assert.True(t, strings.HasPrefix(hash, "$argon2id$v=19$m=19456,t=2,p=1$"))
		assert.True(t, auth.VerifyPassword("s3cret", hash))
		assert.False(t, auth.VerifyPassword("S3cret", hash))
	})

	t.Run("SaltIsRandom", func(t *testing.T) {
		first, err := auth.HashPassword("same")
		require.NoError(t, err)
		second, err := auth.HashPassword("same")
		require.NoError(t, err)

		assert.NotEqual(t, first, second)
	})

	t.Run("VerifiesHashWithOtherParams", func(t *testing.T) {
		hash, err := argon2id.CreateHash("legacy", argon2id.DefaultParams)
		require.NoError(t, err)

		assert.True(t, auth.VerifyPassword("legacy", hash))
		assert.False(t, auth.VerifyPassword("legacy!", hash))
	})

	t.Run("MalformedHashNeverMatches", func(t *testing.T) {
		for _, encoded := range []string{
			"",
			"plaintext",
			"$argon2id$v=19$m=abc$c2FsdA$a2V5",
			"$argon2i$v=19$m=19456,t=2,p=1$c2FsdA$a2V5",
			"$argon2id$v=19$m=19456,t=2,p=1$!!!$a2V5",
		} {
			assert.False(t, auth.VerifyPassword("anything", encoded), encoded)
		}
	})
}
