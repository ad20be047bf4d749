package auth

import (
	"strings"
	"testing"

	"museum/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHasher() *argon2Hasher {
	// Low-cost parameters keep the test fast; the encoded form is identical.
	return &argon2Hasher{
		memory:  8 * 1024,
		time:    1,
		threads: 1,
		keyLen:  32,
		saltLen: 16,
	}
}

func TestArgon2Hasher_HashProducesDistinctTokens(t *testing.T) {
	h := newTestHasher()

	first, err := h.Hash("s3cret")
	require.NoError(t, err)
	second, err := h.Hash("s3cret")
	require.NoError(t, err)

	assert.NotEqual(t, first, second, "each hash call must embed a fresh salt")
	assert.True(t, h.Check("s3cret", first))
	assert.True(t, h.Check("s3cret", second))
}

func TestArgon2Hasher_EncodedFormat(t *testing.T) {
	h := newTestHasher()

	hash, err := h.Hash("s3cret")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(hash, "$argon2id$v=19$"))
	assert.NotContains(t, hash, "s3cret")
}

func TestArgon2Hasher_CheckRejectsWrongPassword(t *testing.T) {
	h := newTestHasher()

	hash, err := h.Hash("s3cret")
	require.NoError(t, err)

	assert.False(t, h.Check("wrong", hash))
	assert.False(t, h.Check("", hash))
}

func TestArgon2Hasher_CheckRejectsMalformedHash(t *testing.T) {
	h := newTestHasher()

	malformed := []string{
		"",
		"not-a-hash",
		"$argon2i$v=19$m=8192,t=1,p=1$AAAA$BBBB",
		"$argon2id$v=18$m=8192,t=1,p=1$AAAA$BBBB",
		"$argon2id$v=19$m=0,t=0,p=0$AAAA$BBBB",
		"$argon2id$v=19$m=8192,t=1,p=1$!!!$BBBB",
		"$argon2id$v=19$m=8192,t=1,p=1$AAAA$!!!",
	}

	for _, hash := range malformed {
		assert.False(t, h.Check("s3cret", hash), "hash %q must not verify", hash)
	}
}

func TestArgon2Hasher_CheckAcceptsDifferentParameters(t *testing.T) {
	// A token hashed under old parameters still verifies: the parameters are
	// read from the token, not from the hasher.
	old := &argon2Hasher{memory: 4 * 1024, time: 1, threads: 1, keyLen: 16, saltLen: 8}
	current := newTestHasher()

	hash, err := old.Hash("s3cret")
	require.NoError(t, err)

	assert.True(t, current.Check("s3cret", hash))
}

func TestNewArgon2Hasher_ConfigOverrides(t *testing.T) {
	cfg := &config.Config{
		Auth: &config.AuthConfig{
			Argon2Memory:  16 * 1024,
			Argon2Time:    2,
			Argon2Threads: 1,
		},
	}

	hasher, ok := NewArgon2Hasher(cfg).(*argon2Hasher)
	require.True(t, ok)

	assert.Equal(t, uint32(16*1024), hasher.memory)
	assert.Equal(t, uint32(2), hasher.time)
	assert.Equal(t, uint8(1), hasher.threads)
	// Unset fields keep the defaults.
	assert.Equal(t, defaultKeyLen, hasher.keyLen)
	assert.Equal(t, defaultSaltLen, hasher.saltLen)
}
