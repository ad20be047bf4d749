// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"

	"museum/config"
	"museum/internal/domain/service"
)

// Defaults follow the OWASP recommendation for argon2id.
const (
	defaultMemory  uint32 = 64 * 1024 // KiB
	defaultTime    uint32 = 3
	defaultThreads uint8  = 2
	defaultKeyLen  uint32 = 32
	defaultSaltLen uint32 = 16
)

// argon2Hasher is a concrete implementation of the PasswordHasher interface
// using argon2id. The salt is embedded in the encoded output, so every call to
// Hash yields a distinct token even for identical passwords.
type argon2Hasher struct {
	memory  uint32
	time    uint32
	threads uint8
	keyLen  uint32
	saltLen uint32
}

// NewArgon2Hasher is the constructor for argon2Hasher. Zero-valued config
// fields fall back to the package defaults.
func NewArgon2Hasher(cfg *config.Config) service.PasswordHasher {
	h := &argon2Hasher{
		memory:  defaultMemory,
		time:    defaultTime,
		threads: defaultThreads,
		keyLen:  defaultKeyLen,
		saltLen: defaultSaltLen,
	}

	if cfg == nil || cfg.Auth == nil {
		return h
	}

	if cfg.Auth.Argon2Memory > 0 {
		h.memory = cfg.Auth.Argon2Memory
	}
	if cfg.Auth.Argon2Time > 0 {
		h.time = cfg.Auth.Argon2Time
	}
	if cfg.Auth.Argon2Threads > 0 {
		h.threads = cfg.Auth.Argon2Threads
	}
	if cfg.Auth.Argon2KeyLen > 0 {
		h.keyLen = cfg.Auth.Argon2KeyLen
	}
	if cfg.Auth.Argon2SaltLen > 0 {
		h.saltLen = cfg.Auth.Argon2SaltLen
	}

	return h
}

// Hash generates a salted argon2id hash in the standard encoded form
// $argon2id$v=19$m=...,t=...,p=...$<salt>$<key>.
func (h *argon2Hasher) Hash(password string) (string, error) {
	salt := make([]byte, h.saltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}

	key := argon2.IDKey([]byte(password), salt, h.time, h.memory, h.threads, h.keyLen)

	encoded := fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version,
		h.memory, h.time, h.threads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	)

	return encoded, nil
}

// Check recomputes the key with the parameters and salt embedded in the hash
// and compares in constant time. A malformed or unsupported hash returns
// false, indistinguishable from a wrong password.
func (h *argon2Hasher) Check(password, hash string) bool {
	memory, time, threads, salt, key, ok := decodeHash(hash)
	if !ok {
		return false
	}

	candidate := argon2.IDKey([]byte(password), salt, time, memory, threads, uint32(len(key)))

	return subtle.ConstantTimeCompare(candidate, key) == 1
}

func decodeHash(hash string) (memory, time uint32, threads uint8, salt, key []byte, ok bool) {
	parts := strings.Split(hash, "$")
	if len(parts) != 6 || parts[0] != "" || parts[1] != "argon2id" {
		return 0, 0, 0, nil, nil, false
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil || version != argon2.Version {
		return 0, 0, 0, nil, nil, false
	}

	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &memory, &time, &threads); err != nil {
		return 0, 0, 0, nil, nil, false
	}
	if memory == 0 || time == 0 || threads == 0 {
		return 0, 0, 0, nil, nil, false
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil || len(salt) == 0 {
		return 0, 0, 0, nil, nil, false
	}

	key, err = base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil || len(key) == 0 {
		return 0, 0, 0, nil, nil, false
	}

	return memory, time, threads, salt, key, true
}
