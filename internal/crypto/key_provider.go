// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"fmt"
	"io"
	"sync"

	"golang.org/x/crypto/argon2"
)

// derivedKeyProvider derives the local symmetric key from an application
// secret with Argon2id and caches the result for the process lifetime.
type derivedKeyProvider struct {
	secret string
	salt   []byte

	// Argon2id tuning parameters. Stored in the struct so they can be
	// adjusted per deployment target (e.g. mobile vs. desktop).
	argonTime    uint32
	argonMemory  uint32
	argonThreads uint8
	argonKeyLen  uint32

	once sync.Once
	key  []byte
}

// NewDerivedKeyProvider constructs a [SymmetricKeyProvider] that derives a
// 256-bit key from secret and salt with the Argon2id parameters recommended
// by OWASP (2024):
//   - time cost:   1 iteration
//   - memory cost: 64 MiB
//   - parallelism: 4 threads
//   - key length:  32 bytes (256 bits)
func NewDerivedKeyProvider(secret string, salt []byte) SymmetricKeyProvider {
	return &derivedKeyProvider{
		secret:       secret,
		salt:         salt,
		argonTime:    1,
		argonMemory:  64 * 1024, // 64 MiB
		argonThreads: 4,
		argonKeyLen:  32, // 256 bits
	}
}

// GetSymmetricKey implements [SymmetricKeyProvider]. The derivation runs at
// most once; subsequent calls return the cached key. The key exists only in
// process memory and is never persisted or transmitted.
func (p *derivedKeyProvider) GetSymmetricKey() ([]byte, error) {
	if p.secret == "" {
		return nil, fmt.Errorf("empty local key secret")
	}

	p.once.Do(func() {
		p.key = argon2.IDKey(
			[]byte(p.secret),
			p.salt,
			p.argonTime,
			p.argonMemory,
			p.argonThreads,
			p.argonKeyLen,
		)
	})

	return p.key, nil
}

// GenerateSalt reads 16 random bytes from the OS CSPRNG for use as a key
// derivation salt. The salt is not a secret and may be stored in plain form
// next to the local database.
func GenerateSalt() ([]byte, error) {
	salt := make([]byte, 16)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, err
	}
	return salt, nil
}
