// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"
)

// localCipher is the private implementation of [LocalCipher].
type localCipher struct{}

// NewLocalCipher constructs the AES-256-GCM [LocalCipher] used for at-rest
// protection of the local cache. Blobs are Base64 strings of
// nonce (12 bytes) ‖ ciphertext, the same layout on every call site.
func NewLocalCipher() LocalCipher {
	return &localCipher{}
}

// Seal implements [LocalCipher]. It encrypts plaintext with key using
// AES-256-GCM. A random 12-byte nonce is prepended to the ciphertext so
// that Open can locate it: blob = nonce ‖ ciphertext.
func (c *localCipher) Seal(plaintext, key []byte) (string, error) {
	return c.seal(plaintext, key, nil)
}

// SealWithAAD implements [LocalCipher]. Same as Seal but binds the
// ciphertext to associatedData; only OpenWithAAD with the same data can
// decrypt it.
func (c *localCipher) SealWithAAD(plaintext, key, associatedData []byte) (string, error) {
	return c.seal(plaintext, key, associatedData)
}

func (c *localCipher) seal(plaintext, key, associatedData []byte) (string, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return "", err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("generate nonce: %w", err)
	}

	ciphertext := gcm.Seal(nil, nonce, plaintext, associatedData)
	blob := append(nonce, ciphertext...)

	return base64.StdEncoding.EncodeToString(blob), nil
}

// Open implements [LocalCipher]. It Base64-decodes encryptedB64, splits out
// the nonce, and decrypts the ciphertext with key via AES-256-GCM. Returns
// an error if the blob is malformed, the key is wrong, or the ciphertext is
// corrupted (authentication-tag mismatch).
func (c *localCipher) Open(encryptedB64 string, key []byte) ([]byte, error) {
	return c.open(encryptedB64, key, nil)
}

// OpenWithAAD implements [LocalCipher]. Same as Open but binds the
// decryption to associatedData; used to unwrap item keys sealed under a
// share key with a domain-separating tag.
func (c *localCipher) OpenWithAAD(encryptedB64 string, key, associatedData []byte) ([]byte, error) {
	return c.open(encryptedB64, key, associatedData)
}

func (c *localCipher) open(encryptedB64 string, key, associatedData []byte) ([]byte, error) {
	blob, err := base64.StdEncoding.DecodeString(encryptedB64)
	if err != nil {
		return nil, fmt.Errorf("decode base64: %w", err)
	}

	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	nonceSize := gcm.NonceSize()
	if len(blob) < nonceSize {
		return nil, fmt.Errorf("ciphertext too short")
	}
	nonce, ciphertext := blob[:nonceSize], blob[nonceSize:]

	plaintext, err := gcm.Open(nil, nonce, ciphertext, associatedData)
	if err != nil {
		return nil, fmt.Errorf("decrypt data: %w", err)
	}

	return plaintext, nil
}

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}
	return gcm, nil
}
