package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

// LocalCipher is the symmetric AEAD used for at-rest protection of locally
// cached data. It knows nothing about the network, the database, or key
// rotations; it only seals and opens blobs.
type LocalCipher interface {
	// Seal encrypts plaintext with key and returns a Base64 blob
	// (nonce ‖ ciphertext) safe to persist in the local database.
	Seal(plaintext, key []byte) (string, error)

	// SealWithAAD encrypts plaintext bound to associatedData, so only
	// OpenWithAAD with the same data can decrypt the blob.
	SealWithAAD(plaintext, key, associatedData []byte) (string, error)

	// Open decrypts a blob produced by Seal. Returns an error if
	// authentication fails (wrong key or corrupted blob).
	Open(encryptedB64 string, key []byte) ([]byte, error)

	// OpenWithAAD decrypts a blob whose encryption was bound to
	// associatedData. Used for unwrapping item keys sealed under a share
	// key with a domain-separation tag.
	OpenWithAAD(encryptedB64 string, key, associatedData []byte) ([]byte, error)
}

// SymmetricKeyProvider supplies the local-only symmetric key under which all
// cached rows are re-encrypted.
type SymmetricKeyProvider interface {
	GetSymmetricKey() ([]byte, error)
}
