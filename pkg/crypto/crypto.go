// Package crypto seals and opens stored user credentials with
// AES-256-GCM. The encoded form is base64(nonce || ciphertext).
package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
)

// ErrNotConfigured is returned by a nil Cipher. Deployments without an
// ENCRYPTION_KEY run with a nil cipher and per-user keys disabled.
var ErrNotConfigured = errors.New("crypto: no encryption key configured")

// Cipher seals and opens small secrets. Safe for concurrent use; a nil
// *Cipher is valid and refuses every operation with ErrNotConfigured.
type Cipher struct {
	aead cipher.AEAD
}

// New creates a Cipher from a 32-byte key.
func New(key []byte) (*Cipher, error) {
	if len(key) != 32 {
		return nil, fmt.Errorf("crypto: key must be 32 bytes, got %d", len(key))
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("crypto: new cipher: %w", err)
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("crypto: new gcm: %w", err)
	}
	return &Cipher{aead: aead}, nil
}

// NewFromHex creates a Cipher from a hex-encoded 32-byte key, the
// ENCRYPTION_KEY wire format.
func NewFromHex(hexKey string) (*Cipher, error) {
	key, err := hex.DecodeString(hexKey)
	if err != nil {
		return nil, fmt.Errorf("crypto: decode hex key: %w", err)
	}
	return New(key)
}

// Seal encrypts the plaintext under a fresh random nonce and returns the
// base64-encoded nonce||ciphertext.
func (c *Cipher) Seal(plaintext string) (string, error) {
	if c == nil {
		return "", ErrNotConfigured
	}
	nonce := make([]byte, c.aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("crypto: read nonce: %w", err)
	}
	sealed := c.aead.Seal(nonce, nonce, []byte(plaintext), nil)
	return base64.StdEncoding.EncodeToString(sealed), nil
}

// Open decrypts a value produced by Seal. Tampered or foreign ciphertexts
// fail authentication.
func (c *Cipher) Open(encoded string) (string, error) {
	if c == nil {
		return "", ErrNotConfigured
	}
	sealed, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", fmt.Errorf("crypto: base64 decode: %w", err)
	}
	if len(sealed) < c.aead.NonceSize() {
		return "", fmt.Errorf("crypto: ciphertext shorter than nonce")
	}
	nonce, ciphertext := sealed[:c.aead.NonceSize()], sealed[c.aead.NonceSize():]
	plain, err := c.aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", fmt.Errorf("crypto: gcm open: %w", err)
	}
	return string(plain), nil
}
