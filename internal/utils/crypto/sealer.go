// Package crypto seals sensitive account fields before they reach storage.
package crypto

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/crypto/nacl/secretbox"
)

const (
	keySize   = 32
	nonceSize = 24
	// sealedPrefix marks a stored value as ciphertext.
	sealedPrefix = "sb1:"
)

// ErrMalformed is returned when a sealed value cannot be decoded or authenticated.
var ErrMalformed = errors.New("sealed value is malformed or was tampered with")

// Sealer encrypts short strings with NaCl secretbox.
// A nil *Sealer passes values through unchanged.
type Sealer struct {
	key [keySize]byte
}

// NewSealer builds a sealer from a hex encoded 32 byte key. An empty key yields a nil sealer.
func NewSealer(hexKey string) (*Sealer, error) {
	hexKey = strings.TrimSpace(hexKey)
	if hexKey == "" {
		return nil, nil
	}
	raw, err := hex.DecodeString(hexKey)
	if err != nil {
		return nil, fmt.Errorf("bank field key is not hex: %w", err)
	}
	if len(raw) != keySize {
		return nil, fmt.Errorf("bank field key must be %d bytes, got %d", keySize, len(raw))
	}
	s := &Sealer{}
	copy(s.key[:], raw)
	return s, nil
}

// Seal encrypts plaintext. Empty strings stay empty.
func (s *Sealer) Seal(plaintext string) (string, error) {
	if s == nil || plaintext == "" {
		return plaintext, nil
	}
	var nonce [nonceSize]byte
	if _, err := io.ReadFull(rand.Reader, nonce[:]); err != nil {
		return "", fmt.Errorf("failed to read nonce: %w", err)
	}
	box := secretbox.Seal(nonce[:], []byte(plaintext), &nonce, &s.key)
	return sealedPrefix + base64.StdEncoding.EncodeToString(box), nil
}

// Open decrypts a value produced by Seal. Values without the sealed prefix are returned as is,
// so rows written before a key was configured stay readable.
func (s *Sealer) Open(value string) (string, error) {
	if !strings.HasPrefix(value, sealedPrefix) {
		return value, nil
	}
	if s == nil {
		return "", fmt.Errorf("%w: no key configured", ErrMalformed)
	}
	box, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(value, sealedPrefix))
	if err != nil || len(box) < nonceSize+secretbox.Overhead {
		return "", ErrMalformed
	}
	var nonce [nonceSize]byte
	copy(nonce[:], box[:nonceSize])
	plain, ok := secretbox.Open(nil, box[nonceSize:], &nonce, &s.key)
	if !ok {
		return "", ErrMalformed
	}
	return string(plain), nil
}
