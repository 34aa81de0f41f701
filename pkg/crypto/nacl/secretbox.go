package nacl

import (
	"golang.org/x/crypto/nacl/secretbox"
)

// SecretBox is symmetric xsalsa20poly1305 under a single 32 byte key. A
// SecretBox keyed with a Boxer's shared key yields the same ciphertexts as
// that Boxer.
type SecretBox struct {
	key [SharedKeyBytes]byte
}

// NewSecretBox creates SecretBox instance
func NewSecretBox(key [SharedKeyBytes]byte) *SecretBox {
	return &SecretBox{key: key}
}

// NewSecretBoxFromBytes creates SecretBox instance after checking the key length
func NewSecretBoxFromBytes(key []byte) (*SecretBox, error) {
	if len(key) != SharedKeyBytes {
		return nil, newLengthError("secret box key", SharedKeyBytes)
	}
	var k [SharedKeyBytes]byte
	copy(k[:], key)
	return NewSecretBox(k), nil
}

// Box encrypts and authenticates plaintext under nonce
func (s *SecretBox) Box(nonce []byte, plaintext []byte) ([]byte, error) {
	n, err := parseNonce(nonce)
	if err != nil {
		return nil, err
	}
	return secretbox.Seal(nil, plaintext, n, &s.key), nil
}

// Unbox verifies and decrypts ciphertext under nonce
func (s *SecretBox) Unbox(nonce []byte, ciphertext []byte) ([]byte, error) {
	n, err := parseNonce(nonce)
	if err != nil {
		return nil, err
	}
	plaintext, ok := secretbox.Open(nil, ciphertext, n, &s.key)
	if !ok {
		return nil, ErrDecryption
	}
	return plaintext, nil
}
