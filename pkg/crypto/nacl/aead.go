package nacl

import (
	"crypto/cipher"

	"golang.org/x/crypto/chacha20poly1305"
)

// AEAD is authenticated encryption with additional data over
// chacha20poly1305, in either the IETF (12 byte nonce) or the extended
// (24 byte nonce) form. Additional data is authenticated but not encrypted.
type AEAD struct {
	aead cipher.AEAD
}

// NewChaCha20Poly1305IETF creates AEAD instance for RFC 7539 chacha20poly1305
func NewChaCha20Poly1305IETF(key []byte) (*AEAD, error) {
	if len(key) != AEADKeyBytes {
		return nil, newLengthError("aead key", AEADKeyBytes)
	}
	a, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, NewArgumentError(err.Error())
	}
	return &AEAD{aead: a}, nil
}

// NewXChaCha20Poly1305IETF creates AEAD instance for xchacha20poly1305.
// Its nonce is long enough to be picked at random.
func NewXChaCha20Poly1305IETF(key []byte) (*AEAD, error) {
	if len(key) != AEADKeyBytes {
		return nil, newLengthError("aead key", AEADKeyBytes)
	}
	a, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, NewArgumentError(err.Error())
	}
	return &AEAD{aead: a}, nil
}

// NonceSize returns the nonce length Encrypt and Decrypt expect
func (a *AEAD) NonceSize() int {
	return a.aead.NonceSize()
}

// Overhead returns the number of bytes Encrypt adds
func (a *AEAD) Overhead() int {
	return a.aead.Overhead()
}

// Encrypt seals message and authenticates ad. The tag is appended.
func (a *AEAD) Encrypt(nonce []byte, message []byte, ad []byte) ([]byte, error) {
	if len(nonce) != a.NonceSize() {
		return nil, newLengthError("nonce", a.NonceSize())
	}
	return a.aead.Seal(nil, nonce, message, ad), nil
}

// Decrypt opens ciphertext and checks ad. Any failure past the nonce check
// is ErrDecryption.
func (a *AEAD) Decrypt(nonce []byte, ciphertext []byte, ad []byte) ([]byte, error) {
	if len(nonce) != a.NonceSize() {
		return nil, newLengthError("nonce", a.NonceSize())
	}
	plaintext, err := a.aead.Open(nil, nonce, ciphertext, ad)
	if err != nil {
		return nil, ErrDecryption
	}
	return plaintext, nil
}
