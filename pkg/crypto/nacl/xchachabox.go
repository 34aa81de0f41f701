package nacl

import (
	"golang.org/x/crypto/chacha20"
	"golang.org/x/crypto/poly1305"
)

// XChaChaSecretBox is crypto_secretbox_xchacha20poly1305: the SecretBox
// layout (tag || ciphertext) with xchacha20 as the stream cipher and the
// same 24 byte nonce. It satisfies NonceBoxer, so it can back a SimpleBox.
type XChaChaSecretBox struct {
	key [SharedKeyBytes]byte
}

// NewXChaChaSecretBox creates XChaChaSecretBox instance
func NewXChaChaSecretBox(key [SharedKeyBytes]byte) *XChaChaSecretBox {
	return &XChaChaSecretBox{key: key}
}

// NewXChaChaSecretBoxFromBytes creates XChaChaSecretBox instance after checking the key length
func NewXChaChaSecretBoxFromBytes(key []byte) (*XChaChaSecretBox, error) {
	if len(key) != SharedKeyBytes {
		return nil, newLengthError("secret box key", SharedKeyBytes)
	}
	var k [SharedKeyBytes]byte
	copy(k[:], key)
	return NewXChaChaSecretBox(k), nil
}

// streamAt returns the cipher positioned after the poly1305 key, which takes
// the first 32 bytes of keystream block zero.
func (s *XChaChaSecretBox) streamAt(nonce *[NonceBytes]byte) (*chacha20.Cipher, *[32]byte, error) {
	c, err := chacha20.NewUnauthenticatedCipher(s.key[:], nonce[:])
	if err != nil {
		return nil, nil, err
	}
	var polyKey [32]byte
	c.XORKeyStream(polyKey[:], polyKey[:])
	return c, &polyKey, nil
}

// Box encrypts and authenticates plaintext under nonce
func (s *XChaChaSecretBox) Box(nonce []byte, plaintext []byte) ([]byte, error) {
	n, err := parseNonce(nonce)
	if err != nil {
		return nil, err
	}
	c, polyKey, err := s.streamAt(n)
	if err != nil {
		return nil, ErrEncryption.wrap(err)
	}
	defer zero(polyKey[:])

	out := make([]byte, poly1305.TagSize+len(plaintext))
	ct := out[poly1305.TagSize:]
	c.XORKeyStream(ct, plaintext)

	var tag [poly1305.TagSize]byte
	poly1305.Sum(&tag, ct, polyKey)
	copy(out, tag[:])
	return out, nil
}

// Unbox verifies and decrypts ciphertext under nonce
func (s *XChaChaSecretBox) Unbox(nonce []byte, ciphertext []byte) ([]byte, error) {
	n, err := parseNonce(nonce)
	if err != nil {
		return nil, err
	}
	if len(ciphertext) < poly1305.TagSize {
		return nil, ErrDecryption
	}
	c, polyKey, err := s.streamAt(n)
	if err != nil {
		return nil, ErrDecryption
	}
	defer zero(polyKey[:])

	var tag [poly1305.TagSize]byte
	copy(tag[:], ciphertext)
	ct := ciphertext[poly1305.TagSize:]
	if !poly1305.Verify(&tag, ct, polyKey) {
		return nil, ErrDecryption
	}
	plaintext := make([]byte, len(ct))
	c.XORKeyStream(plaintext, ct)
	return plaintext, nil
}
