package nacl

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/sha512"

	"golang.org/x/crypto/poly1305"
)

// Authenticator computes and checks message tags under a 32 byte secret key.
// The one-time variant (poly1305) must never see two messages under the
// same key.
type Authenticator struct {
	name    string
	tagSize int
	key     [AuthKeyBytes]byte
	sum     func(key *[AuthKeyBytes]byte, message []byte) []byte
}

// NewHmacSha256 creates Authenticator instance for HMAC-SHA-256
func NewHmacSha256(key []byte) (*Authenticator, error) {
	return newAuthenticator("hmac-sha256", key, HmacSha256Bytes, func(k *[AuthKeyBytes]byte, m []byte) []byte {
		h := hmac.New(sha256.New, k[:])
		h.Write(m)
		return h.Sum(nil)
	})
}

// NewHmacSha512 creates Authenticator instance for HMAC-SHA-512
func NewHmacSha512(key []byte) (*Authenticator, error) {
	return newAuthenticator("hmac-sha512", key, HmacSha512Bytes, hmacSha512)
}

// NewHmacSha512256 creates Authenticator instance for HMAC-SHA-512 truncated
// to 256 bits, the NaCl crypto_auth default
func NewHmacSha512256(key []byte) (*Authenticator, error) {
	return newAuthenticator("hmac-sha512256", key, HmacSha512256Bytes, func(k *[AuthKeyBytes]byte, m []byte) []byte {
		return hmacSha512(k, m)[:HmacSha512256Bytes]
	})
}

// NewOneTimeAuth creates Authenticator instance for poly1305
func NewOneTimeAuth(key []byte) (*Authenticator, error) {
	return newAuthenticator("poly1305", key, OneTimeAuthBytes, func(k *[AuthKeyBytes]byte, m []byte) []byte {
		var tag [OneTimeAuthBytes]byte
		poly1305.Sum(&tag, m, k)
		return tag[:]
	})
}

func newAuthenticator(name string, key []byte, tagSize int, sum func(*[AuthKeyBytes]byte, []byte) []byte) (*Authenticator, error) {
	if len(key) != AuthKeyBytes {
		return nil, newLengthError(name+" key", AuthKeyBytes)
	}
	a := &Authenticator{
		name:    name,
		tagSize: tagSize,
		sum:     sum,
	}
	copy(a.key[:], key)
	return a, nil
}

func hmacSha512(k *[AuthKeyBytes]byte, m []byte) []byte {
	h := hmac.New(sha512.New, k[:])
	h.Write(m)
	return h.Sum(nil)
}

// Name returns the algorithm name
func (a *Authenticator) Name() string {
	return a.name
}

// TagSize returns the length of the tags Auth produces
func (a *Authenticator) TagSize() int {
	return a.tagSize
}

// Auth returns the tag of message
func (a *Authenticator) Auth(message []byte) []byte {
	return a.sum(&a.key, message)
}

// Verify checks tag against message in constant time. A tag of the wrong
// length is an ArgumentError; a mismatch is ErrBadAuthenticator.
func (a *Authenticator) Verify(tag []byte, message []byte) error {
	if len(tag) != a.tagSize {
		return newLengthError(a.name+" tag", a.tagSize)
	}
	if !verify(tag, a.Auth(message), a.tagSize) {
		return ErrBadAuthenticator
	}
	return nil
}

// Zero wipes the key. a must not be used afterwards.
func (a *Authenticator) Zero() {
	zero(a.key[:])
}
