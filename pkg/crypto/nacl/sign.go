package nacl

import (
	"crypto/ed25519"
)

// SigningKey is an ed25519 private key, kept as the expanded form of its
// 32 byte seed
type SigningKey struct {
	priv ed25519.PrivateKey
}

// VerifyKey is an ed25519 public key
type VerifyKey struct {
	pk ed25519.PublicKey
}

// GenerateSigningKey creates a SigningKey from fresh randomness
func GenerateSigningKey() (*SigningKey, error) {
	_, priv, err := ed25519.GenerateKey(randReader)
	if err != nil {
		return nil, ErrKeyPairGeneration.wrap(err)
	}
	return &SigningKey{priv: priv}, nil
}

// NewSigningKey creates SigningKey instance from a 32 byte seed
func NewSigningKey(seed []byte) (*SigningKey, error) {
	if len(seed) != SigningKeyBytes {
		return nil, newLengthError("signing key", SigningKeyBytes)
	}
	return &SigningKey{priv: ed25519.NewKeyFromSeed(seed)}, nil
}

// Seed returns a copy of the 32 byte seed
func (k *SigningKey) Seed() []byte {
	return append([]byte(nil), k.priv.Seed()...)
}

// Sign returns the 64 byte detached signature of message
func (k *SigningKey) Sign(message []byte) []byte {
	return ed25519.Sign(k.priv, message)
}

// VerifyKey returns the matching public key
func (k *SigningKey) VerifyKey() *VerifyKey {
	pk := k.priv.Public().(ed25519.PublicKey)
	return &VerifyKey{pk: append(ed25519.PublicKey(nil), pk...)}
}

// Zero wipes the private key. k must not be used afterwards.
func (k *SigningKey) Zero() {
	zero(k.priv)
}

// NewVerifyKey creates VerifyKey instance
func NewVerifyKey(pk []byte) (*VerifyKey, error) {
	if len(pk) != VerifyKeyBytes {
		return nil, newLengthError("verify key", VerifyKeyBytes)
	}
	return &VerifyKey{pk: append(ed25519.PublicKey(nil), pk...)}, nil
}

// Bytes returns a copy of the public key
func (v *VerifyKey) Bytes() []byte {
	return append([]byte(nil), v.pk...)
}

// EqualTo compares two verify keys in constant time
func (v *VerifyKey) EqualTo(other *VerifyKey) bool {
	return Verify32(v.pk, other.pk)
}

// Verify checks a detached signature. A signature of the wrong length is an
// ArgumentError; a forged one is ErrBadSignature.
func (v *VerifyKey) Verify(signature []byte, message []byte) error {
	if len(signature) != SignatureBytes {
		return newLengthError("signature", SignatureBytes)
	}
	if !ed25519.Verify(v.pk, message, signature) {
		return ErrBadSignature
	}
	return nil
}
