package nacl

import (
	"golang.org/x/crypto/nacl/box"
)

// BoxKeyPair holds a curve25519 public key and the secret key it was made from
type BoxKeyPair struct {
	Pk [PublicKeyBytes]byte
	Sk [SecretKeyBytes]byte
}

// NewBoxKeyPair creates BoxKeyPair instance from existing key material. The
// relation between pk and sk is trusted, not checked.
func NewBoxKeyPair(pk [PublicKeyBytes]byte, sk [SecretKeyBytes]byte) *BoxKeyPair {
	return &BoxKeyPair{
		Pk: pk,
		Sk: sk,
	}
}

// GenerateBoxKeyPair generates a fresh key pair from the OS secure generator
func GenerateBoxKeyPair() (*BoxKeyPair, error) {
	pk, sk, err := box.GenerateKey(randReader)
	if err != nil {
		return nil, ErrKeyPairGeneration.wrap(err)
	}
	kp := NewBoxKeyPair(*pk, *sk)
	zero(sk[:])
	return kp, nil
}

// BoxKeyPairFromSecretKey rebuilds a key pair by deriving the public half of sk
func BoxKeyPairFromSecretKey(sk [SecretKeyBytes]byte) *BoxKeyPair {
	return NewBoxKeyPair(ScalarBaseMult(sk), sk)
}

// PkEqualTo compares the public key with target in constant time
func (kp *BoxKeyPair) PkEqualTo(target [PublicKeyBytes]byte) bool {
	return Verify32(kp.Pk[:], target[:])
}

// SkEqualTo compares the secret key with target in constant time
func (kp *BoxKeyPair) SkEqualTo(target [SecretKeyBytes]byte) bool {
	return Verify32(kp.Sk[:], target[:])
}

// Clone returns an independent copy of kp
func (kp *BoxKeyPair) Clone() *BoxKeyPair {
	return &BoxKeyPair{
		Pk: kp.Pk,
		Sk: kp.Sk,
	}
}

// Zero wipes the secret key. kp must not be used for boxing afterwards.
func (kp *BoxKeyPair) Zero() {
	zero(kp.Sk[:])
}

// IsValidBoxPkBytes checks whether pk has the length of a public key. Curve
// membership is not checked.
func IsValidBoxPkBytes(pk []byte) bool {
	return len(pk) == PublicKeyBytes
}

// IsValidBoxSkBytes checks whether sk has the length of a secret key
func IsValidBoxSkBytes(sk []byte) bool {
	return len(sk) == SecretKeyBytes
}

// CreateBoxPkFromBytes copies pk into a fixed size public key
func CreateBoxPkFromBytes(pk []byte) ([PublicKeyBytes]byte, error) {
	var pkArr [PublicKeyBytes]byte
	if !IsValidBoxPkBytes(pk) {
		return pkArr, newLengthError("public key", PublicKeyBytes)
	}
	copy(pkArr[:], pk)
	return pkArr, nil
}

// CreateBoxSkFromBytes copies sk into a fixed size secret key
func CreateBoxSkFromBytes(sk []byte) ([SecretKeyBytes]byte, error) {
	var skArr [SecretKeyBytes]byte
	if !IsValidBoxSkBytes(sk) {
		return skArr, newLengthError("secret key", SecretKeyBytes)
	}
	copy(skArr[:], sk)
	return skArr, nil
}
