package nacl

import (
	"golang.org/x/crypto/curve25519"
)

// ScalarBaseMult multiplies scalar with the curve25519 base point, which gives
// the public key belonging to a secret key.
func ScalarBaseMult(scalar [SecretKeyBytes]byte) [PublicKeyBytes]byte {
	var point [PublicKeyBytes]byte
	curve25519.ScalarBaseMult(&point, &scalar)
	return point
}

// ScalarMult multiplies scalar with point. Low order points, whose product is
// the all zero value, fail with ErrDegenerateKey.
func ScalarMult(scalar [SecretKeyBytes]byte, point [PublicKeyBytes]byte) ([PublicKeyBytes]byte, error) {
	var out [PublicKeyBytes]byte
	product, err := curve25519.X25519(scalar[:], point[:])
	if err != nil {
		return out, ErrDegenerateKey
	}
	copy(out[:], product)
	zero(product)
	return out, nil
}
