package nacl

import (
	"golang.org/x/crypto/curve25519"
	"golang.org/x/crypto/nacl/box"
	"golang.org/x/crypto/salsa20/salsa"
)

// keyAgreement computes the beforenm key of a peer public key and a local
// secret key. Tests swap it to count derivations.
var keyAgreement = deriveSharedKey

// Boxer encrypts and authenticates messages between a local secret key and a
// peer public key.
//
// The shared key is derived once, when the Boxer is created, and never
// changes afterwards, so a Boxer may be used from many goroutines at once.
// The local secret key is not retained.
//
// Nonces are never generated here. Every nonce must be used at most once per
// shared key and direction; reuse is not detected.
type Boxer struct {
	peerPk    [PublicKeyBytes]byte
	sharedKey [SharedKeyBytes]byte
}

// NewBoxer creates Boxer instance for peerPk and sk
func NewBoxer(peerPk [PublicKeyBytes]byte, sk [SecretKeyBytes]byte) (*Boxer, error) {
	k, err := keyAgreement(&peerPk, &sk)
	if err != nil {
		return nil, err
	}
	b := &Boxer{
		peerPk:    peerPk,
		sharedKey: *k,
	}
	zero(k[:])
	return b, nil
}

// NewBoxerFromBytes creates Boxer instance after checking the key lengths
func NewBoxerFromBytes(peerPk []byte, sk []byte) (*Boxer, error) {
	pk, err := CreateBoxPkFromBytes(peerPk)
	if err != nil {
		return nil, err
	}
	skArr, err := CreateBoxSkFromBytes(sk)
	if err != nil {
		return nil, err
	}
	defer zero(skArr[:])
	return NewBoxer(pk, skArr)
}

// PeerPublicKey returns the counterpart public key
func (b *Boxer) PeerPublicKey() [PublicKeyBytes]byte {
	return b.peerPk
}

// Overhead is the number of bytes Box adds to a plaintext
func (b *Boxer) Overhead() int {
	return Overhead
}

// Box encrypts and authenticates plaintext under nonce. The result is
// Overhead bytes longer than plaintext: the poly1305 tag followed by the
// xsalsa20 stream output, which is crypto_box's output with its
// BoxZeroPadBytes prefix stripped.
func (b *Boxer) Box(nonce []byte, plaintext []byte) ([]byte, error) {
	n, err := parseNonce(nonce)
	if err != nil {
		return nil, err
	}
	return box.SealAfterPrecomputation(nil, plaintext, n, b.key()), nil
}

// Unbox verifies and decrypts ciphertext produced by Box under the same
// nonce. No plaintext is returned unless the tag verifies; every failure
// past the nonce check is reported as ErrDecryption.
func (b *Boxer) Unbox(nonce []byte, ciphertext []byte) ([]byte, error) {
	n, err := parseNonce(nonce)
	if err != nil {
		return nil, err
	}
	plaintext, ok := box.OpenAfterPrecomputation(nil, ciphertext, n, b.key())
	if !ok {
		return nil, ErrDecryption
	}
	return plaintext, nil
}

// Zero wipes the shared key. b must not be used afterwards.
func (b *Boxer) Zero() {
	zero(b.sharedKey[:])
}

// key exposes the cached shared key to the rest of the package.
func (b *Boxer) key() *[SharedKeyBytes]byte {
	return &b.sharedKey
}

// deriveSharedKey is crypto_box_beforenm: X25519 followed by HSalsa20 with a
// zero input block. Low order peer keys make X25519 fail.
func deriveSharedKey(peerPk *[PublicKeyBytes]byte, sk *[SecretKeyBytes]byte) (*[SharedKeyBytes]byte, error) {
	dh, err := curve25519.X25519(sk[:], peerPk[:])
	if err != nil {
		return nil, ErrSharedKeyDerivation.wrap(err)
	}
	var k [SharedKeyBytes]byte
	var in [16]byte
	copy(k[:], dh)
	zero(dh)
	salsa.HSalsa20(&k, &in, &k, &salsa.Sigma)
	return &k, nil
}

func parseNonce(nonce []byte) (*[NonceBytes]byte, error) {
	if len(nonce) != NonceBytes {
		return nil, newLengthError("nonce", NonceBytes)
	}
	var n [NonceBytes]byte
	copy(n[:], nonce)
	return &n, nil
}
