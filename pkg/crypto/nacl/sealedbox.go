package nacl

import (
	"golang.org/x/crypto/nacl/box"
)

// SealedBox sends messages anonymously to a recipient public key. Each
// message is boxed under a fresh ephemeral key pair, so only the recipient
// can open it and the sender cannot be identified, not even by itself.
type SealedBox struct {
	pk [PublicKeyBytes]byte
	sk *[SecretKeyBytes]byte
}

// NewSealedBox creates a SealedBox that can only seal to pk
func NewSealedBox(pk [PublicKeyBytes]byte) *SealedBox {
	return &SealedBox{pk: pk}
}

// NewSealedBoxFromKeyPair creates a SealedBox that can seal to and open for kp
func NewSealedBoxFromKeyPair(kp *BoxKeyPair) *SealedBox {
	sk := kp.Sk
	return &SealedBox{
		pk: kp.Pk,
		sk: &sk,
	}
}

// Seal encrypts message to the recipient. Output is SealBytes longer than message.
func (s *SealedBox) Seal(message []byte) ([]byte, error) {
	ct, err := box.SealAnonymous(nil, message, &s.pk, randReader)
	if err != nil {
		return nil, ErrEncryption.wrap(err)
	}
	return ct, nil
}

// Open decrypts a sealed message. It needs the recipient secret key.
func (s *SealedBox) Open(ciphertext []byte) ([]byte, error) {
	if s.sk == nil {
		return nil, ErrNoSecretKey
	}
	if len(ciphertext) < SealBytes {
		return nil, ErrDecryption
	}
	message, ok := box.OpenAnonymous(nil, ciphertext, &s.pk, s.sk)
	if !ok {
		return nil, ErrDecryption
	}
	return message, nil
}
