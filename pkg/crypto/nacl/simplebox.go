package nacl

// NonceBoxer is a box that takes an explicit nonce, Boxer and SecretBox both are.
type NonceBoxer interface {
	Box(nonce []byte, plaintext []byte) ([]byte, error)
	Unbox(nonce []byte, ciphertext []byte) ([]byte, error)
}

// SimpleBox picks a random nonce for every message and prepends it to the
// ciphertext, so output is NonceBytes+Overhead bytes longer than the
// message. It gives confidentiality and integrity but no replay or
// reordering protection.
type SimpleBox struct {
	box NonceBoxer
}

// NewSimpleBox wraps b
func NewSimpleBox(b NonceBoxer) *SimpleBox {
	return &SimpleBox{box: b}
}

// NewSimpleBoxFromKeyPair creates a SimpleBox over a Boxer for peerPk and sk
func NewSimpleBoxFromKeyPair(peerPk [PublicKeyBytes]byte, sk [SecretKeyBytes]byte) (*SimpleBox, error) {
	b, err := NewBoxer(peerPk, sk)
	if err != nil {
		return nil, err
	}
	return NewSimpleBox(b), nil
}

// NewSimpleBoxFromSecretKey creates a SimpleBox over a SecretBox
func NewSimpleBoxFromSecretKey(key [SharedKeyBytes]byte) *SimpleBox {
	return NewSimpleBox(NewSecretBox(key))
}

// Box encrypts message under a fresh random nonce and returns nonce || box
func (s *SimpleBox) Box(message []byte) ([]byte, error) {
	nonce, err := RandomNonce()
	if err != nil {
		return nil, err
	}
	ct, err := s.box.Box(nonce[:], message)
	if err != nil {
		return nil, err
	}
	out := make([]byte, 0, NonceBytes+len(ct))
	out = append(out, nonce[:]...)
	return append(out, ct...), nil
}

// Open splits the nonce off b and opens the rest
func (s *SimpleBox) Open(b []byte) ([]byte, error) {
	if len(b) < NonceBytes {
		return nil, ErrDecryption
	}
	return s.box.Unbox(b[:NonceBytes], b[NonceBytes:])
}
