package envelope

import (
	"bufio"
	"bytes"
	"errors"

	"github.com/OguzhanE/saltybox/pkg/crypto/nacl"
	"github.com/ugorji/go/codec"
)

var (
	// ErrCantDecodeEnvelope occurs when bytes are not a msgpack envelope
	ErrCantDecodeEnvelope = errors.New("cant decode envelope")
	// ErrInvalidField occurs when a decoded field has the wrong length
	ErrInvalidField = errors.New("invalid field value")
)

// Envelope carries a boxed message on the wire. Key is the sender public
// key and may be empty when the receiver already knows it.
type Envelope struct {
	Nonce []byte `codec:"nonce"`
	Box   []byte `codec:"box"`
	Key   []byte `codec:"key,omitempty"`
}

// FieldError represents an error correlated to a particular envelope field
type FieldError struct {
	Field string
	Err   error
}

// NewFieldError creates FieldError instance
func NewFieldError(field string, err error) *FieldError {
	return &FieldError{
		Field: field,
		Err:   err,
	}
}

func (e *FieldError) Error() string {
	return "envelope." + e.Field + ": " + e.Err.Error()
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// Encode returns the msgpack encoding of e
func Encode(e *Envelope) ([]byte, error) {
	b := new(bytes.Buffer)
	bw := bufio.NewWriter(b)
	h := new(codec.MsgpackHandle)
	h.WriteExt = true
	enc := codec.NewEncoder(bw, h)
	err := enc.Encode(e)
	if err != nil {
		bw.Flush()
		return nil, err
	}
	err = bw.Flush()
	return b.Bytes(), err
}

// Decode parses and validates a msgpack envelope
func Decode(encoded []byte) (*Envelope, error) {
	h := new(codec.MsgpackHandle)
	h.WriteExt = true
	h.ErrorIfNoField = true
	dec := codec.NewDecoderBytes(encoded, h)

	e := &Envelope{}
	if err := dec.Decode(e); err != nil {
		return nil, ErrCantDecodeEnvelope
	}
	if len(e.Nonce) != nacl.NonceBytes {
		return nil, NewFieldError("nonce", ErrInvalidField)
	}
	if len(e.Key) != 0 && !nacl.IsValidBoxPkBytes(e.Key) {
		return nil, NewFieldError("key", ErrInvalidField)
	}
	return e, nil
}

// Seal boxes message under nonce and wraps the result. senderPk is attached
// when not nil.
func Seal(b nacl.NonceBoxer, nonce []byte, message []byte, senderPk *[nacl.PublicKeyBytes]byte) (*Envelope, error) {
	ct, err := b.Box(nonce, message)
	if err != nil {
		return nil, err
	}
	e := &Envelope{
		Nonce: append([]byte(nil), nonce...),
		Box:   ct,
	}
	if senderPk != nil {
		e.Key = append([]byte(nil), senderPk[:]...)
	}
	return e, nil
}

// SealRandom is Seal under a fresh random nonce
func SealRandom(b nacl.NonceBoxer, message []byte, senderPk *[nacl.PublicKeyBytes]byte) (*Envelope, error) {
	nonce, err := nacl.RandomNonce()
	if err != nil {
		return nil, err
	}
	return Seal(b, nonce[:], message, senderPk)
}

// Open unboxes the envelope contents
func Open(b nacl.NonceBoxer, e *Envelope) ([]byte, error) {
	return b.Unbox(e.Nonce, e.Box)
}

// SenderKey returns the attached sender public key
func (e *Envelope) SenderKey() ([nacl.PublicKeyBytes]byte, bool) {
	pk, err := nacl.CreateBoxPkFromBytes(e.Key)
	return pk, err == nil
}
