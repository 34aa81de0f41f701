package nacl

import "fmt"

var (
	// ErrKeyPairGeneration occurs when the key pair primitive fails
	ErrKeyPairGeneration = NewCryptoError("key pair generation failed")
	// ErrSharedKeyDerivation occurs when the key agreement rejects its inputs
	ErrSharedKeyDerivation = NewCryptoError("failed to derive shared key")
	// ErrEncryption occurs when sealing a box fails
	ErrEncryption = NewCryptoError("encryption failed")
	// ErrDecryption occurs for every failure past the nonce length check while opening a box
	ErrDecryption = NewCryptoError("decryption failed: ciphertext failed verification")
	// ErrNoSecretKey occurs when a sealed box is opened without a secret key
	ErrNoSecretKey = NewCryptoError("decryption failed: no secret key")
	// ErrDegenerateKey occurs when scalar multiplication yields the identity
	ErrDegenerateKey = NewCryptoError("degenerate key")
	// ErrBadAuthenticator occurs when a message tag does not verify
	ErrBadAuthenticator = NewCryptoError("invalid authenticator provided: message is corrupt")
	// ErrBadSignature occurs when an ed25519 signature does not verify
	ErrBadSignature = NewCryptoError("signature was forged or corrupt")
	// ErrPasswordHash occurs when a password hashing primitive rejects its parameters
	ErrPasswordHash = NewCryptoError("password hashing failed")
)

// ArgumentError occurs when a caller passes a malformed fixed-length field
type ArgumentError struct {
	msg string
}

// NewArgumentError creates ArgumentError instance
func NewArgumentError(message string) *ArgumentError {
	return &ArgumentError{
		msg: message,
	}
}

func newLengthError(field string, want int) *ArgumentError {
	return NewArgumentError(fmt.Sprintf("%s must be %d bytes long", field, want))
}

func (e *ArgumentError) Error() string {
	return e.msg
}

// CryptoError occurs when an underlying primitive reports failure
type CryptoError struct {
	Msg string
	Err error
}

// NewCryptoError creates CryptoError instance
func NewCryptoError(message string) *CryptoError {
	return &CryptoError{
		Msg: message,
	}
}

func (e *CryptoError) wrap(err error) *CryptoError {
	return &CryptoError{
		Msg: e.Msg,
		Err: err,
	}
}

func (e *CryptoError) Error() string {
	if e.Err == nil {
		return e.Msg
	}
	return e.Msg + ": " + e.Err.Error()
}

func (e *CryptoError) Unwrap() error {
	return e.Err
}

// Is matches any CryptoError carrying the same message, so wrapped
// instances still compare equal to the package sentinels.
func (e *CryptoError) Is(target error) bool {
	t, ok := target.(*CryptoError)
	return ok && t.Msg == e.Msg
}

// GeneratorError occurs when the OS entropy source is unavailable
type GeneratorError struct {
	Err error
}

// NewGeneratorError creates GeneratorError instance
func NewGeneratorError(err error) *GeneratorError {
	return &GeneratorError{
		Err: err,
	}
}

func (e *GeneratorError) Error() string {
	return "random generator unavailable: " + e.Err.Error()
}

func (e *GeneratorError) Unwrap() error {
	return e.Err
}
