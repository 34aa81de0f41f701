package nacl

import (
	"crypto/rand"
	"io"
)

// randReader is the entropy source for every key and nonce this package makes.
var randReader io.Reader = rand.Reader

// RandomBytes returns n bytes read from the OS secure generator.
func RandomBytes(n int) ([]byte, error) {
	if n < 0 {
		return nil, NewArgumentError("random length must not be negative")
	}
	b := make([]byte, n)
	if _, err := io.ReadFull(randReader, b); err != nil {
		return nil, NewGeneratorError(err)
	}
	return b, nil
}

// RandomNonce returns a fresh random box nonce.
func RandomNonce() ([NonceBytes]byte, error) {
	var nonce [NonceBytes]byte
	if _, err := io.ReadFull(randReader, nonce[:]); err != nil {
		return nonce, NewGeneratorError(err)
	}
	return nonce, nil
}
