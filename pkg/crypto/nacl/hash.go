package nacl

import (
	"crypto/sha256"
	"crypto/sha512"

	"golang.org/x/crypto/blake2b"
)

// Sha256 returns the SHA-256 digest of data
func Sha256(data []byte) [Sha256Bytes]byte {
	return sha256.Sum256(data)
}

// Sha512 returns the SHA-512 digest of data
func Sha512(data []byte) [Sha512Bytes]byte {
	return sha512.Sum512(data)
}

// Blake2b returns a size byte BLAKE2b digest of data. key may be nil for the
// unkeyed hash.
func Blake2b(data []byte, size int, key []byte) ([]byte, error) {
	if size < 1 || size > Blake2bBytes {
		return nil, NewArgumentError("blake2b digest size must be between 1 and 64 bytes")
	}
	if len(key) > Blake2bKeyBytesMax {
		return nil, NewArgumentError("blake2b key must be at most 64 bytes long")
	}
	h, err := blake2b.New(size, key)
	if err != nil {
		return nil, NewArgumentError(err.Error())
	}
	h.Write(data)
	return h.Sum(nil), nil
}
