package nacl

import (
	"crypto/subtle"
	"runtime"
)

// Verify16 compares two 16 byte strings in constant time
func Verify16(a, b []byte) bool {
	return verify(a, b, 16)
}

// Verify32 compares two 32 byte strings in constant time
func Verify32(a, b []byte) bool {
	return verify(a, b, 32)
}

// Verify64 compares two 64 byte strings in constant time
func Verify64(a, b []byte) bool {
	return verify(a, b, 64)
}

func verify(a, b []byte, n int) bool {
	if len(a) != n || len(b) != n {
		return false
	}
	return subtle.ConstantTimeCompare(a, b) == 1
}

func zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
	runtime.KeepAlive(b)
}
