package hexutil

import (
	"encoding/hex"
	"fmt"
)

const (
	// KeyStringLength is the hex length of a 32 byte key
	KeyStringLength = 64
	// NonceStringLength is the hex length of a 24 byte nonce
	NonceStringLength = 48
)

var (
	// ErrInvalidKeyLength ..
	ErrInvalidKeyLength = fmt.Errorf("invalid key length: key length must be:{%d}", KeyStringLength)
	// ErrInvalidNonceLength ..
	ErrInvalidNonceLength = fmt.Errorf("invalid nonce length: nonce length must be:{%d}", NonceStringLength)
	// ErrInvalidHexChar ..
	ErrInvalidHexChar = fmt.Errorf("invalid hex character: hex characters should be valid hex char(0-f)")
	// ErrOddHexLength ..
	ErrOddHexLength = fmt.Errorf("odd hex length: the length of the hex string should be even")
)

// IsValidHexKeyString validates key
func IsValidHexKeyString(key string) error {
	if len(key) != KeyStringLength {
		return ErrInvalidKeyLength
	}
	return IsValidHexString(key)
}

// IsValidHexString validates s
func IsValidHexString(s string) error {
	if len(s)%2 == 1 {
		return ErrOddHexLength
	}
	for _, c := range s {
		isValid := (c >= '0' && c <= '9') || (c >= 'A' && c <= 'F') || (c >= 'a' && c <= 'f')
		if !isValid {
			return ErrInvalidHexChar
		}
	}
	return nil
}

// HexStringToBytes converts string to bytes
func HexStringToBytes(s string) ([]byte, error) {
	if err := IsValidHexString(s); err != nil {
		return nil, err
	}
	return hex.DecodeString(s)
}

// HexStringToBytes32 converts a 64 char key string to [32]byte
func HexStringToBytes32(s string) (*[32]byte, error) {
	if err := IsValidHexKeyString(s); err != nil {
		return nil, err
	}
	var bytesArr [32]byte
	if _, err := hex.Decode(bytesArr[:], []byte(s)); err != nil {
		return nil, err
	}
	return &bytesArr, nil
}

// HexStringToNonce converts a 48 char nonce string to [24]byte
func HexStringToNonce(s string) (*[24]byte, error) {
	if len(s) != NonceStringLength {
		return nil, ErrInvalidNonceLength
	}
	if err := IsValidHexString(s); err != nil {
		return nil, err
	}
	var nonce [24]byte
	if _, err := hex.Decode(nonce[:], []byte(s)); err != nil {
		return nil, err
	}
	return &nonce, nil
}

// BytesToHexString encodes b as lower case hex
func BytesToHexString(b []byte) string {
	return hex.EncodeToString(b)
}
