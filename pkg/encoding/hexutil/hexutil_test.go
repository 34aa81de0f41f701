package hexutil

import (
	"reflect"
	"testing"
)

func TestIsValidHexKeyString(t *testing.T) {
	tests := []struct {
		input  string
		output bool
	}{
		{"", false},
		{"a", false},
		{"f72aadb4b5e303845ec20ab1fe4e463ce4909eef8145d9002bfd568ff3af5279", true},
		{"F72AADB4B5E303845EC20AB1FE4E463CE4909EEF8145D9002BFD568FF3AF5279", true},
		{"g72aadb4b5e303845ec20ab1fe4e463ce4909eef8145d9002bfd568ff3af5279", false},
		{"f72aadb4b5e303845ec20ab1fe4e463ce4909eef8145d9002bfd568ff3af5279a", false},
	}
	for _, tt := range tests {
		err := IsValidHexKeyString(tt.input)
		if isValid := err == nil; isValid != tt.output {
			t.Fatalf("bad:\nInput:\n%s\nOutput:\n%v\nExpected output:\n%v", tt.input, isValid, tt.output)
		}
	}
}

func TestIsValidHexString(t *testing.T) {
	tests := []struct {
		input  string
		output error
	}{
		{"", nil},
		{"a", ErrOddHexLength},
		{"0aFf", nil},
		{"zz", ErrInvalidHexChar},
	}

	for _, tt := range tests {
		err := IsValidHexString(tt.input)
		if err != tt.output {
			t.Fatalf("bad:\nInput:\n%s\nOutput:\n%v\nExpected output:\n%v", tt.input, err, tt.output)
		}
	}
}

func TestHexStringToBytes(t *testing.T) {
	tests := []struct {
		input  string
		output []byte
		valid  bool
	}{
		{"", []byte{}, true},
		{"aa", []byte{170}, true},
		{"aaa", nil, false},
		{"gg", nil, false},
		{"f72aadb4b5e303845ec20ab1fe4e463ce4909eef8145d9002bfd568ff3af5279", []byte{247, 42, 173, 180, 181, 227, 3, 132, 94, 194, 10, 177, 254, 78, 70, 60, 228, 144, 158, 239, 129, 69, 217, 0, 43, 253, 86, 143, 243, 175, 82, 121}, true},
	}

	for ii, tt := range tests {
		bytes, err := HexStringToBytes(tt.input)
		if isValid := err == nil; isValid != tt.valid || (tt.valid && !reflect.DeepEqual(bytes, tt.output)) {
			t.Fatalf("case %d: got %v, %v", ii, bytes, err)
		}
	}
}

func TestHexStringToBytes32(t *testing.T) {
	tests := []struct {
		input  string
		output *[32]byte
	}{
		{"", nil},
		{"aa", nil},
		{"aaa", nil},
		{"gg", nil},
		{"f72aadb4b5e303845ec20ab1fe4e463ce4909eef8145d9002bfd568ff3af5279aa", nil},
		{"f72aadb4b5e303845ec20ab1fe4e463ce4909eef8145d9002bfd568ff3af5279", &[32]byte{247, 42, 173, 180, 181, 227, 3, 132, 94, 194, 10, 177, 254, 78, 70, 60, 228, 144, 158, 239, 129, 69, 217, 0, 43, 253, 86, 143, 243, 175, 82, 121}},
	}

	for ii, tt := range tests {
		bytes, err := HexStringToBytes32(tt.input)
		if tt.output == nil {
			if err == nil || bytes != nil {
				t.Fatalf("case %d: expected error, got %x", ii, bytes)
			}
			continue
		}
		if err != nil || *bytes != *tt.output {
			t.Fatalf("case %d: got %x, %v", ii, bytes, err)
		}
	}
}

func TestHexStringToNonce(t *testing.T) {
	nonce, err := HexStringToNonce("69696ee955b62b73cd62bda875fc73d68219e0036b7a0b37")
	if err != nil {
		t.Fatal(err)
	}
	if BytesToHexString(nonce[:]) != "69696ee955b62b73cd62bda875fc73d68219e0036b7a0b37" {
		t.Fatalf("unexpected nonce %x", nonce)
	}

	if _, err := HexStringToNonce("69696ee955b62b73"); err != ErrInvalidNonceLength {
		t.Fatalf("expected ErrInvalidNonceLength, got %v", err)
	}
	if _, err := HexStringToNonce("x9696ee955b62b73cd62bda875fc73d68219e0036b7a0b37"); err != ErrInvalidHexChar {
		t.Fatalf("expected ErrInvalidHexChar, got %v", err)
	}
}
