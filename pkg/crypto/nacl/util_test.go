package nacl

import (
	"testing"
)

func TestVerify(t *testing.T) {
	a32 := sequence(32)
	b32 := sequence(32)
	b32[31] ^= 1

	tests := []struct {
		fn     func(a, b []byte) bool
		a, b   []byte
		output bool
	}{
		{Verify16, sequence(16), sequence(16), true},
		{Verify16, sequence(16), sequence(17), false},
		{Verify32, a32, a32, true},
		{Verify32, a32, b32, false},
		{Verify32, a32[:16], a32[:16], false},
		{Verify64, sequence(64), sequence(64), true},
		{Verify64, nil, nil, false},
	}
	for i, tt := range tests {
		if out := tt.fn(tt.a, tt.b); out != tt.output {
			t.Fatalf("case %d: got %v, expected %v", i, out, tt.output)
		}
	}
}
