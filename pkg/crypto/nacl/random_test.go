package nacl

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRandomBytes(t *testing.T) {
	for _, n := range []int{0, 1, 24, 32, 1024} {
		b, err := RandomBytes(n)
		if err != nil || len(b) != n {
			t.Fatalf("RandomBytes(%d): len %d, err %v", n, len(b), err)
		}
	}

	a, _ := RandomBytes(32)
	b, _ := RandomBytes(32)
	require.NotEqual(t, a, b)
}

func TestRandomBytes_Negative(t *testing.T) {
	b, err := RandomBytes(-1)
	var argErr *ArgumentError
	require.Nil(t, b)
	require.True(t, errors.As(err, &argErr))
}

func TestRandomBytes_NoEntropy(t *testing.T) {
	defer withRandReader(failingReader{})()

	b, err := RandomBytes(16)
	require.Nil(t, b)

	var genErr *GeneratorError
	require.True(t, errors.As(err, &genErr))
	require.True(t, errors.Is(err, errNoEntropy))

	_, err = RandomNonce()
	require.True(t, errors.As(err, &genErr))
}

func TestRandomNonce(t *testing.T) {
	n1, err := RandomNonce()
	require.NoError(t, err)
	n2, err := RandomNonce()
	require.NoError(t, err)
	require.NotEqual(t, n1, n2)
}
