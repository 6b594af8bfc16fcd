package ramrsbd

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGFMulZero(t *testing.T) {
	require.Equal(t, byte(0), gfMul(0, 0x56))
	require.Equal(t, byte(0), gfMul(0x56, 0))
}

func TestGFMulIdentity(t *testing.T) {
	for a := 1; a < 256; a++ {
		require.Equal(t, byte(a), gfMul(byte(a), 1), "a=%d", a)
	}
}

func TestGFMulCommutes(t *testing.T) {
	for a := 0; a < 256; a += 7 {
		for b := 0; b < 256; b += 11 {
			require.Equal(t, gfMul(byte(a), byte(b)), gfMul(byte(b), byte(a)), "a=%d b=%d", a, b)
		}
	}
}

func TestGFDivIsMulInverse(t *testing.T) {
	for a := 1; a < 256; a++ {
		for b := 1; b < 256; b++ {
			q := gfDiv(byte(a), byte(b))
			require.Equal(t, byte(a), gfMul(q, byte(b)), "a=%d b=%d", a, b)
		}
	}
}

func TestGFPowMatchesRepeatedMul(t *testing.T) {
	x := byte(1)
	for e := 0; e < 255; e++ {
		require.Equal(t, x, gfPow(gfGen, e), "e=%d", e)
		x = gfMul(x, gfGen)
	}
	// order of the multiplicative group is 255
	require.Equal(t, byte(1), gfPow(gfGen, 255))
}

func TestGFPowZeroBase(t *testing.T) {
	require.Equal(t, byte(1), gfPow(0, 0))
	require.Equal(t, byte(0), gfPow(0, 1))
}

func TestGFAntilogLogInverse(t *testing.T) {
	gfOnce.Do(gfInit)
	for a := 1; a < 256; a++ {
		require.Equal(t, byte(a), gfAntilg[gfLog[byte(a)]], "a=%d", a)
	}
}
