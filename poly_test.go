package ramrsbd

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPolyEvalConstant(t *testing.T) {
	require.Equal(t, byte(0x42), polyEval([]byte{0x42}, 0x07))
}

func TestPolyEvalAtZeroIsConstantTerm(t *testing.T) {
	p := []byte{0x01, 0x02, 0x03}
	require.Equal(t, byte(0x03), polyEval(p, 0))
}

func TestPolyXorRightAligned(t *testing.T) {
	a := []byte{0x01, 0x02, 0x03, 0x04}
	polyXor(a, []byte{0xFF, 0xFF})
	require.Equal(t, []byte{0x01, 0x02, 0x03 ^ 0xFF, 0x04 ^ 0xFF}, a)
}

func TestPolyXorsScalesBeforeXor(t *testing.T) {
	a := []byte{0x00, 0x00}
	polyXors(a, 0x02, []byte{0x03})
	require.Equal(t, []byte{0x00, gfMul(0x02, 0x03)}, a)
}

func TestPolyMulInPlaceByMonicFactor(t *testing.T) {
	// polyMulInPlace is used to grow a generator polynomial one monic
	// linear factor (x + r) at a time within a fixed-size buffer, dropping
	// the product's leading term. Starting from a = [1, 1] (x+1) and
	// multiplying by (x + g) gives x^2 + (1+g)x + g, so the buffer holds
	// [1^g, g] — the same buffer buildGenerator(2) produces after its
	// second factor.
	a := []byte{1, 1}
	polyMulInPlace(a, []byte{1, gfGen})
	require.Equal(t, byte(1^gfGen), a[0])
	require.Equal(t, gfMul(1, gfGen), a[1])
}

func TestPolyDivMod1ZeroRemainderForMultiple(t *testing.T) {
	gen := buildGenerator(4)
	msg := []byte{1, 2, 3, 4, 5, 6, 7, 8}
	c := make([]byte, len(msg)+len(gen))
	copy(c, msg)
	polyDivMod1(c, gen)
	copy(c[:len(msg)], msg)

	for i := 0; i < len(gen); i++ {
		require.Equal(t, byte(0), polyEval(c, gfPow(gfGen, len(gen)-1-i)), "syndrome %d", i)
	}
}

func TestPolyDivModNormalizesByLeadingCoefficient(t *testing.T) {
	// dividing by a non-monic divisor must still produce a correct
	// remainder once normalized by its leading coefficient.
	a := []byte{1, 0, 0, 0}
	b := []byte{gfGen, 1, 1}
	polyDivMod(a, b)
	// remainder occupies the trailing len(b)-1 = 2 bytes:
	// x^3 = (0x8e x + 0x47)(g x^2 + x + 1) + (0xc9 x + 0x47)
	remainder := a[len(a)-2:]
	require.Len(t, remainder, 2)
	require.Equal(t, []byte{0xc9, 0x47}, remainder)
}
