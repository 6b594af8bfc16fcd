package ramrsbd

// buildGenerator computes the narrow-sense generator polynomial
//
//	P(x) = prod_{i=0}^{nk-1} (x - g^i)
//
// for an RS code with nk = code_size - message_size parity bytes. The
// result has length nk and omits the leading 1 coefficient (every generator
// polynomial here is monic), matching the "implicit leading 1" convention
// polyDivMod1 expects.
//
// Because subtraction is addition in characteristic 2, the root factor
// (x - g^i) equals (x + g^i), i.e. the 2-coefficient polynomial [1, g^i].
func buildGenerator(nk int) []byte {
	p := make([]byte, nk)
	if nk == 0 {
		return p
	}
	p[nk-1] = 1
	for i := 0; i < nk; i++ {
		root := []byte{1, gfPow(gfGen, i)}
		polyMulInPlace(p, root)
	}
	return p
}
