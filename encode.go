package ramrsbd

// encodeCodeword systematically RS-encodes message into dst.
//
//	C(x) = M(x) x^nk + (M(x) x^nk mod P(x))
//
// dst must have length len(message)+len(gen) (the codeword size n);
// message must have length n-len(gen) (k, the message size). The result is
// "M || parity": dst[0:k] equals message unchanged and dst[k:n] holds the
// nk parity bytes such that dst(g^i) = 0 for every i in [0, nk).
func encodeCodeword(dst, message, gen []byte) {
	k := len(message)
	for i := range dst {
		dst[i] = 0
	}
	copy(dst[:k], message)

	// polyDivMod1 clobbers dst[0:k] with the (unused) quotient, so the
	// message has to be copied back in afterwards. One historical revision
	// of this codec skipped that second copy and wrote the clobbered
	// quotient to media instead of the message — this is the fix.
	polyDivMod1(dst, gen)
	copy(dst[:k], message)
}
