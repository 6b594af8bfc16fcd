package ramrsbd

// Polynomials are stored most-significant-coefficient first: for a slice of
// length L, index 0 holds the coefficient of x^(L-1) and index L-1 holds the
// constant term.

// polyEval evaluates p(x) via Horner's method.
func polyEval(p []byte, x byte) byte {
	var y byte
	for _, c := range p {
		y = gfMul(y, x) ^ c
	}
	return y
}

// polyXor computes a ^= b, right-aligned: b is added into a's low-order
// tail. Requires len(a) >= len(b).
func polyXor(a, b []byte) {
	off := len(a) - len(b)
	for i := range b {
		a[off+i] ^= b[i]
	}
}

// polyXors computes a ^= c*b, right-aligned. Requires len(a) >= len(b).
func polyXors(a []byte, c byte, b []byte) {
	off := len(a) - len(b)
	for i := range b {
		a[off+i] ^= gfMul(c, b[i])
	}
}

// polyMulInPlace computes a = (a * b) mod x^len(a), truncating to the last
// len(a) coefficients of the full product. Requires len(a) >= len(b).
func polyMulInPlace(a, b []byte) {
	n := len(a)
	m := len(b)
	// walk a from its highest-degree coefficient down; each product term
	// lands at an index <= i, which has already been consumed
	for i := 0; i < n; i++ {
		x := a[i]
		a[i] = 0
		for j := 0; j < m && j <= i; j++ {
			a[i-j] ^= gfMul(x, b[m-1-j])
		}
	}
}

// polyDivMod performs synthetic division of a by b, normalizing by b's
// actual leading coefficient. After return, a's first len(a)-len(b)+1 bytes
// hold the quotient and the trailing len(b)-1 bytes hold the remainder.
// Requires len(a) >= len(b).
func polyDivMod(a, b []byte) {
	n := len(a)
	m := len(b)
	lead := b[0]
	for i := 0; i < (n-m)+1; i++ {
		if a[i] == 0 {
			continue
		}
		a[i] = gfDiv(a[i], lead)
		for j := 1; j < m; j++ {
			a[i+j] ^= gfMul(a[i], b[j])
		}
	}
}

// polyDivMod1 is polyDivMod assuming b has an implicit leading 1 (b stores
// only its lower len(b) coefficients, i.e. the generator polynomial
// convention used throughout this package). After return, the trailing
// len(b) bytes of a hold the remainder; no normalization is needed since
// the leading coefficient is always 1.
func polyDivMod1(a, b []byte) {
	n := len(a)
	m := len(b)
	for i := 0; i < n-m; i++ {
		coef := a[i]
		if coef == 0 {
			continue
		}
		for j := 0; j < m; j++ {
			a[i+1+j] ^= gfMul(coef, b[j])
		}
	}
}
