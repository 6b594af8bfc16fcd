package ramrsbd

// decodeResult distinguishes a clean codeword, a corrected one, or one
// that could not be corrected within policy.
type decodeResult struct {
	corrected int // number of byte errors fixed; 0 if the codeword was clean
	corrupt   bool
	errors    int    // errors found by Berlekamp-Massey, whether or not corrupt
	limit     int    // the correction limit in effect, for diagnostics
	reason    string // set only when corrupt: why
}

// decodeCodeword decodes c in place (length n, the full codeword including
// its nk parity bytes). errorCorrection follows the Config convention: 0
// means "correct up to floor(nk/2)", a positive value caps the number of
// correctable byte errors, -1 means detect-only (any nonzero syndrome is
// fatal). s, lambda, omega are nk-length scratch buffers owned by the
// caller (typically the Device). omega doubles as Berlekamp-Massey's
// auxiliary LFSR buffer before it holds the real error evaluator — the
// same reuse the four-buffer (n + 4*nk) scratch layout relies on.
func decodeCodeword(c []byte, s, lambda, omega []byte, errorCorrection int) decodeResult {
	nk := len(s)
	if nk == 0 {
		// ecc_size == 0 is a pass-through: no parity, nothing to verify.
		return decodeResult{}
	}

	findSyndromes(s, c)
	if allZero(s) {
		return decodeResult{}
	}
	if errorCorrection < 0 {
		return decodeResult{corrupt: true, reason: "detect-only policy: nonzero syndromes"}
	}

	e := findErrorLocator(lambda, omega, s)

	limit := nk / 2
	if errorCorrection > 0 && errorCorrection < limit {
		limit = errorCorrection
	}
	if e > limit {
		return decodeResult{corrupt: true, errors: e, limit: limit, reason: "too many errors"}
	}

	findErrorEvaluator(omega, s, lambda)
	correctErrors(c, lambda, omega)

	findSyndromes(s, c)
	if !allZero(s) {
		return decodeResult{corrupt: true, errors: e, limit: limit, reason: "syndromes nonzero after correction"}
	}
	return decodeResult{corrected: e, errors: e, limit: limit}
}

func allZero(p []byte) bool {
	for _, v := range p {
		if v != 0 {
			return false
		}
	}
	return true
}

// findSyndromes computes S_i = C(g^(nk-1-i)) for i in [0, nk), MS-first so
// S_0 corresponds to the highest-index evaluation. Because C(x) is a
// multiple of the generator polynomial, and the generator is zero at every
// x = g^i for i < nk, a clean codeword yields all-zero syndromes.
func findSyndromes(s, c []byte) {
	nk := len(s)
	for i := 0; i < nk; i++ {
		s[i] = polyEval(c, gfPow(gfGen, nk-1-i))
	}
}

// findErrorLocator recovers the error-locator polynomial Lambda(x) via
// Berlekamp-Massey, treating Lambda as an LFSR that has to reproduce the
// syndrome sequence. t is used as the auxiliary "best LFSR so far" buffer
// and as scratch; it is left in an unspecified state on return. Returns the
// number of errors found (the final LFSR length).
func findErrorLocator(lambda, t, s []byte) int {
	nk := len(lambda)

	e := 0
	for i := range lambda {
		lambda[i] = 0
	}
	lambda[nk-1] = 1
	for i := range t {
		t[i] = 0
	}
	t[nk-1] = 1

	for n := 0; n < nk; n++ {
		// shift T(x) <- T(x) * x
		copy(t, t[1:])
		t[nk-1] = 0

		// d = S_n - sum_{i=1}^{e} Lambda_i * S_{n-i}
		d := s[nk-1-n]
		for i := 1; i <= e; i++ {
			d ^= gfMul(lambda[nk-1-i], s[nk-1-(n-i)])
		}

		if d != 0 {
			polyXors(lambda, d, t)

			if n >= 2*e {
				newE := n + 1 - e
				// T(x) <- d^-1 * (Lambda_old(x)), recovered without a
				// second buffer by undoing the xor above: Lambda_new(x) =
				// Lambda_old(x) + d*T_old(x), so
				// d^-1*Lambda_old(x) = d^-1 * (Lambda_new(x) + d*T_old(x))
				//                    = T_old(x) + d^-1*Lambda_new(x).
				polyXors(t, gfDiv(1, d), lambda)
				e = newE
			}
		}
	}

	return e
}

// findErrorEvaluator computes Omega(x) = S(x)*Lambda(x) mod x^nk.
func findErrorEvaluator(omega, s, lambda []byte) {
	copy(omega, s)
	polyMulInPlace(omega, lambda)
}

// correctErrors brute-forces every codeword position j, looking for roots
// of Lambda(x) among the inverses of X_j = g^(n-1-j), and applies Forney's
// formula to recover and fix each error's magnitude.
func correctErrors(c, lambda, omega []byte) {
	n := len(c)
	for j := 0; j < n; j++ {
		xj := gfPow(gfGen, n-1-j)
		xjInv := gfDiv(1, xj)

		if polyEval(lambda, xjInv) != 0 {
			continue
		}

		num := polyEval(omega, xjInv)
		den := polyDerivEval(lambda, xjInv)
		yj := gfMul(xj, gfDiv(num, den))
		c[j] ^= yj
	}
}

// polyDerivEval evaluates the formal derivative of p at x without
// materializing a derivative buffer. In characteristic 2, d/dx of a term
// c*x^m is zero for even m and c*x^(m-1) for odd m (doubled terms cancel),
// so the Horner-style fold simply skips every other term.
func polyDerivEval(p []byte, x byte) byte {
	// p is MS-first; p[len(p)-1] is the constant term (degree 0, even,
	// contributes nothing to the derivative). Term at array index i has
	// degree (len(p)-1-i); we want the odd-degree terms.
	var y byte
	first := true
	for i := 0; i < len(p)-1; i++ {
		deg := len(p) - 1 - i
		if deg%2 == 0 {
			continue
		}
		if first {
			y = p[i]
			first = false
		} else {
			y = gfMul(y, gfMul(x, x)) ^ p[i]
		}
	}
	return y
}
