package mldsa

// fieldElement is an integer modulo q, always fully reduced to [0, q).
type fieldElement uint32

// ringElement is a polynomial of degree n with coefficients in Z_q.
type ringElement [n]fieldElement

// nttElement is a polynomial in the number-theoretic transform domain.
type nttElement [n]fieldElement

// qNegInv is -q^(-1) mod 2^32, the Montgomery constant for R = 2^32.
const qNegInv = 4236238847

// fieldReduceOnce reduces a < 2q to [0, q) without branching on a.
func fieldReduceOnce(a uint32) fieldElement {
	x := a - q
	// x underflowed iff a < q; the high bit selects the add-back.
	x += (x >> 31) * q
	return fieldElement(x)
}

func fieldAdd(a, b fieldElement) fieldElement {
	return fieldReduceOnce(uint32(a) + uint32(b))
}

func fieldSub(a, b fieldElement) fieldElement {
	return fieldReduceOnce(uint32(a) - uint32(b) + q)
}

// fieldReduce maps a < q * 2^32 to a * R^(-1) mod q by Montgomery
// reduction.
func fieldReduce(a uint64) fieldElement {
	t := uint32(a) * qNegInv
	return fieldReduceOnce(uint32((a + uint64(t)*q) >> 32))
}

// fieldMul returns a * b * R^(-1) mod q. Values multiplied against a
// table entry carrying a factor of R come out in the standard domain.
func fieldMul(a, b fieldElement) fieldElement {
	return fieldReduce(uint64(a) * uint64(b))
}

func polyAdd[T ~[n]fieldElement](a, b T) (c T) {
	for i := range c {
		c[i] = fieldAdd(a[i], b[i])
	}
	return c
}

func polySub[T ~[n]fieldElement](a, b T) (c T) {
	for i := range c {
		c[i] = fieldSub(a[i], b[i])
	}
	return c
}
