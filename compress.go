package mldsa

// power2Round splits r into (r1, r0) with r = r1*2^d + r0 mod q and
// r0 in (-2^(d-1), 2^(d-1)]. FIPS 204 Algorithm 35.
func power2Round(r fieldElement) (r1, r0 fieldElement) {
	r1 = r >> d
	r0 = r - r1<<d

	const half = 1 << (d - 1)
	if r0 > half {
		r0 = fieldSub(r0, 1<<d)
		r1++
	}
	return r1, r0
}

// highBits returns the high part of r under decomposition by 2*gamma2,
// using the branch-free reciprocal forms for both gamma2 values.
// FIPS 204 Algorithm 37.
func highBits(r fieldElement, gamma2 uint32) uint32 {
	r1 := int32((r + 127) >> 7)

	if gamma2 == (q-1)/32 {
		r1 = (r1*1025 + (1 << 21)) >> 22
		return uint32(r1) & 15
	}
	// gamma2 = (q-1)/88, high parts range over [0, 43]
	r1 = (r1*11275 + (1 << 23)) >> 24
	r1 ^= ((43 - r1) >> 31) & r1
	return uint32(r1)
}

// decompose splits r into r1*2*gamma2 + r0 with r0 centered.
// FIPS 204 Algorithm 36.
func decompose(r fieldElement, gamma2 uint32) (r1 uint32, r0 int32) {
	r1 = highBits(r, gamma2)
	r0 = int32(r) - int32(r1)*int32(gamma2)*2
	r0 -= ((int32(qMinus1Div2) - r0) >> 31) & q
	return r1, r0
}

// makeHint reports whether adding z to r changes its high part.
// FIPS 204 Algorithm 39.
func makeHint(z, r fieldElement, gamma2 uint32) fieldElement {
	if highBits(fieldAdd(r, z), gamma2) != highBits(r, gamma2) {
		return 1
	}
	return 0
}

// useHint recovers the signer's high part of r from the hint bit.
// FIPS 204 Algorithm 40.
func useHint(hint, r fieldElement, gamma2 uint32) fieldElement {
	r1, r0 := decompose(r, gamma2)
	if hint == 0 {
		return fieldElement(r1)
	}

	if gamma2 == (q-1)/32 {
		if r0 > 0 {
			return fieldElement((r1 + 1) & 15)
		}
		return fieldElement((r1 - 1) & 15)
	}
	// high parts wrap mod 44 for gamma2 = (q-1)/88
	if r0 > 0 {
		if r1 == 43 {
			return 0
		}
		return fieldElement(r1 + 1)
	}
	if r1 == 0 {
		return 43
	}
	return fieldElement(r1 - 1)
}

// infinityNorm is |a| with a read as a signed residue mod q.
func infinityNorm(a fieldElement) uint32 {
	if uint32(a) <= qMinus1Div2 {
		return uint32(a)
	}
	return q - uint32(a)
}

func polyInfinityNorm[T ~[n]fieldElement](f T) uint32 {
	var norm uint32
	for i := range f {
		if v := infinityNorm(f[i]); v > norm {
			norm = v
		}
	}
	return norm
}

func vectorInfinityNorm[T ~[n]fieldElement](v []T) uint32 {
	var norm uint32
	for i := range v {
		if p := polyInfinityNorm(v[i]); p > norm {
			norm = p
		}
	}
	return norm
}

func vectorInfinityNormSigned(v [][n]int32) int32 {
	var norm int32
	for i := range v {
		for _, c := range v[i] {
			if c < 0 {
				c = -c
			}
			if c > norm {
				norm = c
			}
		}
	}
	return norm
}

// hintWeight counts the nonzero coefficients across a hint vector.
func hintWeight[T ~[n]fieldElement](v []T) int {
	weight := 0
	for i := range v {
		for _, c := range v[i] {
			if c != 0 {
				weight++
			}
		}
	}
	return weight
}
