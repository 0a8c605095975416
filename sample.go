package mldsa

import (
	"encoding/binary"

	"github.com/ironlattice/mldsa/internal/sha3"
)

// rejUniform consumes 3-byte little-endian candidates from buf, masked
// to 23 bits, and appends those below q to f starting at ctr. Returns
// the new count.
func rejUniform(f *nttElement, ctr int, buf []byte) int {
	for i := 0; i+3 <= len(buf) && ctr < n; i += 3 {
		c := uint32(buf[i]) | uint32(buf[i+1])<<8 | (uint32(buf[i+2])&0x7f)<<16
		if c < q {
			f[ctr] = fieldElement(c)
			ctr++
		}
	}
	return ctr
}

// sampleNTTPoly samples one uniform polynomial directly in the NTT
// domain from SHAKE128(rho || s || r). FIPS 204 Algorithm 30.
func sampleNTTPoly(rho []byte, s, r byte) nttElement {
	h := sha3.NewShake128()
	_, _ = h.Write(rho)
	_, _ = h.Write([]byte{s, r})

	var buf [168]byte // one SHAKE128 block
	var f nttElement
	ctr := 0
	for ctr < n {
		_, _ = h.Read(buf[:])
		ctr = rejUniform(&f, ctr, buf[:])
	}
	return f
}

// expandMatrix samples the k x l matrix A in row-major order, four
// polynomials at a time over the batched XOF. Each lane absorbs
// rho || column || row; the initial five-block squeeze covers a full
// polynomial except with negligible probability, after which single
// blocks are squeezed in lockstep until every lane is full. A trailing
// group smaller than four falls back to the scalar path.
func expandMatrix(p *parameters, rho *[32]byte) []nttElement {
	a := make([]nttElement, p.k*p.l)

	var seeds [4][34]byte
	for g := range seeds {
		copy(seeds[g][:32], rho[:])
	}

	x4 := sha3.NewShake128x4()
	idx := 0
	for ; idx+4 <= len(a); idx += 4 {
		for g := range seeds {
			seeds[g][32] = byte((idx + g) % p.l)
			seeds[g][33] = byte((idx + g) / p.l)
		}
		x4.Reset()
		x4.Absorb(seeds[0][:], seeds[1][:], seeds[2][:], seeds[3][:])

		var bufs [4][5 * 168]byte
		x4.Read(bufs[0][:], bufs[1][:], bufs[2][:], bufs[3][:])

		var ctrs [4]int
		for g := range ctrs {
			ctrs[g] = rejUniform(&a[idx+g], 0, bufs[g][:])
		}

		for ctrs[0] < n || ctrs[1] < n || ctrs[2] < n || ctrs[3] < n {
			x4.Read(bufs[0][:168], bufs[1][:168], bufs[2][:168], bufs[3][:168])
			for g := range ctrs {
				ctrs[g] = rejUniform(&a[idx+g], ctrs[g], bufs[g][:168])
			}
		}
	}

	for ; idx < len(a); idx++ {
		a[idx] = sampleNTTPoly(rho[:], byte(idx%p.l), byte(idx/p.l))
	}
	return a
}

// sampleBoundedPoly samples a polynomial with coefficients in
// [-eta, eta] by nibble rejection from SHAKE256(seed || nonce).
// FIPS 204 Algorithm 31.
func sampleBoundedPoly(seed []byte, eta int, nonce uint16) ringElement {
	h := sha3.NewShake256()
	_, _ = h.Write(seed)
	_, _ = h.Write([]byte{byte(nonce), byte(nonce >> 8)})

	var buf [136]byte // one SHAKE256 block
	_, _ = h.Read(buf[:])

	var f ringElement
	j := 0
	offset := 0
	for j < n {
		if offset == len(buf) {
			_, _ = h.Read(buf[:])
			offset = 0
		}
		z0 := buf[offset] & 0x0f
		z1 := buf[offset] >> 4
		offset++

		if eta == 2 {
			// nibbles below 15 reduce mod 5 onto [-2, 2]
			if z0 < 15 {
				f[j] = fieldSub(2, fieldElement(z0%5))
				j++
			}
			if j < n && z1 < 15 {
				f[j] = fieldSub(2, fieldElement(z1%5))
				j++
			}
		} else {
			// nibbles up to 8 map onto [-4, 4]
			if z0 <= 8 {
				f[j] = fieldSub(4, fieldElement(z0))
				j++
			}
			if j < n && z1 <= 8 {
				f[j] = fieldSub(4, fieldElement(z1))
				j++
			}
		}
	}
	return f
}

// sampleChallenge derives the challenge polynomial with tau
// coefficients in {-1, 1} by a Fisher-Yates shuffle seeded from
// SHAKE256(cTilde). FIPS 204 Algorithm 29.
func sampleChallenge(seed []byte, tau int) ringElement {
	h := sha3.NewShake256()
	_, _ = h.Write(seed)

	var buf [136]byte
	_, _ = h.Read(buf[:])

	signs := binary.LittleEndian.Uint64(buf[:8])
	offset := 8

	var c ringElement
	for i := n - tau; i < n; i++ {
		var j byte
		for {
			if offset == len(buf) {
				_, _ = h.Read(buf[:])
				offset = 0
			}
			j = buf[offset]
			offset++
			if int(j) <= i {
				break
			}
		}

		c[i] = c[j]
		if signs&1 == 0 {
			c[j] = 1
		} else {
			c[j] = q - 1
		}
		signs >>= 1
	}
	return c
}

// expandMask derives one masking polynomial with coefficients in
// (-gamma1, gamma1] from SHAKE256(seed). FIPS 204 Algorithm 34.
func expandMask(seed []byte, gamma1Bits int) ringElement {
	h := sha3.NewShake256()
	_, _ = h.Write(seed)

	if gamma1Bits == 17 {
		var buf [encodingSize18]byte
		_, _ = h.Read(buf[:])
		return unpackZ17(buf[:])
	}
	var buf [encodingSize20]byte
	_, _ = h.Read(buf[:])
	return unpackZ19(buf[:])
}
