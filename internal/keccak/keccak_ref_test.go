// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package keccak //nolint:testpackage // testing internals

import "math/bits"

// refPermute applies Keccak-f[1600] as the five named steps composed 24
// times, with every table derived from the FIPS 202 definitions instead
// of written down: rho offsets from the (t+1)(t+2)/2 sequence, pi from
// (x, y) -> (y, 2x+3y), round constants from the rc(t) LFSR. The
// optimized engines are checked against this independent rendering of
// the standard.
func refPermute(a *[25]uint64) {
	rho := refRhoOffsets()
	rcs := refRoundConstants()
	for r := 0; r < 24; r++ {
		refRound(a, &rho, rcs[r])
	}
}

func refRound(a *[25]uint64, rho *[25]int, rcv uint64) {
	// Theta
	var c [5]uint64
	for x := 0; x < 5; x++ {
		c[x] = a[x] ^ a[x+5] ^ a[x+10] ^ a[x+15] ^ a[x+20]
	}
	for x := 0; x < 5; x++ {
		d := c[(x+4)%5] ^ bits.RotateLeft64(c[(x+1)%5], 1)
		for y := 0; y < 5; y++ {
			a[x+5*y] ^= d
		}
	}

	// Rho
	for j := 1; j < 25; j++ {
		a[j] = bits.RotateLeft64(a[j], rho[j])
	}

	// Pi
	var b [25]uint64
	for x := 0; x < 5; x++ {
		for y := 0; y < 5; y++ {
			b[y+5*((2*x+3*y)%5)] = a[x+5*y]
		}
	}

	// Chi
	for y := 0; y < 25; y += 5 {
		for x := 0; x < 5; x++ {
			a[y+x] = b[y+x] ^ (^b[y+(x+1)%5] & b[y+(x+2)%5])
		}
	}

	// Iota
	a[0] ^= rcv
}

// refRhoOffsets generates the rho rotation table from the FIPS 202
// coordinate walk: starting at (1, 0), lane t rotates by (t+1)(t+2)/2
// and the walk steps to (y, 2x+3y). Lane (0, 0) stays at zero.
func refRhoOffsets() [25]int {
	var r [25]int
	x, y := 1, 0
	for t := 0; t < 24; t++ {
		r[x+5*y] = ((t + 1) * (t + 2) / 2) % 64
		x, y = y, (2*x+3*y)%5
	}
	return r
}

// refRoundConstants generates the 24 round constants from the rc(t)
// LFSR over x^8 + x^6 + x^5 + x^4 + 1, placing output bits at positions
// 2^j - 1.
func refRoundConstants() [24]uint64 {
	var rcs [24]uint64
	lfsr := uint8(1)
	for r := 0; r < 24; r++ {
		var v uint64
		for j := 0; j <= 6; j++ {
			if lfsr&1 != 0 {
				v ^= 1 << ((1 << j) - 1)
			}
			if lfsr&0x80 != 0 {
				lfsr = lfsr<<1 ^ 0x71
			} else {
				lfsr <<= 1
			}
		}
		rcs[r] = v
	}
	return rcs
}
