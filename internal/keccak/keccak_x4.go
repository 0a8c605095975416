// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package keccak

import "math/bits"

// rho holds the per-lane left-rotation amounts of the rho step, indexed
// by lane position x + 5*y.
//
//nolint:gochecknoglobals // these are constants
var rho = [25]int{
	0, 1, 62, 28, 27,
	36, 44, 6, 55, 20,
	3, 10, 43, 25, 39,
	41, 45, 15, 21, 8,
	18, 2, 61, 56, 14,
}

// pi maps each lane position to its destination in the pi step: the lane
// at (x, y) moves to (y, 2x+3y mod 5).
//
//nolint:gochecknoglobals // these are constants
var pi = [25]int{
	0, 10, 20, 5, 15,
	16, 1, 11, 21, 6,
	7, 17, 2, 12, 22,
	23, 8, 18, 3, 13,
	14, 24, 9, 19, 4,
}

// keccakF1600x4Interleaved permutes four states packed in the interleaved
// layout. Quadruples are already adjacent, so loads and stores are
// unit-stride.
func keccakF1600x4Interleaved(a *[100]uint64) {
	var s [25][4]uint64
	for j := range s {
		s[j] = [4]uint64{a[4*j], a[4*j+1], a[4*j+2], a[4*j+3]}
	}
	keccakF1600x4Rounds(&s)
	for j := range s {
		a[4*j], a[4*j+1], a[4*j+2], a[4*j+3] = s[j][0], s[j][1], s[j][2], s[j][3]
	}
}

// keccakF1600x4Contiguous permutes four states packed in the contiguous
// layout, gathering each lane position from its four per-state offsets
// (stride of 25 lanes between states) and scattering the results back.
func keccakF1600x4Contiguous(a *[100]uint64) {
	var s [25][4]uint64
	for j := range s {
		s[j] = [4]uint64{a[j], a[25+j], a[50+j], a[75+j]}
	}
	keccakF1600x4Rounds(&s)
	for j := range s {
		a[j], a[25+j], a[50+j], a[75+j] = s[j][0], s[j][1], s[j][2], s[j][3]
	}
}

// keccakF1600x4Fallback permutes four contiguously packed states by
// running the scalar permutation on each state slice in turn.
func keccakF1600x4Fallback(a *[100]uint64) {
	keccakF1600Generic((*[25]uint64)(a[0:25]))
	keccakF1600Generic((*[25]uint64)(a[25:50]))
	keccakF1600Generic((*[25]uint64)(a[50:75]))
	keccakF1600Generic((*[25]uint64)(a[75:100]))
}

// keccakF1600x4Rounds runs all 24 rounds over four states held as one
// quadruple per lane position, applying each step to the four states at
// once. The four states never mix: every operation is elementwise across
// the quadruple.
func keccakF1600x4Rounds(s *[25][4]uint64) {
	for round := 0; round < 24; round++ {
		// Theta
		var c [5][4]uint64
		for x := 0; x < 5; x++ {
			c[x] = xor4(xor4(xor4(xor4(s[x], s[x+5]), s[x+10]), s[x+15]), s[x+20])
		}
		for x := 0; x < 5; x++ {
			d := xor4(c[(x+4)%5], rotl4(c[(x+1)%5], 1))
			for y := 0; y < 25; y += 5 {
				s[x+y] = xor4(s[x+y], d)
			}
		}

		// Rho and pi
		var b [25][4]uint64
		for j := range s {
			b[pi[j]] = rotl4(s[j], rho[j])
		}

		// Chi
		for y := 0; y < 25; y += 5 {
			for x := 0; x < 5; x++ {
				s[y+x] = xor4(b[y+x], andn4(b[y+(x+1)%5], b[y+(x+2)%5]))
			}
		}

		// Iota
		k := rc[round]
		s[0][0] ^= k
		s[0][1] ^= k
		s[0][2] ^= k
		s[0][3] ^= k
	}
}

func xor4(x, y [4]uint64) [4]uint64 {
	return [4]uint64{x[0] ^ y[0], x[1] ^ y[1], x[2] ^ y[2], x[3] ^ y[3]}
}

func rotl4(x [4]uint64, n int) [4]uint64 {
	return [4]uint64{
		bits.RotateLeft64(x[0], n),
		bits.RotateLeft64(x[1], n),
		bits.RotateLeft64(x[2], n),
		bits.RotateLeft64(x[3], n),
	}
}

// andn4 computes (^x) & y elementwise, the chi-step combiner.
func andn4(x, y [4]uint64) [4]uint64 {
	return [4]uint64{^x[0] & y[0], ^x[1] & y[1], ^x[2] & y[2], ^x[3] & y[3]}
}
