// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package keccak implements the Keccak-f[1600] permutation from
// [FIPS 202] underlying SHA-3 and SHAKE, both for a single 1600-bit
// state and for batches of four independent states processed in
// lockstep.
//
// A state is 25 lanes of 64 bits; lane (x, y) lives at index x + 5*y.
// Batched states pack 100 lanes in one of two layouts:
//
//   - Contiguous: state k's lane j at index 25*k + j. This is the layout
//     callers naturally have when four sponge states sit side by side in
//     memory.
//   - Interleaved: lane j of all four states adjacent, state k's lane j
//     at index 4*j + k. This is the shape a four-wide vector engine works
//     in, one quadruple per logical register.
//
// Both batched entry points permute the four states independently; the
// result is bit-identical to four scalar F1600 calls. Which engine backs
// them is decided at build time: amd64 and arm64 use the lane-parallel
// batched engine, everything else (and any build with the nosimd tag)
// decomposes into four sequential scalar permutations.
//
// [FIPS 202]: https://doi.org/10.6028/NIST.FIPS.202
package keccak

// F1600 applies the Keccak-f[1600] permutation to the state (24 rounds).
func F1600(a *[25]uint64) {
	keccakF1600Generic(a)
}

// Engine names the F1600x4 implementation this build selected.
func Engine() string {
	return engineName
}

// F1600x4 applies the Keccak-f[1600] permutation to four states packed
// in the contiguous layout.
func F1600x4(a *[100]uint64) {
	f1600x4(a)
}

// F1600x4Interleaved applies the Keccak-f[1600] permutation to four
// states packed in the interleaved layout.
func F1600x4Interleaved(a *[100]uint64) {
	f1600x4Interleaved(a)
}

// Interleave converts four contiguously packed states to the interleaved
// layout in place. It is the inverse of Deinterleave.
func Interleave(a *[100]uint64) {
	var t [100]uint64
	for j := 0; j < 25; j++ {
		for k := 0; k < 4; k++ {
			t[4*j+k] = a[25*k+j]
		}
	}
	*a = t
}

// Deinterleave converts four interleaved states to the contiguous layout
// in place. It is the inverse of Interleave.
func Deinterleave(a *[100]uint64) {
	var t [100]uint64
	for j := 0; j < 25; j++ {
		for k := 0; k < 4; k++ {
			t[25*k+j] = a[4*j+k]
		}
	}
	*a = t
}
