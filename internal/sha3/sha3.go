// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sha3 implements the SHA-3 fixed-output hashes and the SHAKE
// extendable-output functions from [FIPS 202], including a four-way
// batched SHAKE that squeezes four independent streams in lockstep.
//
// Everything here is a thin sponge state machine over the Keccak-f[1600]
// permutation; the byte-to-lane mapping is little-endian throughout,
// which is what makes the output interoperable with the standard's test
// vectors.
//
// [FIPS 202]: https://doi.org/10.6028/NIST.FIPS.202
package sha3

import (
	"encoding/binary"

	"github.com/ironlattice/mldsa/internal/keccak"
)

const (
	rateShake128 = 168
	rate256      = 136
	rate512      = 72

	dsSHA3  = 0x06
	dsShake = 0x1f
)

// State is a Keccak sponge in either the absorbing or the squeezing
// phase. The zero value is not usable; construct one with New256,
// New512, NewShake128, or NewShake256.
type State struct {
	a         [25]uint64
	rate      int
	ds        byte
	size      int
	pos       int
	squeezing bool
}

// New256 returns a SHA3-256 hash.
func New256() *State {
	return &State{rate: rate256, ds: dsSHA3, size: 32}
}

// New512 returns a SHA3-512 hash.
func New512() *State {
	return &State{rate: rate512, ds: dsSHA3, size: 64}
}

// NewShake128 returns a SHAKE128 extendable-output function.
func NewShake128() *State {
	return &State{rate: rateShake128, ds: dsShake, size: 32}
}

// NewShake256 returns a SHAKE256 extendable-output function.
func NewShake256() *State {
	return &State{rate: rate256, ds: dsShake, size: 64}
}

// Write absorbs p into the sponge. It panics if called after the sponge
// has begun squeezing.
func (s *State) Write(p []byte) (int, error) {
	if s.squeezing {
		panic("sha3: Write after Read")
	}
	n := len(p)
	for len(p) > 0 {
		if s.pos%8 == 0 && len(p) >= 8 {
			s.a[s.pos/8] ^= binary.LittleEndian.Uint64(p)
			p = p[8:]
			s.pos += 8
		} else {
			s.a[s.pos/8] ^= uint64(p[0]) << (8 * (s.pos % 8))
			p = p[1:]
			s.pos++
		}
		if s.pos == s.rate {
			keccak.F1600(&s.a)
			s.pos = 0
		}
	}
	return n, nil
}

// Read squeezes len(out) bytes from the sponge, padding and finalizing
// it first if it is still absorbing. Reads advance the output stream.
func (s *State) Read(out []byte) (int, error) {
	if !s.squeezing {
		s.padAndPermute()
	}
	n := len(out)
	for len(out) > 0 {
		if s.pos == s.rate {
			keccak.F1600(&s.a)
			s.pos = 0
		}
		if s.pos%8 == 0 && len(out) >= 8 {
			binary.LittleEndian.PutUint64(out, s.a[s.pos/8])
			out = out[8:]
			s.pos += 8
		} else {
			out[0] = byte(s.a[s.pos/8] >> (8 * (s.pos % 8)))
			out = out[1:]
			s.pos++
		}
	}
	return n, nil
}

// Sum appends the digest to b without disturbing the sponge. For the
// SHAKE states it appends Size bytes of output.
func (s *State) Sum(b []byte) []byte {
	clone := *s
	digest := make([]byte, clone.size)
	_, _ = clone.Read(digest)
	return append(b, digest...)
}

// Reset returns the sponge to its initial, absorbing state.
func (s *State) Reset() {
	*s = State{rate: s.rate, ds: s.ds, size: s.size}
}

// Size returns the digest length in bytes.
func (s *State) Size() int { return s.size }

// BlockSize returns the sponge rate in bytes.
func (s *State) BlockSize() int { return s.rate }

// padAndPermute closes the absorbing phase: the domain-separation bits
// and the start of pad10*1 land at the current position, the final bit
// at the last byte of the rate block.
func (s *State) padAndPermute() {
	s.a[s.pos/8] ^= uint64(s.ds) << (8 * (s.pos % 8))
	s.a[s.rate/8-1] ^= 1 << 63
	keccak.F1600(&s.a)
	s.pos = 0
	s.squeezing = true
}

// Sum256 returns the SHA3-256 digest of data.
func Sum256(data []byte) [32]byte {
	var digest [32]byte
	h := New256()
	_, _ = h.Write(data)
	_, _ = h.Read(digest[:])
	return digest
}

// Sum512 returns the SHA3-512 digest of data.
func Sum512(data []byte) [64]byte {
	var digest [64]byte
	h := New512()
	_, _ = h.Write(data)
	_, _ = h.Read(digest[:])
	return digest
}

// ShakeSum128 writes the SHAKE128 output of data into hash.
func ShakeSum128(hash, data []byte) {
	h := NewShake128()
	_, _ = h.Write(data)
	_, _ = h.Read(hash)
}

// ShakeSum256 writes the SHAKE256 output of data into hash.
func ShakeSum256(hash, data []byte) {
	h := NewShake256()
	_, _ = h.Write(data)
	_, _ = h.Read(hash)
}
