// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sha3

import (
	"encoding/binary"

	"github.com/ironlattice/mldsa/internal/keccak"
)

// ShakeX4 is four independent SHAKE instances absorbed and squeezed in
// lockstep over the batched permutation. All four lanes must absorb
// messages of the same length and read outputs of the same length, which
// keeps their block schedules identical.
//
// The zero value is not usable; construct one with NewShake128x4 or
// NewShake256x4.
type ShakeX4 struct {
	a         [100]uint64
	rate      int
	pos       int
	squeezing bool
}

// NewShake128x4 returns a four-way batched SHAKE128.
func NewShake128x4() *ShakeX4 {
	return &ShakeX4{rate: rateShake128}
}

// NewShake256x4 returns a four-way batched SHAKE256.
func NewShake256x4() *ShakeX4 {
	return &ShakeX4{rate: rate256}
}

// Absorb feeds one message into each lane and finalizes all four
// sponges. The messages must be the same length. It panics if the batch
// has already been finalized; use Reset to start over.
func (s *ShakeX4) Absorb(in0, in1, in2, in3 []byte) {
	if s.squeezing {
		panic("sha3: batch Absorb after Read")
	}
	if len(in1) != len(in0) || len(in2) != len(in0) || len(in3) != len(in0) {
		panic("sha3: batch Absorb with mismatched lengths")
	}
	ins := [4][]byte{in0, in1, in2, in3}
	for len(ins[0]) >= s.rate {
		for k := range ins {
			xorLanes(s.lane(k), ins[k][:s.rate])
			ins[k] = ins[k][s.rate:]
		}
		keccak.F1600x4(&s.a)
	}
	for k := range ins {
		a := s.lane(k)
		for i, b := range ins[k] {
			a[i/8] ^= uint64(b) << (8 * (i % 8))
		}
		a[len(ins[k])/8] ^= uint64(dsShake) << (8 * (len(ins[k]) % 8))
		a[s.rate/8-1] ^= 1 << 63
	}
	keccak.F1600x4(&s.a)
	s.pos = 0
	s.squeezing = true
}

// Read squeezes len(out0) bytes from each lane. The destinations must be
// the same length. It panics if called before Absorb.
func (s *ShakeX4) Read(out0, out1, out2, out3 []byte) {
	if !s.squeezing {
		panic("sha3: batch Read before Absorb")
	}
	if len(out1) != len(out0) || len(out2) != len(out0) || len(out3) != len(out0) {
		panic("sha3: batch Read with mismatched lengths")
	}
	outs := [4][]byte{out0, out1, out2, out3}
	n := len(out0)
	for done := 0; done < n; {
		if s.pos == s.rate {
			keccak.F1600x4(&s.a)
			s.pos = 0
		}
		c := min(s.rate-s.pos, n-done)
		for k := range outs {
			copyLanes(outs[k][done:done+c], s.lane(k), s.pos)
		}
		s.pos += c
		done += c
	}
}

// Reset returns all four sponges to their initial, absorbing state.
func (s *ShakeX4) Reset() {
	*s = ShakeX4{rate: s.rate}
}

// lane returns lane k's view of the contiguous batched state.
func (s *ShakeX4) lane(k int) *[25]uint64 {
	return (*[25]uint64)(s.a[25*k : 25*k+25])
}

// xorLanes absorbs a full rate block, which is always a whole number of
// lanes, into a.
func xorLanes(a *[25]uint64, block []byte) {
	for i := 0; i+8 <= len(block); i += 8 {
		a[i/8] ^= binary.LittleEndian.Uint64(block[i:])
	}
}

// copyLanes serializes bytes [off, off+len(out)) of a's little-endian
// lane encoding into out.
func copyLanes(out []byte, a *[25]uint64, off int) {
	i := 0
	for ; i < len(out) && (off+i)%8 != 0; i++ {
		out[i] = byte(a[(off+i)/8] >> (8 * ((off + i) % 8)))
	}
	for ; i+8 <= len(out); i += 8 {
		binary.LittleEndian.PutUint64(out[i:], a[(off+i)/8])
	}
	for ; i < len(out); i++ {
		out[i] = byte(a[(off+i)/8] >> (8 * ((off + i) % 8)))
	}
}
