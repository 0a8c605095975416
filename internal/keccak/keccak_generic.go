// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package keccak

import "math/bits"

// rc holds the 24 round constants, one per round, XORed into lane (0, 0)
// by the iota step. Every engine in this package reads this table; no
// backend carries its own copy.
//
//nolint:gochecknoglobals // these are constants
var rc = [24]uint64{
	0x0000000000000001, 0x0000000000008082,
	0x800000000000808a, 0x8000000080008000,
	0x000000000000808b, 0x0000000080000001,
	0x8000000080008081, 0x8000000000008009,
	0x000000000000008a, 0x0000000000000088,
	0x0000000080008009, 0x000000008000000a,
	0x000000008000808b, 0x800000000000008b,
	0x8000000000008089, 0x8000000000008003,
	0x8000000000008002, 0x8000000000000080,
	0x000000000000800a, 0x800000008000000a,
	0x8000000080008081, 0x8000000000008080,
	0x0000000080000001, 0x8000000080008008,
}

// keccakF1600Generic applies the Keccak-f[1600] permutation to a,
// computing two rounds per loop iteration and ping-ponging the state
// between the a and e lane sets. Lane names follow the (row, column)
// scheme of the classic unrolled implementations: rows b, g, k, m, s are
// y = 0..4 and columns a, e, i, o, u are x = 0..4.
func keccakF1600Generic(a *[25]uint64) {
	aba, abe, abi, abo, abu := a[0], a[1], a[2], a[3], a[4]
	aga, age, agi, ago, agu := a[5], a[6], a[7], a[8], a[9]
	aka, ake, aki, ako, aku := a[10], a[11], a[12], a[13], a[14]
	ama, ame, ami, amo, amu := a[15], a[16], a[17], a[18], a[19]
	asa, ase, asi, aso, asu := a[20], a[21], a[22], a[23], a[24]

	var (
		bca, bce, bci, bco, bcu uint64
		ta, te, ti, to, tu      uint64
		eba, ebe, ebi, ebo, ebu uint64
		ega, ege, egi, ego, egu uint64
		eka, eke, eki, eko, eku uint64
		ema, eme, emi, emo, emu uint64
		esa, ese, esi, eso, esu uint64
	)

	for round := 0; round < 24; round += 2 {
		// Theta
		bca = aba ^ aga ^ aka ^ ama ^ asa
		bce = abe ^ age ^ ake ^ ame ^ ase
		bci = abi ^ agi ^ aki ^ ami ^ asi
		bco = abo ^ ago ^ ako ^ amo ^ aso
		bcu = abu ^ agu ^ aku ^ amu ^ asu

		ta = bcu ^ bits.RotateLeft64(bce, 1)
		te = bca ^ bits.RotateLeft64(bci, 1)
		ti = bce ^ bits.RotateLeft64(bco, 1)
		to = bci ^ bits.RotateLeft64(bcu, 1)
		tu = bco ^ bits.RotateLeft64(bca, 1)

		// Rho, pi, chi, iota: round r, a into e
		aba ^= ta
		bca = aba
		age ^= te
		bce = bits.RotateLeft64(age, 44)
		aki ^= ti
		bci = bits.RotateLeft64(aki, 43)
		amo ^= to
		bco = bits.RotateLeft64(amo, 21)
		asu ^= tu
		bcu = bits.RotateLeft64(asu, 14)
		eba = bca ^ (^bce & bci)
		eba ^= rc[round]
		ebe = bce ^ (^bci & bco)
		ebi = bci ^ (^bco & bcu)
		ebo = bco ^ (^bcu & bca)
		ebu = bcu ^ (^bca & bce)

		abo ^= to
		bca = bits.RotateLeft64(abo, 28)
		agu ^= tu
		bce = bits.RotateLeft64(agu, 20)
		aka ^= ta
		bci = bits.RotateLeft64(aka, 3)
		ame ^= te
		bco = bits.RotateLeft64(ame, 45)
		asi ^= ti
		bcu = bits.RotateLeft64(asi, 61)
		ega = bca ^ (^bce & bci)
		ege = bce ^ (^bci & bco)
		egi = bci ^ (^bco & bcu)
		ego = bco ^ (^bcu & bca)
		egu = bcu ^ (^bca & bce)

		abe ^= te
		bca = bits.RotateLeft64(abe, 1)
		agi ^= ti
		bce = bits.RotateLeft64(agi, 6)
		ako ^= to
		bci = bits.RotateLeft64(ako, 25)
		amu ^= tu
		bco = bits.RotateLeft64(amu, 8)
		asa ^= ta
		bcu = bits.RotateLeft64(asa, 18)
		eka = bca ^ (^bce & bci)
		eke = bce ^ (^bci & bco)
		eki = bci ^ (^bco & bcu)
		eko = bco ^ (^bcu & bca)
		eku = bcu ^ (^bca & bce)

		abu ^= tu
		bca = bits.RotateLeft64(abu, 27)
		aga ^= ta
		bce = bits.RotateLeft64(aga, 36)
		ake ^= te
		bci = bits.RotateLeft64(ake, 10)
		ami ^= ti
		bco = bits.RotateLeft64(ami, 15)
		aso ^= to
		bcu = bits.RotateLeft64(aso, 56)
		ema = bca ^ (^bce & bci)
		eme = bce ^ (^bci & bco)
		emi = bci ^ (^bco & bcu)
		emo = bco ^ (^bcu & bca)
		emu = bcu ^ (^bca & bce)

		abi ^= ti
		bca = bits.RotateLeft64(abi, 62)
		ago ^= to
		bce = bits.RotateLeft64(ago, 55)
		aku ^= tu
		bci = bits.RotateLeft64(aku, 39)
		ama ^= ta
		bco = bits.RotateLeft64(ama, 41)
		ase ^= te
		bcu = bits.RotateLeft64(ase, 2)
		esa = bca ^ (^bce & bci)
		ese = bce ^ (^bci & bco)
		esi = bci ^ (^bco & bcu)
		eso = bco ^ (^bcu & bca)
		esu = bcu ^ (^bca & bce)

		// Theta
		bca = eba ^ ega ^ eka ^ ema ^ esa
		bce = ebe ^ ege ^ eke ^ eme ^ ese
		bci = ebi ^ egi ^ eki ^ emi ^ esi
		bco = ebo ^ ego ^ eko ^ emo ^ eso
		bcu = ebu ^ egu ^ eku ^ emu ^ esu

		ta = bcu ^ bits.RotateLeft64(bce, 1)
		te = bca ^ bits.RotateLeft64(bci, 1)
		ti = bce ^ bits.RotateLeft64(bco, 1)
		to = bci ^ bits.RotateLeft64(bcu, 1)
		tu = bco ^ bits.RotateLeft64(bca, 1)

		// Rho, pi, chi, iota: round r+1, e back into a
		eba ^= ta
		bca = eba
		ege ^= te
		bce = bits.RotateLeft64(ege, 44)
		eki ^= ti
		bci = bits.RotateLeft64(eki, 43)
		emo ^= to
		bco = bits.RotateLeft64(emo, 21)
		esu ^= tu
		bcu = bits.RotateLeft64(esu, 14)
		aba = bca ^ (^bce & bci)
		aba ^= rc[round+1]
		abe = bce ^ (^bci & bco)
		abi = bci ^ (^bco & bcu)
		abo = bco ^ (^bcu & bca)
		abu = bcu ^ (^bca & bce)

		ebo ^= to
		bca = bits.RotateLeft64(ebo, 28)
		egu ^= tu
		bce = bits.RotateLeft64(egu, 20)
		eka ^= ta
		bci = bits.RotateLeft64(eka, 3)
		eme ^= te
		bco = bits.RotateLeft64(eme, 45)
		esi ^= ti
		bcu = bits.RotateLeft64(esi, 61)
		aga = bca ^ (^bce & bci)
		age = bce ^ (^bci & bco)
		agi = bci ^ (^bco & bcu)
		ago = bco ^ (^bcu & bca)
		agu = bcu ^ (^bca & bce)

		ebe ^= te
		bca = bits.RotateLeft64(ebe, 1)
		egi ^= ti
		bce = bits.RotateLeft64(egi, 6)
		eko ^= to
		bci = bits.RotateLeft64(eko, 25)
		emu ^= tu
		bco = bits.RotateLeft64(emu, 8)
		esa ^= ta
		bcu = bits.RotateLeft64(esa, 18)
		aka = bca ^ (^bce & bci)
		ake = bce ^ (^bci & bco)
		aki = bci ^ (^bco & bcu)
		ako = bco ^ (^bcu & bca)
		aku = bcu ^ (^bca & bce)

		ebu ^= tu
		bca = bits.RotateLeft64(ebu, 27)
		ega ^= ta
		bce = bits.RotateLeft64(ega, 36)
		eke ^= te
		bci = bits.RotateLeft64(eke, 10)
		emi ^= ti
		bco = bits.RotateLeft64(emi, 15)
		eso ^= to
		bcu = bits.RotateLeft64(eso, 56)
		ama = bca ^ (^bce & bci)
		ame = bce ^ (^bci & bco)
		ami = bci ^ (^bco & bcu)
		amo = bco ^ (^bcu & bca)
		amu = bcu ^ (^bca & bce)

		ebi ^= ti
		bca = bits.RotateLeft64(ebi, 62)
		ego ^= to
		bce = bits.RotateLeft64(ego, 55)
		eku ^= tu
		bci = bits.RotateLeft64(eku, 39)
		ema ^= ta
		bco = bits.RotateLeft64(ema, 41)
		ese ^= te
		bcu = bits.RotateLeft64(ese, 2)
		asa = bca ^ (^bce & bci)
		ase = bce ^ (^bci & bco)
		asi = bci ^ (^bco & bcu)
		aso = bco ^ (^bcu & bca)
		asu = bcu ^ (^bca & bce)
	}

	a[0], a[1], a[2], a[3], a[4] = aba, abe, abi, abo, abu
	a[5], a[6], a[7], a[8], a[9] = aga, age, agi, ago, agu
	a[10], a[11], a[12], a[13], a[14] = aka, ake, aki, ako, aku
	a[15], a[16], a[17], a[18], a[19] = ama, ame, ami, amo, amu
	a[20], a[21], a[22], a[23], a[24] = asa, ase, asi, aso, asu
}
